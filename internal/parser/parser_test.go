package parser

import (
	"reflect"
	"testing"
	"time"
)

func TestParseTV(t *testing.T) {
	r := Parse("Show.Name.S02E05.720p.HDTV.x264-GRP")
	if r.Type != TypeTV {
		t.Errorf("Type = %v, want TV", r.Type)
	}
	if r.Title != "Show Name" {
		t.Errorf("Title = %q, want %q", r.Title, "Show Name")
	}
	if r.Season != 2 || r.Episode != "5" {
		t.Errorf("Season/Episode = %d/%q, want 2/5", r.Season, r.Episode)
	}
	if r.Source != "HDTV" || r.Format != "x264" || r.Resolution != "720p" {
		t.Errorf("Source/Format/Resolution = %q/%q/%q", r.Source, r.Format, r.Resolution)
	}
	if r.Group != "GRP" {
		t.Errorf("Group = %q, want GRP", r.Group)
	}
}

func TestParseTVSubtitle(t *testing.T) {
	r := Parse("Show.Name.S01E01.The.Beginning.720p.WEB-DL.x264-GRP")
	if r.Type != TypeTV {
		t.Errorf("Type = %v, want TV", r.Type)
	}
	if r.Title != "Show Name" || r.TitleExtra != "The Beginning" {
		t.Errorf("Title/TitleExtra = %q/%q", r.Title, r.TitleExtra)
	}
	if r.Source != "WEB-DL" {
		t.Errorf("Source = %q, want WEB-DL", r.Source)
	}
	if r.Season != 1 || r.Episode != "1" {
		t.Errorf("Season/Episode = %d/%q, want 1/1", r.Season, r.Episode)
	}
}

func TestParseMultiEpisode(t *testing.T) {
	r := Parse("Show.Name.S01E01E02.720p.HDTV.x264-GRP")
	if r.Episode != "1-2" {
		t.Errorf("Episode = %q, want 1-2", r.Episode)
	}
	if r.TitleExtra != "" {
		t.Errorf("TitleExtra = %q, want empty", r.TitleExtra)
	}
}

func TestParseEpisodeForms(t *testing.T) {
	tests := []struct {
		name    string
		season  int
		episode string
	}{
		{"Show.Name.1x05.720p.HDTV.x264-GRP", 1, "5"},
		{"Show.Name.E07.720p.HDTV.x264-GRP", 0, "7"},
		{"Show.Name.Folge.12.720p.HDTV.x264-GRP", 0, "12"},
		{"Show.Name.S03.Complete.720p.HDTV.x264-GRP", 3, ""},
	}
	for _, tt := range tests {
		r := Parse(tt.name)
		if r.Season != tt.season || r.Episode != tt.episode {
			t.Errorf("Parse(%q) season/episode = %d/%q, want %d/%q",
				tt.name, r.Season, r.Episode, tt.season, tt.episode)
		}
	}
}

func TestParsePhoneModelNotSeason(t *testing.T) {
	// Symbian and Nokia model tokens look like season or episode numbers
	// until the os and device passes have claimed them.
	tests := []string{
		"Mobile.Game.S60.Symbian.Java-GRP",
		"Cool.Game.N7650.Java-GRP",
	}
	for _, name := range tests {
		r := Parse(name)
		if r.Season != 0 {
			t.Errorf("Parse(%q).Season = %d, want 0", name, r.Season)
		}
		if r.Episode != "" {
			t.Errorf("Parse(%q).Episode = %q, want empty", name, r.Episode)
		}
	}
}

func TestParseMovie(t *testing.T) {
	r := Parse("Some.Movie.2020.1080p.BluRay.x264-GROUP")
	if r.Type != TypeMovie {
		t.Errorf("Type = %v, want Movie", r.Type)
	}
	if r.Title != "Some Movie" {
		t.Errorf("Title = %q, want %q", r.Title, "Some Movie")
	}
	if r.Year != "2020" {
		t.Errorf("Year = %q, want 2020", r.Year)
	}
	if r.Source != "Bluray" || r.Format != "x264" || r.Resolution != "1080p" {
		t.Errorf("Source/Format/Resolution = %q/%q/%q", r.Source, r.Format, r.Resolution)
	}
}

func TestParseTitleWithYear(t *testing.T) {
	// The last year-like token is the release year; earlier ones belong to
	// the title.
	r := Parse("Blade.Runner.2049.2017.1080p.BluRay.x264-GRP")
	if r.Year != "2017" {
		t.Errorf("Year = %q, want 2017", r.Year)
	}
	if r.Title != "Blade Runner 2049" {
		t.Errorf("Title = %q, want %q", r.Title, "Blade Runner 2049")
	}
}

func TestParseRedactedYear(t *testing.T) {
	r := Parse("Old.Movie.19xx.DVDRip.XviD-GRP")
	if r.Year != "19xx" {
		t.Errorf("Year = %q, want 19xx", r.Year)
	}
	if r.Title != "Old Movie" {
		t.Errorf("Title = %q, want %q", r.Title, "Old Movie")
	}
}

func TestParseMusic(t *testing.T) {
	r := Parse("VA-Greatest_Hits-2CD-FLAC-2020-GRP")
	if r.Type != TypeMusic {
		t.Errorf("Type = %v, want Music", r.Type)
	}
	if r.Title != "Various" {
		t.Errorf("Title = %q, want Various", r.Title)
	}
	if r.TitleExtra != "Greatest Hits" {
		t.Errorf("TitleExtra = %q, want %q", r.TitleExtra, "Greatest Hits")
	}
	if r.Source != "CD" || r.Format != "FLAC" || r.Year != "2020" {
		t.Errorf("Source/Format/Year = %q/%q/%q", r.Source, r.Format, r.Year)
	}
}

func TestParseMusicDisc(t *testing.T) {
	r := Parse("Artist-Album_Name-CD2-FLAC-2021-GRP")
	if r.Type != TypeMusic {
		t.Errorf("Type = %v, want Music", r.Type)
	}
	if r.Disc != 2 {
		t.Errorf("Disc = %d, want 2", r.Disc)
	}
	if r.Title != "Artist" {
		t.Errorf("Title = %q, want Artist", r.Title)
	}
}

func TestParseApp(t *testing.T) {
	r := Parse("Cool.App.v2.5.1.WinAll.Incl.Keygen-GRP")
	if r.Type != TypeApp {
		t.Errorf("Type = %v, want App", r.Type)
	}
	if r.Title != "Cool App" {
		t.Errorf("Title = %q, want %q", r.Title, "Cool App")
	}
	if r.Version != "2.5.1" {
		t.Errorf("Version = %q, want 2.5.1", r.Version)
	}
	if r.OS != "Windows" {
		t.Errorf("OS = %q, want Windows", r.OS)
	}
	if !r.HasAttribute(AttrFlags, "Keygen") {
		t.Errorf("Flags = %v, want Keygen present", r.Flags)
	}
}

func TestParseGameByDevice(t *testing.T) {
	r := Parse("Epic.Game.NSW-HYPE")
	if r.Type != TypeGame {
		t.Errorf("Type = %v, want Game", r.Type)
	}
	if r.Device != "NSW" {
		t.Errorf("Device = %q, want NSW", r.Device)
	}
	if r.Title != "Epic Game" {
		t.Errorf("Title = %q, want %q", r.Title, "Epic Game")
	}
}

func TestParseSports(t *testing.T) {
	r := Parse("F1.2024.Monaco.Grand.Prix.1080p.HDTV.x264-GRP")
	if r.Type != TypeSports {
		t.Errorf("Type = %v, want Sports", r.Type)
	}
	if r.Title != "F1" {
		t.Errorf("Title = %q, want F1", r.Title)
	}
	if r.TitleExtra != "Monaco Grand Prix" {
		t.Errorf("TitleExtra = %q, want %q", r.TitleExtra, "Monaco Grand Prix")
	}
	if r.Year != "2024" {
		t.Errorf("Year = %q, want 2024", r.Year)
	}
}

func TestParseDatedTV(t *testing.T) {
	r := Parse("The.Daily.Show.2024.01.15.Guest.Name.1080p.WEB.x264-GRP")
	if r.Type != TypeTV {
		t.Errorf("Type = %v, want TV", r.Type)
	}
	if r.Title != "The Daily Show" || r.TitleExtra != "Guest Name" {
		t.Errorf("Title/TitleExtra = %q/%q", r.Title, r.TitleExtra)
	}
	if r.Date == nil {
		t.Fatal("Date = nil, want 2024-01-15")
	}
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if !r.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", r.Date, want)
	}
	if r.Year != "2024" {
		t.Errorf("Year = %q, want 2024", r.Year)
	}
}

func TestParseMonthNameDate(t *testing.T) {
	r := Parse("Concert.15th.January.2024.720p.HDTV.x264-GRP")
	if r.Date == nil {
		t.Fatal("Date = nil, want 2024-01-15")
	}
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if !r.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", r.Date, want)
	}
	if r.Title != "Concert" {
		t.Errorf("Title = %q, want Concert", r.Title)
	}
}

func TestParseInvalidDateWarns(t *testing.T) {
	r := Parse("Event.2024.13.32.720p.HDTV.x264-GRP")
	if r.Date != nil {
		t.Errorf("Date = %v, want nil", r.Date)
	}
	if len(r.Warnings) != 1 {
		t.Errorf("Warnings = %v, want one entry", r.Warnings)
	}
}

func TestParseXXX(t *testing.T) {
	r := Parse("HotSite.14.03.22.Performer.Name.XXX.1080p.x264-GRP")
	if r.Type != TypeXXX {
		t.Errorf("Type = %v, want XXX", r.Type)
	}
	if r.Title != "HotSite" || r.TitleExtra != "Performer Name" {
		t.Errorf("Title/TitleExtra = %q/%q", r.Title, r.TitleExtra)
	}
	if r.Date == nil {
		t.Fatal("Date = nil, want a resolved date")
	}
}

func TestParseEbook(t *testing.T) {
	r := Parse("John.Doe-Learning.Things-2023-EPUB-GRP")
	if r.Type != TypeEbook {
		t.Errorf("Type = %v, want eBook", r.Type)
	}
	if r.Title != "John Doe" {
		t.Errorf("Title = %q, want %q", r.Title, "John Doe")
	}
	if r.TitleExtra != "Learning Things" {
		t.Errorf("TitleExtra = %q, want %q", r.TitleExtra, "Learning Things")
	}
	if r.Format != "EPUB" {
		t.Errorf("Format = %q, want EPUB", r.Format)
	}
}

func TestParseAnime(t *testing.T) {
	r := Parse("Series.Name.E05.OVA.720p.RAWRip.x264-GRP")
	if r.Type != TypeAnime {
		t.Errorf("Type = %v, want Anime", r.Type)
	}
	if r.Episode != "5" {
		t.Errorf("Episode = %q, want 5", r.Episode)
	}
	if r.Title != "Series Name" {
		t.Errorf("Title = %q, want %q", r.Title, "Series Name")
	}
}

func TestParseBookware(t *testing.T) {
	r := Parse("Udemy.Go.Masterclass.2023.Tutorial-GRP")
	if r.Type != TypeBookware {
		t.Errorf("Type = %v, want Bookware", r.Type)
	}
	if len(r.Flags) != 0 {
		t.Errorf("Flags = %v, want none on bookware", r.Flags)
	}
}

func TestParseFont(t *testing.T) {
	r := Parse("Helvetica.Neue.Complete.FONT-GRP")
	if r.Type != TypeFont {
		t.Errorf("Type = %v, want Font", r.Type)
	}
	if r.Title != "Helvetica Neue" {
		t.Errorf("Title = %q, want %q", r.Title, "Helvetica Neue")
	}
}

func TestParseCountry(t *testing.T) {
	r := Parse("Show.Name.US.S01E03.720p.HDTV.x264-GRP")
	if r.Country != "US" {
		t.Errorf("Country = %q, want US", r.Country)
	}
	if r.Title != "Show Name" {
		t.Errorf("Title = %q, want %q", r.Title, "Show Name")
	}
}

func TestParseCountryPhraseKept(t *testing.T) {
	// "of US" reads as part of the title, not a country tag.
	r := Parse("The.Best.of.US.S01E01.720p.HDTV.x264-GRP")
	if r.Country != "" {
		t.Errorf("Country = %q, want empty", r.Country)
	}
}

func TestParseTelesyncCaseSensitive(t *testing.T) {
	r := Parse("Some.Movie.2024.TS.x264-GRP")
	if r.Source != "Telesync" {
		t.Errorf("Source = %q, want Telesync", r.Source)
	}
	r = Parse("some.movie.2024.ts.x264-grp")
	if r.Source != "" {
		t.Errorf("Source = %q, want empty for lowercase ts", r.Source)
	}
}

func TestParseAudioMulti(t *testing.T) {
	r := Parse("Movie.Title.2024.1080p.BluRay.DTS.AC3.x264-GRP")
	want := []string{"DTS", "AC3"}
	if !reflect.DeepEqual(r.Audio, want) {
		t.Errorf("Audio = %v, want %v", r.Audio, want)
	}
}

func TestParseLanguage(t *testing.T) {
	r := Parse("Movie.Title.2024.German.1080p.BluRay.x264-GRP")
	if !r.HasAttribute(AttrLanguage, "de") {
		t.Errorf("Languages = %v, want German detected", r.Languages)
	}
}

func TestParseNoGroup(t *testing.T) {
	r := Parse("Some.Random.Name")
	if r.Group != NoGroup {
		t.Errorf("Group = %q, want %q", r.Group, NoGroup)
	}
	if r.Type != TypeMovie {
		t.Errorf("Type = %v, want Movie default", r.Type)
	}
	if r.Title != "Some Random Name" {
		t.Errorf("Title = %q, want %q", r.Title, "Some Random Name")
	}
}

func TestParseTrailingYearNotGroup(t *testing.T) {
	r := Parse("Artist-Album-FLAC-2020")
	if r.Group != NoGroup {
		t.Errorf("Group = %q, want %q", r.Group, NoGroup)
	}
}

func TestParseWithHint(t *testing.T) {
	r := ParseWithHint("Ambiguous.Release.Name", "TV-Shows")
	if r.Type != TypeTV {
		t.Errorf("Type = %v, want TV from section hint", r.Type)
	}
	r = ParseWithHint("Ambiguous.Release.Name", "")
	if r.Type != TypeMovie {
		t.Errorf("Type = %v, want Movie without hint", r.Type)
	}
}

func TestParseExtensionTrimmed(t *testing.T) {
	r := Parse("Some.Movie.2020.1080p.BluRay.x264-GRP.mkv")
	if r.Group != "GRP" {
		t.Errorf("Group = %q, want GRP", r.Group)
	}
	if r.Raw != "Some.Movie.2020.1080p.BluRay.x264-GRP.mkv" {
		t.Errorf("Raw = %q, extension must stay on the raw name", r.Raw)
	}
}

func TestParseDeterministic(t *testing.T) {
	names := []string{
		"Show.Name.S02E05.720p.HDTV.x264-GRP",
		"VA-Greatest_Hits-2CD-FLAC-2020-GRP",
		"Cool.App.v2.5.1.WinAll.Incl.Keygen-GRP",
	}
	for _, name := range names {
		a, b := Parse(name), Parse(name)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Parse(%q) not deterministic:\n%+v\n%+v", name, a, b)
		}
	}
}

func TestEpisodeDiscExclusive(t *testing.T) {
	names := []string{
		"Show.Name.S02E05.720p.HDTV.x264-GRP",
		"Artist-Album_Name-CD2-FLAC-2021-GRP",
	}
	for _, name := range names {
		r := Parse(name)
		if r.Episode != "" && r.Disc != 0 {
			t.Errorf("Parse(%q): episode %q and disc %d both set", name, r.Episode, r.Disc)
		}
	}
}

func TestHasAttribute(t *testing.T) {
	r := Parse("Some.Movie.2020.1080p.BluRay.x264-GROUP")
	if !r.HasAttribute(AttrSource, "bluray") {
		t.Error("HasAttribute(source, bluray) = false, want case-insensitive match")
	}
	if r.HasAttribute(AttrSource, "WEB") {
		t.Error("HasAttribute(source, WEB) = true, want false")
	}
	if !r.HasAttribute(AttrYear, "2020") {
		t.Error("HasAttribute(year, 2020) = false")
	}
}

func TestReleaseString(t *testing.T) {
	r := Parse("Show.Name.S02E05.720p.HDTV.x264-GRP")
	s := r.String()
	for _, want := range []string{"Show Name", "TV", "S02", "E5", "GRP"} {
		if !containsStr(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func containsStr(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
