package parser

import "testing"

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		in   string
		typ  Type
		want string
	}{
		{"Some.Movie.Title", TypeMovie, "Some Movie Title"},
		{"Snake_Case_Title", TypeMusic, "Snake Case Title"},
		{"SHOUTY.MOVIE.TITLE", TypeMovie, "Shouty Movie Title"},
		{"NASA", TypeMovie, "NASA"},
		{"Artist feat Other", TypeMusic, "Artist feat. Other"},
		{"Album vol 2", TypeMusic, "Album vol. 2"},
		{"Band vs Band", TypeMusic, "Band vs. Band"},
		{"Tool vs Manager", TypeApp, "Tool vs Manager"},
		{"Site com", TypeXXX, "Site.com"},
		{"Site com", TypeMovie, "Site com"},
		{"VA", TypeMusic, "Various"},
		{"Trailing---", TypeMovie, "Trailing"},
		{"  spaced   out  ", TypeMovie, "spaced out"},
	}
	for _, tt := range tests {
		if got := sanitizeText(tt.in, tt.typ); got != tt.want {
			t.Errorf("sanitizeText(%q, %v) = %q, want %q", tt.in, tt.typ, got, tt.want)
		}
	}
}

func TestSanitizeTextIdempotent(t *testing.T) {
	inputs := []struct {
		in  string
		typ Type
	}{
		{"Some.Movie.Title", TypeMovie},
		{"SHOUTY.MOVIE.TITLE", TypeMovie},
		{"Artist feat Other", TypeMusic},
		{"Site com", TypeXXX},
		{"VA", TypeMusic},
	}
	for _, tt := range inputs {
		once := sanitizeText(tt.in, tt.typ)
		twice := sanitizeText(once, tt.typ)
		if once != twice {
			t.Errorf("sanitizeText(%q) not idempotent: %q then %q", tt.in, once, twice)
		}
	}
}

func TestNormalizeSourceFormatOverlap(t *testing.T) {
	// A source echoing the format clears the format for movies and TV;
	// XXX only gets the DVD disc-image rewrite.
	for _, typ := range []Type{TypeMovie, TypeTV} {
		ru := testRun()
		ru.rec.Type = typ
		ru.rec.Source = "WEB"
		ru.rec.Format = "WEB"
		ru.rec.Resolution = "720p"
		ru.normalize()
		if ru.rec.Format != "" {
			t.Errorf("%v: Format = %q, want cleared", typ, ru.rec.Format)
		}
	}

	ru := testRun()
	ru.rec.Type = TypeXXX
	ru.rec.Source = "WEB"
	ru.rec.Format = "WEB"
	ru.rec.Resolution = "720p"
	ru.normalize()
	if ru.rec.Format != "WEB" {
		t.Errorf("XXX: Format = %q, want untouched", ru.rec.Format)
	}
}

func TestNormalizeMovieClearsVersion(t *testing.T) {
	// A movie cut tag misread as a version must not survive normalization.
	r := Parse("Some.Movie.2020.V2.1080p.BluRay.x264-GRP")
	if r.Type == TypeMovie && r.Version != "" {
		t.Errorf("Version = %q, want empty on movies", r.Version)
	}
}

func TestNormalizeBookwareClearsFlags(t *testing.T) {
	r := Parse("Pluralsight.Advanced.Testing.Tutorial-GRP")
	if r.Type != TypeBookware {
		t.Fatalf("Type = %v, want Bookware", r.Type)
	}
	if len(r.Flags) != 0 {
		t.Errorf("Flags = %v, want none", r.Flags)
	}
}
