// Package taxonomy holds the static knowledge base for release-name parsing:
// ordered tables mapping canonical attribute keys to the regexp fragments
// that recognize them, plus the implication sets the type classifier
// consults. The tables are built once and must be treated as read-only;
// callers that need custom entries clone the set first.
package taxonomy

import (
	"regexp"
	"strings"
)

// Entry maps one canonical attribute key to its surface patterns.
// Patterns are regexp fragments without anchors or flags; the matcher
// supplies delimiters and case folding. Table order is significant:
// earlier entries win ties, so more specific keys come first.
type Entry struct {
	Key      string
	Patterns []string
}

// Language maps a language code to its display name and surface patterns.
type Language struct {
	Code     string
	Name     string
	Patterns []string
}

// Hint maps a content type tag to section-name patterns. Hints are the
// classification fallback when nothing in the filename itself decides.
type Hint struct {
	Type     string
	Patterns []string
}

// Set is the complete knowledge base handed to every parse call.
type Set struct {
	Flags       []Entry
	Sources     []Entry
	Formats     []Entry
	Resolutions []Entry
	Audio       []Entry
	Devices     []Entry
	Systems     []Entry // operating systems
	Languages   []Language
	Months      []Entry // keys "1".."12"
	Sports      []Entry
	Bookware    []string // vendor prefixes for bookware/tutorial releases
	GroupsApp   []string
	GroupsGame  []string
	Hints       []Hint

	// Implication sets. Values reference keys in the tables above.
	FlagsMovie   []string
	FlagsApp     []string
	FlagsGame    []string
	FlagsAnime   []string
	FlagsEbook   []string
	FlagsFont    []string
	FlagsMusic   []string
	FlagsXXX     []string
	SourcesTV    []string
	SourcesMV    []string
	SourcesMusic []string
	SourcesMovie []string
	FormatsVideo []string
	FormatsMusic []string
	FormatsEbook []string
}

var defaultSet = &Set{
	Flags:       flags,
	Sources:     sources,
	Formats:     formats,
	Resolutions: resolutions,
	Audio:       audio,
	Devices:     devices,
	Systems:     systems,
	Languages:   languages,
	Months:      months,
	Sports:      sports,
	Bookware:    bookware,
	GroupsApp:   groupsApp,
	GroupsGame:  groupsGame,
	Hints:       hints,

	FlagsMovie:   []string{"Festival", "STV", "Theatrical", "Line Dubbed", "Mic Dubbed", "TV Dubbed"},
	FlagsApp:     []string{"Cracked", "Regged", "Keygen", "Crackfix", "Portable"},
	FlagsGame:    []string{"DLC", "Trainer", "GOG"},
	FlagsAnime:   []string{"OVA", "ONA", "OAD", "Anime"},
	FlagsEbook:   []string{"eBook", "Magazine", "Comic"},
	FlagsFont:    []string{"FONT"},
	FlagsMusic:   []string{"OST", "Bootleg", "Promo"},
	FlagsXXX:     []string{"XXX", "Imageset"},
	SourcesTV:    []string{"HDTV", "PDTV", "SDTV", "SAT", "DSR"},
	SourcesMV:    []string{"MBluray", "MDVDR", "DDC"},
	SourcesMusic: []string{"CD", "Vinyl", "Tape", "Radio", "Line", "Web Single"},
	SourcesMovie: []string{"CAM", "Telesync", "Telecine", "Screener", "Workprint", "R5"},
	FormatsVideo: []string{"x264", "x265", "h264", "h265", "HEVC", "AVC", "XviD", "DivX", "MPEG2", "VCD", "SVCD", "DVDR", "WMV"},
	FormatsMusic: []string{"MP3", "FLAC", "WAV", "OGG"},
	FormatsEbook: []string{"EPUB", "PDF", "MOBI", "AZW", "CBR", "CBZ", "Hybrid"},
}

// Default returns the process-wide knowledge base. The returned set is
// shared; do not mutate it.
func Default() *Set {
	return defaultSet
}

// Clone returns a deep copy of the set so callers can extend tables without
// touching the shared default.
func (s *Set) Clone() *Set {
	c := *s
	c.Flags = cloneEntries(s.Flags)
	c.Sources = cloneEntries(s.Sources)
	c.Formats = cloneEntries(s.Formats)
	c.Resolutions = cloneEntries(s.Resolutions)
	c.Audio = cloneEntries(s.Audio)
	c.Devices = cloneEntries(s.Devices)
	c.Systems = cloneEntries(s.Systems)
	c.Languages = append([]Language(nil), s.Languages...)
	c.Months = cloneEntries(s.Months)
	c.Sports = cloneEntries(s.Sports)
	c.Bookware = append([]string(nil), s.Bookware...)
	c.GroupsApp = append([]string(nil), s.GroupsApp...)
	c.GroupsGame = append([]string(nil), s.GroupsGame...)
	c.Hints = append([]Hint(nil), s.Hints...)
	return &c
}

func cloneEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = Entry{Key: e.Key, Patterns: append([]string(nil), e.Patterns...)}
	}
	return out
}

// Find returns the entry for key, matching case-insensitively.
func Find(entries []Entry, key string) (Entry, bool) {
	for _, e := range entries {
		if strings.EqualFold(e.Key, key) {
			return e, true
		}
	}
	return Entry{}, false
}

// PatternFor joins every surface pattern registered for the given keys into
// a single alternation. Keys with no table entry are skipped; an empty
// result means none of the keys are known.
func PatternFor(entries []Entry, keys ...string) string {
	var parts []string
	for _, k := range keys {
		if e, ok := Find(entries, k); ok {
			parts = append(parts, e.Patterns...)
		}
	}
	return strings.Join(parts, "|")
}

// LanguageByCode returns the language entry for a code.
func (s *Set) LanguageByCode(code string) (Language, bool) {
	for _, l := range s.Languages {
		if strings.EqualFold(l.Code, code) {
			return l, true
		}
	}
	return Language{}, false
}

// LanguagePattern joins the surface patterns for the given language codes.
func (s *Set) LanguagePattern(codes ...string) string {
	var parts []string
	for _, c := range codes {
		if l, ok := s.LanguageByCode(c); ok {
			parts = append(parts, l.Patterns...)
		}
	}
	return strings.Join(parts, "|")
}

// MonthPattern returns the surface pattern for a month number (1-12).
func (s *Set) MonthPattern(month int) string {
	for _, e := range s.Months {
		if e.Key == monthKeys[month] {
			return strings.Join(e.Patterns, "|")
		}
	}
	return ""
}

// MonthAlternation returns one alternation covering every month name.
func (s *Set) MonthAlternation() string {
	var parts []string
	for _, e := range s.Months {
		parts = append(parts, e.Patterns...)
	}
	return strings.Join(parts, "|")
}

// MonthNumber resolves a matched month token back to its number, 0 when
// the token is unknown.
func (s *Set) MonthNumber(token string) int {
	for i, e := range s.Months {
		for _, p := range e.Patterns {
			if matchToken(p, token) {
				return i + 1
			}
		}
	}
	return 0
}

var monthKeys = [...]string{"", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}

func matchToken(pattern, token string) bool {
	re, err := regexp.Compile(`(?i)^(?:` + pattern + `)$`)
	if err != nil {
		return false
	}
	return re.MatchString(token)
}

// Contains reports whether list holds value, case-insensitively.
func Contains(list []string, value string) bool {
	for _, v := range list {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}
