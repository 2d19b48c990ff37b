package parser

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// normalize reconciles attributes against the decided type. Each rule
// removes or rewrites a value that cannot be right for that type; the
// rules are independent, so their order does not matter.
func (ru *run) normalize() {
	rec := ru.rec
	switch rec.Type {
	case TypeMovie, TypeTV:
		if strings.EqualFold(rec.Source, rec.Format) && rec.Resolution != "" {
			rec.Format = ""
		}
	}
	switch rec.Type {
	case TypeMovie, TypeTV, TypeXXX:
		// A DVD source with neither resolution nor format is a disc image.
		if strings.EqualFold(rec.Source, "DVD") && rec.Resolution == "" && rec.Format == "" {
			rec.Format = "DVDR"
			rec.Source = ""
		}
	}
	switch rec.Type {
	case TypeMovie:
		rec.Version = ""
	case TypeApp:
		rec.Audio = nil
		if rec.Source != "" && containsWord(rec.Title, rec.Source) {
			rec.Source = ""
		}
	case TypeGame:
		rec.Flags = removeFlag(rec.Flags, "Anime")
	case TypeEbook:
		if strings.EqualFold(rec.Format, "Hybrid") {
			rec.Flags = removeFlag(rec.Flags, "Hybrid")
		}
	case TypeMusic:
		rec.Episode = ""
		rec.Season = 0
	case TypeBookware:
		rec.Flags = nil
	}
	if rec.Type != TypeApp && rec.Type != TypeGame {
		rec.Flags = removeFlag(rec.Flags, "Trainer")
	}
}

func removeFlag(flags []string, name string) []string {
	out := flags[:0]
	for _, f := range flags {
		if !strings.EqualFold(f, name) {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func containsWord(text, word string) bool {
	re := compile(`(?i)(?:^|\s)` + regexp.QuoteMeta(word) + `(?:\s|$)`)
	return re != nil && re.MatchString(text)
}

var (
	spaceRe    = regexp.MustCompile(`\s+`)
	featRe     = regexp.MustCompile(`(?i)\b(feat|vol)(\s|$)`)
	vsRe       = regexp.MustCompile(`(?i)\b(vs)(\s|$)`)
	tldRe      = regexp.MustCompile(`(?i) (com|net|org)$`)
	hasLowerRe = regexp.MustCompile(`[a-z]`)
	titleCaser = cases.Title(language.English)
)

// sanitizeText turns a raw title fragment into display text. The function
// is idempotent: running it on its own output changes nothing, which the
// tests rely on.
func sanitizeText(text string, typ Type) string {
	text = strings.ReplaceAll(text, filler, " ")
	text = strings.TrimRight(text, "-")
	text = strings.NewReplacer("_", " ", ".", " ").Replace(text)
	text = spaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	// SHOUTING multi-word titles read better in title case. Single words
	// stay as written; they are usually acronyms or brand names.
	if strings.Contains(text, " ") && text != "" && !hasLowerRe.MatchString(text) {
		text = titleCaser.String(strings.ToLower(text))
	}

	text = featRe.ReplaceAllString(text, "$1.$2")
	if typ != TypeApp {
		text = vsRe.ReplaceAllString(text, "$1.$2")
	}
	if typ == TypeXXX {
		text = tldRe.ReplaceAllString(text, ".$1")
	}
	if text == "VA" {
		text = "Various"
	}
	return text
}
