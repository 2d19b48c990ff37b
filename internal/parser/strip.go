package parser

import (
	"regexp"

	"github.com/Nomadcxx/sceneparse/internal/taxonomy"
)

// filler replaces matched substrings when a category is stripped from the
// working string. Keeping the surrounding delimiters intact means later
// delimiter-based matches still line up.
const filler = "##"

// strip returns a copy of working with every delimiter-bounded occurrence
// of the given categories' resolved values neutralized. Categories without
// resolved values, and values without a knowledge-base entry, are no-ops.
func (ru *run) strip(working string, attrs ...Attribute) string {
	for _, attr := range attrs {
		for _, pat := range ru.categoryPatterns(attr) {
			working = stripPattern(working, pat)
		}
	}
	return working
}

func stripPattern(working, pattern string) string {
	re := compile(`(?i)([._(-])(?:` + pattern + `)([._)-]|$)`)
	if re == nil {
		return working
	}
	// Adjacent matches share a delimiter, so one ReplaceAll pass can miss
	// the follow-up token. Iterate to a fixed point.
	for {
		next := re.ReplaceAllString(working, "${1}"+filler+"${2}")
		if next == working {
			return next
		}
		working = next
	}
}

// categoryPatterns resolves the recognition patterns for a category's
// current value(s). Table-backed categories map each value back to its
// knowledge-base patterns; positional categories (group, year, date,
// episode, season, disc, version) strip the literal token they matched.
func (ru *run) categoryPatterns(attr Attribute) []string {
	kb := ru.kb
	var out []string
	add := func(table []taxonomy.Entry, keys ...string) {
		for _, k := range keys {
			if p := taxonomy.PatternFor(table, k); p != "" {
				out = append(out, p)
			}
		}
	}
	switch attr {
	case AttrFlags:
		add(kb.Flags, ru.rec.Flags...)
	case AttrSource:
		add(kb.Sources, ru.rec.attributeValues(AttrSource)...)
	case AttrFormat:
		add(kb.Formats, ru.rec.attributeValues(AttrFormat)...)
	case AttrResolution:
		add(kb.Resolutions, ru.rec.attributeValues(AttrResolution)...)
	case AttrAudio:
		add(kb.Audio, ru.rec.Audio...)
	case AttrDevice:
		add(kb.Devices, ru.rec.attributeValues(AttrDevice)...)
	case AttrOS:
		add(kb.Systems, ru.rec.attributeValues(AttrOS)...)
	case AttrLanguage:
		for _, l := range ru.rec.Languages {
			if p := kb.LanguagePattern(l.Code); p != "" {
				out = append(out, p)
			}
		}
	default:
		for _, tok := range ru.tokens[attr] {
			out = append(out, regexp.QuoteMeta(tok))
		}
	}
	return out
}
