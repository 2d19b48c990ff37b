package parser

import (
	"regexp"
	"strings"
)

// strictTemplates makes an unresolved placeholder panic instead of
// degrading to a never-matching group. Tests enable it; production keeps
// it off so a sequencing bug degrades instead of crashing a parse.
var strictTemplates = false

// neverMatch is substituted for unresolved placeholders in non-strict
// mode: \b\B cannot both hold, so the branch is dead without poisoning
// the surrounding alternation the way an empty group would.
const neverMatch = `\b\B`

var placeholderRe = regexp.MustCompile(`%([a-z]+)%`)

// compileTemplate substitutes each %category% placeholder in tmpl with the
// recognition pattern of that category's already-resolved value(s). A
// placeholder for an unresolved category is a sequencing error on the
// caller's part, not a runtime condition.
func (ru *run) compileTemplate(tmpl string) string {
	return placeholderRe.ReplaceAllStringFunc(tmpl, func(ph string) string {
		name := strings.Trim(ph, "%")
		attr, ok := attrFromName(name)
		if !ok {
			if strictTemplates {
				panic("parser: unknown template placeholder " + ph)
			}
			return neverMatch
		}
		pat := ru.placeholderPattern(attr)
		if pat == "" {
			if strictTemplates {
				panic("parser: unresolved template placeholder " + ph)
			}
			return neverMatch
		}
		return "(?:" + pat + ")"
	})
}

func attrFromName(name string) (Attribute, bool) {
	for a, n := range attrNames {
		if n == name {
			return a, true
		}
	}
	return 0, false
}

// placeholderPattern builds the substitution pattern for one category.
// Most categories substitute the alternation of their resolved values'
// recognition patterns; two get extra structure:
//
//   - date expands to a non-capturing calendar-date pattern seeded with the
//     resolved month name, alongside the literal token that matched;
//   - os and device take an optional "for <tag>" prefix to cover legacy
//     tagging ("...for.WinAll...").
func (ru *run) placeholderPattern(attr Attribute) string {
	switch attr {
	case AttrDate:
		if ru.rec.Date == nil {
			return ""
		}
		parts := []string{
			`(?:\d{1,2}(?:st|nd|rd|th)?[._-]+)?(?:` + ru.kb.MonthPattern(int(ru.rec.Date.Month())) + `)[._-]+\d{1,4}`,
			`\d{1,4}[._-]\d{1,2}[._-]\d{1,4}`,
		}
		parts = append(parts, ru.categoryPatterns(AttrDate)...)
		return strings.Join(parts, "|")
	case AttrOS, AttrDevice:
		pats := ru.categoryPatterns(attr)
		if len(pats) == 0 {
			return ""
		}
		return `(?:for[._-])?(?:` + strings.Join(pats, "|") + `)`
	default:
		pats := ru.categoryPatterns(attr)
		return strings.Join(pats, "|")
	}
}
