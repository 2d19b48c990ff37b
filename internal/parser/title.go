package parser

import (
	"regexp"
	"strings"
)

// tvTitleRe claims everything before the first season/episode token.
var tvTitleRe = regexp.MustCompile(
	`(?i)^(.+?)[._(-]+(?:s\d{1,3}[._-]?(?:e\d{1,4}(?:[._-]?e\d{1,4})*)?|\d{1,2}x\d{1,4}|(?:ep?|episode|folge)[._-]?\d{1,4}|(?:season|staffel|series)[._-]?\d{1,3})`)

var shortNumericRe = regexp.MustCompile(`^\d{1,3}(?:-\d{1,3})?$`)

// parseTitle picks the grammar for the already-decided type and walks the
// fallback chain when it comes up empty: dated pattern, general movie
// pattern, everything before the first neutralized token, and as a last
// resort the first delimiter-free run of characters.
func (ru *run) parseTitle() {
	base := ru.baseName()

	var title, extra string
	switch ru.rec.Type {
	case TypeMusic, TypeMusicVideo:
		title, extra = ru.titleDashed(base, "-", false)
	case TypeABook:
		title, extra = ru.titleDashed(base, " ", false)
	case TypeEbook:
		title, extra = ru.titleDashed(base, " - ", true)
	case TypeGame:
		title = firstChunk(ru.strip(base,
			AttrDevice, AttrOS, AttrResolution, AttrVersion, AttrDisc, AttrLanguage, AttrSource))
	case TypeApp:
		title = firstChunk(ru.strip(base, AttrDevice, AttrOS, AttrResolution, AttrVersion))
	case TypeTV, TypeSports, TypeDocu, TypeAnime:
		title, extra = ru.titleTV(base)
	case TypeXXX:
		title, extra = ru.titleXXX(base)
	case TypeFont, TypeBookware:
		title = firstChunk(ru.stripAll(base))
	default:
		title, extra = ru.titleMovie(base)
	}

	if title == "" {
		title, extra = ru.titleDated(base)
	}
	if title == "" {
		title, _ = ru.titleAnchored(base)
	}
	if title == "" {
		title = firstChunk(ru.stripAll(base))
	}
	if title == "" {
		title = firstRun(ru.name)
	}

	ru.rec.Title = sanitizeText(title, ru.rec.Type)
	if extra != "" {
		extra = sanitizeText(extra, ru.rec.Type)
	}
	if extra != "" {
		ru.rec.TitleExtra = extra
	}
}

// titleMovie: dated/sports pattern first (event-name titles carry a date),
// then the general attribute-anchored movie pattern.
func (ru *run) titleMovie(base string) (string, string) {
	if ru.rec.Date != nil {
		if title, extra := ru.titleDated(base); title != "" {
			return title, extra
		}
	}
	return ru.titleAnchored(base)
}

// titleAnchored extracts everything before the first resolved attribute
// among year, resolution, source, format and audio. The template compiler
// substitutes the recognition patterns of the values actually found, so
// the anchor never matches text that belongs to the title.
func (ru *run) titleAnchored(base string) (string, string) {
	var alts []string
	for _, a := range []Attribute{AttrYear, AttrResolution, AttrSource, AttrFormat, AttrAudio} {
		// A year inherited from the date has no standalone token to anchor on.
		if a == AttrYear {
			if len(ru.tokens[AttrYear]) == 0 {
				continue
			}
		} else if len(ru.rec.attributeValues(a)) == 0 {
			continue
		}
		alts = append(alts, "%"+a.String()+"%")
	}
	if len(alts) == 0 {
		return "", ""
	}
	re := compile(ru.compileTemplate(`(?i)^(.+?)[._(-]+(?:` + strings.Join(alts, "|") + `)`))
	if re == nil {
		return "", ""
	}
	m := re.FindStringSubmatch(base)
	if m == nil {
		return "", ""
	}
	return m[1], ""
}

// titleDated splits on the literal date (or year) token that resolved
// earlier: text before is the event/title, text after — once every other
// known token is neutralized — the specific event.
func (ru *run) titleDated(base string) (string, string) {
	anchors := ru.tokens[AttrDate]
	if len(anchors) == 0 {
		anchors = ru.tokens[AttrYear]
	}
	if len(anchors) == 0 {
		return "", ""
	}
	quoted := make([]string, len(anchors))
	for i, a := range anchors {
		quoted[i] = regexp.QuoteMeta(a)
	}
	re := compile(`(?i)^(.+?)[._(-]+(?:` + strings.Join(quoted, "|") + `)[._)-]*(.*)$`)
	if re == nil {
		return "", ""
	}
	m := re.FindStringSubmatch(base)
	if m == nil {
		return "", ""
	}
	return m[1], firstChunk(ru.stripAll(m[2]))
}

// titleTV: title up to the season/episode token, then an episode subtitle
// from the further-stripped remainder. A short numeric "subtitle" that
// just repeats the episode number is noise from ranged episodes; drop it.
func (ru *run) titleTV(base string) (string, string) {
	cleaned := ru.strip(base, AttrOS, AttrDevice)
	loc := tvTitleRe.FindStringSubmatchIndex(cleaned)
	if loc == nil {
		return ru.titleDated(base)
	}
	title := cleaned[loc[2]:loc[3]]
	sub := firstChunk(ru.stripAll(cleaned[loc[1]:]))
	if shortNumericRe.MatchString(sub) && ru.rec.Episode != "" {
		sub = ""
	}
	return title, sub
}

// titleDashed handles the Artist-Title-... convention shared by music,
// music video, audiobook and ebook names. The first dash segment is the
// title; later segments join the extra field. For music, a segment counts
// as a name part only when it is purely numeric, carries an underscore,
// or carries a parenthesis; anything else is a leftover tag. Book titles
// are dot-separated prose, so ebooks admit every surviving segment.
func (ru *run) titleDashed(base, joiner string, admitAll bool) (string, string) {
	work := ru.strip(base,
		AttrFlags, AttrSource, AttrFormat, AttrResolution, AttrAudio,
		AttrLanguage, AttrYear, AttrDate, AttrVersion, AttrDisc)
	segs := strings.Split(work, "-")
	title := trimDelims(segs[0])
	if strings.Contains(title, filler) {
		title = strings.TrimSpace(strings.ReplaceAll(title, filler, " "))
	}
	var extras []string
	for _, seg := range segs[1:] {
		seg = trimDelims(seg)
		if seg == "" || strings.Contains(seg, filler) {
			continue
		}
		if admitAll || isNumeric(seg) || strings.Contains(seg, "_") || strings.Contains(seg, "(") {
			extras = append(extras, seg)
		}
	}
	return title, strings.Join(extras, joiner)
}

// titleXXX: with an episode the name behaves like TV; with a date the
// publisher sits before the date and the scene name after it; otherwise
// the first two surviving chunks are publisher and release name.
func (ru *run) titleXXX(base string) (string, string) {
	if ru.rec.Episode != "" {
		return ru.titleTV(base)
	}
	if ru.rec.Date != nil {
		if title, extra := ru.titleDated(base); title != "" {
			return title, extra
		}
	}
	parts := chunks(ru.stripAll(base))
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], parts[1]
	}
}

// stripAll neutralizes every resolved category, leaving only text no pass
// has claimed — which is, by definition, the title material.
func (ru *run) stripAll(s string) string {
	return ru.strip(s,
		AttrFlags, AttrSource, AttrFormat, AttrResolution, AttrAudio,
		AttrLanguage, AttrOS, AttrDevice, AttrVersion, AttrYear, AttrDate,
		AttrEpisode, AttrSeason, AttrDisc)
}

// firstChunk returns the text before the first neutralized token.
func firstChunk(s string) string {
	if i := strings.Index(s, filler); i >= 0 {
		s = s[:i]
	}
	return trimDelims(s)
}

// chunks splits on neutralized tokens, dropping empties.
func chunks(s string) []string {
	var out []string
	for _, part := range strings.Split(s, filler) {
		if part = trimDelims(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

var firstRunRe = regexp.MustCompile(`[A-Za-z0-9]+`)

// firstRun is the absolute last resort: the first delimiter-free run.
func firstRun(s string) string {
	return firstRunRe.FindString(s)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseCountry applies only to TV: a trailing two-letter country token is
// moved off the title unless the word before it reads as part of a phrase.
func (ru *run) parseCountry() {
	if ru.rec.Type != TypeTV {
		return
	}
	words := strings.Fields(ru.rec.Title)
	if len(words) < 2 {
		return
	}
	last := words[len(words)-1]
	if !isCountryCode(last) {
		return
	}
	switch strings.ToLower(words[len(words)-2]) {
	case "the", "of", "with", "and", "between", "to":
		return
	}
	ru.rec.Country = strings.ToUpper(last)
	ru.rec.Title = strings.Join(words[:len(words)-1], " ")
}

var countryCodes = map[string]bool{
	"US": true, "UK": true, "AU": true, "CA": true, "NZ": true,
}

func isCountryCode(word string) bool {
	return word == strings.ToUpper(word) && countryCodes[strings.ToUpper(word)]
}
