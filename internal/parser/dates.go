package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Version tags: v1.2.3 style, plus build numbers.
var versionRes = []string{
	`(?i)[._-]v(?:ersion[._-]?)?(\d+(?:[._]\d+){0,3}[a-z]?\d*)(?:[._-]|$)`,
	`(?i)[._-]build[._-]?(\d+)(?:[._-]|$)`,
}

func (ru *run) parseVersion() {
	hay := "." + ru.name
	for _, pat := range versionRes {
		re := compile(pat)
		m := re.FindStringSubmatch(hay)
		if m == nil {
			continue
		}
		ru.rec.Version = strings.ReplaceAll(m[1], "_", ".")
		ru.remember(AttrVersion, trimDelims(m[0]))
		return
	}
}

// Episode tokens. S01E02 styles first, then 1x02, then spelled-out forms.
// The working string has os/device already neutralized so phone-model
// tokens (S60, N7650) cannot masquerade as episode or season numbers.
var episodeRes = []string{
	`(?i)[._-]s\d{1,3}[._-]?e(\d{1,4})((?:[._-]?e\d{1,4})*)(?:[._-]|$)`,
	`(?i)[._-]\d{1,2}x(\d{1,4})(?:[._-]|$)`,
	`(?i)[._-](?:ep?|episode|folge)[._-]?(\d{1,4})([._-]?-[._-]?(?:ep?)?\d{1,4})?(?:[._-]|$)`,
}

func (ru *run) parseEpisode() {
	working := ru.strip(ru.name, AttrOS, AttrDevice)
	hay := "." + working
	for _, pat := range episodeRes {
		re := compile(pat)
		m := re.FindStringSubmatch(hay)
		if m == nil {
			continue
		}
		episode := trimZeros(m[1])
		if len(m) > 2 && m[2] != "" {
			if last := lastNumber(m[2]); last != "" && last != episode {
				episode = episode + "-" + last
			}
		}
		ru.rec.Episode = episode
		ru.remember(AttrEpisode, trimDelims(m[0]))
		return
	}
	ru.parseDisc(working)
}

// parseDisc runs only when no episode resolved; episode and disc are
// mutually exclusive on the record.
func (ru *run) parseDisc(working string) {
	re := compile(`(?i)[._-](?:cd|dis[ck])[._-]?(\d{1,2})(?:[._-]|$)`)
	m := re.FindStringSubmatch("." + working)
	if m == nil {
		return
	}
	if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
		ru.rec.Disc = n
		ru.remember(AttrDisc, trimDelims(m[0]))
	}
}

var seasonRes = []string{
	`(?i)[._-]s(\d{1,3})(?:[._-]?e\d|[._-]|$)`,
	`(?i)[._-](?:season|staffel|series)[._-]?(\d{1,3})(?:[._-]|$)`,
	`(?i)[._-](\d{1,2})x\d{1,4}(?:[._-]|$)`,
}

func (ru *run) parseSeason() {
	working := ru.strip(ru.name, AttrOS, AttrDevice)
	hay := "." + working
	for _, pat := range seasonRes {
		re := compile(pat)
		m := re.FindStringSubmatch(hay)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			ru.rec.Season = n
			ru.remember(AttrSeason, trimDelims(m[0]))
		}
		return
	}
}

// Calendar dates. Order encodes preference; the day-first form is kept as
// written when day and month are both <= 12 — genuinely ambiguous, the
// date could be wrong, and no heuristic here can fix that.
func (ru *run) parseDate() {
	months := ru.kb.MonthAlternation()
	hay := "." + ru.name

	type shape struct {
		pattern string
		order   string // y/m/d positions of the three capture groups
	}
	shapes := []shape{
		{`(?:^|[._-])((?:19|20)\d{2})[._-](\d{1,2})[._-](\d{1,2})(?:[._-]|$)`, "ymd"},
		{`(?:^|[._-])(\d{1,2})[._-](\d{1,2})[._-]((?:19|20)\d{2})(?:[._-]|$)`, "dmy"},
		{`(?i)(?:^|[._-])(\d{1,2})(?:st|nd|rd|th)?[._-]?(` + months + `)[._-]?((?:19|20)\d{2})(?:[._-]|$)`, "dny"},
		{`(?i)(?:^|[._-])(` + months + `)[._-]?(\d{1,2})(?:st|nd|rd|th)?[._-]?((?:19|20)\d{2})(?:[._-]|$)`, "ndy"},
		{`(?:^|[._-])(\d{2})[._-](\d{2})[._-](\d{2})(?:[._-]|$)`, "dmy2"},
	}

	for _, s := range shapes {
		re := compile(s.pattern)
		if re == nil {
			continue
		}
		m := re.FindStringSubmatch(hay)
		if m == nil {
			continue
		}
		var year, month, day int
		switch s.order {
		case "ymd":
			year, month, day = atoi(m[1]), atoi(m[2]), atoi(m[3])
		case "dmy":
			day, month, year = atoi(m[1]), atoi(m[2]), atoi(m[3])
			if month > 12 && day <= 12 {
				day, month = month, day
			}
		case "dny":
			day, month, year = atoi(m[1]), ru.kb.MonthNumber(m[2]), atoi(m[3])
		case "ndy":
			month, day, year = ru.kb.MonthNumber(m[1]), atoi(m[2]), atoi(m[3])
		case "dmy2":
			day, month, year = atoi(m[1]), atoi(m[2]), pivotYear(atoi(m[3]))
			if month > 12 && day <= 12 {
				day, month = month, day
			}
		}
		if !validDate(year, month, day) {
			ru.rec.Warnings = append(ru.rec.Warnings,
				fmt.Sprintf("ambiguous or out-of-range date token %q ignored", trimDelims(m[0])))
			return
		}
		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		ru.rec.Date = &d
		ru.remember(AttrDate, trimDelims(m[0]))
		return
	}
}

func validDate(year, month, day int) bool {
	if year < 1900 || year > 2099 || month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return d.Day() == day && int(d.Month()) == month
}

// pivotYear expands a two-digit year; <= 39 lands in the 2000s.
func pivotYear(yy int) int {
	if yy <= 39 {
		return 2000 + yy
	}
	return 1900 + yy
}

var yearRe = regexp.MustCompile(`(?i)(?:^|[._(-])((?:19|20)(?:\d{2}|\dx|xx))(?:[._)-]|$)`)

// parseYear picks the last year-like token; titles containing years put
// the release year after them. A partially redacted year (20xx) is kept
// as raw text. When no standalone token matches, the resolved date's year
// stands in.
func (ru *run) parseYear() {
	hay := "." + ru.name
	// Scan resumes right after the year digits so back-to-back years
	// ("2049.2017") both count; the last one wins.
	var year string
	for pos := 0; pos < len(hay); {
		m := yearRe.FindStringSubmatchIndex(hay[pos:])
		if m == nil {
			break
		}
		year = hay[pos+m[2] : pos+m[3]]
		pos += m[3]
	}
	if year != "" {
		ru.rec.Year = year
		ru.remember(AttrYear, year)
		return
	}
	if ru.rec.Date != nil {
		ru.rec.Year = strconv.Itoa(ru.rec.Date.Year())
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func trimZeros(s string) string {
	t := strings.TrimLeft(s, "0")
	if t == "" {
		return "0"
	}
	return t
}

func lastNumber(s string) string {
	re := compile(`(\d+)[^\d]*$`)
	if m := re.FindStringSubmatch(s); m != nil {
		return trimZeros(m[1])
	}
	return ""
}

func trimDelims(s string) string {
	return strings.Trim(s, "._-()")
}
