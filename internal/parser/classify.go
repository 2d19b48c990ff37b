package parser

import (
	"strings"

	"github.com/Nomadcxx/sceneparse/internal/taxonomy"
)

// classifierRule is one step of the decision cascade. Rules run in order
// and the first one that fires is terminal; the order is a contract, not a
// convenience — reordering changes results.
type classifierRule struct {
	name  string
	apply func(ru *run) (Type, bool)
}

var classifierRules = []classifierRule{
	{"bookware", func(ru *run) (Type, bool) {
		if !ru.isBookware() && !ru.rec.HasAttribute(AttrFlags, "Tutorial") {
			return 0, false
		}
		if ru.isEbookShaped() {
			return TypeEbook, true
		}
		return TypeBookware, true
	}},
	{"sports", func(ru *run) (Type, bool) {
		if !ru.isSports() {
			return 0, false
		}
		if ru.hasGameEvidence() {
			return TypeGame, true
		}
		return TypeSports, true
	}},
	{"font", func(ru *run) (Type, bool) {
		if ru.anyFlag(ru.kb.FlagsFont) {
			return TypeFont, true
		}
		return 0, false
	}},
	{"abook", func(ru *run) (Type, bool) {
		if ru.isABook() {
			return TypeABook, true
		}
		return 0, false
	}},
	{"music", func(ru *run) (Type, bool) {
		if !ru.isMusicShaped() &&
			!taxonomy.Contains(ru.kb.SourcesMusic, ru.rec.Source) &&
			!ru.anyFlag(ru.kb.FlagsMusic) {
			return 0, false
		}
		switch {
		case ru.rec.Device != "" || ru.hasGameEvidence():
			return TypeGame, true
		case ru.hasAppEvidence() ||
			(ru.rec.Version != "" && ru.rec.Source == "") ||
			ru.rec.OS != "":
			return TypeApp, true
		case ru.rec.Resolution != "" ||
			taxonomy.Contains(ru.kb.SourcesMV, ru.rec.Source) ||
			taxonomy.Contains(ru.kb.FormatsVideo, ru.rec.Format):
			return TypeMusicVideo, true
		}
		return TypeMusic, true
	}},
	{"ebook", func(ru *run) (Type, bool) {
		if ru.isEbookShaped() {
			return TypeEbook, true
		}
		return 0, false
	}},
	{"anime", func(ru *run) (Type, bool) {
		if ru.anyFlag(ru.kb.FlagsAnime) || strings.EqualFold(ru.rec.Source, "RAWRip") {
			return TypeAnime, true
		}
		return 0, false
	}},
	{"xxx", func(ru *run) (Type, bool) {
		if ru.anyFlag(ru.kb.FlagsXXX) {
			return TypeXXX, true
		}
		return 0, false
	}},
	{"musicvideo-source", func(ru *run) (Type, bool) {
		if taxonomy.Contains(ru.kb.SourcesMV, ru.rec.Source) {
			return TypeMusicVideo, true
		}
		return 0, false
	}},
	{"game-evidence", func(ru *run) (Type, bool) {
		if ru.anyFlag(ru.kb.FlagsGame) || taxonomy.Contains(ru.kb.GroupsGame, ru.rec.Group) {
			return TypeGame, true
		}
		return 0, false
	}},
	{"device", func(ru *run) (Type, bool) {
		if ru.rec.Device == "" {
			return 0, false
		}
		if ru.rec.OS == "" {
			return TypeGame, true
		}
		return TypeApp, true
	}},
	{"tv", func(ru *run) (Type, bool) {
		hasEpisode := ru.rec.Episode != "" || ru.rec.Season != 0
		if !hasEpisode && !taxonomy.Contains(ru.kb.SourcesTV, ru.rec.Source) {
			return 0, false
		}
		if ru.isMusicDated() {
			return TypeMusicVideo, true
		}
		// A TV-ish source with no episode or season is a movie rip off a
		// broadcast, not a series.
		if !hasEpisode {
			return TypeMovie, true
		}
		return TypeTV, true
	}},
	{"music-dated", func(ru *run) (Type, bool) {
		if !ru.isMusicDated() {
			return 0, false
		}
		if ru.rec.Resolution != "" {
			return TypeMusicVideo, true
		}
		return TypeMusic, true
	}},
	{"dated-tv", func(ru *run) (Type, bool) {
		if ru.rec.Date != nil && ru.rec.Resolution != "" {
			return TypeTV, true
		}
		return 0, false
	}},
	{"movie-flag", func(ru *run) (Type, bool) {
		if ru.anyFlag(ru.kb.FlagsMovie) {
			return TypeMovie, true
		}
		return 0, false
	}},
	{"music-format", func(ru *run) (Type, bool) {
		if !taxonomy.Contains(ru.kb.FormatsMusic, ru.rec.Format) {
			return 0, false
		}
		if ru.rec.Version != "" && ru.rec.Source == "" {
			return TypeApp, true
		}
		return TypeMusic, true
	}},
	{"app", func(ru *run) (Type, bool) {
		videoish := taxonomy.Contains(ru.kb.FormatsVideo, ru.rec.Format)
		if !videoish && (ru.rec.OS != "" || ru.rec.Version != "" || ru.anyFlag(ru.kb.FlagsApp)) {
			return TypeApp, true
		}
		if taxonomy.Contains(ru.kb.GroupsApp, ru.rec.Group) {
			return TypeApp, true
		}
		return 0, false
	}},
	{"movie", func(ru *run) (Type, bool) {
		if taxonomy.Contains(ru.kb.SourcesMovie, ru.rec.Source) ||
			taxonomy.Contains(ru.kb.FormatsVideo, ru.rec.Format) {
			return TypeMovie, true
		}
		if ru.rec.Resolution != "" &&
			(ru.rec.Year != "" || ru.rec.Format != "" ||
				ru.rec.HasAttribute(AttrSource, "Bluray", "DVD")) {
			return TypeMovie, true
		}
		return 0, false
	}},
}

// classify runs the cascade; when nothing fires, the external section hint
// decides, and failing that the Movie default stands.
func (ru *run) classify(section string) Type {
	for _, rule := range classifierRules {
		if t, ok := rule.apply(ru); ok {
			return t
		}
	}
	if section != "" {
		for _, h := range ru.kb.Hints {
			for _, pat := range h.Patterns {
				re := compile(`(?i)(?:^|[^a-z0-9])(?:` + pat + `)(?:[^a-z0-9]|$)`)
				if re != nil && re.MatchString(section) {
					if t, ok := TypeFromName(h.Type); ok {
						return t
					}
				}
			}
		}
	}
	return TypeMovie
}

// Structural pre-checks. These test the raw name directly instead of going
// through the generic extractor.

func (ru *run) isBookware() bool {
	pat := `(?i)^(?:` + strings.Join(ru.kb.Bookware, "|") + `)[._-]`
	re := compile(pat)
	return re != nil && re.MatchString(ru.name)
}

func (ru *run) isSports() bool {
	var parts []string
	for _, e := range ru.kb.Sports {
		parts = append(parts, e.Patterns...)
	}
	re := compile(`(?i)^(?:` + strings.Join(parts, "|") + `)[._-]`)
	return re != nil && re.MatchString(ru.name)
}

func (ru *run) isABook() bool {
	re := compile(`(?i)(?:^|[._-])a(?:udio)?[._-]?books?(?:[._-]|$)`)
	return re != nil && re.MatchString(ru.name)
}

// isMusicShaped recognizes the dash-segmented music naming convention:
// Artist-Title-...-YEAR(-GROUP).
func (ru *run) isMusicShaped() bool {
	if strings.Count(ru.name, "-") < 2 {
		return false
	}
	re := compile(`-\(?(?:19|20)\d{2}\)?(?:-[\w.&]+)?$`)
	return re != nil && re.MatchString(ru.name)
}

// isMusicDated recognizes the parenthesized-date convention used by live
// set and music video releases.
func (ru *run) isMusicDated() bool {
	re := compile(`\(\d{1,2}[._-]\d{1,2}[._-](?:19|20)\d{2}\)`)
	return re != nil && re.MatchString(ru.name)
}

func (ru *run) isEbookShaped() bool {
	return ru.anyFlag(ru.kb.FlagsEbook) ||
		taxonomy.Contains(ru.kb.FormatsEbook, ru.rec.Format)
}

func (ru *run) hasGameEvidence() bool {
	return ru.anyFlag(ru.kb.FlagsGame) ||
		taxonomy.Contains(ru.kb.GroupsGame, ru.rec.Group) ||
		ru.rec.Device != ""
}

func (ru *run) hasAppEvidence() bool {
	return ru.anyFlag(ru.kb.FlagsApp) ||
		taxonomy.Contains(ru.kb.GroupsApp, ru.rec.Group)
}

func (ru *run) anyFlag(list []string) bool {
	for _, f := range ru.rec.Flags {
		if taxonomy.Contains(list, f) {
			return true
		}
	}
	return false
}
