package parser

import (
	"regexp"
	"strings"

	"github.com/Nomadcxx/sceneparse/internal/taxonomy"
)

// Parser parses release names against one knowledge base. The zero-cost
// default instance serves the package-level functions; callers with an
// extended knowledge base construct their own.
type Parser struct {
	kb *taxonomy.Set
}

// New returns a Parser bound to the given knowledge base. A nil set binds
// the built-in default.
func New(kb *taxonomy.Set) *Parser {
	if kb == nil {
		kb = taxonomy.Default()
	}
	return &Parser{kb: kb}
}

var defaultParser = New(nil)

// Parse parses a release name with the default knowledge base.
func Parse(name string) *Release {
	return defaultParser.Parse(name)
}

// ParseWithHint parses a release name, using section as a classification
// hint when the name alone does not decide the type.
func ParseWithHint(name, section string) *Release {
	return defaultParser.ParseWithHint(name, section)
}

// Parse parses a release name.
func (p *Parser) Parse(name string) *Release {
	return p.ParseWithHint(name, "")
}

// ParseWithHint runs the full pipeline. Pass order is a contract: each
// pass may consult or strip what earlier passes resolved, so reordering
// changes results.
func (p *Parser) ParseWithHint(name, section string) *Release {
	ru := &run{
		kb:     p.kb,
		rec:    &Release{Raw: name},
		name:   trimExtension(name),
		tokens: make(map[Attribute][]string),
	}

	ru.parseGroup()
	ru.parseFlags()
	ru.parseOS()
	ru.parseDevice()
	ru.parseVersion()
	ru.parseEpisode()
	ru.parseSeason()
	ru.parseDate()
	ru.parseYear()
	ru.parseFormat()
	ru.parseSource()
	ru.parseResolution()
	ru.parseAudio()
	ru.parseLanguages()
	ru.reparseSource()
	ru.reparseFlags()
	ru.reparseLanguages()

	ru.rec.Type = ru.classify(section)
	ru.parseTitle()
	ru.parseCountry()
	ru.normalize()

	return ru.rec
}

// run is the per-parse working state. tokens remembers the literal text
// each positional pass matched, so the stripper and the template compiler
// can neutralize exactly what was found rather than re-deriving it.
type run struct {
	kb     *taxonomy.Set
	rec    *Release
	name   string
	tokens map[Attribute][]string
}

func (ru *run) remember(attr Attribute, token string) {
	if token != "" {
		ru.tokens[attr] = append(ru.tokens[attr], token)
	}
}

// baseName is the name with the trailing group tag removed; every title
// grammar works on it.
func (ru *run) baseName() string {
	if toks := ru.tokens[AttrGroup]; len(toks) > 0 {
		return strings.TrimSuffix(ru.name, "-"+toks[0])
	}
	return ru.name
}

// Container and sidecar extensions are trimmed before parsing. Document
// and image formats (iso, pdf, epub) stay: there they are the format tag
// itself, anchored at the end of the name.
var extensionRe = regexp.MustCompile(
	`(?i)\.(?:mkv|avi|mp4|m4v|mpg|mpeg|wmv|mov|flv|webm|ts|m2ts|vob|mp3|flac|ogg|wav|rar|zip|7z|tar|gz|nfo|sfv|srt|sub|idx|diz)$`)

func trimExtension(name string) string {
	return extensionRe.ReplaceAllString(name, "")
}

var (
	groupRe    = regexp.MustCompile(`-([A-Za-z0-9_]+)$`)
	bareYearRe = regexp.MustCompile(`^(?:19|20)\d{2}$`)
)

// parseGroup takes the token after the last dash. A trailing bare year is
// a date component, not a group; names without a recognizable tag get the
// NoGroup sentinel.
func (ru *run) parseGroup() {
	ru.rec.Group = NoGroup
	m := groupRe.FindStringSubmatch(ru.name)
	if m == nil {
		return
	}
	tok := m[1]
	if bareYearRe.MatchString(tok) {
		return
	}
	ru.rec.Group = tok
	ru.remember(AttrGroup, tok)
}

func (ru *run) parseFlags() {
	ru.rec.Flags = ru.extract(ru.kb.Flags, AttrFlags, ru.name)
}

// parseOS is scalar, first table match wins.
func (ru *run) parseOS() {
	if found := ru.extract(ru.kb.Systems, AttrOS, ru.name); len(found) > 0 {
		ru.rec.OS = found[0]
	}
}

// parseDevice is scalar, last table match wins: device tables are ordered
// general to specific, and the specific entry is the better answer.
func (ru *run) parseDevice() {
	if found := ru.extract(ru.kb.Devices, AttrDevice, ru.name); len(found) > 0 {
		ru.rec.Device = found[len(found)-1]
	}
}

func (ru *run) parseFormat() {
	if found := ru.extract(ru.kb.Formats, AttrFormat, ru.name); len(found) > 0 {
		ru.rec.Format = found[0]
	}
}

func (ru *run) parseSource() {
	if found := ru.extract(ru.kb.Sources, AttrSource, ru.name); len(found) > 0 {
		ru.rec.Source = found[0]
	}
}

func (ru *run) parseResolution() {
	if found := ru.extract(ru.kb.Resolutions, AttrResolution, ru.name); len(found) > 0 {
		ru.rec.Resolution = found[0]
	}
}

func (ru *run) parseAudio() {
	ru.rec.Audio = ru.extract(ru.kb.Audio, AttrAudio, ru.name)
}

func (ru *run) parseLanguages() {
	ru.rec.Languages = ru.extractLanguages(ru.name)
}

// reparseSource re-runs source matching with format, resolution and audio
// neutralized. Tags like WEB-DL shadow plain WEB in the first pass, but a
// format token glued to the source ("WEBFLAC") hides the real source until
// the format is out of the way. The second result replaces the first only
// when the first was empty or the generic WEB.
func (ru *run) reparseSource() {
	working := ru.strip(ru.name, AttrFormat, AttrResolution, AttrAudio)
	found := ru.extract(ru.kb.Sources, AttrSource, working)
	if len(found) == 0 {
		return
	}
	if ru.rec.Source == "" || strings.EqualFold(ru.rec.Source, "WEB") {
		ru.rec.Source = found[0]
	}
}

// reparseFlags picks up flags that only become visible once surrounding
// tags are neutralized (a flag sharing its delimiters with a source tag).
func (ru *run) reparseFlags() {
	working := ru.strip(ru.name,
		AttrSource, AttrFormat, AttrResolution, AttrAudio, AttrVersion, AttrLanguage)
	ru.rec.Flags = mergeUnique(ru.rec.Flags, ru.extract(ru.kb.Flags, AttrFlags, working))
}

func (ru *run) reparseLanguages() {
	working := ru.strip(ru.name,
		AttrFlags, AttrSource, AttrFormat, AttrResolution, AttrAudio)
	for _, l := range ru.extractLanguages(working) {
		if !ru.hasLanguage(l.Code) {
			ru.rec.Languages = append(ru.rec.Languages, l)
		}
	}
}

func (ru *run) hasLanguage(code string) bool {
	for _, l := range ru.rec.Languages {
		if strings.EqualFold(l.Code, code) {
			return true
		}
	}
	return false
}
