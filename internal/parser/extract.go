package parser

import (
	"regexp"
	"strings"
	"sync"

	"github.com/Nomadcxx/sceneparse/internal/taxonomy"
)

// Compiled patterns are cached process-wide: the knowledge base is static,
// so every parse after the first hits the cache. User-extended patterns may
// be malformed; those cache as nil and never match.
var reCache sync.Map

func compile(pattern string) *regexp.Regexp {
	if v, ok := reCache.Load(pattern); ok {
		if v == nil {
			return nil
		}
		return v.(*regexp.Regexp)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		reCache.Store(pattern, nil)
		return nil
	}
	reCache.Store(pattern, re)
	return re
}

// matchAny tries the fallback match shapes in order against the working
// string, stopping at the first success:
//
//  1. delimiter-bounded on both sides
//  2. trailing, followed by one or two more delimited tokens then the end
//     (the "...-GROUP" convention)
//  3. parenthesis-bounded
//  4. anchored at the end of the string (format category only)
func matchAny(working, pattern string, caseFold, endShape bool) bool {
	flags := ""
	if caseFold {
		flags = "(?i)"
	}
	shapes := [...]string{
		flags + `[._(-](?:` + pattern + `)[._)-]`,
		flags + `[._(-](?:` + pattern + `)(?:[._-][a-zA-Z0-9]+){1,2}$`,
		flags + `\((?:` + pattern + `)\)`,
	}
	hay := "." + working
	for _, shape := range shapes {
		if re := compile(shape); re != nil && re.MatchString(hay) {
			return true
		}
	}
	if endShape {
		if re := compile(flags + `[._( -](?:` + pattern + `)$`); re != nil && re.MatchString(hay) {
			return true
		}
	}
	return false
}

// extract runs the generic attribute matcher for one table over the given
// working string. It returns the matched keys, deduplicated, in order of
// first match. Scalar coercion (first or last match) is up to the caller.
func (ru *run) extract(table []taxonomy.Entry, attr Attribute, working string) []string {
	var found []string
	for _, e := range table {
		for _, pat := range e.Patterns {
			// The bare TS source tag is the single case-sensitivity
			// exception: lowercase ts collides with ordinary words, a
			// language code and a country code.
			caseFold := !(attr == AttrSource && pat == "TS")
			if matchAny(working, pat, caseFold, attr == AttrFormat) {
				found = appendUnique(found, e.Key)
				break
			}
		}
	}
	return found
}

// extractLanguages matches the language table, preserving detection order.
func (ru *run) extractLanguages(working string) []Language {
	var found []Language
	for _, l := range ru.kb.Languages {
		for _, pat := range l.Patterns {
			if matchAny(working, pat, true, false) {
				found = append(found, Language{Code: l.Code, Name: l.Name})
				break
			}
		}
	}
	return found
}

func appendUnique(list []string, v string) []string {
	for _, have := range list {
		if strings.EqualFold(have, v) {
			return list
		}
	}
	return append(list, v)
}

func mergeUnique(list []string, more []string) []string {
	for _, v := range more {
		list = appendUnique(list, v)
	}
	return list
}
