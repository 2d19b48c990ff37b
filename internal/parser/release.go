// Package parser turns scene release names into structured records. A parse
// is a fixed pipeline of extraction passes over the raw name; every pass is
// pure string work against the shared read-only knowledge base, so parses
// may run concurrently without coordination.
package parser

import (
	"fmt"
	"strings"
	"time"
)

// NoGroup is the sentinel group for releases without a recognizable
// trailing group tag.
const NoGroup = "NOGRP"

// Type is the single content-type tag assigned to every release.
type Type int

const (
	TypeMovie Type = iota
	TypeTV
	TypeAnime
	TypeMusic
	TypeMusicVideo
	TypeGame
	TypeApp
	TypeEbook
	TypeABook
	TypeBookware
	TypeFont
	TypeSports
	TypeDocu
	TypeXXX
)

var typeNames = map[Type]string{
	TypeMovie:      "Movie",
	TypeTV:         "TV",
	TypeAnime:      "Anime",
	TypeMusic:      "Music",
	TypeMusicVideo: "MusicVideo",
	TypeGame:       "Game",
	TypeApp:        "App",
	TypeEbook:      "eBook",
	TypeABook:      "ABook",
	TypeBookware:   "Bookware",
	TypeFont:       "Font",
	TypeSports:     "Sports",
	TypeDocu:       "Docu",
	TypeXXX:        "XXX",
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "Movie"
}

// TypeFromName resolves a type tag by its display name.
func TypeFromName(name string) (Type, bool) {
	for t, n := range typeNames {
		if strings.EqualFold(n, name) {
			return t, true
		}
	}
	return TypeMovie, false
}

// MarshalText renders the type tag, so JSON output carries names not ints.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Attribute names one extraction category. The stripper, the template
// compiler and the membership test all select behavior through this
// enumeration instead of string keys.
type Attribute int

const (
	AttrGroup Attribute = iota
	AttrFlags
	AttrOS
	AttrDevice
	AttrVersion
	AttrEpisode
	AttrSeason
	AttrDisc
	AttrDate
	AttrYear
	AttrFormat
	AttrSource
	AttrResolution
	AttrAudio
	AttrLanguage
	AttrTitle
)

var attrNames = map[Attribute]string{
	AttrGroup:      "group",
	AttrFlags:      "flags",
	AttrOS:         "os",
	AttrDevice:     "device",
	AttrVersion:    "version",
	AttrEpisode:    "episode",
	AttrSeason:     "season",
	AttrDisc:       "disc",
	AttrDate:       "date",
	AttrYear:       "year",
	AttrFormat:     "format",
	AttrSource:     "source",
	AttrResolution: "resolution",
	AttrAudio:      "audio",
	AttrLanguage:   "language",
	AttrTitle:      "title",
}

func (a Attribute) String() string { return attrNames[a] }

// Language is one detected language, in detection order.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Release is the parse result. It is created once per input and not
// modified after Parse returns. Absent optional fields are zero values;
// Group and Type are always set.
type Release struct {
	Raw        string     `json:"raw"`
	Type       Type       `json:"type"`
	Title      string     `json:"title,omitempty"`
	TitleExtra string     `json:"titleExtra,omitempty"`
	Group      string     `json:"group"`
	Year       string     `json:"year,omitempty"`
	Date       *time.Time `json:"date,omitempty"`
	Season     int        `json:"season,omitempty"`
	Episode    string     `json:"episode,omitempty"`
	Disc       int        `json:"disc,omitempty"`
	Flags      []string   `json:"flags,omitempty"`
	Source     string     `json:"source,omitempty"`
	Format     string     `json:"format,omitempty"`
	Resolution string     `json:"resolution,omitempty"`
	Audio      []string   `json:"audio,omitempty"`
	Device     string     `json:"device,omitempty"`
	OS         string     `json:"os,omitempty"`
	Version    string     `json:"version,omitempty"`
	Languages  []Language `json:"languages,omitempty"`
	Country    string     `json:"country,omitempty"`
	Warnings   []string   `json:"warnings,omitempty"`
}

// HasAttribute reports whether any of the given values is present on the
// named field. Comparison is case-insensitive and works uniformly for
// scalar and set-valued fields.
func (r *Release) HasAttribute(attr Attribute, values ...string) bool {
	current := r.attributeValues(attr)
	for _, want := range values {
		for _, have := range current {
			if strings.EqualFold(want, have) {
				return true
			}
		}
	}
	return false
}

// attributeValues returns the current value(s) of a category as strings.
func (r *Release) attributeValues(attr Attribute) []string {
	switch attr {
	case AttrGroup:
		return nonEmpty(r.Group)
	case AttrFlags:
		return r.Flags
	case AttrOS:
		return nonEmpty(r.OS)
	case AttrDevice:
		return nonEmpty(r.Device)
	case AttrVersion:
		return nonEmpty(r.Version)
	case AttrEpisode:
		return nonEmpty(r.Episode)
	case AttrSeason:
		if r.Season == 0 {
			return nil
		}
		return []string{fmt.Sprintf("%d", r.Season)}
	case AttrDisc:
		if r.Disc == 0 {
			return nil
		}
		return []string{fmt.Sprintf("%d", r.Disc)}
	case AttrYear:
		return nonEmpty(r.Year)
	case AttrFormat:
		return nonEmpty(r.Format)
	case AttrSource:
		return nonEmpty(r.Source)
	case AttrResolution:
		return nonEmpty(r.Resolution)
	case AttrAudio:
		return r.Audio
	case AttrLanguage:
		out := make([]string, 0, len(r.Languages))
		for _, l := range r.Languages {
			out = append(out, l.Code)
		}
		return out
	case AttrTitle:
		return nonEmpty(r.Title)
	}
	return nil
}

func nonEmpty(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}

// String renders a one-line summary of the record.
func (r *Release) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", r.Title)
	if r.TitleExtra != "" {
		fmt.Fprintf(&b, " - %s", r.TitleExtra)
	}
	fmt.Fprintf(&b, " [%s]", r.Type)
	if r.Year != "" {
		fmt.Fprintf(&b, " (%s)", r.Year)
	}
	if r.Season != 0 {
		fmt.Fprintf(&b, " S%02d", r.Season)
	}
	if r.Episode != "" {
		fmt.Fprintf(&b, " E%s", r.Episode)
	}
	fmt.Fprintf(&b, " by %s", r.Group)
	return b.String()
}
