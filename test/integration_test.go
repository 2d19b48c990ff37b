package test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Nomadcxx/sceneparse/internal/config"
	"github.com/Nomadcxx/sceneparse/internal/parser"
	"github.com/Nomadcxx/sceneparse/internal/render"
)

// TestParseWorkflow runs a mixed batch of names through the full pipeline
// and checks every record comes back classified with a title.
func TestParseWorkflow(t *testing.T) {
	tests := []struct {
		name string
		want parser.Type
	}{
		{"Some.Movie.2020.1080p.BluRay.x264-GROUP", parser.TypeMovie},
		{"Show.Name.S02E05.720p.HDTV.x264-GRP", parser.TypeTV},
		{"VA-Greatest_Hits-2CD-FLAC-2020-GRP", parser.TypeMusic},
		{"Cool.App.v2.5.1.WinAll.Incl.Keygen-GRP", parser.TypeApp},
		{"Epic.Game.NSW-HYPE", parser.TypeGame},
		{"John.Doe-Learning.Things-2023-EPUB-GRP", parser.TypeEbook},
		{"F1.2024.Monaco.Grand.Prix.1080p.HDTV.x264-GRP", parser.TypeSports},
		{"HotSite.14.03.22.Performer.Name.XXX.1080p.x264-GRP", parser.TypeXXX},
	}

	for _, tt := range tests {
		r := parser.Parse(tt.name)
		if r.Type != tt.want {
			t.Errorf("Parse(%q).Type = %v, want %v", tt.name, r.Type, tt.want)
		}
		if r.Title == "" {
			t.Errorf("Parse(%q).Title is empty", tt.name)
		}
		if r.Raw != tt.name {
			t.Errorf("Parse(%q).Raw = %q", tt.name, r.Raw)
		}
	}
}

// TestConfiguredParserWorkflow wires a config with pattern extensions into
// a parser and checks the extension takes effect without touching the
// shared default knowledge base.
func TestConfiguredParserWorkflow(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Patterns.Sources = map[string][]string{
		"WEB": {`webstream`},
	}

	p := parser.New(cfg.Taxonomy())
	r := p.Parse("Some.Show.S01E01.WEBSTREAM.x264-GRP")
	if r.Source != "WEB" {
		t.Errorf("Source = %q, want WEB via extension pattern", r.Source)
	}

	// The default parser must not see the extension.
	r = parser.Parse("Some.Show.S01E01.WEBSTREAM.x264-GRP")
	if r.Source == "WEB" {
		t.Error("extension pattern leaked into the default parser")
	}
}

// TestBatchStreamWorkflow streams a batch as JSON lines and decodes each
// record back, the way the batch command consumes the pipeline.
func TestBatchStreamWorkflow(t *testing.T) {
	names := []string{
		"Some.Movie.2020.1080p.BluRay.x264-GROUP",
		"Show.Name.S02E05.720p.HDTV.x264-GRP",
		"Artist-Album_Name-CD2-FLAC-2021-GRP",
	}

	var buf bytes.Buffer
	stream := render.NewStream(&buf)
	ctx := context.Background()
	for _, name := range names {
		if err := stream.Write(ctx, parser.Parse(name)); err != nil {
			t.Fatalf("stream write failed: %v", err)
		}
	}
	if err := stream.Flush(); err != nil {
		t.Fatalf("stream flush failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(names) {
		t.Fatalf("got %d JSON lines, want %d", len(lines), len(names))
	}
	for i, line := range lines {
		var rec struct {
			Raw  string `json:"raw"`
			Type string `json:"type"`
		}
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
		if rec.Raw != names[i] {
			t.Errorf("line %d raw = %q, want %q", i, rec.Raw, names[i])
		}
		if rec.Type == "" {
			t.Errorf("line %d has no type", i)
		}
	}
}

// TestSectionHintWorkflow checks the hint path end to end: the same name
// classifies differently under different section labels.
func TestSectionHintWorkflow(t *testing.T) {
	name := "Ambiguous.Release.Name"
	tests := []struct {
		section string
		want    parser.Type
	}{
		{"", parser.TypeMovie},
		{"TV-Shows", parser.TypeTV},
		{"MP3-Charts", parser.TypeMusic},
		{"0DAY", parser.TypeApp},
		{"XXX-Imgset", parser.TypeXXX},
	}
	for _, tt := range tests {
		r := parser.ParseWithHint(name, tt.section)
		if r.Type != tt.want {
			t.Errorf("ParseWithHint(%q, %q).Type = %v, want %v", name, tt.section, r.Type, tt.want)
		}
	}
}
