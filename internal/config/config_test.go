package config

import (
	"testing"

	"github.com/Nomadcxx/sceneparse/internal/taxonomy"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.Format != "text" {
		t.Errorf("expected output format 'text', got '%s'", cfg.Output.Format)
	}

	if !cfg.Output.Color {
		t.Error("expected Color to be true")
	}

	if cfg.Defaults.Section != "" {
		t.Errorf("expected empty default section, got '%s'", cfg.Defaults.Section)
	}
}

func TestTaxonomyWithoutExtensions(t *testing.T) {
	cfg := DefaultConfig()

	// No extensions means the shared default set, not a copy.
	if cfg.Taxonomy() != taxonomy.Default() {
		t.Error("expected shared default set when no extensions configured")
	}
}

func TestTaxonomyExtendsExistingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Patterns.Sources = map[string][]string{
		"WEB": {`custom[._-]?web`},
	}

	set := cfg.Taxonomy()
	if set == taxonomy.Default() {
		t.Fatal("expected a cloned set when extensions are configured")
	}

	e, ok := taxonomy.Find(set.Sources, "WEB")
	if !ok {
		t.Fatal("WEB entry missing from extended set")
	}
	found := false
	for _, p := range e.Patterns {
		if p == `custom[._-]?web` {
			found = true
		}
	}
	if !found {
		t.Errorf("extension pattern missing, got %v", e.Patterns)
	}

	// The shared default must be untouched.
	d, _ := taxonomy.Find(taxonomy.Default().Sources, "WEB")
	for _, p := range d.Patterns {
		if p == `custom[._-]?web` {
			t.Error("extension leaked into the shared default set")
		}
	}
}

func TestTaxonomyAddsNewKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Patterns.Flags = map[string][]string{
		"HouseRip": {`house[._-]?rip`},
	}

	set := cfg.Taxonomy()
	e, ok := taxonomy.Find(set.Flags, "HouseRip")
	if !ok {
		t.Fatal("new flag key missing from extended set")
	}
	if len(e.Patterns) != 1 || e.Patterns[0] != `house[._-]?rip` {
		t.Errorf("unexpected patterns for new key: %v", e.Patterns)
	}

	// New keys go after every built-in entry so they cannot shadow one.
	if set.Flags[len(set.Flags)-1].Key != "HouseRip" {
		t.Error("new key not appended at the end of the table")
	}
}
