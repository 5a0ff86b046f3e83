package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseRoundConfig(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected bool
	}{
		{"enabled", "playable_outgroup: true\n", true},
		{"disabled", "playable_outgroup: false\n", false},
		{"missing key", "other_option: 3\n", false},
		{"empty document", "", false},
		{"wrong type string", "playable_outgroup: \"yes please\"\n", false},
		{"wrong type int", "playable_outgroup: 1\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseRoundConfig([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got := cfg.PlayableOutgroup(); got != tt.expected {
				t.Errorf("PlayableOutgroup() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestParseRoundConfig_InvalidYAML(t *testing.T) {
	if _, err := ParseRoundConfig([]byte("playable_outgroup: [unclosed")); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestRoundConfig_NilIsConservative(t *testing.T) {
	var cfg RoundConfig
	if cfg.PlayableOutgroup() {
		t.Error("nil RoundConfig should not enable the outgroup branch")
	}
}

func TestLoadRoundConfig(t *testing.T) {
	cfg, err := LoadRoundConfig("../../data/round_config.yaml")
	if err != nil {
		t.Fatalf("Failed to load round_config.yaml: %v", err)
	}
	if cfg.PlayableOutgroup() {
		t.Error("Default round config should keep playable_outgroup disabled")
	}
}

func TestLoadRoundConfig_FromTempFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "round.yaml")
	if err := os.WriteFile(path, []byte("playable_outgroup: true\n"), 0644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}

	cfg, err := LoadRoundConfig(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !cfg.PlayableOutgroup() {
		t.Error("Expected playable_outgroup to be true")
	}
}

func TestLoadRoundConfig_MissingFile(t *testing.T) {
	if _, err := LoadRoundConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
