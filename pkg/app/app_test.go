package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/onboarding/pkg/embedded"
)

func TestLoadRoundConfig_Embedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/round_config.yaml": &fstest.MapFile{Data: []byte("playable_outgroup: true\n")},
	})

	cfg, err := loadRoundConfig("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !cfg.PlayableOutgroup() {
		t.Error("Expected embedded config to enable playable_outgroup")
	}
}

func TestLoadRoundConfig_FromDisk(t *testing.T) {
	embedded.Init(fstest.MapFS{})
	path := filepath.Join(t.TempDir(), "round.yaml")
	if err := os.WriteFile(path, []byte("playable_outgroup: true\n"), 0644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}

	cfg, err := loadRoundConfig(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !cfg.PlayableOutgroup() {
		t.Error("Expected disk config to enable playable_outgroup")
	}
}

func TestLoadRoundConfig_MissingDiskFile(t *testing.T) {
	if _, err := loadRoundConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing round config file")
	}
}
