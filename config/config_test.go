package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Grid.Rows != 5 || cfg.Grid.Cols != 5 {
		t.Errorf("expected 5x5 default grid, got %dx%d", cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if cfg.Spin.Easing != "back" {
		t.Errorf("expected default easing back, got %q", cfg.Spin.Easing)
	}
	if cfg.Jelly.Squash <= 0 || cfg.Jelly.Squash >= 1 {
		t.Errorf("expected squash in (0, 1), got %f", cfg.Jelly.Squash)
	}
}

func TestDerivedValues(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 5 tiles of 96, 4 gaps of 10, 24 padding each side
	wantFrame := float32(5*96 + 4*10 + 2*24)
	if cfg.Derived.FrameW != wantFrame {
		t.Errorf("expected frame width %f, got %f", wantFrame, cfg.Derived.FrameW)
	}
	if cfg.Derived.FrameH != wantFrame {
		t.Errorf("expected frame height %f, got %f", wantFrame, cfg.Derived.FrameH)
	}
	if cfg.Derived.TilePitch != 106 {
		t.Errorf("expected tile pitch 106, got %f", cfg.Derived.TilePitch)
	}
	if cfg.Derived.DT32 != 1.0/60.0 {
		t.Errorf("expected dt 1/60, got %f", cfg.Derived.DT32)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	userYAML := []byte("spin:\n  duration: 2.0\n  easing: bounce\n")
	if err := os.WriteFile(path, userYAML, 0644); err != nil {
		t.Fatalf("writing user config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Spin.Duration != 2.0 {
		t.Errorf("expected overridden duration 2.0, got %f", cfg.Spin.Duration)
	}
	if cfg.Spin.Easing != "bounce" {
		t.Errorf("expected overridden easing bounce, got %q", cfg.Spin.Easing)
	}
	// Fields absent in the user file keep defaults
	if cfg.Grid.Rows != 5 {
		t.Errorf("expected default rows 5, got %d", cfg.Grid.Rows)
	}
}

func TestSanitizeDegenerateValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	userYAML := []byte("grid:\n  rows: -2\n  cols: 0\nsymbols:\n  count: 0\nspin:\n  duration: -1\n")
	if err := os.WriteFile(path, userYAML, 0644); err != nil {
		t.Fatalf("writing user config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Grid.Rows != 1 || cfg.Grid.Cols != 1 {
		t.Errorf("expected degenerate grid clamped to 1x1, got %dx%d", cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if cfg.Symbols.Count != 1 {
		t.Errorf("expected symbol count clamped to 1, got %d", cfg.Symbols.Count)
	}
	if cfg.Spin.Duration <= 0 {
		t.Errorf("expected positive duration fallback, got %f", cfg.Spin.Duration)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.Spin.Duration = 1.25

	dir := t.TempDir()
	path := filepath.Join(dir, "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading config: %v", err)
	}
	if loaded.Spin.Duration != 1.25 {
		t.Errorf("expected roundtripped duration 1.25, got %f", loaded.Spin.Duration)
	}
}
