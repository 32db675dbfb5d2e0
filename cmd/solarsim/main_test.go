package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/solarsim/internal/config"
	"github.com/san-kum/solarsim/internal/orbit"
)

func newTestCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	configFile, preset = "", ""
	cmd := &cobra.Command{Use: "test"}
	addPlaybackFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(newTestCmd(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Animation.Frames != config.DefaultFrames {
		t.Errorf("expected %d frames, got %d", config.DefaultFrames, cfg.Animation.Frames)
	}
	if len(cfg.Bodies) != 8 {
		t.Errorf("expected 8 bodies, got %d", len(cfg.Bodies))
	}
}

func TestLoadConfigFlagsOverride(t *testing.T) {
	cmd := newTestCmd(t, "--frames", "42", "--loop", "--no-guides")
	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Animation.Frames != 42 || !cfg.Animation.Loop {
		t.Errorf("flags not applied: %+v", cfg.Animation)
	}
	if cfg.Guides.Samples != 0 {
		t.Errorf("expected guides off, got %d samples", cfg.Guides.Samples)
	}
}

func TestLoadConfigPreset(t *testing.T) {
	cmd := newTestCmd(t)
	preset = "inner"
	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Bodies) != 4 {
		t.Errorf("expected 4 bodies, got %d", len(cfg.Bodies))
	}

	preset = "nope"
	if _, err := loadConfig(cmd); err == nil {
		t.Error("expected unknown preset error")
	}
	preset = ""
}

func TestLoadConfigFileAndPresetConflict(t *testing.T) {
	cmd := newTestCmd(t)
	configFile, preset = "x.yaml", "classic"
	defer func() { configFile, preset = "", "" }()
	if _, err := loadConfig(cmd); err == nil {
		t.Error("expected conflict error")
	}
}

func TestLoadConfigRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	cfg := config.DefaultConfig()
	cfg.Bodies[0].Period = 0
	if err := config.Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	cmd := newTestCmd(t)
	configFile = path
	defer func() { configFile = "" }()
	_, err := loadConfig(cmd)
	if !errors.Is(err, orbit.ErrInvalidPeriod) {
		t.Errorf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestParseFrame(t *testing.T) {
	if n, err := parseFrame("20"); err != nil || n != 20 {
		t.Errorf("expected 20, got %d (%v)", n, err)
	}
	if _, err := parseFrame("-1"); err == nil {
		t.Error("expected error for negative frame")
	}
	if _, err := parseFrame("abc"); err == nil {
		t.Error("expected error for non-number")
	}
}

func TestCheckRange(t *testing.T) {
	if err := checkRange(0, 0); err != nil {
		t.Errorf("expected empty range to pass, got %v", err)
	}
	if err := checkRange(-2, 3); err == nil {
		t.Error("expected error for negative start")
	}
	if err := checkRange(0, -5); err == nil {
		t.Error("expected error for negative frame count")
	}
}

func TestPlotKeepsItsFrameDefault(t *testing.T) {
	root := newRootCmd()
	if plotFrames != 200 || exportFrames != 100 {
		t.Fatalf("defaults clobbered: plot=%d export=%d", plotFrames, exportFrames)
	}
	root.SetArgs([]string{"plot", "Earth"})
	if err := root.Execute(); err != nil {
		t.Fatalf("plot: %v", err)
	}
	if plotFrames != 200 {
		t.Errorf("plot ran with %d frames, want 200", plotFrames)
	}
}

func TestExportRejectsNegativeRange(t *testing.T) {
	for _, args := range [][]string{
		{"export-csv", "--frames", "-5"},
		{"export-json", "--frames", "-5"},
		{"export-csv", "--start", "-2"},
		{"export-json", "--start", "-2"},
	} {
		root := newRootCmd()
		root.SetArgs(args)
		if err := root.Execute(); err == nil {
			t.Errorf("%v: expected range error", args)
		}
	}
}
