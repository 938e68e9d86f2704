package ssengine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("window = %dx%d, want 640x480", cfg.Width, cfg.Height)
	}
	if cfg.CanvasWidth != 128 || cfg.CanvasHeight != 96 {
		t.Errorf("canvas = %dx%d, want 128x96", cfg.CanvasWidth, cfg.CanvasHeight)
	}
	if cfg.FPS != 144 {
		t.Errorf("FPS = %d, want 144", cfg.FPS)
	}
	if cfg.Title != "SSEngine window" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.ShowFPSOnCaption || cfg.ShowFPSOnWindow {
		t.Error("FPS display should be off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig([]byte("title: Tanks\nfps: 60\nshow_fps_window: true\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "Tanks" || cfg.FPS != 60 || !cfg.ShowFPSOnWindow {
		t.Errorf("parsed = %+v", cfg)
	}
	if cfg.Width != 640 || cfg.CanvasWidth != 128 || cfg.FPSFontSize != 16 {
		t.Errorf("omitted keys lost their defaults: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantRes bool
	}{
		{"bad yaml", "width: [", false},
		{"zero window", "width: 0", true},
		{"negative canvas", "canvas_height: -1", true},
		{"zero fps", "fps: 0", false},
		{"zero font size", "fps_font_size: 0", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrInvalidResolution); got != tt.wantRes {
				t.Errorf("errors.Is(ErrInvalidResolution) = %v, want %v (err %v)", got, tt.wantRes, err)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	if err := os.WriteFile(path, []byte("width: 320\nheight: 240\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("window = %dx%d, want 320x240", cfg.Width, cfg.Height)
	}

	_, err = LoadConfigFile(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not-exist", err)
	}
}
