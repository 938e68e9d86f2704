package ssengine

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// ErrInvalidResolution is returned when a window or canvas size is not positive.
var ErrInvalidResolution = errors.New("ssengine: invalid resolution")

// Config holds everything the engine needs at construction time.
type Config struct {
	Title string `yaml:"title"`
	// Window resolution.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Low-resolution canvas that sprites draw onto before upscaling.
	CanvasWidth  int `yaml:"canvas_width"`
	CanvasHeight int `yaml:"canvas_height"`
	FPS          int `yaml:"fps"`

	// FontPath is the TTF used for the FPS readout and Engine.Font. Empty
	// selects the embedded Go Regular font.
	FontPath    string `yaml:"font_path"`
	FPSFontSize int    `yaml:"fps_font_size"`

	ShowFPSOnCaption bool   `yaml:"show_fps_caption"`
	ShowFPSOnWindow  bool   `yaml:"show_fps_window"`
	Debug            bool   `yaml:"debug"`
	ScreenshotDir    string `yaml:"screenshot_dir"`
}

// DefaultConfig returns the stock 640x480 window over a 128x96 canvas.
func DefaultConfig() Config {
	return Config{
		Title:         "SSEngine window",
		Width:         640,
		Height:        480,
		CanvasWidth:   128,
		CanvasHeight:  96,
		FPS:           144,
		FPSFontSize:   16,
		ScreenshotDir: "screenshots",
	}
}

// LoadConfig parses YAML over DefaultConfig, so omitted keys keep their
// defaults.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("ssengine: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a YAML config file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("ssengine: read config: %w", err)
	}
	return LoadConfig(data)
}

// Validate checks resolutions and rates.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidResolution, c.Width, c.Height)
	}
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidResolution, c.CanvasWidth, c.CanvasHeight)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("ssengine: fps must be positive, got %d", c.FPS)
	}
	if c.FPSFontSize <= 0 {
		return fmt.Errorf("ssengine: fps font size must be positive, got %d", c.FPSFontSize)
	}
	return nil
}
