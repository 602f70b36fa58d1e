package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/multierr"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.MaxPixelRatio != 2 {
		t.Errorf("expected max pixel ratio 2, got %f", cfg.Window.MaxPixelRatio)
	}
	if len(cfg.Scene.Sections) != 3 {
		t.Errorf("expected 3 sections, got %d", len(cfg.Scene.Sections))
	}
	if cfg.Scene.ObjectsDistance != 3.5 {
		t.Errorf("expected objects distance 3.5, got %f", cfg.Scene.ObjectsDistance)
	}
	if cfg.Camera.SmoothingRate != 5 {
		t.Errorf("expected smoothing rate 5, got %f", cfg.Camera.SmoothingRate)
	}
	if cfg.Animation.VisibilityThreshold != 0.9 {
		t.Errorf("expected threshold 0.9, got %f", cfg.Animation.VisibilityThreshold)
	}
	if cfg.Animation.TweenDuration != 800*time.Millisecond {
		t.Errorf("expected tween duration 800ms, got %v", cfg.Animation.TweenDuration)
	}
	if r := cfg.Animation.TweenRotation; r != (Vec3Config{X: 6, Y: 2, Z: 1.5}) {
		t.Errorf("expected tween rotation (6, 2, 1.5), got %+v", r)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  max_pixel_ratio: 1.5

scene:
  sections:
    - title: "Intro"
    - title: "Work"
    - title: "About"
    - title: "Contact"
  objects_distance: 4
  material_color: "#ff0000"

animation:
  tween_duration: 1200ms

logging:
  level: "debug"
  log_file: "scene.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.MaxPixelRatio != 1.5 {
		t.Errorf("expected max pixel ratio 1.5, got %f", cfg.Window.MaxPixelRatio)
	}
	if len(cfg.Scene.Sections) != 4 || cfg.Scene.Sections[3].Title != "Contact" {
		t.Errorf("unexpected sections %+v", cfg.Scene.Sections)
	}
	if cfg.Scene.ObjectsDistance != 4 {
		t.Errorf("expected objects distance 4, got %f", cfg.Scene.ObjectsDistance)
	}
	if cfg.Animation.TweenDuration != 1200*time.Millisecond {
		t.Errorf("expected tween duration 1.2s, got %v", cfg.Animation.TweenDuration)
	}
	// Untouched keys keep their defaults.
	if cfg.Camera.FOV != 35 {
		t.Errorf("expected default fov 35, got %f", cfg.Camera.FOV)
	}
	if cfg.Logging.LogFile != "scene.log" {
		t.Errorf("expected log file 'scene.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Window.Width = 0
	cfg.Scene.Sections = nil
	cfg.Scene.MaterialColor = "pink"
	cfg.Animation.VisibilityThreshold = 1.5

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if n := len(multierr.Errors(err)); n != 4 {
		t.Errorf("expected 4 errors, got %d: %v", n, err)
	}
	if !strings.Contains(err.Error(), "scene.material_color") {
		t.Errorf("error should name the bad color key: %v", err)
	}
}

func TestMustColor(t *testing.T) {
	c := MustColor("#ff0000")
	if c.R < 0.999 || c.G != 0 || c.B != 0 {
		t.Errorf("MustColor(#ff0000) = %+v", c)
	}
	if c := MustColor("nope"); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("MustColor(nope) = %+v, want black", c)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.ParticleCount = 512
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if loaded.Scene.ParticleCount != 512 {
		t.Errorf("expected particle count 512, got %d", loaded.Scene.ParticleCount)
	}
	if loaded.Animation.TweenDuration != cfg.Animation.TweenDuration {
		t.Errorf("tween duration %v did not survive the round trip", loaded.Animation.TweenDuration)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Debug.Panel {
					t.Error("expected debug panel to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "sections flag pads",
			setup: func() { *flagSections = 5 },
			verify: func(t *testing.T, cfg *Config) {
				if len(cfg.Scene.Sections) != 5 {
					t.Fatalf("expected 5 sections, got %d", len(cfg.Scene.Sections))
				}
				if cfg.Scene.Sections[0].Title != "My Portfolio" || cfg.Scene.Sections[4].Title != "" {
					t.Errorf("unexpected sections %+v", cfg.Scene.Sections)
				}
			},
			teardown: func() { *flagSections = 0 },
		},
		{
			name:  "sections flag truncates",
			setup: func() { *flagSections = 1 },
			verify: func(t *testing.T, cfg *Config) {
				if len(cfg.Scene.Sections) != 1 {
					t.Errorf("expected 1 section, got %d", len(cfg.Scene.Sections))
				}
			},
			teardown: func() { *flagSections = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}
