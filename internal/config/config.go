// Package config handles application configuration loading and management.
package config

import "time"

// Config holds all application settings.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Scene     SceneConfig     `yaml:"scene"`
	Camera    CameraConfig    `yaml:"camera"`
	Animation AnimationConfig `yaml:"animation"`
	Input     InputConfig     `yaml:"input"`
	Debug     DebugConfig     `yaml:"debug"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title         string  `yaml:"title"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Fullscreen    bool    `yaml:"fullscreen"`
	VSync         bool    `yaml:"vsync"`
	MaxPixelRatio float64 `yaml:"max_pixel_ratio"`
	ClearColor    string  `yaml:"clear_color"`
}

// SectionConfig describes one section of the scrolled document.
type SectionConfig struct {
	Title string `yaml:"title"`
}

// SceneConfig holds the composition parameters of the 3D scene.
type SceneConfig struct {
	Sections        []SectionConfig `yaml:"sections"`
	ObjectsDistance float64         `yaml:"objects_distance"`
	MaterialColor   string          `yaml:"material_color"`
	GradientTexture string          `yaml:"gradient_texture"`
	ParticleCount   int             `yaml:"particle_count"`
	ParticleSize    float64         `yaml:"particle_size"`
	ParticleExtent  float64         `yaml:"particle_extent"`
	ParticlesColor  string          `yaml:"particles_color"`
	LightIntensity  float64         `yaml:"light_intensity"`
	Seed            int64           `yaml:"seed"` // 0 picks a random seed
}

// CameraConfig holds the camera rig parameters.
type CameraConfig struct {
	FOV            float64 `yaml:"fov"` // vertical, degrees
	Near           float64 `yaml:"near"`
	Far            float64 `yaml:"far"`
	Distance       float64 `yaml:"distance"`
	ParallaxAmount float64 `yaml:"parallax_amount"`
	SmoothingRate  float64 `yaml:"smoothing_rate"`
}

// Vec3Config is a YAML-friendly three component vector.
type Vec3Config struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// AnimationConfig holds ambient rotation and visibility tween settings.
type AnimationConfig struct {
	AmbientRateX        float64       `yaml:"ambient_rate_x"`
	AmbientRateY        float64       `yaml:"ambient_rate_y"`
	VisibilityThreshold float64       `yaml:"visibility_threshold"`
	TweenDuration       time.Duration `yaml:"tween_duration"`
	TweenRotation       Vec3Config    `yaml:"tween_rotation"`
}

// InputConfig holds scrolling settings.
type InputConfig struct {
	ScrollStep float64 `yaml:"scroll_step"` // pixels per wheel notch / arrow key
}

// DebugConfig holds developer tooling settings.
type DebugConfig struct {
	Panel         bool   `yaml:"panel"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:         "Scroll Scene",
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			MaxPixelRatio: 2,
			ClearColor:    "#1e1a20",
		},
		Scene: SceneConfig{
			Sections: []SectionConfig{
				{Title: "My Portfolio"},
				{Title: "My projects"},
				{Title: "Contact me"},
			},
			ObjectsDistance: 3.5,
			MaterialColor:   "#ffeded",
			GradientTexture: "textures/gradients/3.png",
			ParticleCount:   200,
			ParticleSize:    0.03,
			ParticleExtent:  10,
			ParticlesColor:  "#ffeded",
			LightIntensity:  3,
		},
		Camera: CameraConfig{
			FOV:            35,
			Near:           0.1,
			Far:            100,
			Distance:       6,
			ParallaxAmount: 0.2,
			SmoothingRate:  5,
		},
		Animation: AnimationConfig{
			AmbientRateX:        0.12,
			AmbientRateY:        0.1,
			VisibilityThreshold: 0.9,
			TweenDuration:       800 * time.Millisecond,
			TweenRotation:       Vec3Config{X: 6, Y: 2, Z: 1.5},
		},
		Input: InputConfig{
			ScrollStep: 100,
		},
		Debug: DebugConfig{
			Panel:         false,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
