package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/multierr"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.MaxPixelRatio < 1 {
		err = multierr.Append(err, fmt.Errorf("window.max_pixel_ratio %.2f must be at least 1", c.Window.MaxPixelRatio))
	}
	if len(c.Scene.Sections) == 0 {
		err = multierr.Append(err, fmt.Errorf("scene.sections must not be empty"))
	}
	if c.Scene.ObjectsDistance <= 0 {
		err = multierr.Append(err, fmt.Errorf("scene.objects_distance %.2f must be positive", c.Scene.ObjectsDistance))
	}
	if c.Scene.ParticleCount < 0 {
		err = multierr.Append(err, fmt.Errorf("scene.particle_count %d must not be negative", c.Scene.ParticleCount))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		err = multierr.Append(err, fmt.Errorf("camera clip range %.2f..%.2f is invalid", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		err = multierr.Append(err, fmt.Errorf("camera.fov %.1f must be in (0, 180)", c.Camera.FOV))
	}
	if c.Camera.SmoothingRate < 0 {
		err = multierr.Append(err, fmt.Errorf("camera.smoothing_rate %.2f must not be negative", c.Camera.SmoothingRate))
	}
	if t := c.Animation.VisibilityThreshold; t <= 0 || t > 1 {
		err = multierr.Append(err, fmt.Errorf("animation.visibility_threshold %.2f must be in (0, 1]", t))
	}
	if c.Animation.TweenDuration <= 0 {
		err = multierr.Append(err, fmt.Errorf("animation.tween_duration %v must be positive", c.Animation.TweenDuration))
	}

	colors := map[string]string{
		"window.clear_color":    c.Window.ClearColor,
		"scene.material_color":  c.Scene.MaterialColor,
		"scene.particles_color": c.Scene.ParticlesColor,
	}
	for _, key := range []string{"window.clear_color", "scene.material_color", "scene.particles_color"} {
		if _, cerr := colorful.Hex(colors[key]); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("%s %q: %w", key, colors[key], cerr))
		}
	}

	return err
}

// MustColor parses a hex color that Validate has already accepted.
// It returns black for unparsable input.
func MustColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
