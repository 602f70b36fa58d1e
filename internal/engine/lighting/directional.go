// Package lighting provides lighting utilities for 3D rendering.
package lighting

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/hnrq/scroll-based-animation-sub001/pkg/math"
)

// Directional is a light infinitely far away shining from Position towards
// the origin.
type Directional struct {
	Color     colorful.Color
	Intensity float64
	Position  math.Vec3
}

// NewDirectional creates a white light shining from position.
func NewDirectional(position math.Vec3, intensity float64) Directional {
	return Directional{
		Color:     colorful.Color{R: 1, G: 1, B: 1},
		Intensity: intensity,
		Position:  position,
	}
}

// Direction returns the normalized vector pointing towards the light.
func (d Directional) Direction() [3]float32 {
	return d.Position.Normalize().Array32()
}

// Radiance returns the light color in linear RGB scaled by intensity, as
// uploaded to the shader.
func (d Directional) Radiance() [3]float32 {
	r, g, b := d.Color.LinearRgb()
	return [3]float32{
		float32(r * d.Intensity),
		float32(g * d.Intensity),
		float32(b * d.Intensity),
	}
}
