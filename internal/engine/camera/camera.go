// Package camera provides the perspective camera and the scroll/parallax
// rig that positions it.
package camera

import (
	gomath "math"

	"github.com/hnrq/scroll-based-animation-sub001/pkg/math"
)

// View supplies the view and projection transforms for a frame.
type View interface {
	ViewMatrix() math.Mat4
	ProjectionMatrix() math.Mat4
}

// Perspective is a perspective projection with a vertical field of view.
type Perspective struct {
	FOV    float64 // vertical, degrees
	Aspect float64
	Near   float64
	Far    float64

	projection math.Mat4
}

// NewPerspective creates a camera and computes its projection.
func NewPerspective(fov, aspect, near, far float64) *Perspective {
	p := &Perspective{FOV: fov, Aspect: aspect, Near: near, Far: far}
	p.UpdateProjection()
	return p
}

// SetAspect changes the aspect ratio and recomputes the projection.
func (p *Perspective) SetAspect(aspect float64) {
	p.Aspect = aspect
	p.UpdateProjection()
}

// UpdateProjection recomputes the projection matrix from the current fields.
func (p *Perspective) UpdateProjection() {
	p.projection = math.Perspective(p.FOV*gomath.Pi/180, p.Aspect, p.Near, p.Far)
}

// ProjectionMatrix returns the last computed projection.
func (p *Perspective) ProjectionMatrix() math.Mat4 {
	return p.projection
}
