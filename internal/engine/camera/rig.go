package camera

import (
	gomath "math"

	"github.com/hnrq/scroll-based-animation-sub001/pkg/math"
)

// RigConfig holds the tuning constants of a Rig.
type RigConfig struct {
	BaseZ           float64 // camera distance from the object column
	ObjectsDistance float64 // world units between consecutive sections
	ParallaxAmount  float64
	SmoothingRate   float64 // per second
}

// Rig places the camera inside a parent group. Scroll drives the camera's
// vertical position directly; the pointer drives the group's XY offset
// through exponential smoothing.
//
// Current is the only state carried between frames.
type Rig struct {
	Camera *Perspective

	Config RigConfig

	// Camera position relative to the group.
	Position math.Vec3
	// Group position in world space.
	Group math.Vec3

	Target  math.Vec2
	Current math.Vec2
}

// NewRig creates a rig holding camera at (0, 0, BaseZ).
func NewRig(camera *Perspective, cfg RigConfig) *Rig {
	return &Rig{
		Camera:   camera,
		Config:   cfg,
		Position: math.Vec3{Z: cfg.BaseZ},
	}
}

// Update advances the rig by delta seconds.
func (r *Rig) Update(delta, scrollY, viewportHeight float64, cursor math.Vec2) {
	if viewportHeight > 0 {
		r.Position.Y = -scrollY / viewportHeight * r.Config.ObjectsDistance
	}

	r.Target = math.Vec2{
		X: cursor.X * r.Config.ParallaxAmount,
		Y: -cursor.Y * r.Config.ParallaxAmount,
	}

	// A step factor above 1 would carry Current past Target.
	k := gomath.Min(r.Config.SmoothingRate*delta, 1)
	if k > 0 {
		r.Current = r.Current.Add(r.Target.Sub(r.Current).Scale(k))
	}

	r.Group.X = r.Current.X
	r.Group.Y = r.Current.Y
}

// WorldPosition returns the camera position in world space.
func (r *Rig) WorldPosition() math.Vec3 {
	return r.Group.Add(r.Position)
}

// ViewMatrix returns the world-to-camera transform.
func (r *Rig) ViewMatrix() math.Mat4 {
	return math.Translate(r.Group).Mul(math.Translate(r.Position)).InverseRigid()
}

// ProjectionMatrix returns the camera projection.
func (r *Rig) ProjectionMatrix() math.Mat4 {
	return r.Camera.ProjectionMatrix()
}

// SetAspect forwards an aspect change to the camera.
func (r *Rig) SetAspect(aspect float64) {
	r.Camera.SetAspect(aspect)
}
