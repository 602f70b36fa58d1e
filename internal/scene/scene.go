// Package scene builds the objects, particles and light shown behind the
// scrolled document.
package scene

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/hnrq/scroll-based-animation-sub001/internal/engine/lighting"
	"github.com/hnrq/scroll-based-animation-sub001/internal/engine/mesh"
	"github.com/hnrq/scroll-based-animation-sub001/internal/engine/texture"
	"github.com/hnrq/scroll-based-animation-sub001/internal/page"
	"github.com/hnrq/scroll-based-animation-sub001/pkg/math"
)

// ToonMaterial shades with flat bands looked up from Gradient.
type ToonMaterial struct {
	Color    colorful.Color
	Gradient *texture.Gradient
}

// PointsMaterial draws particles as square points whose size shrinks with
// distance.
type PointsMaterial struct {
	Color colorful.Color
	Size  float64
}

// Object is the mesh bound to one section.
type Object struct {
	Name     string
	Section  int
	Geometry *mesh.Geometry
	Material *ToonMaterial
	Position math.Vec3
	Rotation math.Vec3
}

// ModelMatrix returns the object's local-to-world transform.
func (o *Object) ModelMatrix() math.Mat4 {
	return math.Compose(o.Position, o.Rotation)
}

// ParticleField is a fixed cloud of points spread over the whole scroll
// range.
type ParticleField struct {
	Count     int
	Positions []float32 // x, y, z per particle
	Material  *PointsMaterial
}

// Scene is everything the renderer draws.
type Scene struct {
	Objects   []*Object
	Particles *ParticleField
	Light     lighting.Directional
	Material  *ToonMaterial
}

// Rotations returns a pointer to each object's rotation, in section order.
func (s *Scene) Rotations() []*math.Vec3 {
	out := make([]*math.Vec3, len(s.Objects))
	for i, o := range s.Objects {
		out[i] = &o.Rotation
	}
	return out
}

// Spin adds a constant angular velocity to every object for delta seconds.
func (s *Scene) Spin(delta, rateX, rateY float64) {
	for _, o := range s.Objects {
		o.Rotation.X += delta * rateX
		o.Rotation.Y += delta * rateY
	}
}

// Options holds the composition parameters.
type Options struct {
	ObjectsDistance float64
	MaterialColor   colorful.Color
	ParticleCount   int
	ParticleSize    float64
	ParticleExtent  float64
	ParticlesColor  colorful.Color
	LightIntensity  float64
}

// Shapes is the geometry cycle assigned to sections in order.
var Shapes = []func() *mesh.Geometry{
	func() *mesh.Geometry { return mesh.Torus(1, 0.4, 16, 60) },
	func() *mesh.Geometry { return mesh.Cone(1, 2, 32) },
	func() *mesh.Geometry { return mesh.TorusKnot(0.8, 0.35, 100, 16) },
}

// Compose builds one object per anchor plus the particle field and the
// light. Section i's object sits at y = -ObjectsDistance*i, alternating
// right (even) and left (odd) of the axis.
func Compose(opts Options, anchors []page.Anchor, gradient *texture.Gradient, rng *rand.Rand) *Scene {
	material := &ToonMaterial{Color: opts.MaterialColor, Gradient: gradient}

	s := &Scene{
		Material: material,
		Light:    lighting.NewDirectional(math.Vec3{X: 1, Y: 1, Z: 0}, opts.LightIntensity),
	}

	geometries := make([]*mesh.Geometry, len(Shapes))
	for _, a := range anchors {
		shape := a.Index % len(Shapes)
		if geometries[shape] == nil {
			geometries[shape] = Shapes[shape]()
		}

		x := 1.0
		if a.Index%2 != 0 {
			x = -1
		}
		s.Objects = append(s.Objects, &Object{
			Name:     a.ID,
			Section:  a.Index,
			Geometry: geometries[shape],
			Material: material,
			Position: math.Vec3{X: x, Y: -opts.ObjectsDistance * float64(a.Index)},
		})
	}

	s.Particles = scatter(opts, len(anchors), rng)
	return s
}

func scatter(opts Options, sections int, rng *rand.Rand) *ParticleField {
	field := &ParticleField{
		Count:     opts.ParticleCount,
		Positions: make([]float32, opts.ParticleCount*3),
		Material:  &PointsMaterial{Color: opts.ParticlesColor, Size: opts.ParticleSize},
	}

	d := opts.ObjectsDistance
	span := d * float64(sections)
	for i := 0; i < opts.ParticleCount; i++ {
		field.Positions[i*3+0] = float32((rng.Float64() - 0.5) * opts.ParticleExtent)
		field.Positions[i*3+1] = float32(d*0.5 - rng.Float64()*span)
		field.Positions[i*3+2] = float32((rng.Float64() - 0.5) * opts.ParticleExtent)
	}
	return field
}
