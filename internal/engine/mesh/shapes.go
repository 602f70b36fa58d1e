package mesh

import (
	gomath "math"

	"github.com/hnrq/scroll-based-animation-sub001/pkg/math"
)

func vec32(v math.Vec3) [3]float32 {
	return v.Array32()
}

// Torus builds a ring of the given radius around the Z axis with a
// circular tube cross-section.
func Torus(radius, tube float64, radialSegments, tubularSegments int) *Geometry {
	radialSegments = max(radialSegments, 3)
	tubularSegments = max(tubularSegments, 3)

	g := &Geometry{Name: "torus", Bounds: emptyBounds()}

	for j := 0; j <= radialSegments; j++ {
		v := float64(j) / float64(radialSegments) * 2 * gomath.Pi
		for i := 0; i <= tubularSegments; i++ {
			u := float64(i) / float64(tubularSegments) * 2 * gomath.Pi

			pos := math.Vec3{
				X: (radius + tube*gomath.Cos(v)) * gomath.Cos(u),
				Y: (radius + tube*gomath.Cos(v)) * gomath.Sin(u),
				Z: tube * gomath.Sin(v),
			}
			centre := math.Vec3{X: radius * gomath.Cos(u), Y: radius * gomath.Sin(u)}
			g.add(vec32(pos), vec32(pos.Sub(centre).Normalize()))
		}
	}

	row := tubularSegments + 1
	for j := 1; j <= radialSegments; j++ {
		for i := 1; i <= tubularSegments; i++ {
			a := row*j + i - 1
			b := row*(j-1) + i - 1
			c := row*(j-1) + i
			d := row*j + i
			g.tri(a, b, d)
			g.tri(b, c, d)
		}
	}
	return g
}

// Cone builds a cone of the given base radius and height, centred on the
// origin with its apex on +Y and a closed base.
func Cone(radius, height float64, radialSegments int) *Geometry {
	radialSegments = max(radialSegments, 3)

	g := &Geometry{Name: "cone", Bounds: emptyBounds()}
	half := height / 2
	slope := radius / height

	// Side: apex ring (y = 0) and base ring (y = 1).
	for y := 0; y <= 1; y++ {
		r := float64(y) * radius
		for x := 0; x <= radialSegments; x++ {
			theta := float64(x) / float64(radialSegments) * 2 * gomath.Pi
			sin, cos := gomath.Sincos(theta)
			pos := math.Vec3{X: r * sin, Y: -float64(y)*height + half, Z: r * cos}
			normal := math.Vec3{X: sin, Y: slope, Z: cos}.Normalize()
			g.add(vec32(pos), vec32(normal))
		}
	}
	row := radialSegments + 1
	for x := 0; x < radialSegments; x++ {
		b := row + x
		c := row + x + 1
		d := x + 1
		g.tri(b, c, d)
	}

	// Base cap.
	down := [3]float32{0, -1, 0}
	centreStart := len(g.Vertices)
	for x := 0; x < radialSegments; x++ {
		g.add([3]float32{0, float32(-half), 0}, down)
	}
	rimStart := len(g.Vertices)
	for x := 0; x <= radialSegments; x++ {
		theta := float64(x) / float64(radialSegments) * 2 * gomath.Pi
		sin, cos := gomath.Sincos(theta)
		g.add(vec32(math.Vec3{X: radius * sin, Y: -half, Z: radius * cos}), down)
	}
	for x := 0; x < radialSegments; x++ {
		g.tri(rimStart+x+1, rimStart+x, centreStart+x)
	}
	return g
}

// TorusKnot builds a tube following a (p, q) torus knot, with p = 2 and
// q = 3 (a trefoil).
func TorusKnot(radius, tube float64, tubularSegments, radialSegments int) *Geometry {
	const p, q = 2.0, 3.0

	tubularSegments = max(tubularSegments, 3)
	radialSegments = max(radialSegments, 3)

	g := &Geometry{Name: "torus-knot", Bounds: emptyBounds()}

	for i := 0; i <= tubularSegments; i++ {
		u := float64(i) / float64(tubularSegments) * p * 2 * gomath.Pi

		p1 := knotPoint(u, p, q, radius)
		p2 := knotPoint(u+0.01, p, q, radius)

		// Frenet-like frame along the curve.
		t := p2.Sub(p1)
		n := p2.Add(p1)
		b := t.Cross(n)
		n = b.Cross(t)
		b = b.Normalize()
		n = n.Normalize()

		for j := 0; j <= radialSegments; j++ {
			v := float64(j) / float64(radialSegments) * 2 * gomath.Pi
			cx := -tube * gomath.Cos(v)
			cy := tube * gomath.Sin(v)

			pos := p1.Add(n.Scale(cx)).Add(b.Scale(cy))
			g.add(vec32(pos), vec32(pos.Sub(p1).Normalize()))
		}
	}

	row := radialSegments + 1
	for j := 1; j <= tubularSegments; j++ {
		for i := 1; i <= radialSegments; i++ {
			a := row*(j-1) + (i - 1)
			b := row*j + (i - 1)
			c := row*j + i
			d := row*(j-1) + i
			g.tri(a, b, d)
			g.tri(b, c, d)
		}
	}
	return g
}

func knotPoint(u, p, q, radius float64) math.Vec3 {
	cu, su := gomath.Cos(u), gomath.Sin(u)
	quOverP := q / p * u
	cs := gomath.Cos(quOverP)
	return math.Vec3{
		X: radius * (2 + cs) * 0.5 * cu,
		Y: radius * (2 + cs) * su * 0.5,
		Z: radius * gomath.Sin(quOverP) * 0.5,
	}
}
