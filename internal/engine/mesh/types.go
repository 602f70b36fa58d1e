// Package mesh generates the parametric shapes displayed by the scene.
package mesh

// Vertex represents a mesh vertex with position and normal.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// FloatsPerVertex is the interleaved vertex stride in floats.
const FloatsPerVertex = 6

// Geometry holds triangle mesh data ready for GPU upload.
type Geometry struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

func emptyBounds() Bounds {
	return Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
}

func updateBounds(b *Bounds, pos [3]float32) {
	for i := 0; i < 3; i++ {
		if pos[i] < b.Min[i] {
			b.Min[i] = pos[i]
		}
		if pos[i] > b.Max[i] {
			b.Max[i] = pos[i]
		}
	}
}

// Interleaved returns the vertex data as [px py pz nx ny nz] per vertex.
func (g *Geometry) Interleaved() []float32 {
	out := make([]float32, 0, len(g.Vertices)*FloatsPerVertex)
	for _, v := range g.Vertices {
		out = append(out, v.Position[0], v.Position[1], v.Position[2])
		out = append(out, v.Normal[0], v.Normal[1], v.Normal[2])
	}
	return out
}

// TriangleCount returns the number of indexed triangles.
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

func (g *Geometry) add(pos, normal [3]float32) {
	g.Vertices = append(g.Vertices, Vertex{Position: pos, Normal: normal})
	updateBounds(&g.Bounds, pos)
}

func (g *Geometry) tri(a, b, c int) {
	g.Indices = append(g.Indices, uint32(a), uint32(b), uint32(c))
}
