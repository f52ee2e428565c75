package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the interleaved vertex size: position (3) + normal (3)
const FloatsPerVertex = 6

// Vertex represents a vertex in a mesh
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// Mesh represents an indexed triangle mesh with flat per-face normals
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// NewMesh creates a new empty mesh
func NewMesh() *Mesh {
	return &Mesh{
		Vertices: make([]Vertex, 0),
		Indices:  make([]uint32, 0),
	}
}

// AddTriangle adds a counter-clockwise triangle with its face normal
func (m *Mesh) AddTriangle(a, b, c mgl32.Vec3) {
	normal := faceNormal(a, b, c)
	base := uint32(len(m.Vertices))

	m.Vertices = append(m.Vertices,
		Vertex{Position: a, Normal: normal},
		Vertex{Position: b, Normal: normal},
		Vertex{Position: c, Normal: normal},
	)
	m.Indices = append(m.Indices, base, base+1, base+2)
}

// AddQuad adds a counter-clockwise quad as two triangles sharing one normal
func (m *Mesh) AddQuad(a, b, c, d mgl32.Vec3) {
	normal := faceNormal(a, b, c)
	base := uint32(len(m.Vertices))

	for _, p := range [4]mgl32.Vec3{a, b, c, d} {
		m.Vertices = append(m.Vertices, Vertex{Position: p, Normal: normal})
	}

	// Adding quad as two triangles
	m.Indices = append(m.Indices, base, base+1, base+2)
	m.Indices = append(m.Indices, base, base+2, base+3)
}

// addCap adds a flat polygon from a triangulation of points. flip reverses the
// winding so the cap faces -Z.
func (m *Mesh) addCap(points []mgl32.Vec3, triangles []uint32, normal mgl32.Vec3, flip bool) {
	base := uint32(len(m.Vertices))
	for _, p := range points {
		m.Vertices = append(m.Vertices, Vertex{Position: p, Normal: normal})
	}

	for i := 0; i+2 < len(triangles); i += 3 {
		a, b, c := triangles[i], triangles[i+1], triangles[i+2]
		if flip {
			b, c = c, b
		}
		m.Indices = append(m.Indices, base+a, base+b, base+c)
	}
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds returns the local-space bounding box of all vertices
func (m *Mesh) Bounds() AABB {
	box := EmptyAABB()
	for _, v := range m.Vertices {
		box = box.ExpandByPoint(v.Position)
	}
	return box
}

// Interleaved flattens the vertices into position/normal float pairs for upload
func (m *Mesh) Interleaved() []float32 {
	data := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		data = append(data, v.Position[:]...)
		data = append(data, v.Normal[:]...)
	}
	return data
}

func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() < 1e-9 {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}
