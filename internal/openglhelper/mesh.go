package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is an indexed triangle mesh uploaded once. Each vertex is six floats:
// position followed by normal.
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32
}

// NewMesh uploads interleaved position/normal vertices and triangle indices
func NewMesh(vertices []float32, indices []uint32) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	ebo := NewEBO(indices, StaticDraw)

	// Position attribute (3 floats)
	vao.SetVertexAttribPointer(0, 3, 6, 0)
	// Normal attribute (3 floats)
	vao.SetVertexAttribPointer(1, 3, 6, 3)

	vao.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(indices)),
	}
}

// Draw renders the mesh with whichever shader is in use
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}

// PointCloud is a set of positions drawn as GL points
type PointCloud struct {
	vao   *VertexArrayObject
	vbo   *BufferObject
	count int32
}

// NewPointCloud uploads points as tightly packed vec3 positions
func NewPointCloud(points []mgl32.Vec3) *PointCloud {
	data := make([]float32, 0, len(points)*3)
	for _, p := range points {
		data = append(data, p[0], p[1], p[2])
	}

	vao := NewVAO()
	vao.Bind()
	vbo := NewVBO(data, StaticDraw)
	vao.SetVertexAttribPointer(0, 3, 3, 0)
	vao.Unbind()

	return &PointCloud{vao: vao, vbo: vbo, count: int32(len(points))}
}

// Draw renders every point
func (p *PointCloud) Draw() {
	if p.count == 0 {
		return
	}
	p.vao.Bind()
	gl.DrawArrays(gl.POINTS, 0, p.count)
	p.vao.Unbind()
}

// Delete releases all resources
func (p *PointCloud) Delete() {
	p.vao.Delete()
	p.vbo.Delete()
}
