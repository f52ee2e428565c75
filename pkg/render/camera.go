package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera holds the perspective projection. The view side comes from the
// world's camera pose.
type Camera struct {
	fov    float32 // Vertical field of view in degrees
	near   float32
	far    float32
	aspect float32

	projection mgl32.Mat4
}

// NewCamera creates a camera for a viewport of width x height
func NewCamera(fov, near, far float32, width, height int) *Camera {
	c := &Camera{
		fov:  fov,
		near: near,
		far:  far,
	}
	c.UpdateProjectionMatrix(width, height)
	return c
}

// UpdateProjectionMatrix recomputes the projection for a new viewport size.
// A zero dimension (minimized window) keeps the previous aspect.
func (c *Camera) UpdateProjectionMatrix(width, height int) {
	if width > 0 && height > 0 {
		c.aspect = float32(width) / float32(height)
	}
	if c.aspect == 0 {
		c.aspect = 1
	}
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), c.aspect, c.near, c.far)
}

// ProjectionMatrix returns the current projection matrix
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Aspect returns the current width/height ratio
func (c *Camera) Aspect() float32 {
	return c.aspect
}
