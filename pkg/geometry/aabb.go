package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned bounding box. A box whose Max is below its Min on any
// axis is empty and intersects nothing.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// EmptyAABB returns a box containing no points
func EmptyAABB() AABB {
	inf := float32(math.Inf(1))
	return AABB{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// NewAABB creates a box centered on center extending halfExtent along every axis
func NewAABB(center mgl32.Vec3, halfExtent float32) AABB {
	h := mgl32.Vec3{halfExtent, halfExtent, halfExtent}
	return AABB{Min: center.Sub(h), Max: center.Add(h)}
}

// AABBFromPoints returns the smallest box containing all points
func AABBFromPoints(points ...mgl32.Vec3) AABB {
	box := EmptyAABB()
	for _, p := range points {
		box = box.ExpandByPoint(p)
	}
	return box
}

// IsEmpty reports whether the box contains no points
func (b AABB) IsEmpty() bool {
	return b.Max[0] < b.Min[0] || b.Max[1] < b.Min[1] || b.Max[2] < b.Min[2]
}

// ExpandByPoint grows the box to contain p
func (b AABB) ExpandByPoint(p mgl32.Vec3) AABB {
	for i := 0; i < 3; i++ {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
	return b
}

// Intersects reports whether the two boxes overlap. Touching faces count as overlap.
func (b AABB) Intersects(o AABB) bool {
	for i := 0; i < 3; i++ {
		if o.Max[i] < b.Min[i] || o.Min[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Contains reports whether p lies inside the box or on its boundary
func (b AABB) Contains(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Center returns the midpoint of the box
func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the box dimensions
func (b AABB) Size() mgl32.Vec3 {
	if b.IsEmpty() {
		return mgl32.Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Corners returns the eight corners of the box
func (b AABB) Corners() [8]mgl32.Vec3 {
	var corners [8]mgl32.Vec3
	for i := range corners {
		corners[i] = mgl32.Vec3{
			pick(i&1 != 0, b.Max[0], b.Min[0]),
			pick(i&2 != 0, b.Max[1], b.Min[1]),
			pick(i&4 != 0, b.Max[2], b.Min[2]),
		}
	}
	return corners
}

// Transform returns the world-space box around this box's corners after applying m
func (b AABB) Transform(m mgl32.Mat4) AABB {
	if b.IsEmpty() {
		return b
	}

	out := EmptyAABB()
	for _, c := range b.Corners() {
		out = out.ExpandByPoint(mgl32.TransformCoordinate(c, m))
	}
	return out
}

func pick(cond bool, a, b float32) float32 {
	if cond {
		return a
	}
	return b
}
