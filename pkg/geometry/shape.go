// Package geometry builds the CPU-side meshes and bounding volumes used by the
// game and the renderer: 2D outlines, extrusion with bevels, triangulation and AABBs.
package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrDegeneratePolygon is returned when an outline cannot be triangulated
var ErrDegeneratePolygon = errors.New("degenerate polygon")

// Shape is a closed 2D outline. The closing point may be repeated or omitted.
type Shape []mgl32.Vec2

// StarShape returns the five-pointed star outline used for collectibles
func StarShape() Shape {
	return Shape{
		{0, 0.5},
		{0.2, 0.2},
		{0.5, 0.2},
		{0.3, 0},
		{0.4, -0.3},
		{0, -0.1},
		{-0.4, -0.3},
		{-0.3, 0},
		{-0.5, 0.2},
		{-0.2, 0.2},
		{0, 0.5},
	}
}

// Points returns the outline without a repeated closing point, wound counter-clockwise
func (s Shape) Points() []mgl32.Vec2 {
	pts := make([]mgl32.Vec2, len(s))
	copy(pts, s)

	if len(pts) > 1 && pts[0].ApproxEqual(pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}

	if SignedArea(pts) < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return pts
}

// SignedArea returns the shoelace area of an outline; positive when counter-clockwise
func SignedArea(pts []mgl32.Vec2) float32 {
	var area float32
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i][0]*pts[j][1] - pts[j][0]*pts[i][1]
	}
	return area / 2
}

// Triangulate ear-clips a simple counter-clockwise polygon. The returned indices
// refer to pts, three per triangle, all wound counter-clockwise. Collinear vertices
// are dropped without emitting a triangle.
func Triangulate(pts []mgl32.Vec2) ([]uint32, error) {
	if len(pts) < 3 {
		return nil, fmt.Errorf("%w: %d vertices", ErrDegeneratePolygon, len(pts))
	}

	remaining := make([]int, len(pts))
	for i := range remaining {
		remaining[i] = i
	}
	indices := make([]uint32, 0, (len(pts)-2)*3)

	for len(remaining) > 3 {
		clipped := false
		for i := range remaining {
			prev := remaining[(i+len(remaining)-1)%len(remaining)]
			cur := remaining[i]
			next := remaining[(i+1)%len(remaining)]

			turn := cross2(pts[cur].Sub(pts[prev]), pts[next].Sub(pts[cur]))
			if math.Abs(float64(turn)) < 1e-9 {
				remaining = append(remaining[:i], remaining[i+1:]...)
				clipped = true
				break
			}
			if turn < 0 || !isEar(pts, remaining, prev, cur, next) {
				continue
			}

			indices = append(indices, uint32(prev), uint32(cur), uint32(next))
			remaining = append(remaining[:i], remaining[i+1:]...)
			clipped = true
			break
		}

		if !clipped {
			return nil, fmt.Errorf("%w: no ear found with %d vertices left", ErrDegeneratePolygon, len(remaining))
		}
	}

	a, b, c := remaining[0], remaining[1], remaining[2]
	if cross2(pts[b].Sub(pts[a]), pts[c].Sub(pts[b])) > 0 {
		indices = append(indices, uint32(a), uint32(b), uint32(c))
	}
	if len(indices) == 0 {
		return nil, fmt.Errorf("%w: zero area", ErrDegeneratePolygon)
	}
	return indices, nil
}

// isEar reports whether no other remaining vertex lies inside triangle prev,cur,next
func isEar(pts []mgl32.Vec2, remaining []int, prev, cur, next int) bool {
	a, b, c := pts[prev], pts[cur], pts[next]
	for _, idx := range remaining {
		if idx == prev || idx == cur || idx == next {
			continue
		}
		if pointInTriangle(pts[idx], a, b, c) {
			return false
		}
	}
	return true
}

func pointInTriangle(p, a, b, c mgl32.Vec2) bool {
	d1 := cross2(b.Sub(a), p.Sub(a))
	d2 := cross2(c.Sub(b), p.Sub(b))
	d3 := cross2(a.Sub(c), p.Sub(c))
	return d1 >= 0 && d2 >= 0 && d3 >= 0
}

func cross2(u, v mgl32.Vec2) float32 {
	return u[0]*v[1] - u[1]*v[0]
}
