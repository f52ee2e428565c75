package geometry

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ExtrudeSettings controls how a 2D outline is pushed into a solid along +Z
type ExtrudeSettings struct {
	Depth          float32 // Body length along Z, excluding bevels
	Steps          int     // Body subdivisions along Z
	BevelEnabled   bool
	BevelThickness float32 // How far the bevel extends beyond the body along Z
	BevelSize      float32 // How far the body walls are pushed out from the outline
	BevelSegments  int
}

// StarExtrudeSettings returns the extrusion used for collectible stars
func StarExtrudeSettings() ExtrudeSettings {
	return ExtrudeSettings{
		Depth:          0.1,
		Steps:          1,
		BevelEnabled:   true,
		BevelThickness: 0.1,
		BevelSize:      0.1,
		BevelSegments:  1,
	}
}

// ring is one cross-section of the extruded solid
type ring struct {
	z      float32
	offset float32 // Distance the outline is pushed along its bevel vectors
}

// Extrude builds a closed solid from shape: a front cap, bevel and body walls, and
// a back cap. With bevels the caps sit at -BevelThickness and Depth+BevelThickness
// with the original outline, and the body walls use the outline grown by BevelSize.
func Extrude(shape Shape, settings ExtrudeSettings) (*Mesh, error) {
	pts := shape.Points()
	capTriangles, err := Triangulate(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to triangulate shape: %w", err)
	}

	rings := buildRings(settings)
	bevel := bevelVectors(pts)

	contour := func(r ring) []mgl32.Vec3 {
		out := make([]mgl32.Vec3, len(pts))
		for i, p := range pts {
			out[i] = mgl32.Vec3{p[0] + bevel[i][0]*r.offset, p[1] + bevel[i][1]*r.offset, r.z}
		}
		return out
	}

	mesh := NewMesh()

	// Caps
	mesh.addCap(contour(rings[0]), capTriangles, mgl32.Vec3{0, 0, -1}, true)
	mesh.addCap(contour(rings[len(rings)-1]), capTriangles, mgl32.Vec3{0, 0, 1}, false)

	// Walls between consecutive rings
	for r := 0; r+1 < len(rings); r++ {
		lo, hi := contour(rings[r]), contour(rings[r+1])
		for i := range pts {
			j := (i + 1) % len(pts)
			mesh.AddQuad(lo[i], lo[j], hi[j], hi[i])
		}
	}

	return mesh, nil
}

func buildRings(settings ExtrudeSettings) []ring {
	steps := max(settings.Steps, 1)
	segments := 0
	bodyOffset := float32(0)
	if settings.BevelEnabled {
		segments = max(settings.BevelSegments, 1)
		bodyOffset = settings.BevelSize
	}

	bevelAt := func(b int) (z, offset float32) {
		t := float64(b) / float64(segments) * math.Pi / 2
		return settings.BevelThickness * float32(math.Cos(t)), settings.BevelSize * float32(math.Sin(t))
	}

	rings := make([]ring, 0, steps+1+2*segments)

	// Front bevel
	for b := 0; b < segments; b++ {
		z, offset := bevelAt(b)
		rings = append(rings, ring{z: -z, offset: offset})
	}

	// Body
	for s := 0; s <= steps; s++ {
		rings = append(rings, ring{z: settings.Depth * float32(s) / float32(steps), offset: bodyOffset})
	}

	// Back bevel
	for b := segments - 1; b >= 0; b-- {
		z, offset := bevelAt(b)
		rings = append(rings, ring{z: settings.Depth + z, offset: offset})
	}

	return rings
}

// bevelVectors returns, for each vertex of a counter-clockwise outline, the offset
// that moves both adjacent edges outward by one unit.
func bevelVectors(pts []mgl32.Vec2) []mgl32.Vec2 {
	out := make([]mgl32.Vec2, len(pts))
	for i := range pts {
		prev := pts[(i+len(pts)-1)%len(pts)]
		next := pts[(i+1)%len(pts)]

		n1 := edgeNormal(prev, pts[i])
		n2 := edgeNormal(pts[i], next)

		denom := 1 + n1.Dot(n2)
		if denom < 1e-6 {
			out[i] = n1
			continue
		}
		out[i] = n1.Add(n2).Mul(1 / denom)
	}
	return out
}

// edgeNormal returns the outward unit normal of edge a->b on a counter-clockwise outline
func edgeNormal(a, b mgl32.Vec2) mgl32.Vec2 {
	d := b.Sub(a)
	return mgl32.Vec2{d[1], -d[0]}.Normalize()
}
