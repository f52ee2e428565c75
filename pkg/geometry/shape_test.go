package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func triangleArea(a, b, c mgl32.Vec2) float32 {
	return cross2(b.Sub(a), c.Sub(a)) / 2
}

func TestStarShapePoints(t *testing.T) {
	pts := StarShape().Points()

	if len(pts) != 10 {
		t.Fatalf("len(points) = %d, want 10 (closing point dropped)", len(pts))
	}
	if area := SignedArea(pts); area <= 0 {
		t.Fatalf("signed area = %f, want positive (counter-clockwise)", area)
	}
}

func TestTriangulateCoversArea(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		tris  int
	}{
		{"square", Shape{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, 2},
		{"clockwise square", Shape{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, 2},
		{"star", StarShape(), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := tt.shape.Points()
			indices, err := Triangulate(pts)
			if err != nil {
				t.Fatalf("Triangulate: %v", err)
			}
			if len(indices)%3 != 0 {
				t.Fatalf("len(indices) = %d, not a multiple of 3", len(indices))
			}
			if tt.tris >= 0 && len(indices)/3 != tt.tris {
				t.Errorf("triangles = %d, want %d", len(indices)/3, tt.tris)
			}

			var sum float32
			for i := 0; i < len(indices); i += 3 {
				a := triangleArea(pts[indices[i]], pts[indices[i+1]], pts[indices[i+2]])
				if a <= 0 {
					t.Errorf("triangle %d has area %f, want positive winding", i/3, a)
				}
				sum += a
			}

			want := SignedArea(pts)
			if math.Abs(float64(sum-want)) > 1e-4 {
				t.Errorf("triangle area sum = %f, want %f", sum, want)
			}
		})
	}
}

func TestTriangulateDegenerate(t *testing.T) {
	tests := []struct {
		name string
		pts  []mgl32.Vec2
	}{
		{"two points", []mgl32.Vec2{{0, 0}, {1, 0}}},
		{"collinear", []mgl32.Vec2{{0, 0}, {1, 0}, {2, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Triangulate(tt.pts)
			if !errors.Is(err, ErrDegeneratePolygon) {
				t.Fatalf("err = %v, want ErrDegeneratePolygon", err)
			}
		})
	}
}

func TestExtrudeStar(t *testing.T) {
	settings := StarExtrudeSettings()
	mesh, err := Extrude(StarShape(), settings)
	if err != nil {
		t.Fatalf("Extrude: %v", err)
	}

	caps, err := Triangulate(StarShape().Points())
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}

	// 4 rings (front cap, body start, body end, back cap) give 3 wall bands of 10 quads
	wantTris := 2*len(caps)/3 + 3*10*2
	if got := mesh.TriangleCount(); got != wantTris {
		t.Errorf("triangles = %d, want %d", got, wantTris)
	}

	box := mesh.Bounds()
	if math.Abs(float64(box.Min.Z()+settings.BevelThickness)) > 1e-5 {
		t.Errorf("min z = %f, want %f", box.Min.Z(), -settings.BevelThickness)
	}
	if want := settings.Depth + settings.BevelThickness; math.Abs(float64(box.Max.Z()-want)) > 1e-5 {
		t.Errorf("max z = %f, want %f", box.Max.Z(), want)
	}
	if box.Max.X() <= 0.5 || box.Min.X() >= -0.5 {
		t.Errorf("x range [%f, %f] should be grown past the outline by the bevel", box.Min.X(), box.Max.X())
	}

	for i, v := range mesh.Vertices {
		if l := v.Normal.Len(); math.Abs(float64(l-1)) > 1e-4 {
			t.Fatalf("vertex %d normal length = %f, want 1", i, l)
		}
	}

	if got, want := len(mesh.Interleaved()), len(mesh.Vertices)*FloatsPerVertex; got != want {
		t.Errorf("interleaved length = %d, want %d", got, want)
	}
}

func TestExtrudeWithoutBevel(t *testing.T) {
	mesh, err := Extrude(StarShape(), ExtrudeSettings{Depth: 0.5, Steps: 2})
	if err != nil {
		t.Fatalf("Extrude: %v", err)
	}

	box := mesh.Bounds()
	want := AABB{Min: mgl32.Vec3{-0.5, -0.3, 0}, Max: mgl32.Vec3{0.5, 0.5, 0.5}}
	if !vecNear(box.Min, want.Min) || !vecNear(box.Max, want.Max) {
		t.Errorf("bounds = %v, want %v", box, want)
	}
}
