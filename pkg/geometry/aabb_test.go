package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func vecNear(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < 1e-5
}

func TestAABBIntersects(t *testing.T) {
	unit := NewAABB(mgl32.Vec3{}, 0.5)

	tests := []struct {
		name  string
		other AABB
		want  bool
	}{
		{"same box", unit, true},
		{"overlapping", NewAABB(mgl32.Vec3{0.6, 0, 0}, 0.5), true},
		{"touching faces", NewAABB(mgl32.Vec3{1, 0, 0}, 0.5), true},
		{"apart on x", NewAABB(mgl32.Vec3{1.1, 0, 0}, 0.5), false},
		{"apart on z", NewAABB(mgl32.Vec3{0, 0, -3}, 0.5), false},
		{"contained", NewAABB(mgl32.Vec3{0.1, 0.1, 0.1}, 0.1), true},
		{"empty", EmptyAABB(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unit.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(unit); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAABBFromPoints(t *testing.T) {
	box := AABBFromPoints(mgl32.Vec3{1, -2, 3}, mgl32.Vec3{-1, 2, 0})

	if box.Min != (mgl32.Vec3{-1, -2, 0}) || box.Max != (mgl32.Vec3{1, 2, 3}) {
		t.Fatalf("box = %v", box)
	}
	if !box.Contains(mgl32.Vec3{0, 0, 1}) {
		t.Error("expected box to contain its center region")
	}
	if got := box.Size(); got != (mgl32.Vec3{2, 4, 3}) {
		t.Errorf("size = %v, want [2 4 3]", got)
	}
	if !EmptyAABB().IsEmpty() {
		t.Error("expected EmptyAABB to be empty")
	}
	if EmptyAABB().Size() != (mgl32.Vec3{}) {
		t.Error("expected empty box to have zero size")
	}
}

func TestAABBTransform(t *testing.T) {
	box := AABB{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{2, 1, 1}}

	moved := box.Transform(mgl32.Translate3D(10, 0, -5))
	if !vecNear(moved.Min, mgl32.Vec3{10, 0, -5}) || !vecNear(moved.Max, mgl32.Vec3{12, 1, -4}) {
		t.Errorf("translated box = %v", moved)
	}

	// Quarter turn about Z maps x extent onto y
	turned := box.Transform(mgl32.HomogRotate3DZ(mgl32.DegToRad(90)))
	if !vecNear(turned.Min, mgl32.Vec3{-1, 0, 0}) || !vecNear(turned.Max, mgl32.Vec3{0, 2, 1}) {
		t.Errorf("rotated box = %v", turned)
	}

	if !EmptyAABB().Transform(mgl32.Translate3D(1, 1, 1)).IsEmpty() {
		t.Error("expected transformed empty box to stay empty")
	}
}
