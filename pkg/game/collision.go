package game

import (
	"slices"

	"github.com/leterax/go-starfield/pkg/geometry"
)

// Volumes computes bounding volumes for the camera and collectibles and tests
// them for overlap
type Volumes interface {
	CameraVolume(camera Pose) geometry.AABB
	CollectibleVolume(c *Collectible) geometry.AABB
	Intersects(a, b geometry.AABB) bool
}

// BoxVolumes bounds collectibles by their mesh box transformed into world space,
// and the camera by a cube around its position
type BoxVolumes struct {
	Local        geometry.AABB // Collectible mesh bounds in local space
	CameraExtent float32
}

// NewBoxVolumes creates box volumes for a collectible mesh with the given local bounds
func NewBoxVolumes(local geometry.AABB, cameraExtent float32) BoxVolumes {
	return BoxVolumes{Local: local, CameraExtent: cameraExtent}
}

// CameraVolume implements Volumes
func (v BoxVolumes) CameraVolume(camera Pose) geometry.AABB {
	return geometry.NewAABB(camera.Position, v.CameraExtent)
}

// CollectibleVolume implements Volumes
func (v BoxVolumes) CollectibleVolume(c *Collectible) geometry.AABB {
	return v.Local.Transform(c.Pose.Matrix())
}

// Intersects implements Volumes
func (v BoxVolumes) Intersects(a, b geometry.AABB) bool {
	return a.Intersects(b)
}

// CheckCollisions removes every collectible whose volume overlaps the camera's,
// adds one point per removal and hands each removed collectible to onCollect.
// It returns how many were collected.
func (w *World) CheckCollisions(v Volumes, onCollect func(*Collectible)) int {
	camera := v.CameraVolume(w.Camera)

	collected := 0
	for i := 0; i < len(w.Collectibles); {
		c := w.Collectibles[i]
		if !v.Intersects(camera, v.CollectibleVolume(c)) {
			i++
			continue
		}

		// The next entry shifts into i, so i is not advanced
		w.Collectibles = slices.Delete(w.Collectibles, i, i+1)
		w.Score++
		collected++

		if onCollect != nil {
			onCollect(c)
		}
	}
	return collected
}
