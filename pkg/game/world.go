package game

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Collectible is a star that scores a point when the camera flies into it
type Collectible struct {
	ID    int
	Pose  Pose
	Color mgl32.Vec3
}

// World holds everything the frame driver advances: the camera, the remaining
// collectibles, the background starfield, score, speed, input and velocities.
type World struct {
	Camera       Pose
	Collectibles []*Collectible // Ordered; removal is permanent
	Starfield    []mgl32.Vec3

	Score int
	Speed *Speed
	Input *InputState

	Velocity        mgl32.Vec3 // Camera-local units per frame
	AngularVelocity mgl32.Vec3 // Radians per frame
}

// NewWorld creates a world populated from settings using rng for placement and color
func NewWorld(settings Settings, rng *rand.Rand) *World {
	w := &World{
		Camera:       Pose{Position: settings.CameraStart},
		Collectibles: make([]*Collectible, 0, settings.Collectibles),
		Starfield:    make([]mgl32.Vec3, 0, settings.StarfieldPoints),
		Speed:        NewSpeed(settings.Speed),
		Input:        NewInputState(),
	}

	for i := 0; i < settings.Collectibles; i++ {
		w.Collectibles = append(w.Collectibles, &Collectible{
			ID:    i,
			Pose:  Pose{Position: randomPoint(rng, settings.SpawnRange)},
			Color: randomColor(rng),
		})
	}

	for i := 0; i < settings.StarfieldPoints; i++ {
		w.Starfield = append(w.Starfield, randomPoint(rng, settings.StarfieldRange))
	}

	return w
}

// Remaining returns the number of collectibles not yet collected
func (w *World) Remaining() int {
	return len(w.Collectibles)
}

// Advance moves and turns the camera by the current velocities
func (w *World) Advance() {
	w.Camera.Translate(w.Velocity)
	w.Camera.Rotate(w.AngularVelocity)
}

// Spin turns every remaining collectible about its X and Y axes
func (w *World) Spin(delta float32) {
	for _, c := range w.Collectibles {
		c.Pose.Rotation[0] += delta
		c.Pose.Rotation[1] += delta
	}
}

// randomPoint returns a point uniformly inside a cube of the given edge length
// centered on the origin
func randomPoint(rng *rand.Rand, size float32) mgl32.Vec3 {
	return mgl32.Vec3{
		rng.Float32()*size - size/2,
		rng.Float32()*size - size/2,
		rng.Float32()*size - size/2,
	}
}

// randomColor picks a 24-bit color and splits it into normalized channels
func randomColor(rng *rand.Rand) mgl32.Vec3 {
	hex := rng.Intn(0x1000000)
	return mgl32.Vec3{
		float32((hex>>16)&0xff) / 255,
		float32((hex>>8)&0xff) / 255,
		float32(hex&0xff) / 255,
	}
}
