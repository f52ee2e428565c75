package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidSettings is returned by Settings.Validate
var ErrInvalidSettings = errors.New("invalid settings")

// SpeedSettings bounds the speed scalar
type SpeedSettings struct {
	Default float32 `toml:"default"`
	Min     float32 `toml:"min"`
	Max     float32 `toml:"max"`
	Step    float32 `toml:"step"`
}

// Settings tunes the simulation
type Settings struct {
	Collectibles    int           `toml:"collectibles"`
	SpawnRange      float32       `toml:"spawn_range"`
	StarfieldPoints int           `toml:"starfield_points"`
	StarfieldRange  float32       `toml:"starfield_range"`
	CameraStart     mgl32.Vec3    `toml:"camera_start"`
	CameraExtent    float32       `toml:"camera_extent"`
	Speed           SpeedSettings `toml:"speed"`
	RotationSpeed   float32       `toml:"rotation_speed"`
	Damping         float32       `toml:"damping"`
	Spin            float32       `toml:"spin"`
	Seed            int64         `toml:"seed"` // 0 picks a time-based seed
}

// DefaultSettings returns the stock tuning
func DefaultSettings() Settings {
	return Settings{
		Collectibles:    DefaultCollectibles,
		SpawnRange:      DefaultSpawnRange,
		StarfieldPoints: DefaultStarfieldPoints,
		StarfieldRange:  DefaultStarfieldRange,
		CameraStart:     mgl32.Vec3{0, 0, 5},
		CameraExtent:    DefaultCameraExtent,
		Speed: SpeedSettings{
			Default: DefaultSpeed,
			Min:     MinSpeed,
			Max:     MaxSpeed,
			Step:    SpeedStep,
		},
		RotationSpeed: DefaultRotationSpeed,
		Damping:       DefaultDamping,
		Spin:          DefaultSpin,
	}
}

// Validate checks that the settings describe a playable world
func (s Settings) Validate() error {
	switch {
	case s.Collectibles < 0:
		return fmt.Errorf("%w: collectibles must not be negative, got %d", ErrInvalidSettings, s.Collectibles)
	case s.StarfieldPoints < 0:
		return fmt.Errorf("%w: starfield points must not be negative, got %d", ErrInvalidSettings, s.StarfieldPoints)
	case s.Speed.Min > s.Speed.Max:
		return fmt.Errorf("%w: speed min %.2f above max %.2f", ErrInvalidSettings, s.Speed.Min, s.Speed.Max)
	case s.Speed.Default < s.Speed.Min || s.Speed.Default > s.Speed.Max:
		return fmt.Errorf("%w: default speed %.2f outside [%.2f, %.2f]", ErrInvalidSettings, s.Speed.Default, s.Speed.Min, s.Speed.Max)
	case s.Speed.Step <= 0:
		return fmt.Errorf("%w: speed step must be positive, got %.2f", ErrInvalidSettings, s.Speed.Step)
	case s.Damping <= 0 || s.Damping >= 1:
		return fmt.Errorf("%w: damping must be in (0, 1), got %.3f", ErrInvalidSettings, s.Damping)
	case s.CameraExtent < 0:
		return fmt.Errorf("%w: camera extent must not be negative, got %.2f", ErrInvalidSettings, s.CameraExtent)
	}
	return nil
}

// Rand returns a random source seeded from Seed, or from the clock when Seed is 0
func (s Settings) Rand() *rand.Rand {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
