package game

import (
	"math"
	"math/rand"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestSpeedIncreaseSteps(t *testing.T) {
	s := NewSpeed(DefaultSettings().Speed)

	for i := 0; i < 3; i++ {
		s.Increase()
	}
	if !approx(s.Current, 0.25) {
		t.Fatalf("speed after 3 increases = %f, want 0.25", s.Current)
	}

	for i := 0; i < 20; i++ {
		s.Increase()
	}
	if s.Current != s.Max {
		t.Fatalf("speed after 23 increases = %f, want max %f", s.Current, s.Max)
	}

	for i := 0; i < 40; i++ {
		s.Decrease()
	}
	if s.Current != s.Min {
		t.Fatalf("speed after 40 decreases = %f, want min %f", s.Current, s.Min)
	}
}

func TestSpeedStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewSpeed(DefaultSettings().Speed)

	for i := 0; i < 1000; i++ {
		if rng.Intn(2) == 0 {
			s.Increase()
		} else {
			s.Decrease()
		}
		if s.Current < s.Min || s.Current > s.Max {
			t.Fatalf("event %d: speed %f outside [%f, %f]", i, s.Current, s.Min, s.Max)
		}
	}
}

func TestNewSpeedClampsDefault(t *testing.T) {
	s := NewSpeed(SpeedSettings{Default: 5, Min: 0.05, Max: 1, Step: 0.05})
	if s.Current != 1 {
		t.Errorf("current = %f, want 1", s.Current)
	}
}
