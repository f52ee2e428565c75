package game

import (
	"errors"
	"testing"
)

func TestDefaultSettingsValid(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"negative collectibles", func(s *Settings) { s.Collectibles = -1 }},
		{"negative starfield", func(s *Settings) { s.StarfieldPoints = -5 }},
		{"min above max", func(s *Settings) { s.Speed.Min = 2 }},
		{"default out of range", func(s *Settings) { s.Speed.Default = 3 }},
		{"zero step", func(s *Settings) { s.Speed.Step = 0 }},
		{"no damping", func(s *Settings) { s.Damping = 1 }},
		{"zero damping", func(s *Settings) { s.Damping = 0 }},
		{"negative extent", func(s *Settings) { s.CameraExtent = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(&s)
			if err := s.Validate(); !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Validate = %v, want ErrInvalidSettings", err)
			}
		})
	}
}

func TestNewWorldPopulation(t *testing.T) {
	s := DefaultSettings()
	s.Seed = 42

	w := NewWorld(s, s.Rand())
	if len(w.Collectibles) != 20 {
		t.Fatalf("collectibles = %d, want 20", len(w.Collectibles))
	}
	if len(w.Starfield) != DefaultStarfieldPoints {
		t.Fatalf("starfield = %d, want %d", len(w.Starfield), DefaultStarfieldPoints)
	}

	for _, c := range w.Collectibles {
		for i := 0; i < 3; i++ {
			if p := c.Pose.Position[i]; p < -50 || p >= 50 {
				t.Errorf("collectible %d axis %d = %f, want [-50, 50)", c.ID, i, p)
			}
			if col := c.Color[i]; col < 0 || col > 1 {
				t.Errorf("collectible %d color channel %d = %f", c.ID, i, col)
			}
		}
	}
	for _, p := range w.Starfield {
		for i := 0; i < 3; i++ {
			if p[i] < -1000 || p[i] >= 1000 {
				t.Fatalf("starfield point %v outside [-1000, 1000)", p)
			}
		}
	}

	again := NewWorld(s, s.Rand())
	for i := range w.Collectibles {
		if w.Collectibles[i].Pose.Position != again.Collectibles[i].Pose.Position {
			t.Fatalf("collectible %d differs between worlds with the same seed", i)
		}
	}

	if w.Camera.Position.Z() != 5 || w.Score != 0 || !approx(w.Speed.Current, 0.1) {
		t.Errorf("camera=%v score=%d speed=%f", w.Camera.Position, w.Score, w.Speed.Current)
	}
}
