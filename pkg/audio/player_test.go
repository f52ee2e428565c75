package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/leterax/go-starfield/pkg/game"
)

func TestSynthChime(t *testing.T) {
	rate := beep.SampleRate(DefaultSampleRate)

	buf, err := synthChime(rate)
	if err != nil {
		t.Fatalf("synthChime: %v", err)
	}

	if got, want := buf.Len(), 2*rate.N(chimeNoteDuration); got != want {
		t.Fatalf("chime length = %d samples, want %d", got, want)
	}

	samples := make([][2]float64, buf.Len())
	n, _ := buf.Streamer(0, buf.Len()).Stream(samples)
	var peak float64
	for _, s := range samples[:n] {
		if s[0] < -1 || s[0] > 1 {
			t.Fatalf("sample out of range: %v", s[0])
		}
		if s[0] > peak {
			peak = s[0]
		}
	}
	if peak == 0 {
		t.Fatal("chime is silent")
	}
}

func TestDecayFadesOut(t *testing.T) {
	rate := beep.SampleRate(1000)
	ones := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})

	d := newDecay(ones, rate, 10)
	samples := make([][2]float64, 500)
	d.Stream(samples)

	if samples[0][0] != 1 {
		t.Errorf("first sample = %v, want 1", samples[0][0])
	}
	for i := 1; i < len(samples); i++ {
		if samples[i][0] > samples[i-1][0] {
			t.Fatalf("sample %d rose: %v > %v", i, samples[i][0], samples[i-1][0])
		}
	}
}

func TestLoadBufferErrors(t *testing.T) {
	rate := beep.SampleRate(DefaultSampleRate)

	_, err := loadBuffer(filepath.Join(t.TempDir(), "missing.mp3"), rate)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: got %v, want ErrNotExist", err)
	}

	junk := filepath.Join(t.TempDir(), "junk.mp3")
	if err := os.WriteFile(junk, []byte("not an mp3"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadBuffer(junk, rate); err == nil {
		t.Fatal("expected decode error for junk file")
	}
}

func TestNewPlayerFallbacks(t *testing.T) {
	dir := t.TempDir()
	settings := DefaultSettings()
	settings.CollectSound = filepath.Join(dir, "star-collect.mp3")
	settings.Music = filepath.Join(dir, "background-music.mp3")

	p := NewPlayer(settings)
	if p.collect == nil {
		t.Fatal("expected synthesized collection sound")
	}
	if p.music != nil {
		t.Fatal("expected no music without an asset")
	}
}

func TestNewPlayerDisabled(t *testing.T) {
	settings := DefaultSettings()
	settings.Enabled = false

	p := NewPlayer(settings)
	if p.collect != nil || p.music != nil {
		t.Fatal("disabled player loaded sounds")
	}
	if err := p.Start(); err != nil {
		t.Fatalf("Start on disabled player: %v", err)
	}
	p.Emit(game.CueCollect)
	p.Emit(game.CueMusic)
	if got := p.Active(); got != 0 {
		t.Fatalf("active sounds = %d, want 0", got)
	}
	p.Close()
}

func TestEmitMixesSounds(t *testing.T) {
	rate := beep.SampleRate(DefaultSampleRate)
	chime, err := synthChime(rate)
	if err != nil {
		t.Fatal(err)
	}
	music := beep.NewBuffer(bufferFormat(rate))
	music.Append(beep.Take(rate.N(10*time.Millisecond), beep.Silence(-1)))

	// Mark started without opening a device so the mixer can be inspected.
	p := NewPlayer(Settings{Enabled: false, Volume: 1, SampleRate: DefaultSampleRate})
	p.collect = chime
	p.music = music
	p.started = true

	p.Emit(game.CueCollect)
	p.Emit(game.CueCollect)
	if got := p.Active(); got != 2 {
		t.Fatalf("active after two collects = %d, want 2", got)
	}

	p.Emit(game.CueMusic)
	p.Emit(game.CueMusic)
	if got := p.Active(); got != 3 {
		t.Fatalf("active after music = %d, want 3", got)
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
		ok     bool
	}{
		{"defaults", func(*Settings) {}, true},
		{"muted", func(s *Settings) { s.Volume = 0 }, true},
		{"too loud", func(s *Settings) { s.Volume = 1.5 }, false},
		{"zero rate", func(s *Settings) { s.SampleRate = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(&s)
			err := s.Validate()
			if tt.ok != (err == nil) {
				t.Fatalf("Validate() = %v, ok want %v", err, tt.ok)
			}
			if err != nil && !errors.Is(err, game.ErrInvalidSettings) {
				t.Fatalf("error %v does not wrap ErrInvalidSettings", err)
			}
		})
	}
}
