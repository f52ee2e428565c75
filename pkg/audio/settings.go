package audio

import (
	"fmt"

	"github.com/leterax/go-starfield/pkg/game"
)

// Settings configures the cue player
type Settings struct {
	Enabled      bool    `toml:"enabled"`
	Volume       float64 `toml:"volume"` // Master volume in [0, 1]
	SampleRate   int     `toml:"sample_rate"`
	CollectSound string  `toml:"collect_sound"` // mp3 played per collected star
	Music        string  `toml:"music"`         // mp3 looped for the whole run
}

// DefaultSettings returns the default audio settings
func DefaultSettings() Settings {
	return Settings{
		Enabled:      true,
		Volume:       1.0,
		SampleRate:   DefaultSampleRate,
		CollectSound: "star-collect.mp3",
		Music:        "background-music.mp3",
	}
}

// Validate reports out of range settings
func (s Settings) Validate() error {
	if s.Volume < 0 || s.Volume > 1 {
		return fmt.Errorf("%w: audio volume %v", game.ErrInvalidSettings, s.Volume)
	}
	if s.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", game.ErrInvalidSettings, s.SampleRate)
	}
	return nil
}
