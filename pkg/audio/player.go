// Package audio plays the game's sound cues through the system speaker.
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/leterax/go-starfield/pkg/game"
)

// DefaultSampleRate is the speaker rate every sound is resampled to
const DefaultSampleRate = 44100

// speakerBuffer is the latency of the speaker's output buffer
const speakerBuffer = 100 * time.Millisecond

// Player turns game cues into sound. It implements game.CueSink and is silent
// until Start succeeds.
type Player struct {
	mu sync.Mutex

	settings Settings
	rate     beep.SampleRate
	mixer    *beep.Mixer
	master   *effects.Volume

	collect *beep.Buffer
	music   *beep.Buffer
	playing *beep.Ctrl // Music loop once started

	started bool
}

// NewPlayer prepares the sounds named in settings. Missing or undecodable
// assets are logged: the collection sound falls back to a synthesized chime and
// music is skipped.
func NewPlayer(settings Settings) *Player {
	rate := beep.SampleRate(settings.SampleRate)
	mixer := &beep.Mixer{}

	p := &Player{
		settings: settings,
		rate:     rate,
		mixer:    mixer,
		master:   newVolume(mixer, settings.Volume),
	}
	if !settings.Enabled {
		return p
	}

	if settings.CollectSound != "" {
		buf, err := loadBuffer(settings.CollectSound, rate)
		if err != nil {
			log.Printf("Collection sound unavailable, using chime: %v", err)
		} else {
			p.collect = buf
		}
	}
	if p.collect == nil {
		buf, err := synthChime(rate)
		if err != nil {
			log.Printf("Failed to synthesize chime: %v", err)
		} else {
			p.collect = buf
		}
	}

	if settings.Music != "" {
		buf, err := loadBuffer(settings.Music, rate)
		if err != nil {
			log.Printf("Background music unavailable: %v", err)
		} else {
			p.music = buf
		}
	}

	return p
}

// Start opens the speaker. On error the player stays silent.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started || !p.settings.Enabled {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(speakerBuffer)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	speaker.Play(p.master)
	p.started = true
	return nil
}

// Emit implements game.CueSink. Cues overlap freely.
func (p *Player) Emit(cue game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	switch cue {
	case game.CueCollect:
		if p.collect == nil {
			return
		}
		p.add(p.collect.Streamer(0, p.collect.Len()))
	case game.CueMusic:
		if p.music == nil || p.playing != nil {
			return
		}
		loop := beep.Loop(-1, p.music.Streamer(0, p.music.Len()))
		p.playing = &beep.Ctrl{Streamer: loop}
		p.add(p.playing)
	default:
		log.Printf("Ignoring unknown cue %v", cue)
	}
}

// add hands s to the mixer under the speaker lock
func (p *Player) add(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Active returns the number of sounds currently mixed
func (p *Player) Active() int {
	speaker.Lock()
	defer speaker.Unlock()
	return p.mixer.Len()
}

// Close stops all sounds and the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	speaker.Lock()
	if p.playing != nil {
		p.playing.Paused = true
	}
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.playing = nil
	p.started = false
}
