package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Chime constants
const (
	chimeNoteDuration = 120 * time.Millisecond
	chimeDecay        = 18.0 // Envelope falloff per second
	chimeFirstNote    = 987.77
	chimeSecondNote   = 1318.51
)

// decay fades a stream out exponentially from full volume
type decay struct {
	streamer beep.Streamer
	rate     beep.SampleRate
	falloff  float64
	pos      int
}

// newDecay wraps s in an exponential decay envelope
func newDecay(s beep.Streamer, rate beep.SampleRate, falloff float64) beep.Streamer {
	return &decay{streamer: s, rate: rate, falloff: falloff}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(d.pos) / float64(d.rate)
		gain := math.Exp(-t * d.falloff)
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// chimeNote is one decaying sine note
func chimeNote(rate beep.SampleRate, freq float64) (beep.Streamer, error) {
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("failed to create tone %.2fHz: %w", freq, err)
	}
	return newDecay(beep.Take(rate.N(chimeNoteDuration), tone), rate, chimeDecay), nil
}

// synthChime renders a two-note rising chime into a buffer. It stands in for
// the collection sound when no asset is available.
func synthChime(rate beep.SampleRate) (*beep.Buffer, error) {
	first, err := chimeNote(rate, chimeFirstNote)
	if err != nil {
		return nil, err
	}
	second, err := chimeNote(rate, chimeSecondNote)
	if err != nil {
		return nil, err
	}

	buf := beep.NewBuffer(bufferFormat(rate))
	buf.Append(newVolume(beep.Seq(first, second), 0.5))
	return buf, nil
}

// newVolume scales s linearly by vol, silencing it at zero
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// bufferFormat is the in-memory format of every decoded or synthesized sound
func bufferFormat(rate beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
}
