package audio

import (
	"fmt"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
)

// resampleQuality trades CPU for fidelity when converting asset sample rates
const resampleQuality = 4

// loadBuffer decodes an mp3 file fully into memory at rate
func loadBuffer(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound: %w", err)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != rate {
		s = beep.Resample(resampleQuality, format.SampleRate, rate, streamer)
	}

	buf := beep.NewBuffer(bufferFormat(rate))
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("failed to decode %s: no samples", path)
	}
	return buf, nil
}
