package game

import (
	"context"
	"fmt"
	"time"
)

// Scheduler calls frame once per display refresh until the context is
// cancelled, the frame returns an error, or the scheduler's own end condition
type Scheduler interface {
	Run(ctx context.Context, frame func() error) error
}

// FrameScheduler runs frames back to back. Frames <= 0 runs until cancelled.
type FrameScheduler struct {
	Frames int
}

// Run implements Scheduler
func (s FrameScheduler) Run(ctx context.Context, frame func() error) error {
	for i := 0; s.Frames <= 0 || i < s.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := frame(); err != nil {
			return err
		}
	}
	return nil
}

// TickerScheduler runs frames on a wall-clock ticker without a window
type TickerScheduler struct {
	Hz    int
	Ticks uint64 // Stop after this many frames; 0 runs until cancelled
}

// Run implements Scheduler
func (s TickerScheduler) Run(ctx context.Context, frame func() error) error {
	hz := s.Hz
	if hz <= 0 {
		hz = 60
	}

	d := time.Second / time.Duration(hz)
	if d <= 0 {
		return fmt.Errorf("invalid ticker hz: %d", hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := frame(); err != nil {
				return err
			}
			tick++
			if s.Ticks > 0 && tick >= s.Ticks {
				return nil
			}
		}
	}
}
