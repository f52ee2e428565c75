package game

import (
	"fmt"
	"log"
)

// HUD text regions
const (
	RegionScore = "score"
	RegionSpeed = "speed"
)

// TextSink receives plain text for a named display region
type TextSink interface {
	SetText(region, text string)
}

// HUD projects score and speed into a text sink. It keeps no state of its own.
type HUD struct {
	sink TextSink
}

// NewHUD creates a HUD writing into sink
func NewHUD(sink TextSink) HUD {
	return HUD{sink: sink}
}

// Refresh writes the current score and speed
func (h HUD) Refresh(w *World) {
	h.sink.SetText(RegionScore, ScoreText(w.Score))
	h.sink.SetText(RegionSpeed, SpeedText(w.Speed.Current))
}

// ScoreText formats the score readout
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// SpeedText formats the speed readout with two decimals
func SpeedText(speed float32) string {
	return fmt.Sprintf("Speed: %.2f", speed)
}

// LogTextSink logs each region whenever its text changes
type LogTextSink struct {
	last map[string]string
}

// NewLogTextSink creates a sink that logs HUD changes
func NewLogTextSink() *LogTextSink {
	return &LogTextSink{last: make(map[string]string)}
}

// SetText implements TextSink
func (s *LogTextSink) SetText(region, text string) {
	if s.last[region] == text {
		return
	}
	s.last[region] = text
	log.Printf("hud %s: %s", region, text)
}
