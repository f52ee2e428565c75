package game

// Cue is a sound event emitted by the simulation
type Cue int

const (
	CueCollect Cue = iota // A collectible was picked up
	CueMusic              // Background track should start looping
)

// String returns the cue name
func (c Cue) String() string {
	switch c {
	case CueCollect:
		return "collect"
	case CueMusic:
		return "music"
	default:
		return "unknown"
	}
}

// CueSink plays cues. Emit must not block; overlapping cues are allowed.
type CueSink interface {
	Emit(cue Cue)
}

// CueFunc adapts a function to CueSink
type CueFunc func(cue Cue)

// Emit implements CueSink
func (f CueFunc) Emit(cue Cue) {
	f(cue)
}
