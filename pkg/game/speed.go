package game

// Speed is the single adjustable magnitude applied to all linear-motion keys.
// Current always stays within [Min, Max].
type Speed struct {
	Current float32
	Min     float32
	Max     float32
	Step    float32
}

// NewSpeed creates a speed scalar from settings, clamping the default into range
func NewSpeed(s SpeedSettings) *Speed {
	speed := &Speed{Min: s.Min, Max: s.Max, Step: s.Step}
	speed.Current = speed.clamp(s.Default)
	return speed
}

// Increase raises the speed by one step, stopping at Max
func (s *Speed) Increase() float32 {
	s.Current = s.clamp(s.Current + s.Step)
	return s.Current
}

// Decrease lowers the speed by one step, stopping at Min
func (s *Speed) Decrease() float32 {
	s.Current = s.clamp(s.Current - s.Step)
	return s.Current
}

func (s *Speed) clamp(v float32) float32 {
	return min(max(v, s.Min), s.Max)
}
