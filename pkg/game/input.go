package game

// InputState maps key identifiers to their most recent pressed state.
// Every key is recorded, including ones nothing reacts to.
type InputState struct {
	pressed map[string]bool
}

// NewInputState creates an empty input state
func NewInputState() *InputState {
	return &InputState{pressed: make(map[string]bool)}
}

// Set records the latest state of key
func (s *InputState) Set(key string, pressed bool) {
	s.pressed[key] = pressed
}

// Pressed reports whether key is currently held
func (s *InputState) Pressed(key string) bool {
	return s.pressed[key]
}

// Recorded returns the stored state of key and whether any event was seen for it
func (s *InputState) Recorded(key string) (pressed, ok bool) {
	pressed, ok = s.pressed[key]
	return pressed, ok
}

// HandleKeyDown records a press, applies the speed controls and recomputes
// motion. It reports whether key was a speed control.
func (w *World) HandleKeyDown(key string, m Motion) bool {
	w.Input.Set(key, true)

	speedKey := true
	switch key {
	case KeySpeedUp:
		w.Speed.Increase()
	case KeySpeedDown:
		w.Speed.Decrease()
	default:
		speedKey = false
	}

	m.Update(w)
	return speedKey
}

// HandleKeyUp records a release and recomputes motion
func (w *World) HandleKeyUp(key string, m Motion) {
	w.Input.Set(key, false)
	m.Update(w)
}
