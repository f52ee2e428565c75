package game

// Motion derives velocities from held keys and decays them every frame
type Motion struct {
	RotationSpeed float32
	Damping       float32
}

// NewMotion creates a motion model from settings
func NewMotion(settings Settings) Motion {
	return Motion{
		RotationSpeed: settings.RotationSpeed,
		Damping:       settings.Damping,
	}
}

// Update recomputes linear and angular velocity from the input state. When both
// keys of a pair are held the first one wins; with neither held the axis is zero.
func (m Motion) Update(w *World) {
	speed := w.Speed.Current

	w.Velocity[2] = axis(w.Input, KeyForward, KeyBack, speed)
	w.Velocity[0] = axis(w.Input, KeyLeft, KeyRight, speed)

	w.AngularVelocity[0] = axis(w.Input, KeyLookUp, KeyLookDown, m.RotationSpeed)
	w.AngularVelocity[1] = axis(w.Input, KeyLookLeft, KeyLookRight, m.RotationSpeed)
}

// Damp decays linear and angular velocity toward zero
func (m Motion) Damp(w *World) {
	w.Velocity = w.Velocity.Mul(m.Damping)
	w.AngularVelocity = w.AngularVelocity.Mul(m.Damping)
}

// axis returns -magnitude while negative is held, else +magnitude while
// positive is held, else 0
func axis(in *InputState, negative, positive string, magnitude float32) float32 {
	if in.Pressed(negative) {
		return -magnitude
	}
	if in.Pressed(positive) {
		return magnitude
	}
	return 0
}
