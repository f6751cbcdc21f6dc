// Package joystick turns raw analog stick readings and the push button level
// into the single discrete event consumed by the state machine each tick.
package joystick

import "github.com/vovakirdan/dotgames/internal/core"

// Source is the raw input boundary: two analog axes and the button level,
// read synchronously on demand. A stale reading is acceptable; the source
// never reports failure.
type Source interface {
	ReadAxes() (x, y uint16)
	Pressed() bool
}

// Settings describes the stick's analog range.
type Settings struct {
	Center   uint16 // Reading of an axis at rest
	DeadZone uint16 // Deviation from Center still treated as no deflection
	InvertY  bool   // When false, readings above Center mean Up
}

// DefaultSettings matches a 16-bit ADC (TinyGo's machine.ADC scale) with the
// same dead-zone ratio as a 10-bit stick with a threshold of 50 (50 of 128).
func DefaultSettings() Settings {
	return Settings{
		Center:   32768,
		DeadZone: 12800,
	}
}

// Reading is one raw sample of the stick.
type Reading struct {
	X, Y    uint16
	Pressed bool
}

// Sampler debounces a Source into events. It owns the previous button level
// so that a held button only fires once.
type Sampler struct {
	src         Source
	settings    Settings
	prevPressed bool
}

// NewSampler creates a sampler over src.
func NewSampler(src Source, settings Settings) *Sampler {
	return &Sampler{src: src, settings: settings}
}

// Sample reads the source once and returns the resulting event.
//
// A press fires only on the released-to-pressed edge and takes priority over
// any deflection on that tick. Directions are level triggered: a held
// deflection reports the same direction every tick.
func (s *Sampler) Sample() core.Event {
	x, y := s.src.ReadAxes()
	return s.Apply(Reading{X: x, Y: y, Pressed: s.src.Pressed()})
}

// Apply feeds an already captured reading through the debounce state.
func (s *Sampler) Apply(r Reading) core.Event {
	rising := r.Pressed && !s.prevPressed
	s.prevPressed = r.Pressed
	if rising {
		return core.EventPress
	}
	return s.settings.Classify(r.X, r.Y)
}

// Reset forgets the previous button level.
func (s *Sampler) Reset() {
	s.prevPressed = false
}

// Classify maps axis readings to a directional event, or None when both axes
// sit inside the dead-zone. X wins when both axes are deflected, so diagonal
// positions resolve deterministically.
func (st Settings) Classify(x, y uint16) core.Event {
	dx := int(x) - int(st.Center)
	dy := int(y) - int(st.Center)
	dead := int(st.DeadZone)

	switch {
	case dx < -dead:
		return core.EventLeft
	case dx > dead:
		return core.EventRight
	}

	if st.InvertY {
		dy = -dy
	}
	switch {
	case dy > dead:
		return core.EventUp
	case dy < -dead:
		return core.EventDown
	}
	return core.EventNone
}
