//go:build tinygo

package device

import "machine"

// Stick reads the joystick: two ADC channels and the push button. It
// implements joystick.Source.
type Stick struct {
	x, y      machine.ADC
	button    machine.Pin
	activeLow bool
}

// NewStick configures the pins. machine.InitADC must have been called.
// With activeLow the button pulls its pin to ground when pressed.
func NewStick(xPin, yPin, button machine.Pin, activeLow bool) (*Stick, error) {
	s := &Stick{
		x:         machine.ADC{Pin: xPin},
		y:         machine.ADC{Pin: yPin},
		button:    button,
		activeLow: activeLow,
	}
	if err := s.x.Configure(machine.ADCConfig{}); err != nil {
		return nil, err
	}
	if err := s.y.Configure(machine.ADCConfig{}); err != nil {
		return nil, err
	}

	mode := machine.PinInputPulldown
	if activeLow {
		mode = machine.PinInputPullup
	}
	button.Configure(machine.PinConfig{Mode: mode})
	return s, nil
}

// ReadAxes implements joystick.Source.
func (s *Stick) ReadAxes() (uint16, uint16) {
	return s.x.Get(), s.y.Get()
}

// Pressed implements joystick.Source.
func (s *Stick) Pressed() bool {
	return s.button.Get() != s.activeLow
}

// Noise returns a reader for a floating analog pin, for NoiseSeed.
func Noise(pin machine.Pin) (func() uint16, error) {
	adc := machine.ADC{Pin: pin}
	if err := adc.Configure(machine.ADCConfig{}); err != nil {
		return nil, err
	}
	return adc.Get, nil
}
