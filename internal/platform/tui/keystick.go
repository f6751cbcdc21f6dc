package tui

import (
	"math"

	"github.com/vovakirdan/dotgames/internal/core"
	"github.com/vovakirdan/dotgames/internal/joystick"
)

// KeyStick simulates the analog joystick from key presses. Terminals only
// report key-down, so a pushed direction is held for holdTicks samples and
// then springs back to center, and a click holds the button down for one
// sample. The real joystick.Sampler runs on top of it unchanged.
type KeyStick struct {
	settings  joystick.Settings
	holdTicks int

	x, y    uint16
	hold    int
	pressed int
}

// NewKeyStick returns a centred stick using the given axis settings.
func NewKeyStick(settings joystick.Settings, holdTicks int) *KeyStick {
	k := &KeyStick{
		settings:  settings,
		holdTicks: max(holdTicks, 1),
	}
	k.center()
	return k
}

// Push deflects the stick fully towards d.
func (k *KeyStick) Push(d core.Direction) {
	k.center()
	var high, low uint16 = math.MaxUint16, 0

	switch d {
	case core.Left:
		k.x = low
	case core.Right:
		k.x = high
	case core.Up:
		k.y = high
		if k.settings.InvertY {
			k.y = low
		}
	case core.Down:
		k.y = low
		if k.settings.InvertY {
			k.y = high
		}
	}
	k.hold = k.holdTicks
}

// Click pushes the button down for the next sample.
func (k *KeyStick) Click() {
	k.pressed = 1
}

// ReadAxes implements joystick.Source.
func (k *KeyStick) ReadAxes() (uint16, uint16) {
	return k.x, k.y
}

// Pressed implements joystick.Source.
func (k *KeyStick) Pressed() bool {
	return k.pressed > 0
}

// Settle advances the simulated spring by one sample: the button is
// released and a held deflection counts down towards center.
func (k *KeyStick) Settle() {
	if k.pressed > 0 {
		k.pressed--
	}
	if k.hold > 0 {
		k.hold--
		if k.hold == 0 {
			k.center()
		}
	}
}

func (k *KeyStick) center() {
	k.x, k.y = k.settings.Center, k.settings.Center
}
