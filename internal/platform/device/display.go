//go:build tinygo

package device

import (
	"machine"

	"tinygo.org/x/drivers/max72xx"

	"github.com/vovakirdan/dotgames/internal/core"
)

// Display drives the matrix through a MAX7219. It implements loop.Renderer
// and only rewrites digit registers whose column changed.
type Display struct {
	dev  *max72xx.Device
	last [core.Cols]uint8
	sent bool
}

// NewDisplay takes the bus by value, as max72xx.NewDevice does. It
// configures the chip for raw 8x8 output and blanks it.
func NewDisplay(bus machine.SPI, cs machine.Pin, intensity core.Intensity) *Display {
	dev := max72xx.NewDevice(bus, cs)
	dev.Configure()
	dev.StopDisplayTest()
	dev.SetDecodeMode(0)
	dev.SetScanLimit(core.Cols)
	dev.StopShutdownMode()

	d := &Display{dev: dev}
	d.SetIntensity(intensity)
	d.Render([core.Rows][core.Cols]bool{})
	return d
}

// Render implements loop.Renderer.
func (d *Display) Render(grid [core.Rows][core.Cols]bool) {
	cols := PackColumns(grid)
	mask := changedColumns(d.last, cols, !d.sent)
	for c := range cols {
		if mask&(1<<c) != 0 {
			// Digit registers are 1-8.
			d.dev.WriteCommand(byte(c+1), cols[c])
		}
	}
	d.last = cols
	d.sent = true
}

// SetIntensity changes the brightness.
func (d *Display) SetIntensity(i core.Intensity) {
	d.dev.SetIntensity(uint8(i.Clamped()))
}
