//go:build tinygo && rp2040

// dotgames-device is the firmware for a Raspberry Pi Pico wired to a MAX7219
// 8x8 matrix and an analog thumb joystick.
//
// Build and flash:
//
//	tinygo flash -target pico ./cmd/dotgames-device
package main

import (
	"context"
	"machine"
	"time"

	"github.com/vovakirdan/dotgames/internal/core"
	"github.com/vovakirdan/dotgames/internal/joystick"
	game "github.com/vovakirdan/dotgames/internal/machine"
	"github.com/vovakirdan/dotgames/internal/platform/device"
	"github.com/vovakirdan/dotgames/internal/platform/loop"
)

// Pin assignment.
const (
	pinSCK    = machine.GP18
	pinSDO    = machine.GP19
	pinCS     = machine.GP17
	pinX      = machine.GP26
	pinY      = machine.GP27
	pinNoise  = machine.GP28 // Left floating
	pinButton = machine.GP15
)

func main() {
	machine.InitADC()

	spi := machine.SPI0
	if err := spi.Configure(machine.SPIConfig{
		SCK:       pinSCK,
		SDO:       pinSDO,
		Frequency: 1_000_000,
	}); err != nil {
		halt()
	}
	display := device.NewDisplay(*spi, pinCS, core.IntensityDefault)

	stick, err := device.NewStick(pinX, pinY, pinButton, true)
	if err != nil {
		halt()
	}
	noise, err := device.Noise(pinNoise)
	if err != nil {
		halt()
	}

	cfg := core.DefaultConfig()
	rng := device.NewXorShift(device.NoiseSeed(noise))
	sampler := joystick.NewSampler(stick, joystick.DefaultSettings())
	runner := loop.New(sampler, game.New(cfg, rng), display, loop.Nop{})

	// Never cancelled: the console runs until power is removed.
	runner.Run(context.Background())
	halt()
}

// halt blinks the on-board LED forever after a setup failure or if the
// loop ever returns.
func halt() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.High()
		time.Sleep(200 * time.Millisecond)
		led.Low()
		time.Sleep(200 * time.Millisecond)
	}
}
