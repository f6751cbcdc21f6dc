// Package config provides YAML-based configuration for the simulator and
// the command line tools. The device build does not import it and uses the
// same values through Default().
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/dotgames/internal/core"
	"github.com/vovakirdan/dotgames/internal/joystick"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full configuration file.
type Config struct {
	Joystick JoystickConfig `yaml:"joystick"`
	Timing   TimingConfig   `yaml:"timing"`
	Snake    SnakeConfig    `yaml:"snake"`
	Display  DisplayConfig  `yaml:"display"`
	Seed     int64          `yaml:"seed"` // 0 = seed from the clock
}

// JoystickConfig describes the analog stick.
type JoystickConfig struct {
	Center    uint16 `yaml:"center"`     // Axis reading at rest
	Max       uint16 `yaml:"max"`        // Full-scale axis reading
	DeadZone  uint16 `yaml:"dead_zone"`  // Deviation still treated as centred
	InvertY   bool   `yaml:"invert_y"`   // Larger Y reading means Down
	HoldTicks int    `yaml:"hold_ticks"` // Simulator: ticks a key press stays deflected
}

// TimingConfig defines the loop cadence.
type TimingConfig struct {
	TickMS         int `yaml:"tick_ms"`
	MinTickMS      int `yaml:"min_tick_ms"`
	SpeedupDivisor int `yaml:"speedup_divisor"` // 0 disables the speed-up
	FlashTicks     int `yaml:"flash_ticks"`
}

// SnakeConfig holds Snake rules.
type SnakeConfig struct {
	Walls string `yaml:"walls"` // "solid" or "wrap"
}

// DisplayConfig describes the LED matrix.
type DisplayConfig struct {
	Intensity uint8 `yaml:"intensity"` // 0-15
}

// Wall policies accepted in SnakeConfig.Walls.
const (
	WallsSolid = "solid"
	WallsWrap  = "wrap"
)

// Default returns the hardcoded configuration.
func Default() Config {
	rt := core.DefaultConfig()
	st := joystick.DefaultSettings()
	return Config{
		Joystick: JoystickConfig{
			Center:    st.Center,
			Max:       65535,
			DeadZone:  st.DeadZone,
			InvertY:   st.InvertY,
			HoldTicks: 1,
		},
		Timing: TimingConfig{
			TickMS:         int(rt.Tick / time.Millisecond),
			MinTickMS:      int(rt.MinTick / time.Millisecond),
			SpeedupDivisor: rt.SpeedupDivisor,
			FlashTicks:     rt.FlashTicks,
		},
		Snake: SnakeConfig{
			Walls: WallsSolid,
		},
		Display: DisplayConfig{
			Intensity: uint8(core.IntensityDefault),
		},
	}
}

// Validate checks ranges and enum values.
func (c Config) Validate() error {
	j := c.Joystick
	switch {
	case j.Max == 0:
		return fmt.Errorf("%w: joystick.max must be positive", ErrInvalid)
	case j.Center >= j.Max:
		return fmt.Errorf("%w: joystick.center %d must be below max %d", ErrInvalid, j.Center, j.Max)
	case j.DeadZone >= j.Center || int(j.Center)+int(j.DeadZone) >= int(j.Max):
		return fmt.Errorf("%w: joystick.dead_zone %d leaves no travel", ErrInvalid, j.DeadZone)
	case j.HoldTicks < 1:
		return fmt.Errorf("%w: joystick.hold_ticks must be at least 1", ErrInvalid)
	}

	t := c.Timing
	switch {
	case t.TickMS <= 0:
		return fmt.Errorf("%w: timing.tick_ms must be positive", ErrInvalid)
	case t.MinTickMS <= 0 || t.MinTickMS > t.TickMS:
		return fmt.Errorf("%w: timing.min_tick_ms must be in (0, tick_ms]", ErrInvalid)
	case t.SpeedupDivisor < 0:
		return fmt.Errorf("%w: timing.speedup_divisor must not be negative", ErrInvalid)
	case t.FlashTicks < 0:
		return fmt.Errorf("%w: timing.flash_ticks must not be negative", ErrInvalid)
	}

	if c.Snake.Walls != WallsSolid && c.Snake.Walls != WallsWrap {
		return fmt.Errorf("%w: snake.walls %q (want %q or %q)", ErrInvalid, c.Snake.Walls, WallsSolid, WallsWrap)
	}
	if core.Intensity(c.Display.Intensity) > core.IntensityMax {
		return fmt.Errorf("%w: display.intensity %d exceeds %d", ErrInvalid, c.Display.Intensity, core.IntensityMax)
	}
	return nil
}

// Runtime converts the file values into the engine configuration.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		Tick:           time.Duration(c.Timing.TickMS) * time.Millisecond,
		MinTick:        time.Duration(c.Timing.MinTickMS) * time.Millisecond,
		SpeedupDivisor: c.Timing.SpeedupDivisor,
		FlashTicks:     c.Timing.FlashTicks,
		WrapWalls:      c.Snake.Walls == WallsWrap,
		Seed:           c.Seed,
	}
}

// Stick converts the joystick section into sampler settings.
func (c Config) Stick() joystick.Settings {
	return joystick.Settings{
		Center:   c.Joystick.Center,
		DeadZone: c.Joystick.DeadZone,
		InvertY:  c.Joystick.InvertY,
	}
}

// Intensity returns the display brightness.
func (c Config) Intensity() core.Intensity {
	return core.Intensity(c.Display.Intensity).Clamped()
}
