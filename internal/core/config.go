package core

import "time"

// RuntimeConfig contains the initialization constants shared by the state
// machine and the platforms. It is built once at startup and never
// renegotiated while running.
type RuntimeConfig struct {
	Tick           time.Duration // Initial tick duration
	MinTick        time.Duration // Floor for the speed-up
	SpeedupDivisor int           // Each food shortens the tick by tick/SpeedupDivisor; 0 disables
	FlashTicks     int           // Ticks the last frame flashes after a game ends
	WrapWalls      bool          // Snake wraps around edges instead of dying
	Seed           int64         // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig matching the reference hardware
// timings.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Tick:           500 * time.Millisecond,
		MinTick:        100 * time.Millisecond,
		SpeedupDivisor: 50,
		FlashTicks:     4,
		WrapWalls:      false,
		Seed:           0,
	}
}
