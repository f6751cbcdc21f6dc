package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // Normal start, no speed-up
)

// Presets lists the accepted presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParseDifficulty validates a preset name.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalid, s)
}

// ApplyDifficulty adjusts the timing section for a preset. Normal keeps the
// loaded values.
func ApplyDifficulty(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.TickMS = 700
		cfg.Timing.SpeedupDivisor = 100
	case DifficultyHard:
		cfg.Timing.TickMS = 300
		cfg.Timing.SpeedupDivisor = 25
	case DifficultyFixed:
		cfg.Timing.SpeedupDivisor = 0
	}
	if cfg.Timing.MinTickMS > cfg.Timing.TickMS {
		cfg.Timing.MinTickMS = cfg.Timing.TickMS
	}
}
