// Package device is the TinyGo platform: a MAX7219-driven 8x8 matrix, an
// analog joystick on two ADC channels and a floating-pin noise source for
// seeding. Hardware access lives in files built with the tinygo tag; the
// pure helpers here build and test on any host.
package device

import "github.com/vovakirdan/dotgames/internal/core"

// PackColumns converts a grid into MAX7219 digit bytes, one per column left
// to right, bit 7 being row 0. This matches a matrix wired with columns on
// the digit lines.
func PackColumns(grid [core.Rows][core.Cols]bool) [core.Cols]uint8 {
	var cols [core.Cols]uint8
	for r := range core.Rows {
		for c := range core.Cols {
			if grid[r][c] {
				cols[c] |= 1 << (7 - r)
			}
		}
	}
	return cols
}

// changedColumns reports which columns differ between two frames.
// With force set every column is reported.
func changedColumns(prev, next [core.Cols]uint8, force bool) uint8 {
	var mask uint8
	for c := range next {
		if force || prev[c] != next[c] {
			mask |= 1 << c
		}
	}
	return mask
}
