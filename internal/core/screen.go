package core

import (
	"fmt"
	"strings"
)

// FrameBuffer is the 8x8 lit/unlit pattern for the next frame. Each row is
// stored as a byte with bit 7 holding column 0, so the whole buffer is a
// copyable value with no heap storage.
//
// The engine recomputes the buffer from scratch every tick; it is never
// patched incrementally.
type FrameBuffer struct {
	rows [Rows]uint8
}

// Clear turns every cell off.
func (f *FrameBuffer) Clear() {
	f.rows = [Rows]uint8{}
}

// Fill turns every cell on.
func (f *FrameBuffer) Fill() {
	for r := range f.rows {
		f.rows[r] = 0xFF
	}
}

// Set lights or clears the cell at p.
// An out-of-range position is a programming error and panics.
func (f *FrameBuffer) Set(p Position, lit bool) {
	if !p.InBounds() {
		panic(fmt.Sprintf("core: frame buffer position out of range: (%d, %d)", p.Row, p.Col))
	}
	mask := uint8(1) << (7 - p.Col)
	if lit {
		f.rows[p.Row] |= mask
	} else {
		f.rows[p.Row] &^= mask
	}
}

// Lit reports whether the cell at p is on. Out-of-range positions are off.
func (f *FrameBuffer) Lit(p Position) bool {
	if !p.InBounds() {
		return false
	}
	return f.rows[p.Row]&(1<<(7-p.Col)) != 0
}

// DrawGlyph ORs a full 8x8 glyph onto the buffer.
func (f *FrameBuffer) DrawGlyph(g Glyph) {
	f.DrawGlyphAt(g, 0, 0)
}

// DrawGlyphAt ORs a glyph onto the buffer shifted down by rowOff and right
// by colOff. Bits shifted off the grid are clipped.
func (f *FrameBuffer) DrawGlyphAt(g Glyph, rowOff, colOff int) {
	for r, bits := range g {
		dst := r + rowOff
		if dst < 0 || dst >= Rows || bits == 0 {
			continue
		}
		switch {
		case colOff >= Cols || colOff <= -Cols:
			continue
		case colOff >= 0:
			f.rows[dst] |= bits >> colOff
		default:
			f.rows[dst] |= bits << -colOff
		}
	}
}

// DrawTextGlyph draws the glyph registered under index in the glyph table.
// Unknown indexes draw nothing.
func (f *FrameBuffer) DrawTextGlyph(index int) {
	if g, ok := GlyphAt(index); ok {
		f.DrawGlyph(g)
	}
}

// Grid returns a read-only snapshot of the buffer for a renderer.
func (f *FrameBuffer) Grid() [Rows][Cols]bool {
	var grid [Rows][Cols]bool
	for r := range grid {
		for c := range grid[r] {
			grid[r][c] = f.rows[r]&(1<<(7-c)) != 0
		}
	}
	return grid
}

// Rows returns the packed row bytes, bit 7 being column 0.
func (f *FrameBuffer) Rows() [Rows]uint8 {
	return f.rows
}

// Columns returns the buffer packed by column, left to right, with bit 7
// holding row 0. This is the layout MAX7219 digit registers expect when the
// matrix is wired column-wise.
func (f *FrameBuffer) Columns() [Cols]uint8 {
	var cols [Cols]uint8
	for c := range cols {
		for r := range Rows {
			if f.rows[r]&(1<<(7-c)) != 0 {
				cols[c] |= 1 << (7 - r)
			}
		}
	}
	return cols
}

// Count returns the number of lit cells.
func (f *FrameBuffer) Count() int {
	n := 0
	for _, bits := range f.rows {
		for ; bits != 0; bits &= bits - 1 {
			n++
		}
	}
	return n
}

// String renders the buffer as eight lines of '#' (lit) and '.' (unlit).
func (f *FrameBuffer) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Cols + 1))
	for r := range Rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range Cols {
			if f.rows[r]&(1<<(7-c)) != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// ParseFrame builds a frame buffer from the String format. Any character
// other than '#' is unlit; missing rows and columns are unlit.
func ParseFrame(art string) FrameBuffer {
	var f FrameBuffer
	for r, line := range strings.Split(strings.TrimSpace(art), "\n") {
		if r >= Rows {
			break
		}
		for c, ch := range strings.TrimSpace(line) {
			if c >= Cols {
				break
			}
			if ch == '#' {
				f.rows[r] |= 1 << (7 - c)
			}
		}
	}
	return f
}
