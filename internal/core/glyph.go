package core

// Glyph is an 8x8 bitmap, one byte per row, bit 7 being column 0.
type Glyph [Rows]uint8

// digitFont is a 3x5 font, one row per entry, bit 2 being the left column.
var digitFont = [10][5]uint8{
	{0b111, 0b101, 0b101, 0b101, 0b111}, // 0
	{0b010, 0b110, 0b010, 0b010, 0b111}, // 1
	{0b111, 0b001, 0b111, 0b100, 0b111}, // 2
	{0b111, 0b001, 0b011, 0b001, 0b111}, // 3
	{0b101, 0b101, 0b111, 0b001, 0b001}, // 4
	{0b111, 0b100, 0b111, 0b001, 0b111}, // 5
	{0b111, 0b100, 0b111, 0b101, 0b111}, // 6
	{0b111, 0b001, 0b010, 0b010, 0b010}, // 7
	{0b111, 0b101, 0b111, 0b101, 0b111}, // 8
	{0b111, 0b101, 0b111, 0b001, 0b111}, // 9
}

// Glyph table indexes understood by FrameBuffer.DrawTextGlyph. Indexes 0-9
// are the digits.
const (
	GlyphIndexSnake = 10 + iota
	GlyphIndexSkull
	GlyphIndexCup
)

var (
	// GlyphSnake is the Snake title screen.
	GlyphSnake = Glyph{
		0b00111100,
		0b00100100,
		0b00000100,
		0b00111100,
		0b00111100,
		0b00100000,
		0b00100100,
		0b00111100,
	}

	// GlyphSkull is shown when a game is lost.
	GlyphSkull = Glyph{
		0b00111100,
		0b01111110,
		0b11011011,
		0b11011011,
		0b01111110,
		0b00111100,
		0b00100100,
		0b00111100,
	}

	// GlyphCup is shown when the board has been filled.
	GlyphCup = Glyph{
		0b11111111,
		0b11111111,
		0b01111110,
		0b00111100,
		0b00011000,
		0b00011000,
		0b00111100,
		0b01111110,
	}

)

// DigitGlyph returns digit d (0-9) placed in the top-left 3x5 corner.
func DigitGlyph(d int) Glyph {
	var g Glyph
	font := digitFont[Clamp(d, 0, 9)]
	for r, bits := range font {
		g[r] = bits << 5
	}
	return g
}

// NumberGlyph renders n as one or two centred digits. Values above 99 are
// shown as 99.
func NumberGlyph(n int) Glyph {
	n = Clamp(n, 0, 99)
	var f FrameBuffer
	if n < 10 {
		f.DrawGlyphAt(DigitGlyph(n), 1, 2)
	} else {
		f.DrawGlyphAt(DigitGlyph(n/10), 1, 0)
		f.DrawGlyphAt(DigitGlyph(n%10), 1, 4)
	}
	return Glyph(f.Rows())
}

// GlyphAt looks up a glyph by table index.
func GlyphAt(index int) (Glyph, bool) {
	switch {
	case index >= 0 && index <= 9:
		return NumberGlyph(index), true
	case index == GlyphIndexSnake:
		return GlyphSnake, true
	case index == GlyphIndexSkull:
		return GlyphSkull, true
	case index == GlyphIndexCup:
		return GlyphCup, true
	}
	return Glyph{}, false
}
