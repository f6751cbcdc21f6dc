package core

// Intensity is the LED brightness level of the matrix, 0 (dimmest) to 15
// (brightest). The display is single colour, so brightness is the only
// visual parameter a renderer can vary.
type Intensity uint8

const (
	IntensityMin     Intensity = 0
	IntensityDefault Intensity = 12
	IntensityMax     Intensity = 15
)

// Clamped returns i limited to the valid range.
func (i Intensity) Clamped() Intensity {
	if i > IntensityMax {
		return IntensityMax
	}
	return i
}
