package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dotgames/internal/core"
)

const (
	litCell   = "●"
	unlitCell = "·"
)

// Matrix is the simulated LED matrix. It implements loop.Renderer by
// copying each frame it is given; View draws the copy.
type Matrix struct {
	grid   [core.Rows][core.Cols]bool
	frames uint64

	lit   lipgloss.Style
	unlit lipgloss.Style
	panel lipgloss.Style
}

// NewMatrix creates a matrix whose lit LEDs are shaded by intensity, the
// same 0-15 scale as the MAX7219 intensity register.
func NewMatrix(intensity core.Intensity) *Matrix {
	return &Matrix{
		lit:   lipgloss.NewStyle().Foreground(ledColor(intensity)).Bold(true),
		unlit: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}
}

// ledColor maps intensity to a red between dim and full brightness.
func ledColor(intensity core.Intensity) lipgloss.Color {
	level := int(intensity.Clamped())
	red := 0x60 + level*(0xFF-0x60)/int(core.IntensityMax)
	return lipgloss.Color(fmt.Sprintf("#%02X1010", red))
}

// Render implements loop.Renderer.
func (m *Matrix) Render(grid [core.Rows][core.Cols]bool) {
	m.grid = grid
	m.frames++
}

// Frames returns how many frames have been rendered.
func (m *Matrix) Frames() uint64 {
	return m.frames
}

// Grid returns the last rendered grid.
func (m *Matrix) Grid() [core.Rows][core.Cols]bool {
	return m.grid
}

// View renders the matrix inside a bordered panel.
func (m *Matrix) View() string {
	var sb strings.Builder
	for r := range core.Rows {
		if r > 0 {
			sb.WriteRune('\n')
		}
		for c := range core.Cols {
			if c > 0 {
				sb.WriteRune(' ')
			}
			if m.grid[r][c] {
				sb.WriteString(m.lit.Render(litCell))
			} else {
				sb.WriteString(m.unlit.Render(unlitCell))
			}
		}
	}
	return m.panel.Render(sb.String())
}

// PlainView renders the matrix without styling, one character per LED.
func (m *Matrix) PlainView() string {
	var sb strings.Builder
	for r := range core.Rows {
		if r > 0 {
			sb.WriteRune('\n')
		}
		for c := range core.Cols {
			if m.grid[r][c] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
