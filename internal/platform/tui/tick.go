// Package tui is the terminal simulator: a Bubble Tea program that stands
// in for the LED matrix and the analog joystick so the same loop that runs
// on the device can be played and debugged on a desktop.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one loop tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that fires a tick after interval.
// The interval is re-read every tick because the game speeds up.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
