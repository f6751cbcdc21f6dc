package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dotgames/internal/core"
	"github.com/vovakirdan/dotgames/internal/joystick"
	"github.com/vovakirdan/dotgames/internal/machine"
)

func TestKeyStickDirections(t *testing.T) {
	st := joystick.DefaultSettings()

	tests := []struct {
		name     string
		dir      core.Direction
		invert   bool
		expected core.Event
	}{
		{"left", core.Left, false, core.EventLeft},
		{"right", core.Right, false, core.EventRight},
		{"up", core.Up, false, core.EventUp},
		{"down", core.Down, false, core.EventDown},
		{"up inverted", core.Up, true, core.EventUp},
		{"down inverted", core.Down, true, core.EventDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := st
			s.InvertY = tc.invert
			k := NewKeyStick(s, 1)
			k.Push(tc.dir)
			x, y := k.ReadAxes()
			if got := s.Classify(x, y); got != tc.expected {
				t.Errorf("Classify after Push(%s) = %s, expected %s", tc.dir, got, tc.expected)
			}
		})
	}
}

func TestKeyStickSpringsBack(t *testing.T) {
	st := joystick.DefaultSettings()
	k := NewKeyStick(st, 2)
	k.Push(core.Left)
	k.Click()

	if !k.Pressed() {
		t.Fatal("button should be down after Click")
	}
	k.Settle()
	if k.Pressed() {
		t.Error("button should be released after one sample")
	}
	if x, y := k.ReadAxes(); st.Classify(x, y) != core.EventLeft {
		t.Error("deflection should still be held after one sample")
	}
	k.Settle()
	if x, y := k.ReadAxes(); x != st.Center || y != st.Center {
		t.Errorf("axes = (%d, %d), expected centred", x, y)
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	return NewModel(Options{
		Runtime:   cfg,
		Stick:     joystick.DefaultSettings(),
		Intensity: core.IntensityDefault,
		HoldTicks: 1,
		SnapDir:   t.TempDir(),
	})
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelStartsOnTitle(t *testing.T) {
	m := newTestModel(t)

	var title core.FrameBuffer
	title.DrawGlyph(core.GlyphSnake)
	if m.matrix.Grid() != title.Grid() {
		t.Errorf("initial frame:\n%s", m.matrix.PlainView())
	}
	if !strings.Contains(m.View(), "select: snake") {
		t.Error("view should show the selected game")
	}
}

func TestModelPressThenTick(t *testing.T) {
	m := newTestModel(t)

	m = send(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.runner.Machine().Mode() != machine.ModeSelection {
		t.Fatal("a key alone must not advance the machine")
	}

	if n := m.matrix.Frames(); n != 1 {
		t.Errorf("frames = %d, expected only the initial frame", n)
	}

	m = send(m, TickMsg{})
	if n := m.matrix.Frames(); n != 2 {
		t.Errorf("frames = %d, expected one more after a tick", n)
	}
	if m.runner.Machine().Mode() != machine.ModePlaying {
		t.Fatalf("mode = %s, expected playing after the tick samples the press", m.runner.Machine().Mode())
	}
	if m.stick.Pressed() {
		t.Error("button should be released after the tick")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(m, TickMsg{})
	if d := m.runner.Machine().Engine().Direction(); d != core.Down {
		t.Errorf("direction = %s, expected down", d)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelSnapshot(t *testing.T) {
	m := newTestModel(t)
	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if !strings.HasPrefix(m.status, "saved ") {
		t.Fatalf("status = %q", m.status)
	}
	path := strings.TrimPrefix(m.status, "saved ")
	if filepath.Dir(path) != m.snapDir {
		t.Errorf("snapshot written to %s, expected %s", path, m.snapDir)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}

	var title core.FrameBuffer
	title.DrawGlyph(core.GlyphSnake)
	if strings.TrimSpace(string(data)) != title.String() {
		t.Errorf("snapshot:\n%s", data)
	}
}

func TestLedColorScalesWithIntensity(t *testing.T) {
	if ledColor(core.IntensityMin) == ledColor(core.IntensityMax) {
		t.Error("min and max intensity should differ")
	}
	if ledColor(core.IntensityMax) != "#FF1010" {
		t.Errorf("max intensity color = %s", ledColor(core.IntensityMax))
	}
	if ledColor(200) != ledColor(core.IntensityMax) {
		t.Error("out-of-range intensity should be clamped")
	}
}
