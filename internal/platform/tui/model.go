package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dotgames/internal/core"
	"github.com/vovakirdan/dotgames/internal/joystick"
	"github.com/vovakirdan/dotgames/internal/machine"
	"github.com/vovakirdan/dotgames/internal/platform/loop"
)

// Options configures the simulator.
type Options struct {
	Runtime   core.RuntimeConfig
	Stick     joystick.Settings
	Intensity core.Intensity
	Logger    loop.Logger

	// HoldTicks is how many samples a pushed direction stays deflected.
	HoldTicks int

	// SnapDir is where ctrl+s writes frames; empty disables snapshots.
	SnapDir string
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Model is the Bubble Tea model driving the shared loop.
type Model struct {
	runner   *loop.Runner
	stick    *KeyStick
	matrix   *Matrix
	keys     KeyMap
	help     help.Model
	log      loop.Logger
	snapDir  string
	status   string
	quitting bool
}

// NewModel wires a sampler, state machine and matrix into a runner.
func NewModel(opts Options) Model {
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = loop.Nop{}
	}

	stick := NewKeyStick(opts.Stick, opts.HoldTicks)
	matrix := NewMatrix(opts.Intensity)
	m := machine.New(opts.Runtime, rand.New(rand.NewSource(seed)))
	runner := loop.New(joystick.NewSampler(stick, opts.Stick), m, matrix, logger)

	logger.Info("simulator ready", "seed", seed, "tick", opts.Runtime.Tick, "walls_wrap", opts.Runtime.WrapWalls)

	// Draw the first frame before the first tick arrives.
	var frame core.FrameBuffer
	m.Render(&frame)
	matrix.Render(frame.Grid())

	return Model{
		runner:  runner,
		stick:   stick,
		matrix:  matrix,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		log:     logger,
		snapDir: opts.SnapDir,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runner.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey moves the simulated stick. Nothing reaches the state machine
// until the next tick samples it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Snapshot):
		m.status = m.saveSnapshot()
	case key.Matches(msg, m.keys.Up):
		m.stick.Push(core.Up)
	case key.Matches(msg, m.keys.Down):
		m.stick.Push(core.Down)
	case key.Matches(msg, m.keys.Left):
		m.stick.Push(core.Left)
	case key.Matches(msg, m.keys.Right):
		m.stick.Push(core.Right)
	case key.Matches(msg, m.keys.Press):
		m.stick.Click()
	}
	return m, nil
}

// handleTick runs one loop cycle and schedules the next one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	rep := m.runner.Tick()
	m.stick.Settle()
	if rep.Transition.Changed() {
		m.status = ""
	}
	return m, tickCmd(m.runner.Interval())
}

// saveSnapshot writes the current frame as text art.
func (m Model) saveSnapshot() string {
	if m.snapDir == "" {
		return "snapshots disabled"
	}
	if err := os.MkdirAll(m.snapDir, 0o755); err != nil {
		m.log.Info("snapshot failed", "err", err)
		return "snapshot failed"
	}

	name := fmt.Sprintf("frame_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.snapDir, name)
	if err := os.WriteFile(path, []byte(m.matrix.PlainView()+"\n"), 0o600); err != nil {
		m.log.Info("snapshot failed", "err", err)
		return "snapshot failed"
	}
	return "saved " + path
}

// View renders the matrix with a status line and help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.runner.Machine().State()
	var status string
	switch st.Mode {
	case machine.ModeSelection:
		status = fmt.Sprintf("select: %s", st.Game)
	case machine.ModePlaying:
		status = fmt.Sprintf("score %d  tick %v", st.Score, st.Interval)
	case machine.ModeGameOver:
		result := "game over"
		if st.Won {
			result = "board cleared"
		}
		status = fmt.Sprintf("%s  final score %d", result, st.FinalScore)
	}
	if m.status != "" {
		status += "  " + m.status
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("dotgames"))
	sb.WriteString("\n")
	sb.WriteString(m.matrix.View())
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(status))
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
