// Package machine implements the top-level game state machine: choose a
// game, play it, show the result, and start over. The machine runs forever;
// there is no terminal state.
package machine

import (
	"fmt"
	"time"

	"github.com/vovakirdan/dotgames/internal/core"
	"github.com/vovakirdan/dotgames/internal/games/snake"
	"github.com/vovakirdan/dotgames/internal/registry"
)

// Mode is the active state variant.
type Mode uint8

const (
	ModeSelection Mode = iota // Scrolling through the catalog
	ModePlaying               // A game engine is running
	ModeGameOver              // Showing the final score
)

func (m Mode) String() string {
	switch m {
	case ModeSelection:
		return "selection"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Transition describes what one Step did.
type Transition struct {
	From, To Mode
	Event    core.Event
	Outcome  snake.Outcome // Valid when Ticked is set
	Ticked   bool          // The engine advanced this step
}

// Changed reports whether the step switched modes.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// State is a read-only view of the machine.
type State struct {
	Mode       Mode
	Selected   int           // Catalog index in Selection
	Game       string        // ID of the selected or running game
	Score      int           // Running score while Playing
	FinalScore int           // Score frozen on entering GameOver
	Won        bool          // GameOver was reached by filling the board
	Interval   time.Duration // Current tick duration
}

// Machine is a tagged union over Mode. Only the fields of the active
// variant are meaningful; the engine is held by value and zeroed whenever
// Playing is left, so nothing carries over between sessions.
type Machine struct {
	cfg  core.RuntimeConfig
	rng  snake.Rand
	mode Mode

	// Selection
	selected int

	// Playing
	game     registry.GameInfo
	engine   snake.Engine
	interval time.Duration

	// GameOver
	finalScore int
	won        bool
	last       core.FrameBuffer // Final board, flashed before the score
	phase      int              // Ticks spent in GameOver, saturating
}

// New creates a machine in Selection{0}. rng drives food placement for
// every game started by this machine.
func New(cfg core.RuntimeConfig, rng snake.Rand) *Machine {
	if rng == nil {
		panic("machine: nil random source")
	}
	return &Machine{
		cfg:      cfg,
		rng:      rng,
		mode:     ModeSelection,
		interval: cfg.Tick,
	}
}

// Step consumes exactly one input event and advances the active state.
// Events a state does not react to are dropped, never queued.
func (m *Machine) Step(ev core.Event) Transition {
	tr := Transition{From: m.mode, Event: ev}

	switch m.mode {
	case ModeSelection:
		m.stepSelection(ev)
	case ModePlaying:
		tr.Outcome = m.stepPlaying(ev)
		tr.Ticked = true
	case ModeGameOver:
		m.stepGameOver(ev)
	}

	tr.To = m.mode
	return tr
}

func (m *Machine) stepSelection(ev core.Event) {
	switch ev {
	case core.EventLeft:
		m.selected = registry.Wrap(m.selected - 1)
	case core.EventRight:
		m.selected = registry.Wrap(m.selected + 1)
	case core.EventPress:
		m.start(registry.At(m.selected))
	}
}

func (m *Machine) start(game registry.GameInfo) {
	switch game.Kind {
	case registry.KindSnake:
		opts := snake.DefaultOptions()
		if m.cfg.WrapWalls {
			opts.Walls = snake.WallsWrap
		}
		engine, err := snake.New(opts, m.rng)
		if err != nil {
			// The default layout is always valid.
			panic(fmt.Sprintf("machine: start %s: %v", game.ID, err))
		}
		m.engine = engine
	default:
		panic(fmt.Sprintf("machine: no engine for %s", game.Kind))
	}

	m.game = game
	m.interval = m.cfg.Tick
	m.mode = ModePlaying
}

func (m *Machine) stepPlaying(ev core.Event) snake.Outcome {
	// Press has no meaning mid-game; Direction() reports false for it.
	dir, ok := ev.Direction()
	out := m.engine.Tick(dir, ok)

	switch out {
	case snake.GrowAndContinue:
		m.speedUp()
	case snake.Collided, snake.Won:
		m.finish()
	}
	return out
}

// speedUp shortens the tick by interval/SpeedupDivisor, floored at MinTick.
func (m *Machine) speedUp() {
	if m.cfg.SpeedupDivisor <= 0 {
		return
	}
	m.interval -= m.interval / time.Duration(m.cfg.SpeedupDivisor)
	if m.interval < m.cfg.MinTick {
		m.interval = m.cfg.MinTick
	}
}

func (m *Machine) finish() {
	m.engine.Render(&m.last)
	m.finalScore = m.engine.Score()
	m.won = m.engine.Outcome() == snake.Won
	m.phase = 0
	m.engine = snake.Engine{}
	m.interval = m.cfg.Tick
	m.mode = ModeGameOver
}

func (m *Machine) stepGameOver(ev core.Event) {
	if ev == core.EventPress {
		*m = Machine{
			cfg:      m.cfg,
			rng:      m.rng,
			mode:     ModeSelection,
			interval: m.cfg.Tick,
		}
		return
	}
	if m.phase < m.scorePhase() {
		m.phase++
	}
}

// scorePhase is the GameOver tick from which the score is shown: the last
// frame flashes for FlashTicks ticks, then the skull or cup is held for
// another FlashTicks ticks.
func (m *Machine) scorePhase() int {
	return 2 * max(m.cfg.FlashTicks, 0)
}

// Render recomputes the whole frame for the active state.
func (m *Machine) Render(dst *core.FrameBuffer) {
	dst.Clear()

	switch m.mode {
	case ModeSelection:
		dst.DrawGlyph(registry.At(m.selected).Glyph)
	case ModePlaying:
		m.engine.Render(dst)
	case ModeGameOver:
		flash := max(m.cfg.FlashTicks, 0)
		switch {
		case m.phase < flash:
			if m.phase%2 == 0 {
				*dst = m.last
			}
		case m.phase < m.scorePhase():
			if m.won {
				dst.DrawGlyph(core.GlyphCup)
			} else {
				dst.DrawGlyph(core.GlyphSkull)
			}
		default:
			dst.DrawGlyph(core.NumberGlyph(m.finalScore))
		}
	}
}

// Interval returns the delay before the next tick.
func (m *Machine) Interval() time.Duration {
	return m.interval
}

// Mode returns the active state variant.
func (m *Machine) Mode() Mode {
	return m.mode
}

// State returns a read-only view of the machine.
func (m *Machine) State() State {
	s := State{
		Mode:     m.mode,
		Selected: m.selected,
		Interval: m.interval,
	}
	switch m.mode {
	case ModeSelection:
		s.Game = registry.At(m.selected).ID
	case ModePlaying:
		s.Game = m.game.ID
		s.Score = m.engine.Score()
	case ModeGameOver:
		s.Game = m.game.ID
		s.FinalScore = m.finalScore
		s.Won = m.won
	}
	return s
}

// Engine exposes the running engine for debugging. It returns nil outside
// Playing.
func (m *Machine) Engine() *snake.Engine {
	if m.mode != ModePlaying {
		return nil
	}
	return &m.engine
}
