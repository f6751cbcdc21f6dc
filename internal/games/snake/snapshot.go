package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/dotgames/internal/core"
)

// Snapshot captures the engine state for determinism tests and debug logs.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	Head     core.Position
	Dir      core.Direction
	Food     core.Position
	HasFood  bool
	Outcome  Outcome
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     e.ticks,
		Score:    e.score,
		SnakeLen: e.body.Len(),
		Dir:      e.dir,
		Food:     e.food,
		HasFood:  e.hasFood,
		Outcome:  e.outcome,
	}
	if e.body.Len() > 0 {
		s.Head = e.body.Head()
	}
	return s
}

// DebugState returns a string representation of the game state.
func (e *Engine) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Score: %d, Outcome: %s\n", e.ticks, e.score, e.outcome))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s, Walls: %s\n", e.body.Len(), e.dir, e.walls))
	if e.body.Len() > 0 {
		head := e.body.Head()
		b.WriteString(fmt.Sprintf("Head: (%d, %d), Food: (%d, %d) present=%v\n", head.Row, head.Col, e.food.Row, e.food.Col, e.hasFood))
	}
	var frame core.FrameBuffer
	e.Render(&frame)
	b.WriteString(frame.String())
	return b.String()
}
