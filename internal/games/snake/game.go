// Package snake implements the Snake engine for the 8x8 grid: body, food,
// direction and score, advanced one tick at a time.
package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/dotgames/internal/core"
)

// Outcome is the result of one Tick.
type Outcome uint8

const (
	Continue        Outcome = iota // Moved, no food
	GrowAndContinue                // Ate food and grew by one
	Collided                       // Hit a wall or itself; terminal
	Won                            // Filled the whole board; terminal
)

// Terminal reports whether the outcome ends the game.
func (o Outcome) Terminal() bool {
	return o == Collided || o == Won
}

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case GrowAndContinue:
		return "grow"
	case Collided:
		return "collided"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// WallPolicy decides what happens when the head leaves the grid.
type WallPolicy uint8

const (
	WallsSolid WallPolicy = iota // Leaving the grid is a collision
	WallsWrap                    // The head re-enters on the opposite edge
)

func (w WallPolicy) String() string {
	if w == WallsWrap {
		return "wrap"
	}
	return "solid"
}

// Rand is the randomness source used to place food. *math/rand.Rand
// satisfies it; tests pass a seeded one.
type Rand interface {
	Intn(n int) int
}

// Options configures a new engine.
type Options struct {
	Body      []core.Position // Initial body, head first
	Direction core.Direction  // Initial heading
	Food      *core.Position  // Initial food; nil places it at random
	Walls     WallPolicy
}

// DefaultOptions is the classic start: a three-cell snake in row 3 heading
// right with the first food in the top-left area.
func DefaultOptions() Options {
	food := core.Pos(1, 1)
	return Options{
		Body:      []core.Position{core.Pos(3, 3), core.Pos(3, 2), core.Pos(3, 1)},
		Direction: core.Right,
		Food:      &food,
		Walls:     WallsSolid,
	}
}

// ErrInvalidOptions is returned by New when the starting layout breaks an
// engine invariant.
var ErrInvalidOptions = errors.New("snake: invalid options")

// Engine owns the grid game state. It is a plain value with no heap storage;
// the state machine keeps it inline and zeroes it when the game ends.
type Engine struct {
	rng     Rand
	walls   WallPolicy
	body    Body
	dir     core.Direction
	food    core.Position
	hasFood bool
	score   int
	ticks   uint64
	outcome Outcome
}

// New builds an engine from opts. The body must be non-empty, in bounds,
// contiguous and free of repeats, and the food must not lie on it.
func New(opts Options, rng Rand) (Engine, error) {
	if rng == nil {
		return Engine{}, fmt.Errorf("%w: nil random source", ErrInvalidOptions)
	}
	if len(opts.Body) == 0 || len(opts.Body) >= core.Cells {
		return Engine{}, fmt.Errorf("%w: body length %d", ErrInvalidOptions, len(opts.Body))
	}

	e := Engine{
		rng:   rng,
		walls: opts.Walls,
		dir:   opts.Direction,
	}

	// Build tail first so PushFront leaves opts.Body[0] at the head.
	for i := len(opts.Body) - 1; i >= 0; i-- {
		p := opts.Body[i]
		if !p.InBounds() {
			return Engine{}, fmt.Errorf("%w: segment %v out of bounds", ErrInvalidOptions, p)
		}
		if e.body.Contains(p) {
			return Engine{}, fmt.Errorf("%w: segment %v repeated", ErrInvalidOptions, p)
		}
		e.body.PushFront(p)
	}

	if opts.Food != nil {
		if !opts.Food.InBounds() || e.body.Contains(*opts.Food) {
			return Engine{}, fmt.Errorf("%w: food %v", ErrInvalidOptions, *opts.Food)
		}
		e.food = *opts.Food
		e.hasFood = true
	} else {
		e.placeFood()
	}

	if err := e.CheckInvariants(); err != nil {
		return Engine{}, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return e, nil
}

// Tick advances the game by one step. When ok is set, req becomes the new
// heading unless it is the exact reverse of the current one on a snake
// longer than one cell. Once a terminal outcome has been returned the
// engine is frozen and keeps returning it.
func (e *Engine) Tick(req core.Direction, ok bool) Outcome {
	if e.outcome.Terminal() {
		return e.outcome
	}
	e.ticks++

	if ok && !(e.body.Len() > 1 && req == e.dir.Opposite()) {
		e.dir = req
	}

	next := e.body.Head().Add(e.dir)
	if !next.InBounds() {
		if e.walls != WallsWrap {
			e.outcome = Collided
			return e.outcome
		}
		next = next.Wrap()
	}

	// Food is never on the body, so a head landing on it cannot collide.
	if e.hasFood && next == e.food {
		e.body.PushFront(next)
		e.score++
		if !e.placeFood() {
			e.outcome = Won
			return e.outcome
		}
		return GrowAndContinue
	}

	// The tail cell is vacated this tick, so moving into it is legal.
	if e.body.Contains(next) && next != e.body.Tail() {
		e.outcome = Collided
		return e.outcome
	}

	e.body.PopBack()
	e.body.PushFront(next)
	e.outcome = Continue
	return Continue
}

// placeFood moves the food to a uniformly random free cell. It reports
// false when the body covers the whole grid.
func (e *Engine) placeFood() bool {
	free := core.Cells - e.body.Len()
	if free <= 0 {
		e.hasFood = false
		return false
	}

	k := e.rng.Intn(free)
	for i := range core.Cells {
		p := core.PositionAt(i)
		if e.body.Contains(p) {
			continue
		}
		if k == 0 {
			e.food = p
			e.hasFood = true
			return true
		}
		k--
	}

	// Unreachable while the occupancy bitmap matches Len.
	e.hasFood = false
	return false
}

// Render draws the body and food into dst, replacing its contents.
func (e *Engine) Render(dst *core.FrameBuffer) {
	dst.Clear()
	for i := range e.body.Len() {
		dst.Set(e.body.At(i), true)
	}
	if e.hasFood {
		dst.Set(e.food, true)
	}
}

// Score returns the number of food items eaten.
func (e *Engine) Score() int {
	return e.score
}

// Len returns the body length.
func (e *Engine) Len() int {
	return e.body.Len()
}

// Head returns the head position.
func (e *Engine) Head() core.Position {
	return e.body.Head()
}

// Direction returns the current heading.
func (e *Engine) Direction() core.Direction {
	return e.dir
}

// Food returns the food position; ok is false once the board is full.
func (e *Engine) Food() (pos core.Position, ok bool) {
	return e.food, e.hasFood
}

// Body returns a read-only view of the body.
func (e *Engine) Body() *Body {
	return &e.body
}

// Outcome returns the outcome of the last tick.
func (e *Engine) Outcome() Outcome {
	return e.outcome
}

// Terminal reports whether the game has ended.
func (e *Engine) Terminal() bool {
	return e.outcome.Terminal()
}

// CheckInvariants verifies body contiguity, distinct segments and that the
// food is off the body.
func (e *Engine) CheckInvariants() error {
	var seen uint64
	wrap := e.walls == WallsWrap
	for i := range e.body.Len() {
		p := e.body.At(i)
		if !p.InBounds() {
			return fmt.Errorf("segment %d at %v is out of bounds", i, p)
		}
		bit := uint64(1) << p.Index()
		if seen&bit != 0 {
			return fmt.Errorf("segment %d at %v overlaps the body", i, p)
		}
		seen |= bit
		if i > 0 && !core.Adjacent(e.body.At(i-1), p, wrap) {
			return fmt.Errorf("segments %d and %d are not adjacent: %v, %v", i-1, i, e.body.At(i-1), p)
		}
	}
	if seen != e.body.occupied {
		return errors.New("occupancy bitmap out of sync with body")
	}
	if e.hasFood && e.body.Contains(e.food) {
		return fmt.Errorf("food at %v lies on the body", e.food)
	}
	return nil
}
