// Package loop runs the cooperative main loop shared by every platform:
// sample input, advance the state machine, render, then wait for the next
// tick. There is exactly one thread of control.
package loop

import (
	"context"
	"time"

	"github.com/vovakirdan/dotgames/internal/core"
	"github.com/vovakirdan/dotgames/internal/games/snake"
	"github.com/vovakirdan/dotgames/internal/joystick"
	"github.com/vovakirdan/dotgames/internal/machine"
)

// Renderer physically shows a frame. Render must complete before it
// returns and must not keep the grid past the call. It never reports
// failure.
type Renderer interface {
	Render(grid [core.Rows][core.Cols]bool)
}

// Logger is the subset of *log.Logger (charmbracelet/log) the loop uses.
// The device build passes Nop.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
}

// Nop discards everything.
type Nop struct{}

func (Nop) Debug(interface{}, ...interface{}) {}
func (Nop) Info(interface{}, ...interface{})  {}

// Report summarizes one tick.
type Report struct {
	Tick       uint64
	Event      core.Event
	Transition machine.Transition
	Frame      core.FrameBuffer
}

// Runner owns the hardware handles and the machine for the whole run.
type Runner struct {
	sampler  *joystick.Sampler
	machine  *machine.Machine
	renderer Renderer
	log      Logger
	frame    core.FrameBuffer
	ticks    uint64
}

// New wires a runner. A nil logger is replaced with Nop.
func New(sampler *joystick.Sampler, m *machine.Machine, r Renderer, logger Logger) *Runner {
	if logger == nil {
		logger = Nop{}
	}
	return &Runner{
		sampler:  sampler,
		machine:  m,
		renderer: r,
		log:      logger,
	}
}

// Tick performs one full cycle: sample, step, render.
func (r *Runner) Tick() Report {
	r.ticks++
	ev := r.sampler.Sample()
	tr := r.machine.Step(ev)

	r.machine.Render(&r.frame)
	r.renderer.Render(r.frame.Grid())

	if tr.Changed() {
		st := r.machine.State()
		r.log.Info("mode changed",
			"from", tr.From.String(),
			"to", tr.To.String(),
			"game", st.Game,
			"score", st.FinalScore,
			"won", st.Won,
		)
	}
	if tr.Ticked && tr.Outcome != snake.Continue {
		r.log.Debug("engine outcome",
			"tick", r.ticks,
			"event", ev.String(),
			"outcome", tr.Outcome.String(),
			"interval", r.machine.Interval(),
		)
	}

	return Report{
		Tick:       r.ticks,
		Event:      ev,
		Transition: tr,
		Frame:      r.frame,
	}
}

// Interval returns the delay before the next tick.
func (r *Runner) Interval() time.Duration {
	return r.machine.Interval()
}

// Machine returns the state machine driven by the runner.
func (r *Runner) Machine() *machine.Machine {
	return r.machine
}

// Frame returns the most recently rendered frame.
func (r *Runner) Frame() core.FrameBuffer {
	return r.frame
}

// Run ticks until ctx is done, waiting Interval between ticks. On the
// device ctx is never cancelled and Run does not return.
func (r *Runner) Run(ctx context.Context) error {
	r.log.Info("loop started", "interval", r.Interval())
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Info("loop stopped", "ticks", r.ticks)
			return ctx.Err()
		case <-timer.C:
		}
		r.Tick()
		timer.Reset(r.Interval())
	}
}
