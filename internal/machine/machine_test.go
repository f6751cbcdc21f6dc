package machine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/dotgames/internal/core"
	"github.com/vovakirdan/dotgames/internal/games/snake"
)

func newMachine(t *testing.T) *Machine {
	t.Helper()
	return New(core.DefaultConfig(), rand.New(rand.NewSource(1)))
}

// crash steers the default snake into the right wall.
func crash(t *testing.T, m *Machine) {
	t.Helper()
	for i := 0; i < 4; i++ {
		if tr := m.Step(core.EventNone); tr.Outcome != snake.Continue {
			t.Fatalf("step %d outcome = %s, expected continue", i, tr.Outcome)
		}
	}
	tr := m.Step(core.EventNone)
	if tr.Outcome != snake.Collided || tr.To != ModeGameOver {
		t.Fatalf("final step = %+v, expected collision into game over", tr)
	}
}

func TestInitialState(t *testing.T) {
	m := newMachine(t)
	s := m.State()
	if s.Mode != ModeSelection || s.Selected != 0 {
		t.Errorf("initial state = %+v, expected Selection{0}", s)
	}
	if s.Game != "snake" {
		t.Errorf("selected game = %q, expected snake", s.Game)
	}
	if m.Interval() != 500*time.Millisecond {
		t.Errorf("Interval() = %v, expected 500ms", m.Interval())
	}
}

func TestSelectionScrollWrapsSingleEntry(t *testing.T) {
	m := newMachine(t)

	for _, ev := range []core.Event{core.EventRight, core.EventLeft, core.EventUp, core.EventDown, core.EventNone} {
		tr := m.Step(ev)
		if tr.Changed() {
			t.Errorf("%s should not leave Selection", ev)
		}
		if m.State().Selected != 0 {
			t.Errorf("after %s selected = %d, expected 0", ev, m.State().Selected)
		}
	}
}

func TestPressStartsGame(t *testing.T) {
	m := newMachine(t)

	tr := m.Step(core.EventPress)
	if tr.From != ModeSelection || tr.To != ModePlaying || tr.Ticked {
		t.Fatalf("transition = %+v", tr)
	}
	e := m.Engine()
	if e == nil {
		t.Fatal("Engine() should be available while playing")
	}
	if e.Len() != 3 || e.Score() != 0 {
		t.Errorf("fresh engine len=%d score=%d", e.Len(), e.Score())
	}
}

func TestPressIgnoredWhilePlaying(t *testing.T) {
	m := newMachine(t)
	m.Step(core.EventPress)

	tr := m.Step(core.EventPress)
	if tr.To != ModePlaying || !tr.Ticked || tr.Outcome != snake.Continue {
		t.Errorf("press while playing = %+v, expected a plain tick", tr)
	}
	if m.Engine().Head() != core.Pos(3, 4) {
		t.Errorf("head = %v, expected (3, 4)", m.Engine().Head())
	}
}

func TestCollisionEntersGameOver(t *testing.T) {
	m := newMachine(t)
	m.Step(core.EventPress)
	crash(t, m)

	s := m.State()
	if s.Mode != ModeGameOver || s.FinalScore != 0 || s.Won {
		t.Errorf("state = %+v", s)
	}
	if m.Engine() != nil {
		t.Error("engine should not be reachable after the game ends")
	}

	// Only Press leaves GameOver.
	for _, ev := range []core.Event{core.EventLeft, core.EventRight, core.EventUp, core.EventDown, core.EventNone} {
		if tr := m.Step(ev); tr.Changed() {
			t.Errorf("%s should be ignored in GameOver", ev)
		}
	}
}

func TestGameOverPressReturnsToSelectionWithoutLeakage(t *testing.T) {
	m := newMachine(t)
	m.mode = ModeGameOver
	m.finalScore = 7
	m.selected = 0
	m.interval = 200 * time.Millisecond

	tr := m.Step(core.EventPress)
	if tr.From != ModeGameOver || tr.To != ModeSelection {
		t.Fatalf("transition = %+v", tr)
	}
	s := m.State()
	if s.Selected != 0 || s.FinalScore != 0 || s.Won {
		t.Errorf("selection state = %+v", s)
	}
	if m.Interval() != core.DefaultConfig().Tick {
		t.Errorf("interval = %v, expected reset to the base tick", m.Interval())
	}

	m.Step(core.EventPress)
	e := m.Engine()
	if e == nil {
		t.Fatal("expected a running engine")
	}
	if e.Score() != 0 || e.Len() != 3 || e.Head() != core.Pos(3, 3) {
		t.Errorf("new session inherited state: score=%d len=%d head=%v", e.Score(), e.Len(), e.Head())
	}
}

func TestSpeedUpOnFood(t *testing.T) {
	m := newMachine(t)
	m.Step(core.EventPress)

	// Default food sits at (1, 1); head starts at (3, 3) heading right.
	steps := []struct {
		ev      core.Event
		outcome snake.Outcome
	}{
		{core.EventUp, snake.Continue},
		{core.EventUp, snake.Continue},
		{core.EventLeft, snake.Continue},
		{core.EventLeft, snake.GrowAndContinue},
	}
	for i, st := range steps {
		if tr := m.Step(st.ev); tr.Outcome != st.outcome {
			t.Fatalf("step %d outcome = %s, expected %s", i, tr.Outcome, st.outcome)
		}
	}

	if m.State().Score != 1 {
		t.Errorf("score = %d, expected 1", m.State().Score)
	}
	if m.Interval() != 490*time.Millisecond {
		t.Errorf("Interval() = %v, expected 490ms", m.Interval())
	}
}

func TestSpeedUpFloor(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.SpeedupDivisor = 2
	cfg.MinTick = 200 * time.Millisecond
	m := New(cfg, rand.New(rand.NewSource(1)))

	for i := 0; i < 5; i++ {
		m.speedUp()
	}
	if m.Interval() != 200*time.Millisecond {
		t.Errorf("Interval() = %v, expected floor of 200ms", m.Interval())
	}

	cfg.SpeedupDivisor = 0
	m = New(cfg, rand.New(rand.NewSource(1)))
	m.speedUp()
	if m.Interval() != cfg.Tick {
		t.Error("a zero divisor should disable the speed-up")
	}
}

func TestRenderSelection(t *testing.T) {
	m := newMachine(t)
	var frame core.FrameBuffer
	frame.Fill()
	m.Render(&frame)

	if frame.Rows() != [8]uint8(core.GlyphSnake) {
		t.Errorf("selection frame:\n%s", frame.String())
	}
}

func TestRenderGameOverSequence(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.FlashTicks = 2
	m := New(cfg, rand.New(rand.NewSource(1)))
	m.Step(core.EventPress)

	var board core.FrameBuffer
	for i := 0; i < 4; i++ {
		m.Step(core.EventNone)
	}
	m.Render(&board)
	m.Step(core.EventNone) // Crash

	var frame core.FrameBuffer
	var blank core.FrameBuffer
	var skull, score core.FrameBuffer
	skull.DrawGlyph(core.GlyphSkull)
	score.DrawGlyph(core.NumberGlyph(0))

	expected := []core.FrameBuffer{board, blank, skull, skull, score, score}
	for i, want := range expected {
		m.Render(&frame)
		if frame != want {
			t.Errorf("phase %d:\n%s\nexpected\n%s", i, frame.String(), want.String())
		}
		m.Step(core.EventNone)
	}
}

func TestWinShowsCup(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.FlashTicks = 1
	m := New(cfg, rand.New(rand.NewSource(1)))
	m.mode = ModeGameOver
	m.won = true
	m.finalScore = 61
	m.phase = 1

	var frame, cup core.FrameBuffer
	cup.DrawGlyph(core.GlyphCup)
	m.Render(&frame)
	if frame != cup {
		t.Errorf("win frame:\n%s", frame.String())
	}

	m.Step(core.EventNone)
	var score core.FrameBuffer
	score.DrawGlyph(core.NumberGlyph(61))
	m.Render(&frame)
	if frame != score {
		t.Errorf("score frame:\n%s", frame.String())
	}
}

func TestWrapWallsConfig(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.WrapWalls = true
	m := New(cfg, rand.New(rand.NewSource(1)))
	m.Step(core.EventPress)

	for i := 0; i < 8; i++ {
		if tr := m.Step(core.EventNone); tr.To != ModePlaying {
			t.Fatalf("step %d left Playing with %s", i, tr.Outcome)
		}
	}
	if m.Engine().Head() != core.Pos(3, 3) {
		t.Errorf("head = %v, expected a full lap back to (3, 3)", m.Engine().Head())
	}
}
