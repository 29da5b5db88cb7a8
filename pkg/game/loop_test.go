package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lorenzhs/gpn17-snake/pkg/config"
	"github.com/lorenzhs/gpn17-snake/pkg/gesture"
	"github.com/lorenzhs/gpn17-snake/pkg/hal"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Sleep(d time.Duration)   { c.now = c.now.Add(d) }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeIndicators struct {
	pending [4]hal.RGB
	shown   [4]hal.RGB
	history [][4]hal.RGB
}

func (f *fakeIndicators) SetIndicator(id int, c hal.RGB) { f.pending[id] = c }
func (f *fakeIndicators) Commit() {
	f.shown = f.pending
	f.history = append(f.history, f.shown)
}

type fakeHaptic struct{ calls []bool }

func (f *fakeHaptic) SetMotor(on bool) { f.calls = append(f.calls, on) }

type stubInput struct {
	cmd  gesture.Command
	hint gesture.Hint
}

func (s *stubInput) Poll() (gesture.Command, gesture.Hint) { return s.cmd, s.hint }

type fakeRecorder struct{ recs []TickRecord }

func (f *fakeRecorder) RecordTick(rec TickRecord) { f.recs = append(f.recs, rec) }

type loopFixture struct {
	loop  *Loop
	clock *fakeClock
	px    *fakePixels
	leds  *fakeIndicators
	motor *fakeHaptic
	in    *stubInput
}

func newLoopFixture(seed uint64) *loopFixture {
	f := &loopFixture{
		clock: &fakeClock{now: time.Date(2017, 5, 25, 12, 0, 0, 0, time.UTC)},
		px:    &fakePixels{},
		leds:  &fakeIndicators{},
		motor: &fakeHaptic{},
		in:    &stubInput{},
	}
	e := NewEngine(f.px, rand.New(rand.NewSource(seed)))
	f.loop = NewLoop(e, f.in, Outputs{Pixels: f.px, Indicators: f.leds, Haptic: f.motor}, f.clock)
	f.loop.Start()
	moveFood(e, 0, 0)
	return f
}

func allColor(c hal.RGB) [4]hal.RGB { return [4]hal.RGB{c, c, c, c} }

func TestLoopTickCadence(t *testing.T) {
	f := newLoopFixture(1)
	e := f.loop.Engine()
	start := e.Head()

	f.clock.Advance(100 * time.Millisecond)
	f.loop.Frame()
	if e.Head() != start {
		t.Fatal("ticked before the frame delay elapsed")
	}

	f.clock.Advance(101 * time.Millisecond)
	f.loop.Frame()
	if e.Head() != Offset(start, Right) {
		t.Fatal("did not tick after the frame delay")
	}

	f.clock.Advance(150 * time.Millisecond)
	f.loop.Frame()
	if e.Head() != Offset(start, Right) {
		t.Fatal("ticked twice within one frame delay")
	}

	f.clock.Advance(60 * time.Millisecond)
	f.loop.Frame()
	if e.Head() != Offset(Offset(start, Right), Right) {
		t.Fatal("second tick missing")
	}

	// Start plus four frames
	if f.px.commits != 5 {
		t.Errorf("frame commits = %d, want 5", f.px.commits)
	}
}

func TestLoopConfirmPauses(t *testing.T) {
	f := newLoopFixture(2)
	e := f.loop.Engine()
	start := e.Head()
	commits := f.px.commits

	f.in.cmd = gesture.Confirm
	f.clock.Advance(300 * time.Millisecond)
	before := f.clock.Now()
	f.loop.Frame()

	if e.Head() != start {
		t.Error("confirm frame advanced the simulation")
	}
	if f.leds.shown != allColor(hal.RGB{G: config.ConfirmLevel}) {
		t.Errorf("indicators = %v, want confirm green", f.leds.shown)
	}
	if got := f.clock.Now().Sub(before); got != config.ConfirmPause {
		t.Errorf("paused %v, want %v", got, config.ConfirmPause)
	}
	if f.px.commits != commits {
		t.Error("confirm frame committed the framebuffer")
	}

	// the pause restarts the tick timer
	f.in.cmd = gesture.None
	f.clock.Advance(150 * time.Millisecond)
	f.loop.Frame()
	if e.Head() != start {
		t.Error("ticked too soon after confirm")
	}
}

func TestLoopRejectsReversal(t *testing.T) {
	f := newLoopFixture(3)
	e := f.loop.Engine()
	start := e.Head()

	f.in.cmd = gesture.Left
	f.clock.Advance(201 * time.Millisecond)
	f.loop.Frame()

	if e.Direction() != Right {
		t.Errorf("direction = %v, want right", e.Direction())
	}
	if e.Head() != Offset(start, Right) {
		t.Error("snake reversed")
	}
	if f.leds.shown[hal.IndicatorLeft] != (hal.RGB{B: config.DirectionLevel}) {
		t.Errorf("left indicator = %v", f.leds.shown[hal.IndicatorLeft])
	}
}

func TestLoopSteersAndLights(t *testing.T) {
	f := newLoopFixture(4)
	e := f.loop.Engine()

	f.in.cmd = gesture.Up
	f.loop.Frame()
	if e.Direction() != Up {
		t.Errorf("direction = %v, want up", e.Direction())
	}
	want := [4]hal.RGB{}
	want[hal.IndicatorUp] = hal.RGB{B: config.DirectionLevel}
	if f.leds.shown != want {
		t.Errorf("indicators = %v, want %v", f.leds.shown, want)
	}
}

func TestLoopShowsHint(t *testing.T) {
	f := newLoopFixture(5)
	cmd, hint := gesture.Classify(hal.Reading{A: -2, B: 4}, hal.Reading{})
	f.in.cmd, f.in.hint = cmd, hint

	f.loop.Frame()
	if f.leds.shown != hint.Colors() {
		t.Errorf("indicators = %v, want %v", f.leds.shown, hint.Colors())
	}
	if len(f.leds.history) != 1 {
		t.Errorf("%d indicator commits in one frame", len(f.leds.history))
	}
}

func TestLoopGameOverSequence(t *testing.T) {
	f := newLoopFixture(6)
	e := f.loop.Engine()
	e.Board().Set(Offset(e.Head(), Right), SnakeEnd)

	f.clock.Advance(201 * time.Millisecond)
	before := f.clock.Now()
	f.loop.Frame()

	if len(f.motor.calls) != 2 || !f.motor.calls[0] || f.motor.calls[1] {
		t.Errorf("motor calls = %v, want on then off", f.motor.calls)
	}
	red := allColor(hal.RGB{R: config.GameOverLevel})
	flashed := false
	for _, s := range f.leds.history {
		if s == red {
			flashed = true
		}
	}
	if !flashed {
		t.Errorf("no red flash in %v", f.leds.history)
	}
	// flash on, flash off, then the frame's own commit
	if len(f.leds.history) != 3 {
		t.Errorf("%d indicator commits in the game-over frame, want 3", len(f.leds.history))
	}
	if f.leds.shown != ([4]hal.RGB{}) {
		t.Errorf("indicators left at %v", f.leds.shown)
	}
	if got := f.clock.Now().Sub(before); got != config.GameOverFlash {
		t.Errorf("flash took %v", got)
	}
	if e.Head() != ToIndex(config.StartX, config.StartY) || e.Len() != config.StartLength {
		t.Error("engine was not reinitialised")
	}
	if f.px.clears != 2 {
		t.Errorf("screen clears = %d, want 2", f.px.clears)
	}
}

func TestLoopRecordsTicks(t *testing.T) {
	f := newLoopFixture(7)
	rec := &fakeRecorder{}
	f.loop.Recorder = rec

	f.in.cmd = gesture.Down
	f.clock.Advance(201 * time.Millisecond)
	f.loop.Frame()

	if len(rec.recs) != 1 {
		t.Fatalf("%d records", len(rec.recs))
	}
	r := rec.recs[0]
	if r.Tick != 1 || r.Direction != "down" || r.Outcome != "moved" || r.Command != "down" {
		t.Errorf("record = %+v", r)
	}
	if r.HeadX != config.StartX || r.HeadY != config.StartY+1 || r.Length != config.StartLength {
		t.Errorf("record head/len = %+v", r)
	}
	if r.FrameDelay != config.InitialFrameDelay.Microseconds() {
		t.Errorf("frame delay = %d", r.FrameDelay)
	}
}

func TestLoopRun(t *testing.T) {
	f := newLoopFixture(8)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := f.loop.Run(ctx, time.Millisecond)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run returned %v", err)
	}
	if f.px.commits < 3 {
		t.Errorf("only %d frames committed", f.px.commits)
	}
}

func TestManualInput(t *testing.T) {
	var m ManualInput
	m.Push(gesture.Left)
	m.Push(gesture.Up)
	if c, _ := m.Poll(); c != gesture.Up {
		t.Errorf("Poll = %v, want last pushed", c)
	}
	if c, _ := m.Poll(); c != gesture.None {
		t.Errorf("second Poll = %v, want none", c)
	}
}
