package game

import (
	"context"
	"time"

	"github.com/lorenzhs/gpn17-snake/pkg/config"
	"github.com/lorenzhs/gpn17-snake/pkg/gesture"
	"github.com/lorenzhs/gpn17-snake/pkg/hal"
)

// Clock abstracts time for the loop. Sleep is a bounded busy wait on the
// badge; nothing else runs meanwhile.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type wallClock struct{}

func (wallClock) Now() time.Time        { return time.Now() }
func (wallClock) Sleep(d time.Duration) { time.Sleep(d) }

// WallClock is the real time source.
var WallClock Clock = wallClock{}

// Outputs bundles the write-only peripherals.
type Outputs struct {
	Pixels     hal.PixelDriver
	Indicators hal.Indicators
	Haptic     hal.Haptic
}

// TickRecorder receives one record per simulation tick.
type TickRecorder interface {
	RecordTick(rec TickRecord)
}

// Loop polls input every frame and ticks the engine whenever the engine's
// frame delay has elapsed, so input sampling is decoupled from game speed.
type Loop struct {
	engine   *Engine
	input    Input
	out      Outputs
	clock    Clock
	lastMove time.Time
	ticks    uint64

	Recorder TickRecorder
}

// NewLoop wires an engine to its input and outputs and installs the reset
// feedback sequence.
func NewLoop(e *Engine, in Input, out Outputs, clock Clock) *Loop {
	if clock == nil {
		clock = WallClock
	}
	l := &Loop{
		engine: e,
		input:  in,
		out:    out,
		clock:  clock,
	}
	e.OnReset = l.resetSequence
	return l
}

// Engine returns the driven engine.
func (l *Loop) Engine() *Engine { return l.engine }

// Ticks counts simulation steps since the loop was created.
func (l *Loop) Ticks() uint64 { return l.ticks }

// Start initialises the game and the tick timer.
func (l *Loop) Start() {
	l.engine.Init()
	l.lastMove = l.clock.Now()
	l.out.Pixels.CommitFrame()
}

// Frame runs one frame to completion: poll, steer, maybe tick, commit.
func (l *Loop) Frame() {
	now := l.clock.Now()
	cmd, hint := l.input.Poll()

	if cmd == gesture.Confirm {
		hal.SetAll(l.out.Indicators, hal.RGB{G: config.ConfirmLevel})
		l.out.Indicators.Commit()
		l.clock.Sleep(config.ConfirmPause)
		l.lastMove = l.clock.Now()
		return
	}

	hal.SetAll(l.out.Indicators, hal.Off)
	if hint.Active {
		for id, c := range hint.Colors() {
			l.out.Indicators.SetIndicator(id, c)
		}
	}
	if d, ok := DirectionOf(cmd); ok {
		l.engine.Steer(d)
		l.out.Indicators.SetIndicator(indicatorFor(d), hal.RGB{B: config.DirectionLevel})
	}

	if now.Sub(l.lastMove) > l.engine.FrameDelay() {
		dir := l.engine.Direction()
		o := l.engine.Tick()
		l.lastMove = now
		l.record(now, cmd, dir, o)
	}

	l.out.Indicators.Commit()
	l.out.Pixels.CommitFrame()
}

// Run calls Frame every period until ctx is done.
func (l *Loop) Run(ctx context.Context, period time.Duration) error {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	l.Start()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.Frame()
		}
	}
}

// resetSequence vibrates and flashes before the engine reinitialises. A
// full board flashes green instead of red.
func (l *Loop) resetSequence(o Outcome) {
	flash := hal.RGB{R: config.GameOverLevel}
	if o == OutcomeBoardFull {
		flash = hal.RGB{G: config.GameOverLevel}
	}
	l.out.Haptic.SetMotor(true)
	hal.SetAll(l.out.Indicators, flash)
	l.out.Indicators.Commit()

	l.clock.Sleep(config.GameOverFlash)

	l.out.Haptic.SetMotor(false)
	hal.SetAll(l.out.Indicators, hal.Off)
	l.out.Indicators.Commit()
}

func (l *Loop) record(now time.Time, cmd gesture.Command, dir Direction, o Outcome) {
	l.ticks++
	if l.Recorder == nil {
		return
	}
	x, y := ToCoords(l.engine.Head())
	l.Recorder.RecordTick(TickRecord{
		Tick:       l.ticks,
		Time:       now,
		Command:    cmd.String(),
		Direction:  dir.String(),
		Outcome:    o.String(),
		HeadX:      x,
		HeadY:      y,
		Length:     l.engine.Len(),
		FrameDelay: l.engine.FrameDelay().Microseconds(),
	})
}

func indicatorFor(d Direction) int {
	switch d {
	case Up:
		return hal.IndicatorUp
	case Down:
		return hal.IndicatorDown
	case Left:
		return hal.IndicatorLeft
	default:
		return hal.IndicatorRight
	}
}
