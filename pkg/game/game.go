package game

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/lorenzhs/gpn17-snake/pkg/config"
	"github.com/lorenzhs/gpn17-snake/pkg/hal"
)

// Engine owns the board and the snake. It is not safe for concurrent use;
// a single loop drives it.
type Engine struct {
	board      *Board
	rng        *rand.Rand
	head       int
	dir        Direction
	lastMoved  Direction
	length     int
	frameDelay time.Duration
	state      State

	// OnReset runs before the board is reinitialised after a collision or
	// a full board. The loop uses it for the vibrate-and-flash sequence.
	OnReset func(Outcome)
}

// NewEngine creates an idle engine drawing to pixels. Call Init to start.
func NewEngine(pixels hal.PixelDriver, rng *rand.Rand) *Engine {
	return &Engine{
		board: NewBoard(pixels),
		rng:   rng,
	}
}

// Init clears the board, places a fresh snake heading right and one food,
// and resets the speed.
func (e *Engine) Init() {
	e.board.Clear()
	e.frameDelay = config.InitialFrameDelay

	e.head = ToIndex(config.StartX, config.StartY)
	pos := e.head
	for i := 1; i < config.StartLength; i++ {
		e.board.Set(pos, SnakeLeft)
		pos = Offset(pos, Left)
	}
	e.board.Set(pos, SnakeEnd)
	e.length = config.StartLength
	e.dir = Right
	e.lastMoved = Right
	e.state = Running

	// cannot fail on a board holding only the starting snake
	e.placeNewFood()
}

// Steer requests a new travel direction for the next tick. Reversing into
// the neck is rejected, judged against both the pending direction and the
// direction of the last move.
func (e *Engine) Steer(d Direction) bool {
	if d == e.dir.Reverse() || d == e.lastMoved.Reverse() {
		return false
	}
	e.dir = d
	return true
}

// Tick advances the simulation by one step.
func (e *Engine) Tick() Outcome {
	if e.state != Running {
		return OutcomeIdle
	}

	next := Offset(e.head, e.dir)
	grow := false
	full := false

	switch c := e.board.Get(next); {
	case c == Food:
		grow = true
		e.length++
		e.frameDelay = speedUp(e.frameDelay)
		if _, err := e.placeNewFood(); err != nil {
			full = true
		}
	case c.IsSnake():
		e.state = GameOver
		e.reset(OutcomeCollision)
		return OutcomeCollision
	}

	// the new head points back at the old one
	e.board.Set(next, Toward(e.dir.Reverse()))

	if !grow {
		e.dropTail()
	}
	e.head = next
	e.lastMoved = e.dir

	if full {
		e.state = BoardFull
		e.reset(OutcomeBoardFull)
		return OutcomeBoardFull
	}
	if grow {
		return OutcomeGrew
	}
	return OutcomeMoved
}

// dropTail walks from the current head to the terminator, empties it and
// makes the segment before it the new terminator. O(length), since
// the board stores no tail pointer.
func (e *Engine) dropTail() {
	prev, pos := e.head, e.head
	for {
		n, ok := e.board.Next(pos)
		if !ok {
			break
		}
		prev, pos = pos, n
	}
	e.board.Set(pos, Empty)
	e.board.Set(prev, SnakeEnd)
}

func (e *Engine) reset(o Outcome) {
	if e.OnReset != nil {
		e.OnReset(o)
	}
	e.Init()
}

// speedUp shortens the tick interval by SpeedRamp, always by at least 1ns
// while positive.
func speedUp(d time.Duration) time.Duration {
	next := time.Duration(float64(d) / config.SpeedRamp)
	if next >= d && d > 0 {
		next = d - 1
	}
	return next
}

// Board exposes the grid for inspection.
func (e *Engine) Board() *Board { return e.board }

// Head returns the linear index of the head.
func (e *Engine) Head() int { return e.head }

// Direction returns the pending travel direction.
func (e *Engine) Direction() Direction { return e.dir }

// Len returns the number of snake cells, head and tail included.
func (e *Engine) Len() int { return e.length }

// FrameDelay returns the current interval between ticks.
func (e *Engine) FrameDelay() time.Duration { return e.frameDelay }

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Chain returns the snake cells from head to tail by following the tags.
// The walk is capped at the board size so a corrupt board cannot loop.
func (e *Engine) Chain() []int {
	if e.state == Idle {
		return nil
	}
	out := []int{e.head}
	pos := e.head
	for len(out) <= config.Size {
		n, ok := e.board.Next(pos)
		if !ok {
			break
		}
		out = append(out, n)
		pos = n
	}
	return out
}
