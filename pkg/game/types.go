package game

import (
	"github.com/lorenzhs/gpn17-snake/pkg/gesture"
)

// Direction is a travel direction on the board.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all four directions.
var Directions = [...]Direction{Up, Down, Left, Right}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}

// DirectionOf maps a directional command to a Direction.
func DirectionOf(c gesture.Command) (Direction, bool) {
	switch c {
	case gesture.Up:
		return Up, true
	case gesture.Down:
		return Down, true
	case gesture.Left:
		return Left, true
	case gesture.Right:
		return Right, true
	}
	return 0, false
}

// Cell is the state of one board cell. Snake cells carry the direction of
// the next segment toward the tail, so the snake is a singly linked list
// threaded through the grid.
type Cell uint8

const (
	Empty Cell = iota
	Food
	SnakeRight
	SnakeLeft
	SnakeUp
	SnakeDown
	SnakeEnd // tail terminator, no outgoing direction
)

// IsSnake reports whether c is any snake segment, the tail included.
func (c Cell) IsSnake() bool {
	return c >= SnakeRight && c <= SnakeEnd
}

// Toward returns the segment tag pointing in direction d.
func Toward(d Direction) Cell {
	switch d {
	case Up:
		return SnakeUp
	case Down:
		return SnakeDown
	case Left:
		return SnakeLeft
	default:
		return SnakeRight
	}
}

// link returns the direction stored in a segment tag.
func (c Cell) link() (Direction, bool) {
	switch c {
	case SnakeUp:
		return Up, true
	case SnakeDown:
		return Down, true
	case SnakeLeft:
		return Left, true
	case SnakeRight:
		return Right, true
	}
	return 0, false
}

// State is the engine lifecycle state.
type State uint8

const (
	Idle State = iota
	Running
	GameOver
	BoardFull
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case GameOver:
		return "game over"
	case BoardFull:
		return "board full"
	default:
		return "idle"
	}
}

// Outcome is the result of one tick.
type Outcome uint8

const (
	OutcomeIdle      Outcome = iota // engine not running, nothing happened
	OutcomeMoved                    // ordinary move
	OutcomeGrew                     // ate food
	OutcomeCollision                // hit itself, game was reset
	OutcomeBoardFull                // ate food but no place left for new food, game was reset
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeGrew:
		return "grew"
	case OutcomeCollision:
		return "collision"
	case OutcomeBoardFull:
		return "board full"
	default:
		return "idle"
	}
}
