package game

import (
	"github.com/lorenzhs/gpn17-snake/pkg/config"
	"github.com/lorenzhs/gpn17-snake/pkg/hal"
)

// Board is the fixed-size toroidal grid. Set forwards every write to the
// pixel driver; a nil driver draws nothing.
type Board struct {
	cells  [config.Size]Cell
	pixels hal.PixelDriver
}

// NewBoard returns an empty board drawing to pixels.
func NewBoard(pixels hal.PixelDriver) *Board {
	return &Board{pixels: pixels}
}

// ToIndex converts coordinates to a linear index.
func ToIndex(x, y int) int {
	return x + y*config.Width
}

// ToCoords converts a linear index to coordinates.
func ToCoords(i int) (x, y int) {
	return i % config.Width, i / config.Width
}

// Offset returns the neighbour of i in direction d, wrapping at every edge.
func Offset(i int, d Direction) int {
	x, y := ToCoords(i)
	switch d {
	case Up:
		y = (y + config.Height - 1) % config.Height
	case Down:
		y = (y + 1) % config.Height
	case Left:
		x = (x + config.Width - 1) % config.Width
	case Right:
		x = (x + 1) % config.Width
	}
	return ToIndex(x, y)
}

// Get returns the state of cell i.
func (b *Board) Get(i int) Cell {
	return b.cells[i]
}

// Set writes cell i and draws it.
func (b *Board) Set(i int, c Cell) {
	b.cells[i] = c
	if b.pixels == nil {
		return
	}
	x, y := ToCoords(i)
	b.pixels.DrawBlock(x, y, patternOf(c))
}

// Clear empties every cell and blanks the screen once.
func (b *Board) Clear() {
	b.cells = [config.Size]Cell{}
	if b.pixels != nil {
		b.pixels.ClearScreen()
	}
}

// Next follows the segment tag at i one step toward the tail. It returns
// false on the tail terminator and on non-snake cells.
func (b *Board) Next(i int) (int, bool) {
	d, ok := b.cells[i].link()
	if !ok {
		return i, false
	}
	return Offset(i, d), true
}

// Occupied counts non-empty cells, food included.
func (b *Board) Occupied() int {
	n := 0
	for _, c := range b.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// clearAround reports whether i and its four neighbours are all empty.
func (b *Board) clearAround(i int) bool {
	if b.cells[i] != Empty {
		return false
	}
	for _, d := range Directions {
		if b.cells[Offset(i, d)] != Empty {
			return false
		}
	}
	return true
}

func patternOf(c Cell) hal.Pattern {
	switch {
	case c == Food:
		return hal.Diamond
	case c.IsSnake():
		return hal.SolidOn
	default:
		return hal.SolidOff
	}
}
