package game

import (
	"errors"

	"github.com/lorenzhs/gpn17-snake/pkg/config"
)

// ErrBoardFull means no empty cell with an empty 4-neighbourhood is left.
var ErrBoardFull = errors.New("board full")

// placeNewFood puts food on a random empty cell whose four neighbours are
// empty too. Sampling is capped at FoodPlacementAttempts; after that the
// board is scanned from a random offset so the result is still uniform-ish
// and placement always terminates.
func (e *Engine) placeNewFood() (int, error) {
	for attempts := 0; attempts < config.FoodPlacementAttempts; attempts++ {
		cand := e.rng.Intn(config.Size)
		if e.board.clearAround(cand) {
			e.board.Set(cand, Food)
			return cand, nil
		}
	}

	start := e.rng.Intn(config.Size)
	for k := 0; k < config.Size; k++ {
		cand := (start + k) % config.Size
		if e.board.clearAround(cand) {
			e.board.Set(cand, Food)
			return cand, nil
		}
	}
	return -1, ErrBoardFull
}
