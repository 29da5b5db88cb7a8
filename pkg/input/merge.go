package input

import (
	"github.com/lorenzhs/gpn17-snake/pkg/game"
	"github.com/lorenzhs/gpn17-snake/pkg/gesture"
)

type merged []game.Input

// Merge polls every input each frame. The first non-None command wins,
// and the first active hint is kept so tilt feedback survives a key press
// on another input.
func Merge(inputs ...game.Input) game.Input {
	return merged(inputs)
}

func (m merged) Poll() (gesture.Command, gesture.Hint) {
	cmd := gesture.None
	var hint gesture.Hint
	for _, in := range m {
		c, h := in.Poll()
		if cmd == gesture.None {
			cmd = c
		}
		if !hint.Active && h.Active {
			hint = h
		}
	}
	return cmd, hint
}
