package game

import "github.com/lorenzhs/gpn17-snake/pkg/gesture"

// Input is polled once per frame by the loop. Tilt classification and
// physical controls both produce the same command set.
type Input interface {
	Poll() (gesture.Command, gesture.Hint)
}

// ManualInput latches the last command pushed by a physical control and
// hands it out once.
type ManualInput struct {
	pending gesture.Command
}

// Push replaces the pending command.
func (m *ManualInput) Push(c gesture.Command) {
	m.pending = c
}

// Poll returns and clears the pending command.
func (m *ManualInput) Poll() (gesture.Command, gesture.Hint) {
	c := m.pending
	m.pending = gesture.None
	return c, gesture.Hint{}
}
