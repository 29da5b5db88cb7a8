package gesture

import "github.com/lorenzhs/gpn17-snake/pkg/hal"

// Classifier polls an orientation source and classifies it against a
// neutral reference captured by Calibrate.
type Classifier struct {
	src     hal.Orientation
	neutral hal.Reading
}

// NewClassifier returns a classifier with a zero neutral reference.
func NewClassifier(src hal.Orientation) *Classifier {
	return &Classifier{src: src}
}

// Calibrate latches the current reading as neutral. No averaging is done.
func (c *Classifier) Calibrate() {
	c.neutral = c.src.Read()
}

// Neutral returns the current reference.
func (c *Classifier) Neutral() hal.Reading {
	return c.neutral
}

// Poll reads the source once and classifies it.
func (c *Classifier) Poll() (Command, Hint) {
	return Classify(c.src.Read(), c.neutral)
}
