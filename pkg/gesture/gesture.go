// Package gesture turns a drifting orientation signal into discrete
// joystick commands.
//
// The classifier is stateless: it compares one reading against a neutral
// reference and applies a deadzone. There is no hysteresis or debouncing,
// so a reading hovering at a threshold may alternate between None and a
// direction from one poll to the next.
package gesture

import (
	"math"

	"github.com/lorenzhs/gpn17-snake/pkg/config"
	"github.com/lorenzhs/gpn17-snake/pkg/hal"
)

// Command is one input event, produced either by tilting or by a physical
// control.
type Command uint8

const (
	None Command = iota
	Up
	Down
	Left
	Right
	Confirm
)

func (c Command) String() string {
	switch c {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Confirm:
		return "confirm"
	default:
		return "none"
	}
}

// Hint is the tilt feedback shown while the badge is centred.
type Hint struct {
	Active  bool    // only set in the centred zone
	Warning bool    // both axes are drifting
	DA, DB  float64 // deviation from neutral
}

// Colors returns the indicator colours for the hint, indexed by indicator id.
func (h Hint) Colors() [config.Indicators]hal.RGB {
	var out [config.Indicators]hal.RGB
	if !h.Active {
		return out
	}
	for i := range out {
		out[i] = hal.RGB{G: uint8(config.HintBase)}
	}
	a, b := hal.IndicatorRight, hal.IndicatorDown
	if h.DA < 0 {
		a = hal.IndicatorLeft
	}
	if h.DB < 0 {
		b = hal.IndicatorUp
	}
	out[a] = h.tint(h.DA)
	out[b] = h.tint(h.DB)
	return out
}

func (h Hint) tint(d float64) hal.RGB {
	c := clamp(config.HintBase + config.HintSlope*math.Abs(d))
	if h.Warning {
		return hal.RGB{R: c, G: c}
	}
	return hal.RGB{G: c}
}

func clamp(v float64) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// Classify maps reading against neutral to a command. The first matching
// rule wins; the band between AxisTolerance and CenterDeadzone on the
// dominant axis yields None without a hint.
func Classify(reading, neutral hal.Reading) (Command, Hint) {
	d := reading.Sub(neutral)
	da, db := d.A, d.B
	absA, absB := math.Abs(da), math.Abs(db)

	switch {
	case absA < config.CenterDeadzone && absB < config.CenterDeadzone:
		return None, Hint{
			Active:  true,
			Warning: absA > config.WarningLevel && absB > config.WarningLevel,
			DA:      da,
			DB:      db,
		}
	case da > config.CenterDeadzone && absB < config.AxisTolerance:
		return Right, Hint{}
	case da < -config.CenterDeadzone && absB < config.AxisTolerance:
		return Left, Hint{}
	case absA < config.AxisTolerance && db > config.CenterDeadzone:
		return Down, Hint{}
	case absA < config.AxisTolerance && db < -config.CenterDeadzone:
		return Up, Hint{}
	}
	return None, Hint{}
}
