// Package hal declares the narrow interfaces between the game core and the
// badge peripherals: orientation sensor, pixel panel, RGB indicators and
// vibration motor. All calls are treated as infallible by the core.
package hal

// Reading is one orientation sample. A and B are the two tilt axes consulted
// by the gesture classifier (roll and pitch on a BNO055 Euler vector); C is
// carried but unused.
type Reading struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// Sub returns the component-wise difference r - o.
func (r Reading) Sub(o Reading) Reading {
	return Reading{A: r.A - o.A, B: r.B - o.B, C: r.C - o.C}
}

// Orientation supplies readings on demand without blocking.
type Orientation interface {
	Read() Reading
}

// Pattern is the fill of one 3x3 cell block.
type Pattern uint8

const (
	SolidOff Pattern = iota
	SolidOn
	Diamond
)

// Mask reports whether pixel (px, py) of a 3x3 block is lit for p.
func (p Pattern) Mask(px, py int) bool {
	switch p {
	case SolidOn:
		return true
	case Diamond:
		// edge centres only
		return (px == 1) != (py == 1)
	default:
		return false
	}
}

// PixelDriver draws cell blocks. Nothing becomes visible before CommitFrame.
type PixelDriver interface {
	DrawBlock(x, y int, p Pattern)
	ClearScreen()
	CommitFrame()
}

// RGB is an indicator colour.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Off is the dark indicator colour.
var Off = RGB{}

// Indicator ids, matching the board layout of the LEDs.
const (
	IndicatorUp = iota
	IndicatorLeft
	IndicatorRight
	IndicatorDown
)

// Indicators buffers four RGB LEDs; Commit shows them all at once. The last
// SetIndicator before a Commit wins.
type Indicators interface {
	SetIndicator(id int, c RGB)
	Commit()
}

// Haptic switches the vibration motor.
type Haptic interface {
	SetMotor(on bool)
}

// SetAll sets every indicator to c without committing.
func SetAll(ind Indicators, c RGB) {
	for id := IndicatorUp; id <= IndicatorDown; id++ {
		ind.SetIndicator(id, c)
	}
}
