package config

import "time"

// Board dimensions. The board is a torus: every edge wraps to the opposite one.
const (
	Width  = 42
	Height = 42
	Size   = Width * Height

	// PixelsPerCell is the edge length of the square pixel block drawn per cell.
	PixelsPerCell = 3
	// DisplayWidth and DisplayHeight describe the badge panel in pixels.
	DisplayWidth  = 128
	DisplayHeight = 128

	// Indicators is the number of RGB indicator LEDs on the badge.
	Indicators = 4
)

// Initial snake placement
const (
	StartX      = Width / 4
	StartY      = Height / 2
	StartLength = 3
)

// Speed settings
const (
	InitialFrameDelay = 200 * time.Millisecond // 5 ticks per second
	SpeedRamp         = 1.04                   // frame delay is divided by this per food eaten
	FramePeriod       = 16 * time.Millisecond  // input polling cadence of the front-ends (~60 FPS)
)

// Feedback timings
const (
	ConfirmPause  = 100 * time.Millisecond
	GameOverFlash = 500 * time.Millisecond
)

// Food placement
const (
	// FoodPlacementAttempts bounds random sampling before falling back to a linear scan.
	FoodPlacementAttempts = 4 * Size
)

// Gesture thresholds, in degrees of deviation from the neutral reading.
const (
	CenterDeadzone = 10.0 // both axes below this: centred
	AxisTolerance  = 8.0  // the off axis must stay below this for a direction
	WarningLevel   = 7.0  // both axes above this while centred: warning tint
	HintBase       = 10.0 // base feedback intensity
	HintSlope      = 5.0  // feedback intensity per degree
)

// Indicator intensities
const (
	DirectionLevel = 30  // blue level for the commanded direction
	ConfirmLevel   = 30  // green level for the confirm acknowledgement
	GameOverLevel  = 100 // red level for the game-over flash
)
