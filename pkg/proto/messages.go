// Package proto defines the JSON messages exchanged with the browser
// emulator over a websocket.
package proto

import (
	"github.com/lorenzhs/gpn17-snake/pkg/config"
	"github.com/lorenzhs/gpn17-snake/pkg/hal"
)

// Client message types
const (
	TypeTilt      = "tilt"      // Reading carries the phone orientation
	TypeAction    = "action"    // Action carries a key
	TypeCalibrate = "calibrate" // latch the current tilt as neutral
)

// ClientMessage is sent by the browser.
type ClientMessage struct {
	Type    string       `json:"type"`
	Reading *hal.Reading `json:"reading,omitempty"`
	Action  string       `json:"action,omitempty"` // up, down, left, right, confirm
}

// Server message types
const (
	TypeConfig     = "config"
	TypeFrame      = "frame"
	TypeIndicators = "leds"
	TypeMotor      = "motor"
)

// DisplayConfig describes the panel so the client can size its canvas.
type DisplayConfig struct {
	Width         int `json:"width"`
	Height        int `json:"height"`
	BoardWidth    int `json:"boardWidth"`
	BoardHeight   int `json:"boardHeight"`
	PixelsPerCell int `json:"pixelsPerCell"`
}

// Frame is one committed panel frame.
type Frame struct {
	Pixels  []byte      `json:"pixels"` // packed, row-major, MSB first
	Length  int         `json:"length"`
	Neutral hal.Reading `json:"neutral"`
}

// ServerMessage is sent to the browser. Indicator and motor changes travel
// on their own so flashes during a pause still reach the client.
type ServerMessage struct {
	Type       string                      `json:"type"`
	Config     *DisplayConfig              `json:"config,omitempty"`
	Frame      *Frame                      `json:"frame,omitempty"`
	Indicators *[config.Indicators]hal.RGB `json:"indicators,omitempty"`
	Motor      *bool                       `json:"motor,omitempty"`
}
