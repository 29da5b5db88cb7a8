package proto

import (
	"github.com/lorenzhs/gpn17-snake/pkg/config"
	"github.com/lorenzhs/gpn17-snake/pkg/gesture"
	"github.com/lorenzhs/gpn17-snake/pkg/hal"
)

// NewConfigMessage describes the badge panel.
func NewConfigMessage() ServerMessage {
	return ServerMessage{
		Type: TypeConfig,
		Config: &DisplayConfig{
			Width:         config.DisplayWidth,
			Height:        config.DisplayHeight,
			BoardWidth:    config.Width,
			BoardHeight:   config.Height,
			PixelsPerCell: config.PixelsPerCell,
		},
	}
}

// NewFrameMessage wraps a committed frame.
func NewFrameMessage(pixels []byte, length int, neutral hal.Reading) ServerMessage {
	return ServerMessage{
		Type: TypeFrame,
		Frame: &Frame{
			Pixels:  pixels,
			Length:  length,
			Neutral: neutral,
		},
	}
}

// NewIndicatorMessage carries committed indicator colours.
func NewIndicatorMessage(leds [config.Indicators]hal.RGB) ServerMessage {
	return ServerMessage{Type: TypeIndicators, Indicators: &leds}
}

// NewMotorMessage carries the motor state.
func NewMotorMessage(on bool) ServerMessage {
	return ServerMessage{Type: TypeMotor, Motor: &on}
}

// ToCommand maps a client action to a joystick command.
func ToCommand(action string) (gesture.Command, bool) {
	switch action {
	case "up":
		return gesture.Up, true
	case "down":
		return gesture.Down, true
	case "left":
		return gesture.Left, true
	case "right":
		return gesture.Right, true
	case "confirm":
		return gesture.Confirm, true
	}
	return gesture.None, false
}
