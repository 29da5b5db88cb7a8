package input

import (
	"github.com/eiannone/keyboard"

	"github.com/lorenzhs/gpn17-snake/pkg/gesture"
)

// KeyboardHandler handles keyboard input
type KeyboardHandler struct {
	inputChan chan KeyInput
}

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		inputChan: make(chan KeyInput),
	}
}

// Start begins listening for keyboard input
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			h.inputChan <- KeyInput{Char: char, Key: key}
		}
	}()

	return nil
}

// Stop stops the keyboard handler
func (h *KeyboardHandler) Stop() {
	keyboard.Close()
}

// GetInputChan returns the input channel
func (h *KeyboardHandler) GetInputChan() <-chan KeyInput {
	return h.inputChan
}

// ParseCommand parses a key input into a joystick command
func ParseCommand(input KeyInput) (gesture.Command, bool) {
	// Handle arrow keys and enter
	switch input.Key {
	case keyboard.KeyArrowUp:
		return gesture.Up, true
	case keyboard.KeyArrowDown:
		return gesture.Down, true
	case keyboard.KeyArrowLeft:
		return gesture.Left, true
	case keyboard.KeyArrowRight:
		return gesture.Right, true
	case keyboard.KeyEnter, keyboard.KeySpace:
		return gesture.Confirm, true
	}
	return parseRune(input.Char)
}

// IsQuit checks if the input is a quit command
func IsQuit(input KeyInput) bool {
	return input.Char == 'q' || input.Char == 'Q' || input.Key == keyboard.KeyEsc || input.Key == keyboard.KeyCtrlC
}

// IsCalibrate checks if the input asks to re-centre the tilt sensor
func IsCalibrate(input KeyInput) bool {
	return input.Char == 'c' || input.Char == 'C'
}

// Handle WASD keys
func parseRune(r rune) (gesture.Command, bool) {
	switch r {
	case 'w', 'W':
		return gesture.Up, true
	case 's', 'S':
		return gesture.Down, true
	case 'a', 'A':
		return gesture.Left, true
	case 'd', 'D':
		return gesture.Right, true
	}
	return gesture.None, false
}
