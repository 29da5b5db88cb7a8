package haptic

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Motor switches a vibration motor on a GPIO pin.
type Motor struct {
	pin gpio.PinOut
}

// NewMotor initialises the host and drives pin low.
func NewMotor(name string) (*Motor, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("motor pin %q not found", name)
	}
	if err := pin.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("motor pin %s: %w", name, err)
	}
	return &Motor{pin: pin}, nil
}

// SetMotor drives the pin high while on.
func (m *Motor) SetMotor(on bool) {
	level := gpio.Low
	if on {
		level = gpio.High
	}
	if err := m.pin.Out(level); err != nil {
		log.Printf("motor: %v", err)
	}
}
