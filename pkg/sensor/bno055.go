// Package sensor provides orientation sources for the gesture classifier.
//
// Hardware sources treat reads as infallible toward the game: a failed read
// is logged once and the last good reading is returned until the sensor
// recovers.
package sensor

import (
	"encoding/binary"
	"fmt"
	"log"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/lorenzhs/gpn17-snake/pkg/hal"
)

// BNO055 registers (page 0)
const (
	bnoChipID    = 0x00
	bnoEulerData = 0x1A // heading, roll, pitch; int16 LE each
	bnoUnitSel   = 0x3B
	bnoOprMode   = 0x3D
	bnoPwrMode   = 0x3E
	bnoPageID    = 0x07

	bnoID         = 0xA0
	bnoModeConfig = 0x00
	bnoModeNDOF   = 0x0C
	bnoPowerNorm  = 0x00

	// 16 LSB per degree in the default unit selection
	bnoEulerScale = 16.0
)

// BNO055 reads the fused Euler vector of a Bosch BNO055 over I2C.
type BNO055 struct {
	dev     *i2c.Dev
	bus     i2c.BusCloser
	last    hal.Reading
	failing bool
}

// NewBNO055 opens the I2C bus, checks the chip id and switches the sensor
// to NDOF fusion mode.
func NewBNO055(busName string, addr uint16) (*BNO055, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", busName, err)
	}
	s := &BNO055{dev: &i2c.Dev{Addr: addr, Bus: bus}, bus: bus}

	id, err := s.readReg(bnoChipID)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("bno055 chip id: %w", err)
	}
	if id != bnoID {
		bus.Close()
		return nil, fmt.Errorf("bno055 at 0x%02x: unexpected chip id 0x%02x", addr, id)
	}

	steps := []struct {
		reg, val byte
		wait     time.Duration
	}{
		{bnoOprMode, bnoModeConfig, 25 * time.Millisecond},
		{bnoPwrMode, bnoPowerNorm, 10 * time.Millisecond},
		{bnoPageID, 0, 0},
		{bnoUnitSel, 0, 0}, // degrees, m/s^2, Celsius
		{bnoOprMode, bnoModeNDOF, 20 * time.Millisecond},
	}
	for _, st := range steps {
		if err := s.writeReg(st.reg, st.val); err != nil {
			bus.Close()
			return nil, fmt.Errorf("bno055 write 0x%02x: %w", st.reg, err)
		}
		time.Sleep(st.wait)
	}
	return s, nil
}

// Read returns roll as A, pitch as B and heading as C, in degrees.
func (s *BNO055) Read() hal.Reading {
	buf := make([]byte, 6)
	if err := s.dev.Tx([]byte{bnoEulerData}, buf); err != nil {
		if !s.failing {
			log.Printf("bno055: read euler: %v", err)
			s.failing = true
		}
		return s.last
	}
	s.failing = false
	s.last = eulerFromRaw(buf)
	return s.last
}

// Close releases the bus.
func (s *BNO055) Close() error {
	return s.bus.Close()
}

func (s *BNO055) readReg(reg byte) (byte, error) {
	b := make([]byte, 1)
	if err := s.dev.Tx([]byte{reg}, b); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *BNO055) writeReg(reg, val byte) error {
	return s.dev.Tx([]byte{reg, val}, nil)
}

func eulerFromRaw(b []byte) hal.Reading {
	heading := float64(int16(binary.LittleEndian.Uint16(b[0:]))) / bnoEulerScale
	roll := float64(int16(binary.LittleEndian.Uint16(b[2:]))) / bnoEulerScale
	pitch := float64(int16(binary.LittleEndian.Uint16(b[4:]))) / bnoEulerScale
	return hal.Reading{A: roll, B: pitch, C: heading}
}
