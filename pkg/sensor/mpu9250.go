package sensor

import (
	"fmt"
	"log"
	"math"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/devices/v3/mpu9250"
	"periph.io/x/host/v3"

	"github.com/lorenzhs/gpn17-snake/pkg/hal"
)

// MPU9250 estimates roll and pitch from the accelerometer of an MPU9250 on
// SPI. Heading is not fused and stays 0.
type MPU9250 struct {
	imu     *mpu9250.MPU9250
	last    hal.Reading
	failing bool
}

// NewMPU9250 initialises the IMU on spiDev with chip select on csPin.
func NewMPU9250(spiDev, csPin string) (*MPU9250, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}

	cs := gpioreg.ByName(csPin)
	if cs == nil {
		return nil, fmt.Errorf("IMU CS pin %q not found", csPin)
	}

	tr, err := mpu9250.NewSpiTransport(spiDev, cs)
	if err != nil {
		return nil, fmt.Errorf("IMU SPI transport: %w", err)
	}

	imu, err := mpu9250.New(tr)
	if err != nil {
		return nil, fmt.Errorf("IMU new device: %w", err)
	}
	if err := imu.Init(); err != nil {
		return nil, fmt.Errorf("IMU init: %w", err)
	}
	if err := imu.Calibrate(); err != nil {
		return nil, fmt.Errorf("IMU calibrate: %w", err)
	}
	return &MPU9250{imu: imu}, nil
}

// Read returns roll as A and pitch as B, in degrees.
func (s *MPU9250) Read() hal.Reading {
	ax, errX := s.imu.GetAccelerationX()
	ay, errY := s.imu.GetAccelerationY()
	az, errZ := s.imu.GetAccelerationZ()
	for _, err := range []error{errX, errY, errZ} {
		if err != nil {
			if !s.failing {
				log.Printf("mpu9250: read acceleration: %v", err)
				s.failing = true
			}
			return s.last
		}
	}
	s.failing = false
	s.last = tiltFromAccel(float64(ax), float64(ay), float64(az))
	return s.last
}

// tiltFromAccel is the accelerometer-only tilt estimate:
// roll = atan2(ay, az), pitch = atan2(-ax, sqrt(ay^2 + az^2)).
func tiltFromAccel(ax, ay, az float64) hal.Reading {
	roll := math.Atan2(ay, az) * 180 / math.Pi
	pitch := math.Atan2(-ax, math.Sqrt(ay*ay+az*az)) * 180 / math.Pi
	return hal.Reading{A: roll, B: pitch}
}
