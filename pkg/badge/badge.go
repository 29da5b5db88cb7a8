// Package badge wires settings to peripherals and assembles a game loop.
// The front-ends in cmd/ share it.
package badge

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lorenzhs/gpn17-snake/pkg/config"
	"github.com/lorenzhs/gpn17-snake/pkg/game"
	"github.com/lorenzhs/gpn17-snake/pkg/gesture"
	"github.com/lorenzhs/gpn17-snake/pkg/hal"
	"github.com/lorenzhs/gpn17-snake/pkg/haptic"
	"github.com/lorenzhs/gpn17-snake/pkg/input"
)

// Devices holds the opened orientation sensor and motor.
type Devices struct {
	Orientation hal.Orientation // nil without a sensor
	Haptic      hal.Haptic

	closers []func()
}

// OpenDevices brings up the peripherals named in s. A failing buzzer is not
// fatal; a configured sensor or motor pin that cannot be opened is.
func OpenDevices(s *config.Settings) (*Devices, error) {
	d := &Devices{Haptic: haptic.Nop{}}

	switch s.Sensor.Kind {
	case config.SensorBNO055:
		bno, err := sensorBNO055(s.Sensor.I2CBus, s.Sensor.I2CAddr)
		if err != nil {
			return nil, err
		}
		d.Orientation = bno
		d.closers = append(d.closers, func() { bno.Close() })
	case config.SensorMPU9250:
		mpu, err := sensorMPU9250(s.Sensor.SPIDev, s.Sensor.CSPin)
		if err != nil {
			return nil, err
		}
		d.Orientation = mpu
	}

	switch {
	case s.Motor.Pin != "":
		m, err := haptic.NewMotor(s.Motor.Pin)
		if err != nil {
			d.Close()
			return nil, err
		}
		d.Haptic = m
	case s.Motor.Buzzer:
		b, err := haptic.NewBuzzer()
		if err != nil {
			// Non-fatal, the game runs without the buzz
			log.Printf("Audio initialization failed: %v", err)
			break
		}
		d.Haptic = b
		d.closers = append(d.closers, b.Close)
	}
	return d, nil
}

// Close releases every opened device.
func (d *Devices) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
	d.closers = nil
}

// Seed returns the configured seed or one derived from the clock.
func Seed(s *config.Settings) uint64 {
	if s.Seed != 0 {
		return s.Seed
	}
	return uint64(time.Now().UnixNano())
}

// Session is one assembled game.
type Session struct {
	Loop       *game.Loop
	Classifier *gesture.Classifier // nil without a sensor
	Keys       *game.ManualInput
	Seed       uint64
	Recorder   *game.GameRecorder // nil unless recording
}

// NewSession builds an engine and loop drawing to out. Tilt from orient
// and the physical controls pushed to Keys feed the same input.
func NewSession(s *config.Settings, orient hal.Orientation, out game.Outputs) (*Session, error) {
	seed := Seed(s)
	e := game.NewEngine(out.Pixels, rand.New(rand.NewSource(seed)))

	sess := &Session{Keys: &game.ManualInput{}, Seed: seed}
	sources := []game.Input{sess.Keys}
	if orient != nil {
		sess.Classifier = gesture.NewClassifier(orient)
		sess.Classifier.Calibrate()
		sources = append(sources, sess.Classifier)
	}
	sess.Loop = game.NewLoop(e, input.Merge(sources...), out, game.WallClock)

	if s.Record.Enabled {
		rec, err := game.NewRecorder(s.Record.Dir, seed)
		if err != nil {
			return nil, fmt.Errorf("recorder: %w", err)
		}
		sess.Recorder = rec
		sess.Loop.Recorder = rec
	}
	return sess, nil
}

// Calibrate re-centres the tilt sensor if there is one.
func (s *Session) Calibrate() {
	if s.Classifier != nil {
		s.Classifier.Calibrate()
	}
}

// Close flushes the recording.
func (s *Session) Close() {
	if s.Recorder != nil {
		s.Recorder.Close()
	}
}
