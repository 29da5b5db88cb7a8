// Package haptic drives the vibration motor, or stands in for it.
package haptic

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	buzzFreq   = 150.0
)

// Nop ignores the motor.
type Nop struct{}

// SetMotor does nothing.
func (Nop) SetMotor(bool) {}

// Buzzer emulates the vibration motor with a low buzz on the speaker. The
// tone plays for as long as the motor is on.
type Buzzer struct {
	mu   sync.Mutex
	ctrl *beep.Ctrl
}

// NewBuzzer opens the speaker and starts a paused buzz.
func NewBuzzer() (*Buzzer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	b := &Buzzer{
		ctrl: &beep.Ctrl{Streamer: NewBuzzGenerator(sampleRate, buzzFreq), Paused: true},
	}
	speaker.Play(b.ctrl)
	return b, nil
}

// SetMotor starts or stops the buzz.
func (b *Buzzer) SetMotor(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	speaker.Lock()
	b.ctrl.Paused = !on
	speaker.Unlock()
}

// Close stops playback.
func (b *Buzzer) Close() {
	b.SetMotor(false)
	speaker.Clear()
}

// BuzzGenerator produces an endless motor-like buzz: a fundamental with
// two harmonics.
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz at freq Hz.
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)
		sample *= 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
