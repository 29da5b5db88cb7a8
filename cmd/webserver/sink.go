package main

import (
	"github.com/lorenzhs/gpn17-snake/pkg/game"
	"github.com/lorenzhs/gpn17-snake/pkg/gesture"
	"github.com/lorenzhs/gpn17-snake/pkg/hal"
	"github.com/lorenzhs/gpn17-snake/pkg/proto"
	"github.com/lorenzhs/gpn17-snake/pkg/renderer"
)

// webSink is the badge hardware as seen from a browser: every committed
// frame, indicator update and motor change becomes a message.
type webSink struct {
	*renderer.Framebuffer
	renderer.LEDs

	send       func(proto.ServerMessage) error
	engine     *game.Engine
	classifier *gesture.Classifier
	err        error // first send failure
}

func newWebSink(send func(proto.ServerMessage) error) *webSink {
	return &webSink{Framebuffer: renderer.NewFramebuffer(), send: send}
}

// CommitFrame sends the panel if it changed since the last frame.
func (s *webSink) CommitFrame() {
	if !s.Dirty() {
		return
	}
	s.Framebuffer.CommitFrame()

	length := 0
	if s.engine != nil {
		length = s.engine.Len()
	}
	var neutral hal.Reading
	if s.classifier != nil {
		neutral = s.classifier.Neutral()
	}
	s.emit(proto.NewFrameMessage(s.Bytes(), length, neutral))
}

// Commit sends the indicator colours.
func (s *webSink) Commit() {
	s.LEDs.Commit()
	s.emit(proto.NewIndicatorMessage(s.Shown()))
}

// SetMotor forwards the motor state to the phone.
func (s *webSink) SetMotor(on bool) {
	s.emit(proto.NewMotorMessage(on))
}

func (s *webSink) emit(msg proto.ServerMessage) {
	if err := s.send(msg); err != nil && s.err == nil {
		s.err = err
	}
}
