package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/lorenzhs/gpn17-snake/pkg/badge"
	"github.com/lorenzhs/gpn17-snake/pkg/config"
	"github.com/lorenzhs/gpn17-snake/pkg/game"
	"github.com/lorenzhs/gpn17-snake/pkg/input"
	"github.com/lorenzhs/gpn17-snake/pkg/renderer"
)

func main() {
	configPath := flag.String("config", "badge.yaml", "settings file")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Fatalf("Error loading settings: %v", err)
	}

	devices, err := badge.OpenDevices(settings)
	if err != nil {
		log.Fatalf("Error opening devices: %v", err)
	}
	defer devices.Close()

	// Initialize input handler
	inputHandler := input.NewKeyboardHandler()
	if err := inputHandler.Start(); err != nil {
		fmt.Println("Error opening keyboard:", err)
		return
	}
	defer inputHandler.Stop()

	// Initialize renderer
	render := renderer.NewTerminalRenderer()
	render.HideCursor()
	defer render.ShowCursor()

	session, err := badge.NewSession(settings, devices.Orientation, game.Outputs{
		Pixels:     render,
		Indicators: render,
		Haptic:     devices.Haptic,
	})
	if err != nil {
		log.Fatalf("Error starting game: %v", err)
	}
	defer session.Close()
	if session.Recorder != nil {
		log.Printf("📼 Recording to %s", session.Recorder.Path)
	}

	// Get input channel
	inputChan := inputHandler.GetInputChan()

	// Frame ticker
	ticker := time.NewTicker(config.FramePeriod)
	defer ticker.Stop()

	session.Loop.Start()

	// Main game loop
	for {
		select {
		case inputEvent := <-inputChan:
			if input.IsQuit(inputEvent) {
				render.ShowCursor()
				fmt.Printf("\n  Thanks for playing! 👋 (seed %d)\n", session.Seed)
				return
			}
			if input.IsCalibrate(inputEvent) {
				session.Calibrate()
				continue
			}
			if cmd, ok := input.ParseCommand(inputEvent); ok {
				session.Keys.Push(cmd)
			}

		case <-ticker.C:
			session.Loop.Frame()
		}
	}
}
