package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

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

	screen, err := renderer.NewScreen()
	if err != nil {
		log.Fatalf("Error opening screen: %v", err)
	}

	session, err := badge.NewSession(settings, devices.Orientation, game.Outputs{
		Pixels:     screen,
		Indicators: screen,
		Haptic:     devices.Haptic,
	})
	if err != nil {
		screen.Fini()
		log.Fatalf("Error starting game: %v", err)
	}
	defer session.Close()

	events := screen.Events()
	ticker := time.NewTicker(config.FramePeriod)
	defer ticker.Stop()

	session.Loop.Start()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				screen.Fini()
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if input.IsTcellQuit(ev) {
					screen.Fini()
					fmt.Printf("Thanks for playing! 👋 (seed %d)\n", session.Seed)
					return
				}
				if input.IsTcellCalibrate(ev) {
					session.Calibrate()
					continue
				}
				if cmd, ok := input.ParseTcellKey(ev); ok {
					session.Keys.Push(cmd)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			session.Loop.Frame()
		}
	}
}
