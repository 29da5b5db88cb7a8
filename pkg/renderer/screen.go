package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lorenzhs/gpn17-snake/pkg/hal"
)

// Screen shows the badge in a full-screen tcell terminal.
type Screen struct {
	*Framebuffer
	LEDs

	screen tcell.Screen
}

// NewScreen initialises the terminal.
func NewScreen() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	return newScreen(screen), nil
}

func newScreen(screen tcell.Screen) *Screen {
	return &Screen{Framebuffer: NewFramebuffer(), screen: screen}
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.screen.Fini()
}

// Sync repaints everything after a resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// Events forwards terminal events to a channel.
func (s *Screen) Events() <-chan tcell.Event {
	ch := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				close(ch)
				return
			}
			ch <- ev
		}
	}()
	return ch
}

// CommitFrame redraws the panel if it changed.
func (s *Screen) CommitFrame() {
	if !s.Dirty() {
		return
	}
	s.Framebuffer.CommitFrame()

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for y := 0; y < boardPixels; y += 2 {
		for x := 0; x < boardPixels; x++ {
			s.screen.SetContent(x+1, y/2+2, halfBlock(s.Pixel(x, y), s.Pixel(x, y+1)), nil, style)
		}
	}
	s.screen.Show()
}

// Commit publishes the indicators and shows them immediately.
func (s *Screen) Commit() {
	s.LEDs.Commit()
	for i, c := range s.Shown() {
		s.screen.SetContent(1+i*2, 0, '●', nil, tcell.StyleDefault.Foreground(rgb(c)))
	}
	s.screen.Show()
}

func rgb(c hal.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
