package renderer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lorenzhs/gpn17-snake/pkg/config"
	"github.com/lorenzhs/gpn17-snake/pkg/hal"
)

// boardPixels is the part of the panel covered by board cells.
const boardPixels = config.Width * config.PixelsPerCell

// TerminalRenderer shows the badge on an ANSI terminal: four indicator
// swatches on top and the panel below, two pixel rows per text line.
type TerminalRenderer struct {
	*Framebuffer
	LEDs

	out    io.Writer
	buffer strings.Builder
}

// NewTerminalRenderer creates a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{
		Framebuffer: NewFramebuffer(),
		out:         os.Stdout,
	}
}

// clearScreen clears the terminal using ANSI escape codes
func (r *TerminalRenderer) clearScreen() {
	fmt.Fprint(r.out, "\033[H\033[2J\033[3J")
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Fprint(r.out, "\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	fmt.Fprint(r.out, "\033[?25l")
}

// CommitFrame redraws the panel if anything changed since the last frame.
func (r *TerminalRenderer) CommitFrame() {
	if !r.Dirty() {
		return
	}
	r.Framebuffer.CommitFrame()
	r.clearScreen()
	r.buffer.Reset()

	r.buffer.WriteString("\n  🐍 GPN SNAKE 🐍\n")
	r.writeIndicators()
	r.buffer.WriteString("\n\n")

	for y := 0; y < boardPixels; y += 2 {
		r.buffer.WriteString("  ")
		for x := 0; x < boardPixels; x++ {
			r.buffer.WriteRune(halfBlock(r.Pixel(x, y), r.Pixel(x, y+1)))
		}
		r.buffer.WriteString("\n")
	}

	r.buffer.WriteString("\n  Tilt or use WASD/arrows to steer, Enter to confirm\n")
	r.buffer.WriteString("  C to calibrate, Q to quit\n")

	fmt.Fprint(r.out, r.buffer.String())
}

// Commit publishes the indicators and repaints their line in place, so
// flashes outside of a frame are visible too.
func (r *TerminalRenderer) Commit() {
	r.LEDs.Commit()
	r.buffer.Reset()
	r.buffer.WriteString("\0337\033[3;1H")
	r.writeIndicators()
	r.buffer.WriteString("\0338")
	fmt.Fprint(r.out, r.buffer.String())
}

func (r *TerminalRenderer) writeIndicators() {
	r.buffer.WriteString("  ")
	for _, c := range r.Shown() {
		r.buffer.WriteString(swatch(c))
		r.buffer.WriteString(" ")
	}
}

// swatch renders one indicator as a truecolor block.
func swatch(c hal.RGB) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm●\033[0m", c.R, c.G, c.B)
}

func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}
