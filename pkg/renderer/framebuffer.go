package renderer

import (
	"github.com/lorenzhs/gpn17-snake/pkg/config"
	"github.com/lorenzhs/gpn17-snake/pkg/hal"
)

// Framebuffer is the monochrome badge panel. Each board cell is a 3x3 pixel
// block; the remaining border pixels stay dark.
type Framebuffer struct {
	pix   [config.DisplayWidth * config.DisplayHeight / 8]byte
	dirty bool
}

// NewFramebuffer returns a dark framebuffer.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{dirty: true}
}

// DrawBlock fills the pixel block of cell (x, y) with pattern p.
func (f *Framebuffer) DrawBlock(x, y int, p hal.Pattern) {
	for py := 0; py < config.PixelsPerCell; py++ {
		for px := 0; px < config.PixelsPerCell; px++ {
			f.SetPixel(x*config.PixelsPerCell+px, y*config.PixelsPerCell+py, p.Mask(px, py))
		}
	}
	f.dirty = true
}

// ClearScreen darkens every pixel.
func (f *Framebuffer) ClearScreen() {
	f.pix = [len(f.pix)]byte{}
	f.dirty = true
}

// CommitFrame on a bare framebuffer only acknowledges the pending changes.
func (f *Framebuffer) CommitFrame() {
	f.dirty = false
}

// SetPixel sets one pixel; out of range writes are ignored.
func (f *Framebuffer) SetPixel(x, y int, on bool) {
	if x < 0 || x >= config.DisplayWidth || y < 0 || y >= config.DisplayHeight {
		return
	}
	i := y*config.DisplayWidth + x
	mask := byte(0x80) >> (i % 8)
	if on {
		f.pix[i/8] |= mask
	} else {
		f.pix[i/8] &^= mask
	}
}

// Pixel reports whether pixel (x, y) is lit.
func (f *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || x >= config.DisplayWidth || y < 0 || y >= config.DisplayHeight {
		return false
	}
	i := y*config.DisplayWidth + x
	return f.pix[i/8]&(byte(0x80)>>(i%8)) != 0
}

// Bytes returns a copy of the packed pixels, row-major, MSB first.
func (f *Framebuffer) Bytes() []byte {
	out := make([]byte, len(f.pix))
	copy(out, f.pix[:])
	return out
}

// Dirty reports whether anything changed since the last commit.
func (f *Framebuffer) Dirty() bool {
	return f.dirty
}

// LEDs buffers the four indicators: writes go to pending, Commit publishes
// them to Shown.
type LEDs struct {
	pending [config.Indicators]hal.RGB
	shown   [config.Indicators]hal.RGB
}

// SetIndicator buffers colour c for indicator id.
func (l *LEDs) SetIndicator(id int, c hal.RGB) {
	if id < 0 || id >= config.Indicators {
		return
	}
	l.pending[id] = c
}

// Commit publishes the pending colours.
func (l *LEDs) Commit() {
	l.shown = l.pending
}

// Shown returns the committed colours.
func (l *LEDs) Shown() [config.Indicators]hal.RGB {
	return l.shown
}
