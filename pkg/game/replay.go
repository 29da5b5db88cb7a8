package game

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/lorenzhs/gpn17-snake/pkg/hal"
)

// Playback steps a recording on a fresh engine seeded like the original.
// The engine is fully determined by its seed and the steered directions.
type Playback struct {
	engine *Engine
	ticks  []TickRecord
	pos    int
}

// NewPlayback prepares a recording for stepping. pixels may be nil.
func NewPlayback(hdr RecordHeader, ticks []TickRecord, pixels hal.PixelDriver) *Playback {
	e := NewEngine(pixels, rand.New(rand.NewSource(hdr.Seed)))
	e.Init()
	return &Playback{engine: e, ticks: ticks}
}

// Engine returns the re-simulated engine.
func (p *Playback) Engine() *Engine { return p.engine }

// Next applies the next recorded tick. It returns false once the recording
// is exhausted.
func (p *Playback) Next() (TickRecord, Outcome, bool, error) {
	if p.pos >= len(p.ticks) {
		return TickRecord{}, OutcomeIdle, false, nil
	}
	rec := p.ticks[p.pos]
	p.pos++

	d, ok := ParseDirection(rec.Direction)
	if !ok {
		return rec, OutcomeIdle, false, fmt.Errorf("tick %d: bad direction %q", rec.Tick, rec.Direction)
	}
	p.engine.Steer(d)
	return rec, p.engine.Tick(), true, nil
}

// ReplayReport summarises a re-simulated recording.
type ReplayReport struct {
	Ticks      int
	Resets     int
	MaxLength  int
	DivergedAt uint64 // tick number of the first mismatch, 0 if none
	Reason     string
}

// Replay re-runs a recording and checks every tick lands where the
// recording says.
func Replay(hdr RecordHeader, ticks []TickRecord) (ReplayReport, error) {
	p := NewPlayback(hdr, ticks, nil)
	e := p.Engine()

	var rep ReplayReport
	rep.MaxLength = e.Len()
	for {
		rec, o, ok, err := p.Next()
		if err != nil {
			return rep, err
		}
		if !ok {
			return rep, nil
		}
		rep.Ticks++

		d, _ := ParseDirection(rec.Direction)
		x, y := ToCoords(e.Head())
		switch {
		case e.Direction() != d && o != OutcomeCollision && o != OutcomeBoardFull:
			rep.Reason = fmt.Sprintf("steer %s rejected", d)
		case o.String() != rec.Outcome:
			rep.Reason = fmt.Sprintf("outcome %s, recorded %s", o, rec.Outcome)
		case x != rec.HeadX || y != rec.HeadY:
			rep.Reason = fmt.Sprintf("head (%d,%d), recorded (%d,%d)", x, y, rec.HeadX, rec.HeadY)
		case e.Len() != rec.Length:
			rep.Reason = fmt.Sprintf("length %d, recorded %d", e.Len(), rec.Length)
		}
		if rep.Reason != "" {
			rep.DivergedAt = rec.Tick
			return rep, nil
		}

		if o == OutcomeCollision || o == OutcomeBoardFull {
			rep.Resets++
		}
		if e.Len() > rep.MaxLength {
			rep.MaxLength = e.Len()
		}
	}
}
