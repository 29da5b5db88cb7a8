package game

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// RecordHeader is the first line of every recording.
type RecordHeader struct {
	Session string    `json:"session"`
	Seed    uint64    `json:"seed"`
	Started time.Time `json:"started"`
}

// TickRecord describes one simulation tick.
type TickRecord struct {
	Tick       uint64    `json:"tick"`
	Time       time.Time `json:"time"`
	Command    string    `json:"command"`
	Direction  string    `json:"direction"` // direction the tick moved in
	Outcome    string    `json:"outcome"`
	HeadX      int       `json:"headX"` // head after the tick
	HeadY      int       `json:"headY"`
	Length     int       `json:"length"`
	FrameDelay int64     `json:"frameDelayUs"`
}

// GameRecorder handles asynchronous logging of ticks to a JSONL file
type GameRecorder struct {
	file       *os.File
	writer     *bufio.Writer
	recordChan chan TickRecord
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool

	Session string
	Path    string
}

// NewRecorder creates a recorder writing to dir.
// Filename format: game_{sessionID}_{timestamp}.jsonl
func NewRecorder(dir string, seed uint64) (*GameRecorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create records dir: %w", err)
	}

	session := uuid.New().String()
	now := time.Now()
	filename := fmt.Sprintf("game_%s_%d.jsonl", session, now.Unix())
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create record file: %w", err)
	}

	r := &GameRecorder{
		file:       f,
		writer:     bufio.NewWriter(f),
		recordChan: make(chan TickRecord, 1000), // Buffer up to 1000 ticks
		Session:    session,
		Path:       path,
	}

	if err := json.NewEncoder(r.writer).Encode(RecordHeader{Session: session, Seed: seed, Started: now}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write record header: %w", err)
	}

	// Start background writer
	r.wg.Add(1)
	go r.writeLoop()

	return r, nil
}

// RecordTick queues a record to be written. Non-blocking (drops if full).
func (r *GameRecorder) RecordTick(rec TickRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	select {
	case r.recordChan <- rec:
	default:
		// Channel full, drop tick to protect the game loop
	}
}

// Close flushes the buffer and closes the file
func (r *GameRecorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.recordChan)
	r.mu.Unlock()

	r.wg.Wait() // Wait for writeLoop to finish
	r.file.Close()
}

func (r *GameRecorder) writeLoop() {
	defer r.wg.Done()

	encoder := json.NewEncoder(r.writer)
	for rec := range r.recordChan {
		if err := encoder.Encode(rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error recording tick: %v\n", err)
			continue
		}
	}
	r.writer.Flush()
}

// ReadRecording parses a recording written by GameRecorder.
func ReadRecording(rd io.Reader) (RecordHeader, []TickRecord, error) {
	var hdr RecordHeader
	dec := json.NewDecoder(rd)
	if err := dec.Decode(&hdr); err != nil {
		return hdr, nil, fmt.Errorf("read header: %w", err)
	}

	var ticks []TickRecord
	for {
		var rec TickRecord
		err := dec.Decode(&rec)
		if err == io.EOF {
			break
		}
		if err != nil {
			return hdr, ticks, fmt.Errorf("read tick %d: %w", len(ticks)+1, err)
		}
		ticks = append(ticks, rec)
	}
	return hdr, ticks, nil
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}
