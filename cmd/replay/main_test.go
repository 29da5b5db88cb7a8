package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lorenzhs/gpn17-snake/pkg/game"
)

func TestRecordPath(t *testing.T) {
	s := &ReplayServer{recordDir: "records"}
	tests := []struct {
		name string
		ok   bool
	}{
		{"game_abc_1.jsonl", true},
		{"", false},
		{"../etc/passwd", false},
		{"sub/game.jsonl", false},
		{"game.txt", false},
	}
	for _, tt := range tests {
		if _, ok := s.recordPath(tt.name); ok != tt.ok {
			t.Errorf("recordPath(%q) ok = %v, want %v", tt.name, ok, tt.ok)
		}
	}
}

func TestListAndVerify(t *testing.T) {
	dir := t.TempDir()
	rec, err := game.NewRecorder(dir, 42)
	if err != nil {
		t.Fatal(err)
	}
	rec.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	s := &ReplayServer{recordDir: dir}
	list := s.listRecordings()
	if len(list) != 1 {
		t.Fatalf("listed %d recordings, want 1", len(list))
	}
	if list[0].SessionID != rec.Session {
		t.Errorf("session = %q, want %q", list[0].SessionID, rec.Session)
	}
	if time.Since(list[0].Time) > time.Minute {
		t.Errorf("stale mod time %v", list[0].Time)
	}

	if code := verifyFile(rec.Path); code != 0 {
		t.Errorf("empty recording verify = %d", code)
	}
	if code := verifyFile(filepath.Join(dir, "missing.jsonl")); code != 1 {
		t.Errorf("missing file verify = %d", code)
	}
}
