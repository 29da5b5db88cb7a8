package input

import (
	"testing"

	"github.com/eiannone/keyboard"
	"github.com/gdamore/tcell/v2"

	"github.com/lorenzhs/gpn17-snake/pkg/game"
	"github.com/lorenzhs/gpn17-snake/pkg/gesture"
	"github.com/lorenzhs/gpn17-snake/pkg/hal"
	"github.com/lorenzhs/gpn17-snake/pkg/sensor"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   KeyInput
		want gesture.Command
		ok   bool
	}{
		{KeyInput{Key: keyboard.KeyArrowUp}, gesture.Up, true},
		{KeyInput{Key: keyboard.KeyArrowLeft}, gesture.Left, true},
		{KeyInput{Key: keyboard.KeyEnter}, gesture.Confirm, true},
		{KeyInput{Char: 'd'}, gesture.Right, true},
		{KeyInput{Char: 'S'}, gesture.Down, true},
		{KeyInput{Char: 'x'}, gesture.None, false},
	}
	for _, tt := range tests {
		got, ok := ParseCommand(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseCommand(%+v) = %v,%v want %v,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}

	if !IsQuit(KeyInput{Char: 'q'}) || !IsQuit(KeyInput{Key: keyboard.KeyEsc}) {
		t.Error("quit keys not recognised")
	}
	if !IsCalibrate(KeyInput{Char: 'C'}) || IsCalibrate(KeyInput{Char: 'x'}) {
		t.Error("calibrate key mismatch")
	}
}

func TestParseTcellKey(t *testing.T) {
	if c, ok := ParseTcellKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)); !ok || c != gesture.Down {
		t.Errorf("down arrow = %v,%v", c, ok)
	}
	if c, ok := ParseTcellKey(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)); !ok || c != gesture.Left {
		t.Errorf("a = %v,%v", c, ok)
	}
	if c, _ := ParseTcellKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)); c != gesture.Confirm {
		t.Errorf("space = %v", c)
	}
	if !IsTcellQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("escape should quit")
	}
	if !IsTcellCalibrate(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone)) {
		t.Error("c should calibrate")
	}
}

type stub struct {
	cmd  gesture.Command
	hint gesture.Hint
}

func (s stub) Poll() (gesture.Command, gesture.Hint) { return s.cmd, s.hint }

func TestMerge(t *testing.T) {
	tilt := stub{hint: gesture.Hint{Active: true, DA: 3}}
	keys := stub{cmd: gesture.Left}

	c, h := Merge(keys, tilt).Poll()
	if c != gesture.Left || !h.Active || h.DA != 3 {
		t.Errorf("got %v %+v", c, h)
	}

	c, _ = Merge(stub{}, stub{cmd: gesture.Up}, stub{cmd: gesture.Down}).Poll()
	if c != gesture.Up {
		t.Errorf("first command should win, got %v", c)
	}
}

func TestMergeGameInputs(t *testing.T) {
	tilt := &sensor.Manual{}
	cls := gesture.NewClassifier(tilt)
	tilt.Set(hal.Reading{A: 4})
	keys := &game.ManualInput{}

	var in game.Input = Merge(keys, cls)
	c, h := in.Poll()
	if c != gesture.None || !h.Active || h.DA != 4 {
		t.Errorf("idle poll = %v %+v", c, h)
	}

	keys.Push(gesture.Down)
	tilt.Set(hal.Reading{A: 20})
	if c, _ := in.Poll(); c != gesture.Down {
		t.Errorf("key should win over tilt, got %v", c)
	}
	if c, _ := in.Poll(); c != gesture.Right {
		t.Errorf("tilt after the key was consumed = %v, want right", c)
	}
}
