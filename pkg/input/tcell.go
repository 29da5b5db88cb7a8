package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lorenzhs/gpn17-snake/pkg/gesture"
)

// ParseTcellKey maps a tcell key event to a joystick command.
func ParseTcellKey(ev *tcell.EventKey) (gesture.Command, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return gesture.Up, true
	case tcell.KeyDown:
		return gesture.Down, true
	case tcell.KeyLeft:
		return gesture.Left, true
	case tcell.KeyRight:
		return gesture.Right, true
	case tcell.KeyEnter:
		return gesture.Confirm, true
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return gesture.Confirm, true
		}
		return parseRune(ev.Rune())
	}
	return gesture.None, false
}

// IsTcellQuit reports Escape, Ctrl-C and q.
func IsTcellQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// IsTcellCalibrate reports c.
func IsTcellCalibrate(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'c' || ev.Rune() == 'C')
}
