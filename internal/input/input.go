// Package input translates terminal events into scene actions.
package input

import (
	"github.com/gdamore/tcell/v2"

	"honnef.co/go/knot"
	"honnef.co/go/knot/internal/scene"
)

type Action int

const (
	None Action = iota
	Quit
	Reset
	TogglePause
	DensityUp
	DensityDown
	ToggleHelp
	SpeedUp
	SlowDown
	Duplicate
	AddPoint
	RemovePoint
	Resize
)

var actionNames = [...]string{
	None:        "none",
	Quit:        "quit",
	Reset:       "reset",
	TogglePause: "toggle-pause",
	DensityUp:   "density-up",
	DensityDown: "density-down",
	ToggleHelp:  "toggle-help",
	SpeedUp:     "speed-up",
	SlowDown:    "slow-down",
	Duplicate:   "duplicate",
	AddPoint:    "add-point",
	RemovePoint: "remove-point",
	Resize:      "resize",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Event is an action together with the cell it happened at. X and Y are only
// meaningful for AddPoint and RemovePoint.
type Event struct {
	Action Action
	X, Y   int
}

var runeActions = map[rune]Action{
	'r': Reset,
	'R': Reset,
	'p': TogglePause,
	'P': TogglePause,
	'+': DensityUp,
	'=': DensityUp,
	'-': DensityDown,
	'_': DensityDown,
	'i': SpeedUp,
	'I': SpeedUp,
	'd': SlowDown,
	'D': SlowDown,
	'a': Duplicate,
	'A': Duplicate,
}

const mouseButtons = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle

// Source turns tcell events into Events. Terminals report a held mouse button
// on every motion event, so Source remembers which buttons are down and only
// reports presses.
type Source struct {
	buttons tcell.ButtonMask
}

// Translate returns the Event for ev, or an Event with Action None if ev
// means nothing to the screensaver.
func (s *Source) Translate(ev tcell.Event) Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return Event{Action: Quit}
		case tcell.KeyF1:
			return Event{Action: ToggleHelp}
		case tcell.KeyRune:
			return Event{Action: runeActions[ev.Rune()]}
		}
	case *tcell.EventMouse:
		held := ev.Buttons() & mouseButtons
		pressed := held &^ s.buttons
		s.buttons = held
		x, y := ev.Position()
		switch {
		case pressed&tcell.ButtonPrimary != 0:
			return Event{Action: AddPoint, X: x, Y: y}
		case pressed&tcell.ButtonSecondary != 0:
			return Event{Action: RemovePoint, X: x, Y: y}
		}
	case *tcell.EventResize:
		return Event{Action: Resize}
	}
	return Event{Action: None}
}

// CellMapper converts screen cells to world coordinates.
type CellMapper interface {
	CellToWorld(x, y int) knot.Point
}

// Apply performs ev on sc. Quit and Resize are left to the caller. It reports
// whether sc changed.
func Apply(sc *scene.Scene, m CellMapper, ev Event) bool {
	switch ev.Action {
	case Reset:
		sc.Reset()
	case TogglePause:
		sc.TogglePause()
	case DensityUp:
		sc.IncrementDensity()
	case DensityDown:
		sc.DecrementDensity()
	case ToggleHelp:
		sc.ToggleHelp()
	case SpeedUp:
		sc.SpeedUp()
	case SlowDown:
		sc.SlowDown()
	case Duplicate:
		sc.Duplicate()
	case AddPoint:
		sc.AddPoint(m.CellToWorld(ev.X, ev.Y))
	case RemovePoint:
		sc.RemoveLast()
	default:
		return false
	}
	return true
}
