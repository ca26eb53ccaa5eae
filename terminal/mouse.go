package terminal

import "github.com/gdamore/tcell/v2"

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

// MouseAction represents the type of mouse event
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
)

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "Left"
	case MouseBtnMiddle:
		return "Middle"
	case MouseBtnRight:
		return "Right"
	case MouseBtnWheelUp:
		return "WheelUp"
	case MouseBtnWheelDown:
		return "WheelDown"
	default:
		return "None"
	}
}

// String returns human-readable action name
func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "Press"
	case MouseActionRelease:
		return "Release"
	case MouseActionMove:
		return "Move"
	case MouseActionDrag:
		return "Drag"
	default:
		return "None"
	}
}

// mouseTracker derives press/release edges from tcell's level-triggered button masks
type mouseTracker struct {
	held tcell.ButtonMask
}

var buttonOrder = []struct {
	mask tcell.ButtonMask
	btn  MouseButton
}{
	{tcell.Button1, MouseBtnLeft},
	{tcell.Button3, MouseBtnMiddle},
	{tcell.Button2, MouseBtnRight},
	{tcell.WheelUp, MouseBtnWheelUp},
	{tcell.WheelDown, MouseBtnWheelDown},
}

// classify returns the button and action for a tcell mouse mask
func (m *mouseTracker) classify(mask tcell.ButtonMask) (MouseButton, MouseAction) {
	prev := m.held
	m.held = mask &^ (tcell.WheelUp | tcell.WheelDown)

	for _, b := range buttonOrder {
		now := mask&b.mask != 0
		was := prev&b.mask != 0
		switch {
		case now && !was:
			return b.btn, MouseActionPress
		case !now && was:
			return b.btn, MouseActionRelease
		}
	}

	for _, b := range buttonOrder {
		if mask&b.mask != 0 {
			return b.btn, MouseActionDrag
		}
	}
	return MouseBtnNone, MouseActionMove
}
