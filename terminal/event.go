package terminal

import "github.com/gdamore/tcell/v2"

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventMouse
	EventFocus
	EventInterrupt
	EventClosed
)

// Event is a tcell event flattened for the engine loop
type Event struct {
	Type      EventType
	Key       tcell.Key
	Rune      rune
	Modifiers tcell.ModMask
	Width     int // For EventResize
	Height    int // For EventResize
	Focused   bool

	// Mouse event fields, cell coordinates
	MouseX      int
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction
}

// translator converts tcell events, holding mouse button state across calls
type translator struct {
	mouse mouseTracker
}

// translate returns false for events the engine has no use for
func (tr *translator) translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return Event{
			Type:      EventKey,
			Key:       ev.Key(),
			Rune:      ev.Rune(),
			Modifiers: ev.Modifiers(),
		}, true
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	case *tcell.EventMouse:
		x, y := ev.Position()
		btn, action := tr.mouse.classify(ev.Buttons())
		return Event{
			Type:        EventMouse,
			Modifiers:   ev.Modifiers(),
			MouseX:      x,
			MouseY:      y,
			MouseBtn:    btn,
			MouseAction: action,
		}, true
	case *tcell.EventFocus:
		return Event{Type: EventFocus, Focused: ev.Focused}, true
	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt}, true
	}
	return Event{}, false
}
