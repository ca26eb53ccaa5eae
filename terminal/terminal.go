package terminal

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// ColorMode selects terminal color depth
type ColorMode string

const (
	ColorModeAuto      ColorMode = "auto"
	ColorModeTrueColor ColorMode = "truecolor"
	ColorMode256       ColorMode = "256"
)

// ParseColorMode accepts the flag spellings used on the command line
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorModeAuto, nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	case "256":
		return ColorMode256, nil
	}
	return "", errors.Errorf("unknown color mode %q", s)
}

// Terminal owns a tcell screen and its event pump
type Terminal struct {
	screen tcell.Screen
	events chan Event

	closeOnce sync.Once
}

// eventBuffer matches the depth of the game loop's event channel
const eventBuffer = 256

// Open creates and initializes the real terminal screen
// ColorModeAuto is resolved from the environment first
func Open(mode ColorMode) (*Terminal, error) {
	applyColorMode(ResolveColorMode(mode))

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	return New(screen)
}

// New initializes screen and enables mouse and focus reporting
// Accepts a tcell.SimulationScreen in tests
func New(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.Clear()

	return &Terminal{
		screen: screen,
		events: make(chan Event, eventBuffer),
	}, nil
}

// applyColorMode steers tcell's color detection through its environment overrides
func applyColorMode(mode ColorMode) {
	switch mode {
	case ColorModeTrueColor:
		os.Setenv("COLORTERM", "truecolor")
		os.Unsetenv("TCELL_TRUECOLOR")
	case ColorMode256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}
}

func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Size returns the screen size in cells
func (t *Terminal) Size() (cols, rows int) {
	return t.screen.Size()
}

// Events is fed by Pump
func (t *Terminal) Events() <-chan Event {
	return t.events
}

// Pump polls the screen until it is finalized or ctx is done
// A finalized screen delivers a last EventClosed; the channel is never closed
func (t *Terminal) Pump(ctx context.Context) error {
	var tr translator
	stop := context.AfterFunc(ctx, func() {
		t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		raw := t.screen.PollEvent()
		if raw == nil {
			t.deliver(ctx, Event{Type: EventClosed})
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		ev, ok := tr.translate(raw)
		if !ok {
			continue
		}
		if !t.deliver(ctx, ev) {
			return nil
		}
	}
}

func (t *Terminal) deliver(ctx context.Context, ev Event) bool {
	select {
	case t.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// Close restores the terminal; safe to call more than once
func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		t.screen.DisableMouse()
		t.screen.Fini()
	})
}

// Reset sequences written in crash context
var (
	csiMouseMotionOff = []byte("\x1b[?1003l")
	csiMouseDragOff   = []byte("\x1b[?1002l")
	csiMouseClickOff  = []byte("\x1b[?1000l")
	csiMouseSGROff    = []byte("\x1b[?1006l")
	csiCursorShow     = []byte("\x1b[?25h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	csiSGR0           = []byte("\x1b[0m")
	csiAutoWrapOn     = []byte("\x1b[?7h")
)

// EmergencyReset writes raw restore sequences when the screen can no longer be trusted
func EmergencyReset(w io.Writer) {
	for _, seq := range [][]byte{
		csiMouseMotionOff,
		csiMouseDragOff,
		csiMouseClickOff,
		csiMouseSGROff,
		csiCursorShow,
		csiAltScreenExit,
		csiSGR0,
		csiAutoWrapOn,
	} {
		w.Write(seq)
	}

	if f, ok := w.(*os.File); ok {
		f.Sync()
		restoreCookedMode()
	}
}
