package engine

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/particle-field/audio"
	"github.com/lixenwraith/particle-field/config"
	"github.com/lixenwraith/particle-field/field"
	"github.com/lixenwraith/particle-field/render"
	"github.com/lixenwraith/particle-field/terminal"
	"github.com/lixenwraith/particle-field/vmath"
)

// Host is the terminal surface the engine runs on
type Host interface {
	Screen() tcell.Screen
	Events() <-chan terminal.Event
	Pump(ctx context.Context) error
}

var _ Host = (*terminal.Terminal)(nil)

// Engine runs the interactive loop
type Engine struct {
	host   Host
	screen tcell.Screen
	field  *field.Field
	canvas *render.Canvas
	sound  audio.Player
	logger *zap.Logger

	initialCount int
	interval     time.Duration

	// ===== Loop-goroutine exclusive =====
	layout layout
	input  field.Input
	paused bool
	frame  uint64
	count  int
}

// New builds an engine sized to the host screen and seeds the initial population
// A nil sound plays nothing; a nil logger discards
func New(cfg *config.Config, host Host, sound audio.Player, logger *zap.Logger) *Engine {
	if sound == nil {
		sound = nopPlayer{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	e := &Engine{
		host:         host,
		screen:       host.Screen(),
		field:        field.New(vmath.NewFastRand(seed), field.Bounds{}),
		canvas:       render.NewCanvas(0, 0, cfg.Display.Scale),
		sound:        sound,
		logger:       logger.Named("engine"),
		initialCount: cfg.Sim.InitialCount,
		interval:     cfg.TickInterval(),
		input: field.Input{
			Config: field.Config{
				Gravity:   cfg.Sim.Gravity,
				Repulsion: cfg.Sim.Repulsion,
			},
		},
	}

	e.resize(e.screen.Size())
	e.field.Reset(e.initialCount)
	e.count = e.field.Len()
	return e
}

// Field returns the simulated field
func (e *Engine) Field() *field.Field {
	return e.field
}

// Input returns the per-tick input the next frame will use
func (e *Engine) Input() field.Input {
	return e.input
}

func (e *Engine) Paused() bool {
	return e.paused
}

// Run drives the loop until ctx is done, the quit key is pressed or the screen closes
func (e *Engine) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Errorf("event pump panic: %v\n%s", r, debug.Stack())
			}
		}()
		return e.host.Pump(ctx)
	})
	g.Go(func() error {
		defer cancel()
		return e.loop(ctx)
	})

	e.logger.Info("engine started",
		zap.Int("particles", e.field.Len()),
		zap.Duration("interval", e.interval),
	)
	err := g.Wait()
	e.logger.Info("engine stopped", zap.Uint64("frames", e.frame), zap.Error(err))
	return err
}

func (e *Engine) loop(ctx context.Context) error {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	events := e.host.Events()
	e.Frame()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !e.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			e.Frame()
		}
	}
}

// Frame advances the field unless paused and repaints the screen
func (e *Engine) Frame() {
	e.frame++

	if !e.paused {
		ev := e.field.Tick(e.input, e.canvas)
		if ev.Contacts > 0 {
			e.sound.PlayContact()
		}
		if ev.Removed > 0 {
			e.sound.PlayRemove()
		}
	}
	e.noteCount()

	e.screen.Fill(' ', backgroundStyle)
	e.canvas.Blit(e.screen, e.layout.x0, e.layout.y0)
	e.drawHUD()
	e.screen.Show()
}

// noteCount logs population changes at debug level
func (e *Engine) noteCount() {
	n := e.field.Len()
	if n == e.count {
		return
	}
	e.logger.Debug("population changed", zap.Int("from", e.count), zap.Int("to", n))
	e.count = n
}

// HandleEvent applies one terminal event; returns false to quit
func (e *Engine) HandleEvent(ev terminal.Event) bool {
	switch ev.Type {
	case terminal.EventClosed:
		return false
	case terminal.EventKey:
		return e.handleKey(ev)
	case terminal.EventResize:
		e.resize(ev.Width, ev.Height)
		e.screen.Sync()
	case terminal.EventMouse:
		e.handleMouse(ev)
	case terminal.EventFocus:
		if !ev.Focused {
			e.input.PointerActive = false
		}
	}
	return true
}

func (e *Engine) handleKey(ev terminal.Event) bool {
	switch ev.Key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune {
	case 'q', 'Q':
		return false
	case 'r', 'R':
		e.field.Reset(e.initialCount)
		e.canvas.Clear()
		e.logger.Debug("reset", zap.Int("particles", e.field.Len()))
	case 'g', 'G':
		e.input.Config.Gravity = !e.input.Config.Gravity
		e.field.SetGravity(e.input.Config.Gravity)
		e.logger.Debug("gravity toggled", zap.Bool("on", e.input.Config.Gravity))
	case 'p', 'P':
		e.input.Config.Repulsion = !e.input.Config.Repulsion
		e.logger.Debug("repulsion toggled", zap.Bool("on", e.input.Config.Repulsion))
	case 'm', 'M':
		e.logger.Debug("sound toggled", zap.Bool("muted", e.sound.ToggleMute()))
	case ' ':
		e.paused = !e.paused
	}
	return true
}

func (e *Engine) handleMouse(ev terminal.Event) {
	pos, inside := e.layout.toField(ev.MouseX, ev.MouseY)
	if !inside {
		e.input.PointerActive = false
		return
	}
	e.input.Pointer = pos
	e.input.PointerActive = true

	if ev.MouseBtn == terminal.MouseBtnLeft && ev.MouseAction == terminal.MouseActionPress {
		e.field.Burst(pos, e.input.Config.Gravity)
		e.sound.PlaySpawn()
	}
}

// resize refits the field to the terminal; existing trails are dropped
func (e *Engine) resize(cols, rows int) {
	l, viewW, viewH := computeLayout(cols, rows, e.canvas.Scale())
	e.layout = l
	e.field.Resize(viewW, viewH)
	e.canvas.Resize(l.fieldCols, l.fieldRows)
	e.logger.Debug("resized",
		zap.Int("cols", cols),
		zap.Int("rows", rows),
		zap.Float64("field_w", e.field.Bounds().Width),
		zap.Float64("field_h", e.field.Bounds().Height),
	)
}

// nopPlayer stands in when no audio device is available and always reports muted
type nopPlayer struct{}

func (nopPlayer) PlaySpawn() bool   { return false }
func (nopPlayer) PlayContact() bool { return false }
func (nopPlayer) PlayRemove() bool  { return false }
func (nopPlayer) ToggleMute() bool  { return true }
func (nopPlayer) Muted() bool       { return true }
