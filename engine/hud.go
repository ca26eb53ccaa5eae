package engine

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var backgroundStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(10, 10, 20))

var hudStyle = tcell.StyleDefault.
	Foreground(tcell.NewRGBColor(230, 230, 230)).
	Background(tcell.NewRGBColor(30, 30, 50))

var hudHintStyle = hudStyle.Foreground(tcell.NewRGBColor(140, 140, 170))

const hudHint = "click burst  r reset  g gravity  p repulsion  m mute  space pause  q quit"

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// statusLine renders the readout shown on the HUD row
func (e *Engine) statusLine() string {
	line := fmt.Sprintf("Particles: %d  Gravity: %s  Repulsion: %s  Sound: %s",
		e.field.Len(),
		onOff(e.input.Config.Gravity),
		onOff(e.input.Config.Repulsion),
		onOff(!e.sound.Muted()),
	)
	if e.paused {
		line += "  PAUSED"
	}
	return line
}

// drawHUD paints the status line and, space permitting, the key hints right-aligned
func (e *Engine) drawHUD() {
	cols := e.layout.cols
	for x := 0; x < cols; x++ {
		e.screen.SetContent(x, 0, ' ', nil, hudStyle)
	}

	line := e.statusLine()
	x := drawText(e.screen, 1, 0, cols, line, hudStyle)

	if start := cols - len(hudHint) - 1; start > x+2 {
		drawText(e.screen, start, 0, cols, hudHint, hudHintStyle)
	}
}

// drawText writes s from x, clipped at limit, and returns the column after the last rune
func drawText(screen tcell.Screen, x, y, limit int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= limit {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
