package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/particle-field/field"
	"github.com/lixenwraith/particle-field/vmath"
)

// glowStrength is the peak opacity of the halo just outside a disc edge
const glowStrength = 0.45

// halfBlock draws the upper pixel as foreground and the lower as background
const halfBlock = '▀'

// Canvas is a persistent RGB framebuffer with two square-ish pixels per terminal cell
// One pixel spans Scale field units on both axes
type Canvas struct {
	cols, rows int
	width      int
	height     int
	scale      float64
	pix        []colorful.Color
}

var _ field.Surface = (*Canvas)(nil)

// NewCanvas creates a black canvas for cols × rows terminal cells
func NewCanvas(cols, rows int, scale float64) *Canvas {
	c := &Canvas{scale: scale}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the framebuffer; previous content is dropped
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c.cols, c.rows = cols, rows
	c.width, c.height = cols, rows*2
	c.pix = make([]colorful.Color, c.width*c.height)
}

func (c *Canvas) Scale() float64 {
	return c.scale
}

// Cells returns the terminal footprint
func (c *Canvas) Cells() (cols, rows int) {
	return c.cols, c.rows
}

func (c *Canvas) Clear() {
	for i := range c.pix {
		c.pix[i] = Black
	}
}

// Fade overlays black at alpha so earlier frames persist as a trail
func (c *Canvas) Fade(alpha float64) {
	keep := 1 - alpha
	for i := range c.pix {
		p := &c.pix[i]
		p.R *= keep
		p.G *= keep
		p.B *= keep
	}
}

// FillCircle draws a disc with a colored halo, solid body and a translucent white ring
// Coverage is estimated from the distance between the pixel center and the edge
func (c *Canvas) FillCircle(d field.Disc) {
	if len(c.pix) == 0 || d.Radius <= 0 {
		return
	}
	color := HSL(d.Hue, d.Saturation, d.Lightness)
	reach := d.Radius + math.Max(d.Glow, d.OutlineWidth)
	halfRing := d.OutlineWidth / 2

	x0 := max(int((d.Center.X-reach)/c.scale), 0)
	x1 := min(int((d.Center.X+reach)/c.scale), c.width-1)
	y0 := max(int((d.Center.Y-reach)/c.scale), 0)
	y1 := min(int((d.Center.Y+reach)/c.scale), c.height-1)

	for py := y0; py <= y1; py++ {
		fy := (float64(py) + 0.5) * c.scale
		for px := x0; px <= x1; px++ {
			fx := (float64(px) + 0.5) * c.scale
			dist := vmath.V2FDist(vmath.V2F(fx, fy), d.Center)
			if dist > reach {
				continue
			}
			p := &c.pix[py*c.width+px]

			if d.Glow > 0 && dist > d.Radius {
				fall := 1 - (dist-d.Radius)/d.Glow
				if fall > 0 {
					*p = Blend(*p, color, glowStrength*fall*fall)
				}
			}

			if body := c.coverage(d.Radius - dist); body > 0 {
				*p = Blend(*p, color, body)
			}

			if d.OutlineAlpha > 0 && halfRing > 0 {
				if ring := c.coverage(halfRing - math.Abs(dist-d.Radius)); ring > 0 {
					*p = Blend(*p, White, d.OutlineAlpha*ring)
				}
			}
		}
	}
}

// coverage maps a signed distance inside an edge (field units) to pixel coverage in [0, 1]
func (c *Canvas) coverage(inside float64) float64 {
	return vmath.ClampF(inside/c.scale+0.5, 0, 1)
}

// Blit draws the canvas with its top-left cell at (x0, y0)
func (c *Canvas) Blit(screen tcell.Screen, x0, y0 int) {
	for row := 0; row < c.rows; row++ {
		top := c.pix[(row*2)*c.width : (row*2+1)*c.width]
		bottom := c.pix[(row*2+1)*c.width : (row*2+2)*c.width]
		for col := 0; col < c.cols; col++ {
			style := tcell.StyleDefault.
				Foreground(ToTcell(top[col])).
				Background(ToTcell(bottom[col]))
			screen.SetContent(x0+col, y0+row, halfBlock, nil, style)
		}
	}
}
