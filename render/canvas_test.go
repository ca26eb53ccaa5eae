package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/particle-field/field"
	"github.com/lixenwraith/particle-field/vmath"
)

func testDisc(x, y, r float64) field.Disc {
	return field.Disc{
		Center:       vmath.V2F(x, y),
		Radius:       r,
		Hue:          120,
		Saturation:   100,
		Lightness:    50,
		Glow:         15,
		OutlineWidth: 2,
		OutlineAlpha: 0.3,
	}
}

func (c *Canvas) pixels() (w, h int) {
	return c.width, c.height
}

// extent is the canvas size in field units
func (c *Canvas) extent() (w, h float64) {
	return float64(c.width) * c.scale, float64(c.height) * c.scale
}

// pixelAt reads one framebuffer pixel, black when out of range
func (c *Canvas) pixelAt(x, y int) colorful.Color {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Black
	}
	return c.pix[y*c.width+x]
}

func TestCanvasGeometry(t *testing.T) {
	c := NewCanvas(40, 10, 4)

	cols, rows := c.Cells()
	assert.Equal(t, 40, cols)
	assert.Equal(t, 10, rows)

	w, h := c.pixels()
	assert.Equal(t, 40, w)
	assert.Equal(t, 20, h)

	fw, fh := c.extent()
	assert.Equal(t, 160.0, fw)
	assert.Equal(t, 80.0, fh)

	c.Resize(-1, 3)
	w, h = c.pixels()
	assert.Equal(t, 0, w)
	assert.Equal(t, 6, h)
	assert.Equal(t, Black, c.pixelAt(0, 0))
}

func TestFillCircleBody(t *testing.T) {
	c := NewCanvas(60, 30, 1)
	d := testDisc(30.5, 30.5, 10)

	c.FillCircle(d)

	want := HSL(120, 100, 50)
	got := c.pixelAt(30, 30)
	assert.InDelta(t, want.R, got.R, 1e-9)
	assert.InDelta(t, want.G, got.G, 1e-9)
	assert.InDelta(t, want.B, got.B, 1e-9)

	assert.Equal(t, Black, c.pixelAt(0, 0), "outside glow reach stays black")
}

func TestFillCircleGlowAndOutline(t *testing.T) {
	c := NewCanvas(80, 40, 1)
	c.FillCircle(testDisc(40.5, 40.5, 10))

	body := c.pixelAt(40, 40)
	edge := c.pixelAt(50, 40)   // on the ring
	halo := c.pixelAt(58, 40)   // 8 beyond the edge
	fringe := c.pixelAt(63, 40) // near the end of the glow

	// The white ring lifts red and blue above the pure green body
	assert.Greater(t, edge.R, body.R)
	assert.Greater(t, edge.B, body.B)

	assert.Greater(t, halo.G, 0.0)
	assert.Less(t, halo.G, body.G)
	assert.Less(t, fringe.G, halo.G)
	assert.Zero(t, halo.R, "halo carries the disc color only")
}

func TestCoverageClamped(t *testing.T) {
	c := NewCanvas(4, 4, 2)
	assert.Equal(t, 0.0, c.coverage(-5))
	assert.Equal(t, 0.5, c.coverage(0), "pixel center on the edge is half covered")
	assert.Equal(t, 0.75, c.coverage(0.5))
	assert.Equal(t, 1.0, c.coverage(1))
	assert.Equal(t, 1.0, c.coverage(40))
}

func TestFillCircleClipsAtEdges(t *testing.T) {
	c := NewCanvas(10, 5, 2)
	assert.NotPanics(t, func() {
		c.FillCircle(testDisc(-5, -5, 12))
		c.FillCircle(testDisc(100, 100, 12))
		c.FillCircle(testDisc(10, 10, 0))
	})
}

func TestFadeLeavesTrail(t *testing.T) {
	c := NewCanvas(20, 10, 1)
	c.FillCircle(testDisc(10.5, 10.5, 4))
	start := c.pixelAt(10, 10)

	c.Fade(0.1)
	once := c.pixelAt(10, 10)
	assert.InDelta(t, start.G*0.9, once.G, 1e-9)

	for i := 0; i < 100; i++ {
		c.Fade(0.1)
	}
	faded := c.pixelAt(10, 10)
	assert.Greater(t, faded.G, 0.0, "trail never hard-clears")
	assert.Less(t, faded.G, 0.001)

	c.Clear()
	assert.Equal(t, Black, c.pixelAt(10, 10))
}

func TestBlitHalfBlocks(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	defer sim.Fini()
	sim.SetSize(20, 10)

	c := NewCanvas(4, 2, 1)
	// Fill only the upper pixel of cell (1, 0)
	c.pix[1] = White

	c.Blit(sim, 2, 3)

	r, _, style, _ := sim.GetContent(3, 3)
	assert.Equal(t, '▀', r)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), bg)

	r, _, _, _ = sim.GetContent(2+3, 3+1)
	assert.Equal(t, '▀', r)
}

func TestHSLAndBlend(t *testing.T) {
	red := HSL(0, 100, 50)
	assert.InDelta(t, 1.0, red.R, 1e-9)
	assert.InDelta(t, 0.0, red.G, 1e-9)

	assert.Equal(t, red, Blend(red, White, 0))
	assert.Equal(t, White, Blend(red, White, 1))
	mid := Blend(Black, White, 0.5)
	assert.InDelta(t, 0.5, mid.R, 1e-9)

	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), ToTcell(red))
}
