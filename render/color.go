package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Predefined colors
var (
	Black = colorful.Color{R: 0, G: 0, B: 0}
	White = colorful.Color{R: 1, G: 1, B: 1}
)

// HSL converts hue in degrees and saturation/lightness in percent
func HSL(hue, saturation, lightness float64) colorful.Color {
	return colorful.Hsl(hue, saturation/100, lightness/100)
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func Blend(dst, src colorful.Color, alpha float64) colorful.Color {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	return dst.BlendRgb(src, alpha)
}

// ToTcell quantizes to a 24-bit tcell color; tcell downsamples on 256-color terminals
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
