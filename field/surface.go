package field

import "github.com/lixenwraith/particle-field/vmath"

// Surface receives the draw calls of a tick
type Surface interface {
	// Fade darkens everything drawn so far by overlaying black at alpha
	Fade(alpha float64)
	// FillCircle draws one particle
	FillCircle(d Disc)
}

// Disc describes a filled circle with a soft glow and translucent white outline
// Color is HSL with hue in degrees and saturation/lightness in percent
type Disc struct {
	Center     vmath.Vec2F
	Radius     float64
	Hue        float64
	Saturation float64
	Lightness  float64

	Glow         float64
	OutlineWidth float64
	OutlineAlpha float64
}

// NopSurface discards all drawing
type NopSurface struct{}

func (NopSurface) Fade(float64)    {}
func (NopSurface) FillCircle(Disc) {}
