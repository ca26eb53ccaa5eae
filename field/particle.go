package field

import (
	"math"

	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/vmath"
)

// Rand is the random source used for spawning and removal
type Rand interface {
	Float64() float64
}

// Particle is a point mass drawn as a disc
type Particle struct {
	Pos vmath.Vec2F
	Vel vmath.Vec2F

	Radius     float64
	BaseRadius float64

	Hue        float64
	Saturation float64
	Lightness  float64

	Friction    float64
	Gravity     float64
	Restitution float64

	// NearPointer is recomputed by ApplyRepulsion on every tick the pointer is active
	NearPointer bool
}

// Spawn creates a particle at pos with random velocity, size and color
// Gravity-enabled particles get a flatter, wider launch for ballistic arcs
func Spawn(rng Rand, pos vmath.Vec2F, withGravity bool) *Particle {
	vx := randRange(rng, -parameter.SpawnSpeed, parameter.SpawnSpeed)
	vy := randRange(rng, -parameter.SpawnSpeed, parameter.SpawnSpeed)
	gravity := 0.0
	if withGravity {
		vx *= parameter.BallisticSpeedX
		vy *= parameter.BallisticSpeedY
		gravity = parameter.Gravity
	}

	radius := randRange(rng, parameter.RadiusMin, parameter.RadiusMax)

	return &Particle{
		Pos:         pos,
		Vel:         vmath.V2F(vx, vy),
		Radius:      radius,
		BaseRadius:  radius,
		Hue:         randRange(rng, 0, 360),
		Saturation:  parameter.SaturationMin + rng.Float64()*parameter.SaturationSpan,
		Lightness:   parameter.LightnessMin + rng.Float64()*parameter.LightnessSpan,
		Friction:    parameter.Friction,
		Gravity:     gravity,
		Restitution: parameter.Restitution,
	}
}

func randRange(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// ApplyRepulsion pushes the particle away from the pointer
// Returns true when the pointer is inside the contact radius
func (p *Particle) ApplyRepulsion(pointer vmath.Vec2F, cfg Config) bool {
	if !cfg.Repulsion {
		return false
	}

	offset := vmath.V2FSub(p.Pos, pointer)
	dist := vmath.V2FMag(offset)
	dir := vmath.V2FDirection(offset)
	hue := p.Hue

	if dist < parameter.InfluenceRadius {
		p.NearPointer = true

		force := (parameter.InfluenceRadius - dist) / parameter.InfluenceRadius * parameter.InfluenceStrength
		p.Vel = vmath.V2FAdd(p.Vel, vmath.V2FScale(dir, force))

		p.Hue = vmath.WrapDegrees(p.Hue + parameter.InfluenceHueShift)

		limit := p.BaseRadius * parameter.RadiusGrowthCap
		if p.Radius < limit {
			p.Radius = math.Min(p.Radius+parameter.RadiusGrowth, limit)
		}
	} else {
		p.NearPointer = false
	}

	if dist >= parameter.ContactRadius {
		return false
	}

	// Complement of the hue the particle entered the tick with
	p.Hue = vmath.WrapDegrees(hue + parameter.ContactHueShift)
	p.Saturation = parameter.ContactSaturation
	p.Lightness = parameter.ContactLightness
	p.Vel = vmath.V2FAdd(p.Vel, vmath.V2FScale(dir, parameter.ContactImpulse))
	return true
}

// Integrate applies gravity and friction, then moves by velocity
func (p *Particle) Integrate() {
	p.Vel.Y += p.Gravity
	p.Vel = vmath.V2FScale(p.Vel, p.Friction)
	p.Pos = vmath.V2FAdd(p.Pos, p.Vel)
}

// Collide clamps the particle inside b, reflecting and damping the velocity
// component of each crossed edge
func (p *Particle) Collide(b Bounds) {
	r := p.Radius

	if p.Pos.X+r > b.Width {
		p.Pos.X = b.Width - r
		p.Vel.X *= -p.Restitution
	}
	if p.Pos.X-r < 0 {
		p.Pos.X = r
		p.Vel.X *= -p.Restitution
	}

	if p.Pos.Y+r > b.Height {
		p.Pos.Y = b.Height - r
		p.Vel.Y *= -p.Restitution
		if math.Abs(p.Vel.Y) < parameter.FloorSnapSpeed {
			p.Vel.Y = 0
		}
	}
	if p.Pos.Y-r < 0 {
		p.Pos.Y = r
		p.Vel.Y *= -p.Restitution
	}
}

// Relax shrinks the radius back toward its base while away from the pointer
func (p *Particle) Relax() {
	if p.NearPointer || p.Radius <= p.BaseRadius {
		return
	}
	p.Radius = math.Max(p.Radius-parameter.RadiusDecay, p.BaseRadius)
}

// Resting reports whether the particle sits on the floor of b with no meaningful motion
func (p *Particle) Resting(b Bounds) bool {
	return p.Pos.Y >= b.Height-p.Radius-parameter.RestTolerance &&
		math.Abs(p.Vel.Y) < parameter.RestSpeed &&
		math.Abs(p.Vel.X) < parameter.RestSpeed
}

// Disc returns the draw call for the particle's current state
func (p *Particle) Disc() Disc {
	return Disc{
		Center:       p.Pos,
		Radius:       p.Radius,
		Hue:          p.Hue,
		Saturation:   p.Saturation,
		Lightness:    p.Lightness,
		Glow:         parameter.GlowBlur,
		OutlineWidth: parameter.OutlineWidth,
		OutlineAlpha: parameter.OutlineAlpha,
	}
}
