package field

import (
	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/vmath"
)

// Bounds is the field extent in field units, origin top-left, y down
type Bounds struct {
	Width  float64
	Height float64
}

// Config carries the global toggles shared by all particles
type Config struct {
	Gravity   bool
	Repulsion bool
}

// DefaultConfig has both toggles on
func DefaultConfig() Config {
	return Config{Gravity: true, Repulsion: true}
}

// Input is everything a tick reads from outside the field
type Input struct {
	Pointer       vmath.Vec2F
	PointerActive bool
	Config        Config
}

// TickEvents summarizes what happened during one tick
type TickEvents struct {
	Removed  int
	Contacts int
}

// Field owns the particle set and its bounds
// Not safe for concurrent use; the host serializes input and ticks
type Field struct {
	particles []*Particle
	bounds    Bounds
	rng       Rand

	// removal scratch, reused across ticks
	doomed []int
}

// New creates an empty field
func New(rng Rand, bounds Bounds) *Field {
	return &Field{
		rng:    rng,
		bounds: bounds,
	}
}

// FieldBounds maps a viewport size to the field extent it hosts
func FieldBounds(viewWidth, viewHeight float64) Bounds {
	return Bounds{
		Width:  viewWidth * parameter.FieldWidthRatio,
		Height: viewHeight * parameter.FieldHeightRatio,
	}
}

// Resize recomputes bounds from the viewport size
// Positions are untouched; particles outside shrunk bounds are clamped on their next tick
func (f *Field) Resize(viewWidth, viewHeight float64) {
	f.bounds = FieldBounds(viewWidth, viewHeight)
}

func (f *Field) Bounds() Bounds {
	return f.bounds
}

func (f *Field) Len() int {
	return len(f.particles)
}

// Particles returns the live particle slice, valid until the next mutation
func (f *Field) Particles() []*Particle {
	return f.particles
}

// Add appends an existing particle
func (f *Field) Add(p *Particle) {
	f.particles = append(f.particles, p)
}

// Reset replaces the population with n gravity-free particles at random positions
func (f *Field) Reset(n int) {
	if n < 0 {
		n = 0
	}
	f.particles = make([]*Particle, 0, n)
	for i := 0; i < n; i++ {
		pos := vmath.V2F(f.rng.Float64()*f.bounds.Width, f.rng.Float64()*f.bounds.Height)
		f.particles = append(f.particles, Spawn(f.rng, pos, false))
	}
}

// Burst spawns BurstSize particles around at, each offset by up to BurstJitter per axis
func (f *Field) Burst(at vmath.Vec2F, withGravity bool) []*Particle {
	spawned := make([]*Particle, 0, parameter.BurstSize)
	for i := 0; i < parameter.BurstSize; i++ {
		pos := vmath.V2F(
			at.X+randRange(f.rng, -parameter.BurstJitter, parameter.BurstJitter),
			at.Y+randRange(f.rng, -parameter.BurstJitter, parameter.BurstJitter),
		)
		p := Spawn(f.rng, pos, withGravity)
		f.particles = append(f.particles, p)
		spawned = append(spawned, p)
	}
	return spawned
}

// SetGravity rewrites the gravity acceleration of every existing particle
func (f *Field) SetGravity(on bool) {
	g := 0.0
	if on {
		g = parameter.Gravity
	}
	for _, p := range f.particles {
		p.Gravity = g
	}
}

// Step advances one tick without drawing
func (f *Field) Step(in Input) TickEvents {
	return f.Tick(in, NopSurface{})
}

// Tick advances every particle one step and draws it to s (nil skips drawing)
// Removal decisions read post-integration state; removals apply after the pass
func (f *Field) Tick(in Input, s Surface) TickEvents {
	var ev TickEvents
	if s == nil {
		s = NopSurface{}
	}

	s.Fade(parameter.TrailFadeAlpha)

	f.doomed = f.doomed[:0]
	for i, p := range f.particles {
		if in.PointerActive && in.Config.Repulsion {
			if p.ApplyRepulsion(in.Pointer, in.Config) {
				ev.Contacts++
			}
		} else {
			p.NearPointer = false
		}

		p.Integrate()
		p.Collide(f.bounds)
		p.Relax()

		s.FillCircle(p.Disc())

		remaining := len(f.particles) - len(f.doomed)
		if remaining > parameter.PopulationFloor && p.Resting(f.bounds) {
			if f.rng.Float64() < parameter.RemovalChance {
				f.doomed = append(f.doomed, i)
			}
		}
	}

	if len(f.doomed) > 0 {
		f.compact()
		ev.Removed = len(f.doomed)
	}
	return ev
}

// compact drops doomed indices (ascending) preserving the order of survivors
func (f *Field) compact() {
	kept := f.particles[:0]
	next := 0
	for i, p := range f.particles {
		if next < len(f.doomed) && f.doomed[next] == i {
			next++
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(f.particles); i++ {
		f.particles[i] = nil
	}
	f.particles = kept
}

// Stats is a snapshot of the population
type Stats struct {
	Count     int
	Resting   int
	Near      int
	Gravity   int
	MeanSpeed float64
}

// Stats computes a population snapshot
func (f *Field) Stats() Stats {
	st := Stats{Count: len(f.particles)}
	if st.Count == 0 {
		return st
	}
	var speed float64
	for _, p := range f.particles {
		if p.Resting(f.bounds) {
			st.Resting++
		}
		if p.NearPointer {
			st.Near++
		}
		if p.Gravity != 0 {
			st.Gravity++
		}
		speed += vmath.V2FMag(p.Vel)
	}
	st.MeanSpeed = speed / float64(st.Count)
	return st
}
