package engine

import (
	"context"
	"math"
	"time"

	"github.com/lixenwraith/particle-field/field"
	"github.com/lixenwraith/particle-field/vmath"
)

// Step is what a script feeds one headless tick
type Step struct {
	Input field.Input
	// Burst spawns a click burst at Input.Pointer before the tick
	Burst bool
}

// Script yields the step for a tick index
type Script func(tick int, b field.Bounds) Step

// Summary aggregates a headless run
type Summary struct {
	Ticks    int
	Spawned  int
	Removed  int
	Contacts int
	MinCount int
	MaxCount int
	Final    field.Stats
	Elapsed  time.Duration
}

// Simulate advances f for ticks steps without drawing
// Returns the partial summary and ctx.Err() when cancelled
func Simulate(ctx context.Context, f *field.Field, ticks int, script Script) (Summary, error) {
	start := time.Now()
	sum := Summary{MinCount: f.Len(), MaxCount: f.Len()}
	if script == nil {
		script = Idle(field.DefaultConfig())
	}

	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			sum.Final = f.Stats()
			sum.Elapsed = time.Since(start)
			return sum, err
		}

		step := script(i, f.Bounds())
		if step.Burst {
			sum.Spawned += len(f.Burst(step.Input.Pointer, step.Input.Config.Gravity))
		}

		ev := f.Step(step.Input)
		sum.Ticks++
		sum.Removed += ev.Removed
		sum.Contacts += ev.Contacts

		n := f.Len()
		sum.MinCount = min(sum.MinCount, n)
		sum.MaxCount = max(sum.MaxCount, n)
	}

	sum.Final = f.Stats()
	sum.Elapsed = time.Since(start)
	return sum, nil
}

// Idle keeps the pointer away for the whole run
func Idle(cfg field.Config) Script {
	return func(int, field.Bounds) Step {
		return Step{Input: field.Input{Config: cfg}}
	}
}

// Orbit circles the pointer around the field center once per period ticks
// and bursts at the pointer every burstEvery ticks; burstEvery <= 0 never bursts
func Orbit(cfg field.Config, period, burstEvery int) Script {
	period = max(period, 1)
	return func(tick int, b field.Bounds) Step {
		theta := 2 * math.Pi * float64(tick%period) / float64(period)
		center := vmath.V2F(b.Width/2, b.Height/2)
		r := math.Min(b.Width, b.Height) / 3
		pos := vmath.V2FAdd(center, vmath.V2FScale(vmath.V2F(math.Cos(theta), math.Sin(theta)), r))

		return Step{
			Input: field.Input{
				Pointer:       pos,
				PointerActive: true,
				Config:        cfg,
			},
			Burst: burstEvery > 0 && tick%burstEvery == 0,
		}
	}
}
