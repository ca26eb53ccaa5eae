package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/particle-field/field"
	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/vmath"
)

func newHeadlessField(seed uint64) *field.Field {
	f := field.New(vmath.NewFastRand(seed), field.Bounds{Width: 400, Height: 300})
	f.Reset(parameter.InitialParticleCount)
	return f
}

func TestSimulateIdle(t *testing.T) {
	f := newHeadlessField(7)
	sum, err := Simulate(context.Background(), f, 500, nil)
	require.NoError(t, err)

	assert.Equal(t, 500, sum.Ticks)
	assert.Zero(t, sum.Spawned)
	assert.Zero(t, sum.Contacts)
	assert.Equal(t, f.Len(), sum.Final.Count)
	assert.Equal(t, parameter.InitialParticleCount-sum.Removed, f.Len())
	assert.GreaterOrEqual(t, sum.MinCount, parameter.PopulationFloor)
	assert.Equal(t, parameter.InitialParticleCount, sum.MaxCount)
}

func TestSimulateOrbitBursts(t *testing.T) {
	f := newHeadlessField(11)
	sum, err := Simulate(context.Background(), f, 200, Orbit(field.DefaultConfig(), 120, 50))
	require.NoError(t, err)

	assert.Equal(t, 4*parameter.BurstSize, sum.Spawned)
	assert.Positive(t, sum.Contacts, "bursts land within contact range of the pointer")
	assert.Equal(t, parameter.InitialParticleCount+sum.Spawned-sum.Removed, f.Len())
	assert.GreaterOrEqual(t, sum.MinCount, parameter.PopulationFloor)
}

func TestSimulateDeterministic(t *testing.T) {
	script := Orbit(field.DefaultConfig(), 90, 30)

	a, err := Simulate(context.Background(), newHeadlessField(3), 300, script)
	require.NoError(t, err)
	b, err := Simulate(context.Background(), newHeadlessField(3), 300, script)
	require.NoError(t, err)

	assert.Equal(t, a.Removed, b.Removed)
	assert.Equal(t, a.Contacts, b.Contacts)
	assert.Equal(t, a.Final, b.Final)
}

func TestSimulateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := newHeadlessField(5)
	sum, err := Simulate(ctx, f, 100, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, sum.Ticks)
	assert.Equal(t, parameter.InitialParticleCount, sum.Final.Count)
}

func TestOrbitPath(t *testing.T) {
	script := Orbit(field.DefaultConfig(), 4, 0)
	b := field.Bounds{Width: 300, Height: 300}

	s := script(0, b)
	assert.True(t, s.Input.PointerActive)
	assert.False(t, s.Burst)
	assert.InDelta(t, 250.0, s.Input.Pointer.X, 1e-9)
	assert.InDelta(t, 150.0, s.Input.Pointer.Y, 1e-9)

	s = script(1, b)
	assert.InDelta(t, 150.0, s.Input.Pointer.X, 1e-9)
	assert.InDelta(t, 250.0, s.Input.Pointer.Y, 1e-9)

	s = script(4, b)
	assert.InDelta(t, 250.0, s.Input.Pointer.X, 1e-9)
}

func TestIdleScript(t *testing.T) {
	cfg := field.Config{Gravity: false, Repulsion: true}
	s := Idle(cfg)(10, field.Bounds{Width: 10, Height: 10})
	assert.False(t, s.Input.PointerActive)
	assert.False(t, s.Burst)
	assert.Equal(t, cfg, s.Input.Config)
}
