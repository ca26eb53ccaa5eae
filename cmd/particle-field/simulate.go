package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/particle-field/engine"
	"github.com/lixenwraith/particle-field/field"
	"github.com/lixenwraith/particle-field/observability"
	"github.com/lixenwraith/particle-field/vmath"
)

type simulateOptions struct {
	ticks      int
	width      float64
	height     float64
	orbit      int
	burstEvery int
}

func newSimulateCmd(a *app) *cobra.Command {
	opts := simulateOptions{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the field without a screen and print a summary",
		Long: "Advances the field for a fixed number of ticks with a scripted pointer. " +
			"Without --orbit the pointer stays away and only friction, gravity and floor removal act.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSimulate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.ticks, "ticks", 600, "number of ticks to run")
	f.Float64Var(&opts.width, "width", 800, "viewport width in field units")
	f.Float64Var(&opts.height, "height", 600, "viewport height in field units")
	f.IntVar(&opts.orbit, "orbit", 0, "circle the pointer around the center once per this many ticks, 0 keeps it away")
	f.IntVar(&opts.burstEvery, "burst-every", 0, "with --orbit, click at the pointer every this many ticks")
	return cmd
}

func (a *app) runSimulate(cmd *cobra.Command, opts simulateOptions) error {
	if opts.ticks < 0 {
		return errors.Errorf("--ticks must not be negative, got %d", opts.ticks)
	}
	if opts.width <= 0 || opts.height <= 0 {
		return errors.Errorf("viewport must be positive, got %vx%v", opts.width, opts.height)
	}

	logger := observability.NewLogger(a.cfg.Log, cmd.ErrOrStderr())
	defer func() { _ = logger.Sync() }()

	seed := a.cfg.Sim.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	f := field.New(vmath.NewFastRand(seed), field.FieldBounds(opts.width, opts.height))
	f.Reset(a.cfg.Sim.InitialCount)

	fc := field.Config{Gravity: a.cfg.Sim.Gravity, Repulsion: a.cfg.Sim.Repulsion}
	script := engine.Idle(fc)
	if opts.orbit > 0 {
		script = engine.Orbit(fc, opts.orbit, opts.burstEvery)
	}

	logger.Debug("simulation starting",
		zap.Uint64("seed", seed),
		zap.Int("ticks", opts.ticks),
		zap.Int("particles", f.Len()),
	)

	sum, err := engine.Simulate(cmd.Context(), f, opts.ticks, script)
	logger.Info("simulation finished",
		zap.Int("ticks", sum.Ticks),
		zap.Int("particles", sum.Final.Count),
		zap.Int("spawned", sum.Spawned),
		zap.Int("removed", sum.Removed),
		zap.Int("contacts", sum.Contacts),
		zap.Duration("elapsed", sum.Elapsed),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ticks:      %d\n", sum.Ticks)
	fmt.Fprintf(out, "particles:  %d (min %d, max %d)\n", sum.Final.Count, sum.MinCount, sum.MaxCount)
	fmt.Fprintf(out, "spawned:    %d\n", sum.Spawned)
	fmt.Fprintf(out, "removed:    %d\n", sum.Removed)
	fmt.Fprintf(out, "contacts:   %d\n", sum.Contacts)
	fmt.Fprintf(out, "resting:    %d\n", sum.Final.Resting)
	fmt.Fprintf(out, "mean speed: %.3f\n", sum.Final.MeanSpeed)
	return err
}
