package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/particle-field/audio"
	"github.com/lixenwraith/particle-field/config"
	"github.com/lixenwraith/particle-field/engine"
	"github.com/lixenwraith/particle-field/observability"
	"github.com/lixenwraith/particle-field/terminal"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the interactive field (default)",
		Args:  cobra.NoArgs,
		RunE:  a.runInteractive,
	}
}

func (a *app) runInteractive(cmd *cobra.Command, _ []string) error {
	logger := observability.NewLogger(a.cfg.Log, nil)
	defer func() { _ = logger.Sync() }()

	mode, err := terminal.ParseColorMode(a.cfg.Display.Color)
	if err != nil {
		return err
	}
	term, err := terminal.Open(mode)
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}
	defer term.Close()
	logger.Info("terminal opened", zap.String("color", string(terminal.ResolveColorMode(mode))))

	var player audio.Player
	if sm := openSound(a.cfg.Audio, logger); sm != nil {
		defer sm.Cleanup()
		player = sm
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return engine.New(a.cfg, term, player, logger).Run(ctx)
}

// openSound returns nil when audio is disabled or the device cannot be opened
func openSound(cfg config.AudioConfig, logger *zap.Logger) *audio.SoundManager {
	if !cfg.Enabled {
		return nil
	}
	sm := audio.NewSoundManager(audioConfig(cfg))
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing silent", zap.Error(err))
		return nil
	}
	return sm
}

func audioConfig(cfg config.AudioConfig) *audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = cfg.Enabled
	ac.MasterVolume = cfg.Volume
	ac.CueRate = cfg.CueRate
	if cfg.CueBurst > 0 {
		ac.CueBurst = cfg.CueBurst
	}
	return ac
}
