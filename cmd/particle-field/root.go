package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/particle-field/config"
)

// Version is set at build time with -ldflags "-X main.Version=..."
var Version = "dev"

// app carries state shared by the subcommands of one invocation
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
}

// flagKeys binds persistent flags to their configuration keys
var flagKeys = map[string]string{
	"count":     "sim.initial_count",
	"tick-rate": "sim.tick_rate",
	"seed":      "sim.seed",
	"gravity":   "sim.gravity",
	"repulsion": "sim.repulsion",
	"scale":     "display.scale",
	"color":     "display.color",
	"audio":     "audio.enabled",
	"volume":    "audio.volume",
	"log-level": "log.level",
	"log-file":  "log.file",
}

// newRootCmd builds a fresh command tree; running it bare starts the interactive field
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:          "particle-field",
		Short:        "An interactive particle field for the terminal.",
		Long:         "Particles drift inside a bounded field, flee the mouse pointer, burst from clicks and settle under gravity.",
		Version:      Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
		RunE: a.runInteractive,
	}
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./particle-field.yaml)")
	pf.Int("count", 80, "initial particle count, also used by reset")
	pf.Int("tick-rate", 60, "simulation ticks per second")
	pf.Uint64("seed", 0, "random seed, 0 seeds from the clock")
	pf.Bool("gravity", true, "start with gravity on")
	pf.Bool("repulsion", true, "start with pointer repulsion on")
	pf.Float64("scale", 4.0, "field units per half-block pixel")
	pf.String("color", "auto", "color mode: auto, truecolor, 256")
	pf.Bool("audio", true, "enable sound cues")
	pf.Float64("volume", 0.6, "master volume in [0, 1]")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-file", "", "log file path, empty disables logging in interactive mode")
	bindFlags(a.v, pf)

	root.AddCommand(newRunCmd(a), newSimulateCmd(a))
	return root
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	for name, key := range flagKeys {
		// Lookup cannot miss: every name is registered above
		_ = v.BindPFlag(key, fs.Lookup(name))
	}
}

func (a *app) loadConfig() error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}
