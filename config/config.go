// Package config loads runtime settings from defaults, an optional YAML file,
// PFIELD_* environment variables and bound command-line flags, in rising precedence.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. PFIELD_SIM_TICK_RATE
const EnvPrefix = "PFIELD"

// MaxTickRate bounds sim.tick_rate so the tick interval stays a positive duration
const MaxTickRate = 1000

// Config is the full runtime configuration
type Config struct {
	Sim     SimConfig     `mapstructure:"sim"`
	Display DisplayConfig `mapstructure:"display"`
	Audio   AudioConfig   `mapstructure:"audio"`
	Log     LogConfig     `mapstructure:"log"`
}

// SimConfig seeds and paces the simulation
type SimConfig struct {
	InitialCount int    `mapstructure:"initial_count"`
	TickRate     int    `mapstructure:"tick_rate"`
	Seed         uint64 `mapstructure:"seed"`
	Gravity      bool   `mapstructure:"gravity"`
	Repulsion    bool   `mapstructure:"repulsion"`
}

// DisplayConfig maps the field onto terminal cells
type DisplayConfig struct {
	// Scale is field units per half-block pixel
	Scale float64 `mapstructure:"scale"`
	Color string  `mapstructure:"color"`
}

type AudioConfig struct {
	Enabled  bool    `mapstructure:"enabled"`
	Volume   float64 `mapstructure:"volume"`
	CueRate  float64 `mapstructure:"cue_rate"`
	CueBurst int     `mapstructure:"cue_burst"`
}

// LogConfig mirrors the lumberjack rotation knobs
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// SetDefaults registers every key so env and flag overrides resolve during Unmarshal
func SetDefaults(v *viper.Viper) {
	v.SetDefault("sim.initial_count", 80)
	v.SetDefault("sim.tick_rate", 60)
	v.SetDefault("sim.seed", 0)
	v.SetDefault("sim.gravity", true)
	v.SetDefault("sim.repulsion", true)

	v.SetDefault("display.scale", 4.0)
	v.SetDefault("display.color", "auto")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.6)
	v.SetDefault("audio.cue_rate", 12.0)
	v.SetDefault("audio.cue_burst", 4)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 7)
	v.SetDefault("log.compress", false)
}

// Default returns the built-in settings with no file or environment applied
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Load reads configuration into v and decodes it
// An empty path searches ./particle-field.yaml and $HOME/.config/particle-field/; a missing file is not an error
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("particle-field")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/particle-field")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the engine cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Sim.TickRate <= 0 || c.Sim.TickRate > MaxTickRate:
		return errors.Errorf("sim.tick_rate must be within [1, %d], got %d", MaxTickRate, c.Sim.TickRate)
	case c.Sim.InitialCount < 0:
		return errors.Errorf("sim.initial_count must not be negative, got %d", c.Sim.InitialCount)
	case c.Display.Scale <= 0:
		return errors.Errorf("display.scale must be positive, got %v", c.Display.Scale)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return errors.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume)
	case c.Audio.CueRate <= 0:
		return errors.Errorf("audio.cue_rate must be positive, got %v", c.Audio.CueRate)
	}
	switch c.Display.Color {
	case "auto", "truecolor", "true", "24bit", "256":
	default:
		return errors.Errorf("display.color must be auto, truecolor or 256, got %q", c.Display.Color)
	}
	return nil
}

// TickInterval is the wall-clock period between ticks
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Sim.TickRate)
}
