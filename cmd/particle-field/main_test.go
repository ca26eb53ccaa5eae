package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/particle-field/config"
)

// execute runs a fresh command tree in an isolated directory with no user config
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestVersionFlag(t *testing.T) {
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}

func TestSimulateSummary(t *testing.T) {
	out, errOut, err := execute(t, "simulate",
		"--ticks", "120", "--seed", "9", "--orbit", "60", "--burst-every", "40",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "ticks:      120\n")
	assert.Contains(t, out, "spawned:    30\n")
	assert.Contains(t, out, "contacts:")
	assert.Contains(t, errOut, "simulation finished")
}

func TestSimulateIsDeterministicForSeed(t *testing.T) {
	args := []string{"simulate", "--ticks", "300", "--seed", "21", "--orbit", "90", "--burst-every", "45"}

	first, _, err := execute(t, args...)
	require.NoError(t, err)
	second, _, err := execute(t, args...)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCountPrecedence(t *testing.T) {
	out, _, err := execute(t, "simulate", "--ticks", "0", "--count", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "particles:  7 (min 7, max 7)")

	t.Setenv("PFIELD_SIM_INITIAL_COUNT", "12")
	out, _, err = execute(t, "simulate", "--ticks", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "particles:  12 (min 12, max 12)")

	out, _, err = execute(t, "simulate", "--ticks", "0", "--count", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "particles:  3 (min 3, max 3)", "flag beats environment")
}

func TestConfigFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sim:\n  initial_count: 5\n"), 0o644))

	out, _, err := execute(t, "--config", path, "simulate", "--ticks", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "particles:  5 (min 5, max 5)")
}

func TestInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"ZeroScale", []string{"simulate", "--scale", "0"}, "display.scale"},
		{"ZeroTickRate", []string{"simulate", "--tick-rate", "0"}, "tick_rate"},
		{"NegativeTicks", []string{"simulate", "--ticks=-1"}, "--ticks"},
		{"EmptyViewport", []string{"simulate", "--width", "0"}, "viewport"},
		{"MissingConfig", []string{"--config", "/nonexistent/field.yaml", "simulate"}, "read config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestAudioConfigMapping(t *testing.T) {
	cfg := config.Default().Audio
	cfg.Volume = 0.25
	cfg.CueRate = 3
	cfg.CueBurst = 0

	ac := audioConfig(cfg)
	assert.True(t, ac.Enabled)
	assert.Equal(t, 0.25, ac.MasterVolume)
	assert.Equal(t, 3.0, ac.CueRate)
	assert.Equal(t, 4, ac.CueBurst, "non-positive burst keeps the default")
	assert.Equal(t, 44100, ac.SampleRate)
}

func TestOpenSoundDisabled(t *testing.T) {
	cfg := config.Default().Audio
	cfg.Enabled = false
	assert.Nil(t, openSound(cfg, nil))
}
