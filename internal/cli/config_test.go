package cli

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(envOf(nil))
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: slog.LevelInfo}, cfg)
}

func TestLoadConfig_Values(t *testing.T) {
	cfg, err := LoadConfig(envOf(map[string]string{
		EnvMaxIterations: "1000",
		EnvMaxSteps:      "500",
		EnvTimeLimit:     "250ms",
		EnvSeed:          "-42",
		EnvConcurrency:   "4",
		EnvLogLevel:      "debug",
	}))
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.MaxIterations)
	assert.Equal(t, 500, cfg.MaxSteps)
	assert.Equal(t, 250*time.Millisecond, cfg.TimeLimit)
	assert.Equal(t, int64(-42), cfg.Seed)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadConfig_Errors(t *testing.T) {
	cases := map[string]map[string]string{
		"negative iterations": {EnvMaxIterations: "-1"},
		"word steps":          {EnvMaxSteps: "many"},
		"bad duration":        {EnvTimeLimit: "soon"},
		"negative duration":   {EnvTimeLimit: "-1s"},
		"bad seed":            {EnvSeed: "0x"},
		"bad level":           {EnvLogLevel: "loud"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(envOf(env))
			require.Error(t, err)
			assert.Equal(t, ExitConfigError, ExitCode(err))
		})
	}
}
