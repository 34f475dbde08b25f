// SPDX-License-Identifier: MIT

package cli

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables read by FromEnv.
const (
	EnvMaxIterations = "AVGDIST_MAX_ITERATIONS"
	EnvMaxSteps      = "AVGDIST_MAX_STEPS"
	EnvTimeLimit     = "AVGDIST_TIME_LIMIT"
	EnvSeed          = "AVGDIST_SEED"
	EnvConcurrency   = "AVGDIST_CONCURRENCY"
	EnvLogLevel      = "AVGDIST_LOG_LEVEL"
)

// Config captures run budgets and logging that come from the environment.
// Zero values mean package defaults.
type Config struct {
	MaxIterations int
	MaxSteps      int
	TimeLimit     time.Duration
	Seed          int64
	Concurrency   int
	LogLevel      slog.Level
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	return LoadConfig(os.Getenv)
}

// LoadConfig builds a Config from getenv. Malformed values are config errors
// (ExitConfigError).
func LoadConfig(getenv func(string) string) (Config, error) {
	var (
		cfg = Config{LogLevel: slog.LevelInfo}
		err error
	)
	if cfg.MaxIterations, err = nonNegativeInt(getenv, EnvMaxIterations); err != nil {
		return Config{}, err
	}
	if cfg.MaxSteps, err = nonNegativeInt(getenv, EnvMaxSteps); err != nil {
		return Config{}, err
	}
	if cfg.Concurrency, err = nonNegativeInt(getenv, EnvConcurrency); err != nil {
		return Config{}, err
	}

	if raw := strings.TrimSpace(getenv(EnvTimeLimit)); raw != "" {
		d, perr := time.ParseDuration(raw)
		if perr != nil || d < 0 {
			return Config{}, configErrorf("%s: invalid duration %q", EnvTimeLimit, raw)
		}
		cfg.TimeLimit = d
	}

	if raw := strings.TrimSpace(getenv(EnvSeed)); raw != "" {
		seed, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			return Config{}, configErrorf("%s: invalid integer %q", EnvSeed, raw)
		}
		cfg.Seed = seed
	}

	if raw := strings.TrimSpace(getenv(EnvLogLevel)); raw != "" {
		if perr := cfg.LogLevel.UnmarshalText([]byte(raw)); perr != nil {
			return Config{}, configErrorf("%s: invalid level %q", EnvLogLevel, raw)
		}
	}

	return cfg, nil
}

func nonNegativeInt(getenv func(string) string, key string) (int, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, configErrorf("%s: expected a non-negative integer, got %q", key, raw)
	}
	return n, nil
}
