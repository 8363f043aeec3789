// Package config holds process-wide settings sourced from the environment,
// kept separate from command-line flags so the REPL and file-runner paths
// share a single place to look for them.
package config

import "github.com/caarlos0/env/v6"

// Config is parsed from environment variables on each call to Load; it is
// not cached.
type Config struct {
	// Prompt is printed before each REPL read.
	Prompt string `env:"LOX_PROMPT" envDefault:"> "`

	// ClockEpochSeconds, if non-zero, is returned by every clock() call
	// instead of the wall clock, so script output can be made deterministic
	// for golden-file tests run outside this module.
	ClockEpochSeconds float64 `env:"LOX_CLOCK_EPOCH_SECONDS" envDefault:"0"`
}

// Load reads Config from the environment, applying defaults for anything
// unset.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
