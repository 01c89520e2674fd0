// Package config handles application configuration from CLI flags and environment variables.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/multierr"
)

// Dice modes.
const (
	DiceRandom     = "random"
	DiceSequential = "sequential"
)

// Config holds all application configuration.
type Config struct {
	// Names is a comma separated list of names to pick from.
	Names string

	// NamesFile is a YAML file holding the names. It takes precedence over Names.
	NamesFile string

	// FakeNames is how many generated names to use when no list is given.
	FakeNames int

	// Dice selects the index source: "random" or "sequential".
	Dice string

	// Seed fixes the random dice and generated names. Zero seeds from the clock.
	Seed uint64

	// SleepDuration is the interval between picks.
	SleepDuration time.Duration

	// HTTPPort is the port for the health and name endpoints.
	HTTPPort int
}

// Default values.
const (
	DefaultDice          = DiceRandom
	DefaultSleepDuration = 5 * time.Second
	DefaultHTTPPort      = 8081
)

// Load parses configuration from flags and environment variables.
// Environment variables override CLI flag defaults.
func Load() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.Names, "names", "",
		"Comma separated names to pick from (env: NAMEGEN_NAMES)")
	flag.StringVar(&cfg.NamesFile, "names-file", "",
		"YAML file with names to pick from (env: NAMEGEN_NAMES_FILE)")
	flag.IntVar(&cfg.FakeNames, "fake-names", 0,
		"Number of generated names to use when none are given (env: NAMEGEN_FAKE_NAMES)")
	flag.StringVar(&cfg.Dice, "dice", DefaultDice,
		"Index source, random or sequential (env: NAMEGEN_DICE)")
	flag.Uint64Var(&cfg.Seed, "seed", 0,
		"Seed for the random dice, 0 for clock seeded (env: NAMEGEN_SEED)")
	flag.DurationVar(&cfg.SleepDuration, "sleep-duration", DefaultSleepDuration,
		"Duration between picks (env: NAMEGEN_SLEEP_DURATION)")
	flag.IntVar(&cfg.HTTPPort, "http-port", DefaultHTTPPort,
		"Port for the HTTP server (env: NAMEGEN_HTTP_PORT)")

	flag.Parse()

	cfg.applyEnvOverrides()

	return cfg
}

// LoadWithDefaults returns a Config with default values without parsing flags.
// Useful for testing.
func LoadWithDefaults() *Config {
	cfg := &Config{
		Dice:          DefaultDice,
		SleepDuration: DefaultSleepDuration,
		HTTPPort:      DefaultHTTPPort,
	}
	cfg.applyEnvOverrides()
	return cfg
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var err error

	if c.Dice != DiceRandom && c.Dice != DiceSequential {
		err = multierr.Append(err, fmt.Errorf("dice %q: must be %q or %q", c.Dice, DiceRandom, DiceSequential))
	}
	if c.FakeNames < 0 {
		err = multierr.Append(err, fmt.Errorf("fake names %d: must not be negative", c.FakeNames))
	}
	if c.SleepDuration <= 0 {
		err = multierr.Append(err, errors.New("sleep duration must be positive"))
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		err = multierr.Append(err, fmt.Errorf("http port %d: out of range", c.HTTPPort))
	}

	return err
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("NAMEGEN_NAMES"); v != "" {
		c.Names = v
	}

	if v := os.Getenv("NAMEGEN_NAMES_FILE"); v != "" {
		c.NamesFile = v
	}

	if v := os.Getenv("NAMEGEN_FAKE_NAMES"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i >= 0 {
			c.FakeNames = i
		}
	}

	if v := os.Getenv("NAMEGEN_DICE"); v == DiceRandom || v == DiceSequential {
		c.Dice = v
	}

	if v := os.Getenv("NAMEGEN_SEED"); v != "" {
		if u, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = u
		}
	}

	if v := os.Getenv("NAMEGEN_SLEEP_DURATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.SleepDuration = d
		}
	}

	if v := os.Getenv("NAMEGEN_HTTP_PORT"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 && i < 65536 {
			c.HTTPPort = i
		}
	}
}
