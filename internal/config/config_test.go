package config

import (
	"strconv"
	"testing"
	"time"

	"go.uber.org/multierr"
)

var envKeys = []string{
	"NAMEGEN_NAMES",
	"NAMEGEN_NAMES_FILE",
	"NAMEGEN_FAKE_NAMES",
	"NAMEGEN_DICE",
	"NAMEGEN_SEED",
	"NAMEGEN_SLEEP_DURATION",
	"NAMEGEN_HTTP_PORT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	clearEnv(t)

	cfg := LoadWithDefaults()

	if cfg.Dice != DefaultDice {
		t.Errorf("Dice = %q, want %q", cfg.Dice, DefaultDice)
	}
	if cfg.SleepDuration != DefaultSleepDuration {
		t.Errorf("SleepDuration = %v, want %v", cfg.SleepDuration, DefaultSleepDuration)
	}
	if cfg.HTTPPort != DefaultHTTPPort {
		t.Errorf("HTTPPort = %d, want %d", cfg.HTTPPort, DefaultHTTPPort)
	}
	if cfg.Names != "" || cfg.NamesFile != "" || cfg.FakeNames != 0 || cfg.Seed != 0 {
		t.Errorf("unexpected non-zero pool settings: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envKey   string
		envValue string
		check    func(*Config) bool
		desc     string
	}{
		{
			name:     "names override",
			envKey:   "NAMEGEN_NAMES",
			envValue: "Matthew,Mark",
			check:    func(c *Config) bool { return c.Names == "Matthew,Mark" },
			desc:     "Names should be Matthew,Mark",
		},
		{
			name:     "names file override",
			envKey:   "NAMEGEN_NAMES_FILE",
			envValue: "/etc/namegen/names.yaml",
			check:    func(c *Config) bool { return c.NamesFile == "/etc/namegen/names.yaml" },
			desc:     "NamesFile should be set",
		},
		{
			name:     "fake names override",
			envKey:   "NAMEGEN_FAKE_NAMES",
			envValue: "25",
			check:    func(c *Config) bool { return c.FakeNames == 25 },
			desc:     "FakeNames should be 25",
		},
		{
			name:     "dice override",
			envKey:   "NAMEGEN_DICE",
			envValue: "sequential",
			check:    func(c *Config) bool { return c.Dice == DiceSequential },
			desc:     "Dice should be sequential",
		},
		{
			name:     "seed override",
			envKey:   "NAMEGEN_SEED",
			envValue: "18446744073709551615",
			check:    func(c *Config) bool { return c.Seed == 18446744073709551615 },
			desc:     "Seed should be max uint64",
		},
		{
			name:     "sleep duration override",
			envKey:   "NAMEGEN_SLEEP_DURATION",
			envValue: "10s",
			check:    func(c *Config) bool { return c.SleepDuration == 10*time.Second },
			desc:     "SleepDuration should be 10s",
		},
		{
			name:     "http port override",
			envKey:   "NAMEGEN_HTTP_PORT",
			envValue: "9090",
			check:    func(c *Config) bool { return c.HTTPPort == 9090 },
			desc:     "HTTPPort should be 9090",
		},
		{
			name:     "unknown dice ignored",
			envKey:   "NAMEGEN_DICE",
			envValue: "loaded",
			check:    func(c *Config) bool { return c.Dice == DefaultDice },
			desc:     "Dice should remain default",
		},
		{
			name:     "negative fake names ignored",
			envKey:   "NAMEGEN_FAKE_NAMES",
			envValue: "-5",
			check:    func(c *Config) bool { return c.FakeNames == 0 },
			desc:     "FakeNames should remain zero for negative",
		},
		{
			name:     "invalid seed ignored",
			envKey:   "NAMEGEN_SEED",
			envValue: "-1",
			check:    func(c *Config) bool { return c.Seed == 0 },
			desc:     "Seed should remain zero",
		},
		{
			name:     "invalid duration ignored",
			envKey:   "NAMEGEN_SLEEP_DURATION",
			envValue: "not-a-duration",
			check:    func(c *Config) bool { return c.SleepDuration == DefaultSleepDuration },
			desc:     "SleepDuration should remain default",
		},
		{
			name:     "zero port ignored",
			envKey:   "NAMEGEN_HTTP_PORT",
			envValue: "0",
			check:    func(c *Config) bool { return c.HTTPPort == DefaultHTTPPort },
			desc:     "HTTPPort should remain default for zero",
		},
		{
			name:     "invalid port ignored",
			envKey:   "NAMEGEN_HTTP_PORT",
			envValue: "99999",
			check:    func(c *Config) bool { return c.HTTPPort == DefaultHTTPPort },
			desc:     "HTTPPort should remain default for out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.envKey, tt.envValue)

			cfg := LoadWithDefaults()

			if !tt.check(cfg) {
				t.Errorf("%s failed: %s", tt.name, tt.desc)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Dice:          "loaded",
		FakeNames:     -1,
		SleepDuration: 0,
		HTTPPort:      70000,
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want errors")
	}
	if got := len(multierr.Errors(err)); got != 4 {
		t.Errorf("Validate() reported %d errors, want 4: %v", got, err)
	}
}

func TestValidate_HTTPPort(t *testing.T) {
	tests := []struct {
		port    int
		wantErr bool
	}{
		{0, true},
		{-1, true},
		{1, false},
		{DefaultHTTPPort, false},
		{65535, false},
		{65536, true},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.port), func(t *testing.T) {
			cfg := &Config{Dice: DefaultDice, SleepDuration: DefaultSleepDuration, HTTPPort: tt.port}
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() with port %d = %v, wantErr %v", tt.port, err, tt.wantErr)
			}
		})
	}
}
