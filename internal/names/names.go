// Package names builds the collection of names namegen picks from.
package names

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"gopkg.in/yaml.v3"

	"github.com/randomizedcoder/namegen/internal/config"
)

// Default is the built-in pool.
var Default = []string{"Matthew", "Mark", "Luke", "John"}

// clockSeed seeds Fake when no seed is configured.
var clockSeed = func() uint64 { return uint64(time.Now().UnixNano()) }

// ErrEmptyPool is returned when a source yields no names.
var ErrEmptyPool = errors.New("name pool is empty")

// file is the mapping form of a names file. A bare YAML sequence is accepted too.
type file struct {
	Names []string `yaml:"names"`
}

// Parse splits a comma separated list, dropping blank entries.
func Parse(list string) []string {
	var out []string
	for _, s := range strings.Split(list, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// LoadFile reads names from a YAML file.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read names file: %w", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse names file %s: %w", path, err)
	}

	var raw []string
	if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
		err = node.Decode(&raw)
	} else {
		var f file
		err = node.Decode(&f)
		raw = f.Names
	}
	if err != nil {
		return nil, fmt.Errorf("decode names file %s: %w", path, err)
	}

	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("names file %s: %w", path, ErrEmptyPool)
	}
	return out, nil
}

// Fake generates up to n distinct first names. The same seed gives the same names.
func Fake(n int, seed uint64) []string {
	if n <= 0 {
		return nil
	}

	faker := gofakeit.NewFaker(rand.NewPCG(seed, seed), false)
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)

	for attempts := 0; len(out) < n && attempts < n*20; attempts++ {
		name := faker.FirstName()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Resolve returns the pool described by cfg. A names file wins over an explicit
// list, which wins over generated names; with none of them set, Default is used.
// Generated names are seeded from the clock when cfg.Seed is zero.
func Resolve(cfg *config.Config) ([]string, error) {
	switch {
	case cfg.NamesFile != "":
		return LoadFile(cfg.NamesFile)
	case cfg.Names != "":
		if out := Parse(cfg.Names); len(out) > 0 {
			return out, nil
		}
		return nil, ErrEmptyPool
	case cfg.FakeNames > 0:
		seed := cfg.Seed
		if seed == 0 {
			seed = clockSeed()
		}
		return Fake(cfg.FakeNames, seed), nil
	}
	return append([]string(nil), Default...), nil
}
