package dice

import (
	"math/rand/v2"
	"time"
)

// Random rolls uniformly distributed values using a generator owned by the dice.
type Random struct {
	sides int
	rng   *rand.Rand
}

// NewRandom creates a random dice seeded from the clock.
func NewRandom(sides int) *Random {
	now := uint64(time.Now().UnixNano())
	return NewRandomWithRng(sides, rand.New(rand.NewPCG(now, now>>32)))
}

// NewSeeded creates a random dice whose sequence is fixed by seed.
func NewSeeded(sides int, seed uint64) *Random {
	return NewRandomWithRng(sides, rand.New(rand.NewPCG(seed, seed)))
}

// NewRandomWithRng creates a random dice with a custom random source (for testing).
func NewRandomWithRng(sides int, rng *rand.Rand) *Random {
	return &Random{
		sides: sides,
		rng:   rng,
	}
}

// Next returns a value in [0, sides). A dice with no sides always rolls 0.
func (d *Random) Next() int {
	if d.sides <= 0 {
		return 0
	}
	return d.rng.IntN(d.sides)
}

// Sides returns the bound of the dice.
func (d *Random) Sides() int {
	return d.sides
}
