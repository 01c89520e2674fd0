// Package picker maps rolls of a dice onto a fixed collection of items.
package picker

import (
	"slices"

	"github.com/randomizedcoder/namegen/internal/dice"
)

// Picker returns items chosen by a dice. The dice must have exactly as many
// sides as there are items; a mismatch panics on the first out-of-range roll.
// A Picker is not safe for concurrent use, see Locked.
type Picker[T any] struct {
	items []T
	dice  dice.Roller
}

// New creates a Picker over a copy of items.
func New[T any](items []T, d dice.Roller) *Picker[T] {
	return &Picker[T]{
		items: slices.Clone(items),
		dice:  d,
	}
}

// Sequential creates a Picker that walks items in order, wrapping at the end.
func Sequential[T any](items ...T) *Picker[T] {
	return New(items, dice.NewSequential(len(items)))
}

// Random creates a Picker backed by a clock-seeded random dice.
func Random[T any](items ...T) *Picker[T] {
	return New(items, dice.NewRandom(len(items)))
}

// Seeded creates a Picker backed by a random dice with a fixed seed.
func Seeded[T any](seed uint64, items ...T) *Picker[T] {
	return New(items, dice.NewSeeded(len(items), seed))
}

// Next rolls the dice and returns the item at that index.
func (p *Picker[T]) Next() T {
	return p.items[p.dice.Next()]
}

// Skip discards one roll.
func (p *Picker[T]) Skip() *Picker[T] {
	_ = p.dice.Next()
	return p
}

// Len returns the number of items.
func (p *Picker[T]) Len() int {
	return len(p.items)
}

// Items returns a copy of the collection.
func (p *Picker[T]) Items() []T {
	return slices.Clone(p.items)
}
