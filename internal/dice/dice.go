// Package dice provides index sources that roll integers in a bounded range.
package dice

// Roller returns the next integer in [0, n), where n is fixed at construction.
// Implementations are not safe for concurrent use.
type Roller interface {
	Next() int
}

// Sequential is a loaded dice: it yields 0, 1, ..., n-1 and then wraps to 0.
// It makes picks predictable under test.
type Sequential struct {
	sides  int
	cursor int
}

// NewSequential creates a sequential dice with the given number of sides.
func NewSequential(sides int) *Sequential {
	return &Sequential{sides: sides}
}

// Next returns the current cursor and advances it.
func (d *Sequential) Next() int {
	result := d.cursor
	if d.cursor+1 < d.sides {
		d.cursor++
	} else {
		d.cursor = 0
	}
	return result
}

// Sides returns the bound of the dice.
func (d *Sequential) Sides() int {
	return d.sides
}
