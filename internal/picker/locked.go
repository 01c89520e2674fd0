package picker

import "sync"

// Locked serialises access to a Picker so it can be shared between goroutines.
type Locked[T any] struct {
	mu     sync.Mutex
	picker *Picker[T]
}

// NewLocked wraps p. p must not be used directly afterwards.
func NewLocked[T any](p *Picker[T]) *Locked[T] {
	return &Locked[T]{picker: p}
}

// Next returns the next item.
func (l *Locked[T]) Next() T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.picker.Next()
}

// NextN returns n consecutive items under a single lock. It returns nil for n <= 0.
func (l *Locked[T]) NextN(n int) []T {
	if n <= 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, l.picker.Next())
	}
	return out
}

// Len returns the number of items.
func (l *Locked[T]) Len() int {
	return l.picker.Len()
}
