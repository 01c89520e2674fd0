// Package loop implements the main loop that logs a picked name on every tick.
package loop

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Picker is the subset of picker.Picker and picker.Locked the loop needs.
type Picker interface {
	Next() string
}

// Looper handles the main pick loop.
type Looper struct {
	interval time.Duration
	logger   *zap.Logger
	picker   Picker
	count    uint64
}

// New creates a new Looper instance.
func New(interval time.Duration, picker Picker, logger *zap.Logger) *Looper {
	return &Looper{
		interval: interval,
		logger:   logger,
		picker:   picker,
	}
}

// Run starts the loop, blocking until context is cancelled.
func (l *Looper) Run(ctx context.Context) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.logger.Info("loop started", zap.Duration("interval", l.interval))

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("loop stopped", zap.Uint64("total_ticks", l.count))
			return
		case <-ticker.C:
			l.tick()
		}
	}
}

// tick performs one iteration of the loop.
func (l *Looper) tick() {
	l.count++

	l.logger.Info("tick",
		zap.Uint64("count", l.count),
		zap.String("name", l.picker.Next()),
	)
}

// Count returns the current tick count.
func (l *Looper) Count() uint64 {
	return l.count
}
