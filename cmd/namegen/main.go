// Package main is the entry point for the namegen application.
// namegen picks names from a fixed pool, logging one per interval and serving them over HTTP.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/randomizedcoder/namegen/internal/config"
	"github.com/randomizedcoder/namegen/internal/loop"
	"github.com/randomizedcoder/namegen/internal/names"
	"github.com/randomizedcoder/namegen/internal/picker"
	"github.com/randomizedcoder/namegen/internal/server"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration from flags and environment variables
	cfg := config.Load()

	// Initialize production JSON logger
	logger, err := zap.NewProduction()
	if err != nil {
		// Fallback to stderr if logger creation fails
		os.Stderr.WriteString("failed to create logger: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	return serve(cfg, logger, sigChan)
}

// serve runs namegen until a signal arrives or the HTTP server fails, and
// returns the process exit code.
func serve(cfg *config.Config, logger *zap.Logger, sigChan <-chan os.Signal) int {
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return 1
	}

	pool, err := names.Resolve(cfg)
	if err != nil {
		logger.Error("failed to load names", zap.Error(err))
		return 1
	}

	logger.Info("namegen starting",
		zap.String("version", version),
		zap.String("dice", cfg.Dice),
		zap.Uint64("seed", cfg.Seed),
		zap.Int("pool_size", len(pool)),
		zap.Duration("sleep_duration", cfg.SleepDuration),
		zap.Int("http_port", cfg.HTTPPort),
	)

	// Loop and server run on separate goroutines and share one picker.
	shared := picker.NewLocked(loop.NewPicker(cfg, pool))

	// Create cancellable context for coordinated shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := server.New(cfg.HTTPPort, shared, logger)
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(ctx)
	}()

	looper := loop.New(cfg.SleepDuration, shared, logger)
	loopDone := make(chan struct{})
	go func() {
		looper.Run(ctx)
		close(loopDone)
	}()

	code := 0
	select {
	case sig := <-sigChan:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.Error("http server failed", zap.Error(err))
		code = 1
	}

	// Graceful shutdown
	cancel()
	<-loopDone

	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Error("http server shutdown failed", zap.Error(err))
		code = 1
	}

	logger.Info("namegen stopped", zap.Int("exit_code", code))
	return code
}
