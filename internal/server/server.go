// Package server provides the HTTP endpoints: health probes and name picks.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// MaxBatch is the largest n accepted by /names.
const MaxBatch = 100

// Picker is the subset of picker.Locked the server needs. Handlers run
// concurrently, so implementations must be safe for concurrent use.
type Picker interface {
	Next() string
	NextN(n int) []string
}

// Server serves health checks and picked names.
type Server struct {
	port   int
	logger *zap.Logger
	picker Picker
	server *http.Server
	ready  atomic.Bool
}

// New creates a new server. It reports ready until Shutdown is called.
func New(port int, picker Picker, logger *zap.Logger) *Server {
	s := &Server{
		port:   port,
		logger: logger,
		picker: picker,
	}
	s.ready.Store(true)
	return s
}

// Handler returns the routes served by s.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.HandleFunc("/name", s.handleName)
	mux.HandleFunc("/names", s.handleNames)
	return mux
}

// Start begins serving. This method blocks until the server
// is shut down or encounters an error.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Handler(),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      5 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	s.logger.Info("http server starting", zap.Int("port", s.port))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("http server error", zap.Error(err))
		return err
	}

	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.ready.Store(false)

	if s.server == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	s.logger.Info("http server shutting down")
	return s.server.Shutdown(shutdownCtx)
}

// SetReady updates the readiness status.
func (s *Server) SetReady(ready bool) {
	s.ready.Store(ready)
}

// IsReady returns the current readiness status.
func (s *Server) IsReady() bool {
	return s.ready.Load()
}

func allowRead(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		_, _ = w.Write([]byte("ok"))
	}
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if s.ready.Load() {
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte("ready"))
		}
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte("not ready"))
		}
	}
}

// handleName consumes a pick only on GET.
func (s *Server) handleName(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := s.picker.Next()
	s.logger.Debug("picked name", zap.String("name", name))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(name))
}

func (s *Server) handleNames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	n := 1
	if v := r.URL.Query().Get("n"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil || i < 1 || i > MaxBatch {
			http.Error(w, fmt.Sprintf("n must be an integer in [1, %d]", MaxBatch), http.StatusBadRequest)
			return
		}
		n = i
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(s.picker.NextN(n)); err != nil {
		s.logger.Warn("write names response", zap.Error(err))
	}
}
