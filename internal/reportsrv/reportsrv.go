// Package reportsrv serves a minimal chi-routed HTTP mux exposing
// /healthz and /metrics for long-running multi-trial solves. It never
// touches solver state directly; it only serves whatever the caller
// has registered against the Prometheus default (or supplied)
// registry.
package reportsrv

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wraps an http.Server configured with the solver's two
// operational routes.
type Server struct {
	http *http.Server
}

// New builds a Server listening on addr.
func New(addr string) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return &Server{http: &http.Server{Addr: addr, Handler: r}}
}

// ListenAndServe runs the server until it errors or is shut down;
// http.ErrServerClosed is swallowed since it signals a clean Shutdown.
func (s *Server) ListenAndServe() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
