// Package api serves availability and entitlement checks over HTTP.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/felixgeelhaar/pawsit/pkg/observability"
)

// Server is the HTTP API server.
type Server struct {
	mux          *http.ServeMux
	server       *http.Server
	logger       *slog.Logger
	availability *AvailabilityHandler
	entitlement  *EntitlementHandler
	health       *observability.HealthRegistry
	metrics      *observability.InMemoryMetrics
}

// ServerConfig holds configuration for the API server.
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultServerConfig returns the default server configuration.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:         "0.0.0.0:8080",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// NewServer creates a new API server. A nil health registry reports healthy.
func NewServer(
	cfg ServerConfig,
	availability *AvailabilityHandler,
	entitlement *EntitlementHandler,
	health *observability.HealthRegistry,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if health == nil {
		health = observability.NewHealthRegistry()
	}

	s := &Server{
		mux:          http.NewServeMux(),
		logger:       logger,
		availability: availability,
		entitlement:  entitlement,
		health:       health,
	}
	s.registerRoutes()

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /metrics", s.handleMetrics)

	s.mux.HandleFunc("GET /api/v1/sitters/{sitterID}/occupancy", s.availability.GetOccupancy)
	s.mux.HandleFunc("GET /api/v1/sitters/{sitterID}/calendar", s.availability.GetCalendar)
	s.mux.HandleFunc("GET /api/v1/sitters/{sitterID}/availability", s.availability.CheckRange)

	s.mux.HandleFunc("GET /api/v1/users/{userID}/entitlement", s.entitlement.GetEntitlement)
}

// WithMetrics exposes the collector on GET /metrics.
func (s *Server) WithMetrics(metrics *observability.InMemoryMetrics) *Server {
	s.metrics = metrics
	return s
}

// Handler returns the routed handler with request context middleware.
func (s *Server) Handler() http.Handler {
	return s.withRequestContext(s.mux)
}

// withRequestContext attaches correlation and request IDs, honoring an
// incoming X-Correlation-ID.
func (s *Server) withRequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := observability.NewRequestContext(r.Context(), r.Header.Get("X-Correlation-ID"))
		w.Header().Set("X-Request-ID", observability.RequestIDFromContext(ctx))
		w.Header().Set("X-Correlation-ID", observability.CorrelationIDFromContext(ctx))

		timer := observability.StartTimer(r.Method + " " + r.URL.Path).WithLogger(s.logger)
		next.ServeHTTP(w, r.WithContext(ctx))
		timer.Stop()
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := s.health.Check(r.Context())
	status := http.StatusOK
	if health.Status == observability.HealthStatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, health)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if s.metrics == nil {
		writeError(w, http.StatusNotFound, "metrics are not enabled")
		return
	}
	writeJSON(w, http.StatusOK, s.metrics.Snapshot())
}

// Start starts the API server.
func (s *Server) Start() error {
	s.logger.Info("starting API server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down API server")
	return s.server.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode JSON response", "error", err)
		}
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error":   http.StatusText(status),
		"message": message,
	})
}
