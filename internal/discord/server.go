package discord

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/MagicCritBot_Go/internal/handler"
	"github.com/osse101/MagicCritBot_Go/internal/metrics"
	"github.com/osse101/MagicCritBot_Go/internal/server"
)

// readHeaderTimeout bounds slowloris-style header reads
const readHeaderTimeout = 5 * time.Second

// HTTPServer serves the liveness endpoints the hosting platform probes
type HTTPServer struct {
	server  *http.Server
	bot     *Bot
	started time.Time
}

// NewHTTPServer creates a new HTTP server listening on addr (e.g. ":8080")
func NewHTTPServer(addr string, bot *Bot) *HTTPServer {
	srv := &HTTPServer{
		bot:     bot,
		started: time.Now(),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(server.SecurityHeadersMiddleware())
	r.Use(metrics.Middleware)
	r.Use(server.LoggingMiddleware)

	r.Get("/", handler.HandleAlive())
	r.Head("/", handler.HandleAlive())
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(bot))
	r.Get("/health", srv.HandleHealth)
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	srv.server = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return srv
}

// Handler exposes the router, mainly for tests
func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server in the background
func (s *HTTPServer) Start() {
	go func() {
		slog.Info("Starting liveness HTTP server", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Liveness HTTP server failed", "error", err)
		}
	}()
}

// Stop gracefully shuts the server down
func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
