package httpserver

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/mesos-task-metrics/internal/infra/appstate"
	"github.com/skillcoder/mesos-task-metrics/internal/infra/shutdown"
)

// Server serves health endpoints and the last cycle of every target.
type Server struct {
	*listener
	logger   *slog.Logger
	appState appstater
	cycles   cycleReporter
}

// New creates the health and cycle report server.
func New(logger *slog.Logger, appState appstater, cycles cycleReporter, port string) *Server {
	if port == "" {
		port = defaultPort
	}

	return &Server{
		listener: newListener(logger, "http-server", port),
		logger:   logger,
		appState: appState,
		cycles:   cycles,
	}
}

var _ shutdown.Shutdowner = (*Server)(nil)

// PingerReadyCritical keeps the health listener out of readiness.
func (s *Server) PingerReadyCritical() bool {
	return false
}

// Start binds the port and serves the health routes.
func (s *Server) Start(ctx context.Context) error {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/-/healthz", appstate.HandleHealthz(s.logger, s.appState))
	router.Get("/-/readyz", appstate.HandleReadyz(s.logger, s.appState))
	router.Get("/-/status", appstate.HandleStatus(s.logger, s.appState))
	router.Get("/-/targets", s.handleTargets)

	return s.serve(ctx, router)
}
