// Package api exposes the itinerary mutation core over HTTP: document
// CRUD, chat-driven editing, propose/apply/undo, and the WebSocket
// progress stream.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/wayplan/wayplan/pkg/agent/orchestrator"
	"github.com/wayplan/wayplan/pkg/changeset"
	"github.com/wayplan/wayplan/pkg/config"
	"github.com/wayplan/wayplan/pkg/database"
	"github.com/wayplan/wayplan/pkg/events"
	"github.com/wayplan/wayplan/pkg/store"
)

// Orchestrations runs one orchestration synchronously. Satisfied by
// *orchestrator.Orchestrator.
type Orchestrations interface {
	Execute(ctx context.Context, req orchestrator.Request) (*orchestrator.Result, error)
}

// RunSubmitter queues one orchestration for async execution. Satisfied
// by *dispatch.Dispatcher.
type RunSubmitter interface {
	Submit(req orchestrator.Request) (string, error)
}

// Deps bundles the server's collaborators. DB may be nil (health checks
// then skip the database probe); ConnManager may be nil (WebSocket
// endpoint returns 503).
type Deps struct {
	Config      *config.Config
	Store       store.DocumentStore
	Engine      *changeset.Engine
	Orch        Orchestrations
	Dispatcher  RunSubmitter
	Publisher   *events.Publisher
	ConnManager *events.ConnectionManager
	DB          *database.Client
}

// Server is the HTTP API server.
type Server struct {
	echo *echo.Echo
	http *http.Server

	cfg         *config.Config
	store       store.DocumentStore
	engine      *changeset.Engine
	orch        Orchestrations
	dispatcher  RunSubmitter
	pub         *events.Publisher
	connManager *events.ConnectionManager
	db          *database.Client
}

// NewServer creates the server and registers all routes.
func NewServer(deps Deps) *Server {
	s := &Server{
		echo:        echo.New(),
		cfg:         deps.Config,
		store:       deps.Store,
		engine:      deps.Engine,
		orch:        deps.Orch,
		dispatcher:  deps.Dispatcher,
		pub:         deps.Publisher,
		connManager: deps.ConnManager,
		db:          deps.DB,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.echo
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)
	e.GET("/ws", s.wsHandler)

	v1 := e.Group("/api/v1")
	v1.POST("/itineraries", s.createItineraryHandler)
	v1.GET("/itineraries/:id", s.getItineraryHandler)
	v1.GET("/itineraries/:id/revisions/:version", s.getRevisionHandler)
	v1.POST("/itineraries/:id/chat", s.chatHandler)
	v1.POST("/itineraries/:id/propose", s.proposeHandler)
	v1.POST("/itineraries/:id/apply", s.applyHandler)
	v1.POST("/itineraries/:id/undo", s.undoHandler)
}

// Handler returns the HTTP handler (used by tests and by Start).
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{Addr: addr, Handler: s.echo}
	slog.Info("HTTP server listening", "addr", addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
