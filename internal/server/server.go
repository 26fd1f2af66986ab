// Package server provides the HTTP server and routing for the copilot
// decision service.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/aristath/copilot/internal/config"
	"github.com/aristath/copilot/internal/events"
	ledgerhandlers "github.com/aristath/copilot/internal/modules/ledger/handlers"
	offershandlers "github.com/aristath/copilot/internal/modules/offers/handlers"
	settingshandlers "github.com/aristath/copilot/internal/modules/settings/handlers"
	"github.com/aristath/copilot/internal/pipeline"
)

// Config holds server configuration
type Config struct {
	Log              zerolog.Logger
	Cfg              *config.Config
	Pipeline         *pipeline.Service
	Bus              *events.Bus
	LedgerHandlers   *ledgerhandlers.Handler
	SettingsHandlers *settingshandlers.Handler
	OffersHandlers   *offershandlers.Handler
	SystemHandlers   *SystemHandlers
}

// Server represents the HTTP server
type Server struct {
	router   *chi.Mux
	server   *http.Server
	log      zerolog.Logger
	cfg      *config.Config
	pipeline *pipeline.Service
	stream   *EventsStreamHandler
	handlers Config
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		log:      cfg.Log.With().Str("component", "server").Logger(),
		cfg:      cfg.Cfg,
		pipeline: cfg.Pipeline,
		stream:   NewEventsStreamHandler(cfg.Bus, cfg.Log),
		handlers: cfg,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// setupMiddleware configures the middleware stack
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)

	// CORS: the overlay client runs on the device, keep it permissive
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	s.router.Route("/api", func(r chi.Router) {
		// Ingest endpoints for the three text producers
		r.Post("/text", s.HandleIngestText)
		r.Get("/text/ws", s.HandleIngestWS)

		// Live verdict feed for the overlay renderer
		r.Get("/events/stream", s.stream.ServeHTTP)

		// Module routes
		s.handlers.LedgerHandlers.RegisterRoutes(r)
		s.handlers.SettingsHandlers.RegisterRoutes(r)
		s.handlers.OffersHandlers.RegisterRoutes(r)

		// Ops surface
		r.Get("/system/status", s.handlers.SystemHandlers.HandleStatus)
	})
}

// Start begins listening for HTTP requests. Blocks until shutdown.
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
