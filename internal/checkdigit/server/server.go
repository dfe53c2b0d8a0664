package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/25x8/checkdigit/internal/checkdigit/config"
	"github.com/25x8/checkdigit/internal/checkdigit/handlers"
	"github.com/25x8/checkdigit/internal/checkdigit/i18n"
	"github.com/25x8/checkdigit/internal/checkdigit/middleware"
	"github.com/25x8/checkdigit/internal/checkdigit/service"
)

// Server represents the HTTP server
type Server struct {
	cfg        *config.Config
	log        zerolog.Logger
	toolkit    *service.Toolkit
	handler    *handlers.Handler
	router     chi.Router
	httpServer *http.Server
}

// NewServer creates a new server
func NewServer(cfg *config.Config, log zerolog.Logger) *Server {
	toolkit := service.NewToolkit(cfg.MaxCount)
	handler := handlers.NewHandler(toolkit)

	s := &Server{
		cfg:     cfg,
		log:     log,
		toolkit: toolkit,
		handler: handler,
	}
	s.router = s.routes()
	return s
}

// Handler returns the router, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	defaultLang, _ := i18n.ParseTag(s.cfg.DefaultLang)

	// Create router
	r := chi.NewRouter()

	// Basic middleware
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(s.log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(middleware.LangMiddleware(&middleware.LangConfig{Default: defaultLang}))

	r.Get("/health", s.handler.Health)

	// Form front end
	r.Get("/", s.handler.Index)
	r.Post("/", s.handler.Submit)

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.Post("/parse", s.handler.ParseExpression)
		r.Get("/lcg/defaults", s.handler.GetDefaults)
		r.Post("/lcg", s.handler.GenerateLCG)
		r.Post("/validate/{kind}", s.handler.ValidateIdentifier)
	})

	return r
}

// Run starts the HTTP server
func (s *Server) Run() error {
	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:              s.cfg.RunAddress,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server
	s.log.Info().Str("address", s.cfg.RunAddress).Msg("starting server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	// Shutdown HTTP server
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return err
		}
	}
	return nil
}
