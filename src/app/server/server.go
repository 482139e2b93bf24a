// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jokesapi/src/app/http/docs"
	"jokesapi/src/app/http/handler"
	"jokesapi/src/app/http/response"
	"jokesapi/src/app/middleware"
	"jokesapi/src/core/ports"
	"jokesapi/src/core/usecase"
	"jokesapi/src/infra/config"
	"jokesapi/src/infra/metrics"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	// Handlers
	healthHandler *handler.HealthHandler
	jokeHandler   *handler.JokeHandler
	docsHandler   *docs.Handler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, repo ports.JokeRepository) (*Server, error) {
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Create services
	healthService := usecase.NewHealthService(log, map[string]ports.ExternalService{
		"store": repo,
	})
	jokeService := usecase.NewJokeService(repo, log,
		usecase.WithStrictNotFound(cfg.API.StrictNotFound),
	)

	s := &Server{
		cfg:           cfg,
		log:           log,
		router:        router,
		healthHandler: handler.NewHealthHandler(healthService),
		jokeHandler: handler.NewJokeHandler(jokeService, response.Policy{
			Typed: cfg.API.TypedErrorStatus,
		}),
	}

	routes := s.jokeRoutes()
	ops := make([]docs.Operation, 0, len(routes))
	for _, r := range routes {
		ops = append(ops, r.doc)
	}
	docsHandler, err := docs.NewHandler(docs.Build(docInfo, cfg.API.DocsServerURL, ops))
	if err != nil {
		return nil, fmt.Errorf("failed to build api docs: %w", err)
	}
	s.docsHandler = docsHandler

	s.setupMiddleware()
	s.setupRoutes(routes)
	s.setupHTTPServer()

	return s, nil
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS(s.cfg.API.CORSAllowedOrigins))
	s.router.Use(middleware.Metrics())
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes(routes []route) {
	// Health check endpoints
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)
	s.router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// API documentation
	s.router.GET("/docs", s.docsHandler.UI)
	s.router.GET("/docs/openapi.json", s.docsHandler.JSON)
	s.router.GET("/docs/openapi.yaml", s.docsHandler.YAML)

	for _, r := range routes {
		s.router.Handle(r.doc.Method, r.doc.Path, r.handler)
	}

	// Handle 404
	s.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, middleware.GetRequestID(c))
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run serves until ctx is done, then shuts down gracefully. main cancels
// ctx on SIGINT or SIGTERM.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Server running", "addr", s.cfg.Server.Addr())
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.log.Info("shutdown requested", "cause", context.Cause(ctx))
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router exposes the engine to httptest.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// WaitForReady polls /health until it answers 200 or timeout passes.
func (s *Server) WaitForReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(fmt.Sprintf("http://%s/health", s.cfg.Server.Addr()))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("server not ready after %v", timeout)
}
