package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Project-Sylos/Desktop98/internal/logging"
	"github.com/Project-Sylos/Desktop98/internal/types"
	"github.com/Project-Sylos/Desktop98/sdk"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Server represents the HTTP API server
type Server struct {
	router     *chi.Mux
	desktop    *sdk.Desktop
	config     *types.APIConfig
	httpServer *http.Server
	cancel     context.CancelFunc
}

// NewServer creates a new API server
func NewServer(desktop *sdk.Desktop, config *types.APIConfig) *Server {
	router := NewRouter(desktop).SetupRoutes()
	addr := fmt.Sprintf("%s:%d", config.Host, config.Port)

	// Request contexts derive from baseCtx, which Shutdown cancels so
	// streams and prompt waits return instead of holding the server open.
	baseCtx, cancel := context.WithCancel(context.Background())
	s := &Server{
		router:  router,
		desktop: desktop,
		config:  config,
		cancel:  cancel,
		// No write timeout: snapshot streams stay open; other routes are
		// bounded by the router's timeout middleware.
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       15 * time.Second,
			IdleTimeout:       60 * time.Second,
			BaseContext:       func(net.Listener) context.Context { return baseCtx },
		},
	}
	s.httpServer.RegisterOnShutdown(cancel)
	return s
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start serves HTTP until Shutdown is called
func (s *Server) Start() error {
	logging.L().Info("starting Desktop98 API server",
		zap.String("addr", s.httpServer.Addr),
		zap.String("api", fmt.Sprintf("http://%s/api/v1/", s.httpServer.Addr)),
		zap.String("health", fmt.Sprintf("http://%s/health", s.httpServer.Addr)),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// GetRouter returns the configured router
func (s *Server) GetRouter() *chi.Mux {
	return s.router
}

// Shutdown stops accepting requests, waits for in-flight ones, then closes the desktop
func (s *Server) Shutdown(ctx context.Context) error {
	defer s.cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	if err := s.desktop.Close(); err != nil {
		return fmt.Errorf("failed to close desktop: %w", err)
	}
	return nil
}
