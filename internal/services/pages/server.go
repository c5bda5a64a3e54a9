// Package pages hosts the HTTP surface that serves sidebar-and-embed pages.
package pages

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/mrbrightsides/rantai-pages/internal/platform/timeouts"
	"github.com/mrbrightsides/rantai-pages/internal/services/pages/platform/httpx"
	"github.com/mrbrightsides/rantai-pages/internal/services/pages/platform/observability"
	"github.com/mrbrightsides/rantai-pages/internal/services/pages/rendercache"
	"github.com/mrbrightsides/rantai-pages/internal/services/pages/site"
)

// Config defines startup inputs for the pages service.
type Config struct {
	HTTPAddr  string
	Site      *site.Site
	CacheSize int
	Logger    *log.Logger
}

// Server hosts the pages HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler for cfg.Site.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Site == nil {
		return nil, errors.New("site is required")
	}
	renderer, err := NewRenderer(cfg.Site)
	if err != nil {
		return nil, err
	}
	cache, err := rendercache.New(cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	mux := http.NewServeMux()
	registerRoutes(mux, handlers{renderer: renderer, cache: cache})
	return httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.Trace(),
		observability.RequestLogger(logger),
		httpx.AllowMethods(http.MethodGet, http.MethodHead),
	), nil
}

// NewServer validates config and constructs a pages server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose pages handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("pages server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown pages http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve pages http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
