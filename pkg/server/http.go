// Package server builds the HTTP server and router used by the report endpoint.
package server

import (
	"fmt"
	"log/slog"
	"net/http"
	_ "net/http/pprof" // registers the /debug/pprof handlers on http.DefaultServeMux
	"time"

	"github.com/abgdnv/storekeeper/pkg/config"
	"github.com/abgdnv/storekeeper/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewHTTPServer creates and configures a new HTTP server instance.
func NewHTTPServer(cfg config.HTTPConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.Timeout.Read,
		WriteTimeout:      cfg.Timeout.Write,
		IdleTimeout:       cfg.Timeout.Idle,
		ReadHeaderTimeout: cfg.Timeout.ReadHeader,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}
}

// NewChiRouter creates a new Chi router with request ID injection, structured logging and recovery.
// An incoming X-Request-Id header is honoured by chi's RequestID middleware.
func NewChiRouter(logger *slog.Logger) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(web.RequestIDInjector)
	mux.Use(web.StructuredLogger(logger))
	mux.Use(web.Recoverer(logger))
	return mux
}

// NewPProfServer creates the profiling server. It serves http.DefaultServeMux, where the pprof handlers live.
func NewPProfServer(cfg config.PProfConfig) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           http.DefaultServeMux,
		ReadHeaderTimeout: 2 * time.Second,
	}
}
