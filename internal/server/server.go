// Package server exposes the analysis pipeline and gallery over HTTP.
//
// The server is a thin preview surface: desktop and editor integrations
// post manuscript text and get back rendered artifacts, and the gallery
// endpoints persist finished clouds. All heavy lifting stays in
// pkg/pipeline so CLI and server behave identically.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/gallery"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/pipeline"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/tips"
)

// Config assembles server dependencies.
type Config struct {
	// Addr is the listen address, e.g. "localhost:8787".
	Addr string

	// Runner executes the analysis pipeline. Required.
	Runner *pipeline.Runner

	// Gallery persists saved clouds. Nil disables gallery endpoints
	// with 503 responses.
	Gallery gallery.Store

	// Tips is the tips catalog served to clients. Zero value falls back
	// to the builtin catalog.
	Tips tips.Catalog

	// Logger for request and lifecycle logging. Nil uses the default.
	Logger *log.Logger

	// RequestTimeout bounds each request. Zero means 30 seconds.
	RequestTimeout time.Duration
}

// Server handles HTTP requests for analysis and the gallery.
type Server struct {
	cfg    Config
	logger *log.Logger
}

// New creates a server from cfg.
func New(cfg Config) (*Server, error) {
	if cfg.Runner == nil {
		return nil, errors.New("server: runner is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if len(cfg.Tips.Tips) == 0 {
		cfg.Tips = tips.Builtin()
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	return &Server{cfg: cfg, logger: cfg.Logger}, nil
}

// Router builds the HTTP routing tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.RequestTimeout))

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/cloud", s.handleCloud)
		r.Get("/tips", s.handleTips)

		r.Route("/gallery", func(r chi.Router) {
			r.Get("/", s.handleGalleryList)
			r.Post("/", s.handleGallerySave)
			r.Get("/{id}", s.handleGalleryGet)
			r.Delete("/{id}", s.handleGalleryDelete)
		})
	})

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.logger.Info("server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// requestLogger logs one line per request with latency and status.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
