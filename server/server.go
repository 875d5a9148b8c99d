// Package server exposes the scrape and storage operations over HTTP using
// the same request/response messages a browser popup sends.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/jobsnap"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = "127.0.0.1:8080"

// ShutdownTimeout bounds graceful shutdown after the serve context ends.
const ShutdownTimeout = 10 * time.Second

// Server routes HTTP requests to jobsnap services.
type Server struct {
	router  *chi.Mux
	scraper jobsnap.JobScraper
	jobs    jobsnap.JobService
	resumes jobsnap.ResumeService
	logger  *slog.Logger
}

// NewServer creates a new Server. A nil logger discards request logs.
func NewServer(scraper jobsnap.JobScraper, jobs jobsnap.JobService, resumes jobsnap.ResumeService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		router:  chi.NewRouter(),
		scraper: scraper,
		jobs:    jobs,
		resumes: resumes,
		logger:  logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.logRequests)
	// Popups call from chrome-extension:// and moz-extension:// origins.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	s.router.Get("/health", s.handleHealth)
	s.router.Post("/scrapeJob", s.handleScrapeJob)
	s.router.Post("/captureSelection", s.handleCaptureSelection)
	s.router.Get("/jobs", s.handleListJobs)
	s.router.Post("/jobs", s.handleSaveJob)
	s.router.Get("/resumes", s.handleListResumes)
	s.router.Post("/resumes", s.handleSaveResume)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		begin := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(begin),
		)
	})
}
