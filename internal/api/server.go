package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/amaumene/gomoviez/internal/api/handlers"
	"github.com/amaumene/gomoviez/internal/api/middleware"
	"github.com/amaumene/gomoviez/internal/config"
	"github.com/amaumene/gomoviez/internal/files"
	"github.com/amaumene/gomoviez/internal/repository"
	"github.com/sirupsen/logrus"
)

// Server represents the HTTP server
type Server struct {
	server *http.Server
	repo   *repository.Service
	store  *files.Store
	logger *logrus.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, repo *repository.Service, store *files.Store, logger *logrus.Logger) *Server {
	s := &Server{
		repo:   repo,
		store:  store,
		logger: logger,
	}

	mux := http.NewServeMux()
	s.setupRoutes(mux, cfg)

	handler := middleware.AdminAuth(mux, cfg.AdminToken, logger)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(handler, logger)

	s.server = &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(mux *http.ServeMux, cfg *config.Config) {
	// Catalog documents
	moviesHandler := handlers.NewMoviesHandler(s.repo, s.logger)
	mux.HandleFunc("GET /api/movies", moviesHandler.List)
	mux.HandleFunc("POST /api/movies", moviesHandler.Replace)

	bannerHandler := handlers.NewBannerHandler(s.repo, s.logger)
	mux.HandleFunc("GET /api/banner", bannerHandler.Get)
	mux.HandleFunc("POST /api/banner", bannerHandler.Save)

	statsHandler := handlers.NewStatsHandler(s.repo, s.logger)
	mux.HandleFunc("GET /api/stats", statsHandler.Get)
	mux.HandleFunc("POST /api/stats", statsHandler.Save)

	// Counters
	countersHandler := handlers.NewCountersHandler(s.repo, s.logger)
	mux.HandleFunc("POST /api/movies/{id}/increment-views", countersHandler.IncrementViews)
	mux.HandleFunc("POST /api/movies/{id}/increment-downloads", countersHandler.IncrementDownloads)

	// Health check
	healthHandler := handlers.NewHealthHandler(cfg, s.logger)
	mux.HandleFunc("GET /api/health", healthHandler.ServeHTTP)

	// Uploaded files
	uploadHandler := handlers.NewUploadHandler(s.store, s.logger)
	mux.HandleFunc("POST /api/upload", uploadHandler.File)
	mux.HandleFunc("POST /api/upload/poster", uploadHandler.Poster)
	mux.HandleFunc("POST /api/upload/movie", uploadHandler.Movie)

	filesHandler := handlers.NewFilesHandler(s.store, s.logger)
	mux.HandleFunc("GET /api/files", filesHandler.List)
	mux.HandleFunc("DELETE /api/files/{name...}", filesHandler.Delete)

	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.store.Dir()))))
}

// Handler returns the fully wrapped handler, used by the tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	s.logger.WithField("port", s.server.Addr).Info("Starting HTTP server")

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}
