package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/amaumene/gomoviez/internal/models"
	"github.com/amaumene/gomoviez/internal/repository"
	"github.com/sirupsen/logrus"
)

// MoviesHandler serves the movie collection document.
type MoviesHandler struct {
	repo   *repository.Service
	logger *logrus.Logger
}

// NewMoviesHandler creates a new movies handler
func NewMoviesHandler(repo *repository.Service, logger *logrus.Logger) *MoviesHandler {
	return &MoviesHandler{
		repo:   repo,
		logger: logger,
	}
}

// List returns the full collection.
func (h *MoviesHandler) List(w http.ResponseWriter, r *http.Request) {
	movies := h.repo.LoadMovies()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(movies)
}

// Replace overwrites the whole stored collection with the request body.
func (h *MoviesHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var movies []models.Movie
	if err := json.NewDecoder(r.Body).Decode(&movies); err != nil {
		h.logger.WithError(err).Warn("Rejected malformed movies payload")
		http.Error(w, "Invalid movies data", http.StatusBadRequest)
		return
	}

	if err := h.repo.SaveMovies(movies); err != nil {
		h.logger.WithError(err).Error("Failed to save movies")
		http.Error(w, "Error writing movies data", http.StatusInternalServerError)
		return
	}

	w.Write([]byte("Movies updated"))
}
