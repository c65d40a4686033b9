package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/amaumene/gomoviez/internal/repository"
	"github.com/sirupsen/logrus"
)

// CountersHandler serves the per-movie view and download counters.
type CountersHandler struct {
	repo   *repository.Service
	logger *logrus.Logger
}

// NewCountersHandler creates a new counters handler
func NewCountersHandler(repo *repository.Service, logger *logrus.Logger) *CountersHandler {
	return &CountersHandler{
		repo:   repo,
		logger: logger,
	}
}

// IncrementViews bumps one movie's view counter.
func (h *CountersHandler) IncrementViews(w http.ResponseWriter, r *http.Request) {
	h.increment(w, r, h.repo.IncrementViews, "Views incremented", "Error updating views")
}

// IncrementDownloads bumps one movie's download counter.
func (h *CountersHandler) IncrementDownloads(w http.ResponseWriter, r *http.Request) {
	h.increment(w, r, h.repo.IncrementDownloads, "Downloads incremented", "Error updating downloads")
}

func (h *CountersHandler) increment(w http.ResponseWriter, r *http.Request, bump func(int64) error, ok, failed string) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Movie not found", http.StatusNotFound)
		return
	}

	if err := bump(id); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			http.Error(w, "Movie not found", http.StatusNotFound)
			return
		}
		h.logger.WithError(err).WithField("movie_id", id).Error("Failed to increment counter")
		http.Error(w, failed, http.StatusInternalServerError)
		return
	}

	w.Write([]byte(ok))
}
