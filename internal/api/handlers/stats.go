package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/amaumene/gomoviez/internal/models"
	"github.com/amaumene/gomoviez/internal/repository"
	"github.com/sirupsen/logrus"
)

// StatsHandler serves the singleton aggregate counters document.
type StatsHandler struct {
	repo   *repository.Service
	logger *logrus.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(repo *repository.Service, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		repo:   repo,
		logger: logger,
	}
}

// Get returns the current aggregate counters.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats := h.repo.LoadStats()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// Save replaces the counters wholesale. Saving zeros is how the admin
// resets them.
func (h *StatsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var stats models.Stats
	if err := json.NewDecoder(r.Body).Decode(&stats); err != nil {
		h.logger.WithError(err).Warn("Rejected malformed stats payload")
		http.Error(w, "Invalid stats data", http.StatusBadRequest)
		return
	}

	if err := h.repo.SaveStats(stats); err != nil {
		h.logger.WithError(err).Error("Failed to save stats")
		http.Error(w, "Error writing stats data", http.StatusInternalServerError)
		return
	}

	w.Write([]byte("Stats updated"))
}
