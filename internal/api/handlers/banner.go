package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/amaumene/gomoviez/internal/models"
	"github.com/amaumene/gomoviez/internal/repository"
	"github.com/sirupsen/logrus"
)

// BannerHandler serves the singleton banner document.
type BannerHandler struct {
	repo   *repository.Service
	logger *logrus.Logger
}

// NewBannerHandler creates a new banner handler
func NewBannerHandler(repo *repository.Service, logger *logrus.Logger) *BannerHandler {
	return &BannerHandler{
		repo:   repo,
		logger: logger,
	}
}

// Get returns the current banner, falling back to the default.
func (h *BannerHandler) Get(w http.ResponseWriter, r *http.Request) {
	banner := h.repo.LoadBanner()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(banner)
}

// Save replaces the banner wholesale.
func (h *BannerHandler) Save(w http.ResponseWriter, r *http.Request) {
	var banner models.Banner
	if err := json.NewDecoder(r.Body).Decode(&banner); err != nil {
		h.logger.WithError(err).Warn("Rejected malformed banner payload")
		http.Error(w, "Invalid banner data", http.StatusBadRequest)
		return
	}

	if err := h.repo.SaveBanner(banner); err != nil {
		h.logger.WithError(err).Error("Failed to save banner")
		http.Error(w, "Error writing banner data", http.StatusInternalServerError)
		return
	}

	w.Write([]byte("Banner updated"))
}
