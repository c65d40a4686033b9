package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/amaumene/gomoviez/internal/config"
	"github.com/sirupsen/logrus"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{cfg: cfg, logger: logger}
}

// HealthResponse reports liveness plus the effective backend configuration.
type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
	Database    string `json:"database"`
	Uploads     bool   `json:"uploads"`
	AdminGuard  bool   `json:"adminGuard"`
}

// ServeHTTP handles the health check endpoint
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:      "OK",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: h.cfg.Environment,
		Database:    h.cfg.DatabaseType,
		Uploads:     h.cfg.UploadDir != "",
		AdminGuard:  h.cfg.AdminToken != "",
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
