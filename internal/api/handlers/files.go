package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/amaumene/gomoviez/internal/files"
	"github.com/sirupsen/logrus"
)

// FilesHandler lists and deletes stored uploads.
type FilesHandler struct {
	store  *files.Store
	logger *logrus.Logger
}

// NewFilesHandler creates a new files handler
func NewFilesHandler(store *files.Store, logger *logrus.Logger) *FilesHandler {
	return &FilesHandler{
		store:  store,
		logger: logger,
	}
}

// List returns every stored upload.
func (h *FilesHandler) List(w http.ResponseWriter, r *http.Request) {
	infos, err := h.store.List()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list files")
		writeJSONError(w, http.StatusInternalServerError, "Failed to list files")
		return
	}
	if infos == nil {
		infos = []files.FileInfo{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]files.FileInfo{"files": infos})
}

// Delete removes one stored upload by name.
func (h *FilesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if err := h.store.Delete(name); err != nil {
		h.logger.WithError(err).WithField("file", name).Error("Failed to delete file")
		writeJSONError(w, http.StatusInternalServerError, "Failed to delete file")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "File deleted"})
}
