package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/amaumene/gomoviez/internal/files"
	"github.com/sirupsen/logrus"
)

const maxUploadMemory = 32 << 20 // 32MB buffered in memory, rest spills to disk

// UploadHandler accepts multipart uploads and hands them to the file store.
type UploadHandler struct {
	store  *files.Store
	logger *logrus.Logger
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(store *files.Store, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		store:  store,
		logger: logger,
	}
}

// UploadResponse is the acknowledgement for a stored upload.
type UploadResponse struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// File handles generic uploads (form field "file").
func (h *UploadHandler) File(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "file", "")
}

// Poster handles poster image uploads (form field "poster").
func (h *UploadHandler) Poster(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "poster", files.KindPoster)
}

// Movie handles movie file uploads (form field "movie").
func (h *UploadHandler) Movie(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "movie", files.KindMovie)
}

func (h *UploadHandler) handle(w http.ResponseWriter, r *http.Request, field, kind string) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeJSONError(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	info, err := h.store.Save(kind, header.Filename, file)
	if err != nil {
		h.logger.WithError(err).WithField("filename", header.Filename).Error("Upload failed")
		writeJSONError(w, http.StatusInternalServerError, "Upload failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(UploadResponse{
		Success:  true,
		URL:      info.URL,
		Filename: info.Name,
		Size:     info.Size,
	})
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
