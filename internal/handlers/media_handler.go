package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/learnlife319/app/internal/middlewares"
	"go.uber.org/zap"
)

// MediaService is the interface that wraps methods for uploaded media files.
type MediaService interface {
	// Method UploadAudio stores the file and returns the URL it is served from.
	//
	// Only .webm, .mp3, .wav, .ogg and .m4a files are accepted.
	UploadAudio(ctx context.Context, userID int, file io.Reader, filename string) (string, error)
	// Method OpenAudio opens a stored audio file by the name generated on upload.
	OpenAudio(ctx context.Context, name string) (*os.File, error)
}

// UploadResponse is returned after a successful upload
type UploadResponse struct {
	URL string `json:"url"`
}

// MediaHandler handles audio uploads and downloads
type MediaHandler struct {
	BaseHandler
	service MediaService
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(svc MediaService, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all media handler routes.
// Uploads get their own body limit, so the router must not apply the default one to this handler.
func (h *MediaHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware, middlewares.RequestSizeLimitMiddleware(middlewares.AudioMaxRequestSize)).
		Post("/media/audio", h.UploadAudio)
	r.Get("/media/audio/{name}", h.GetAudio)
}

// UploadAudio handles POST /api/media/audio
// @Summary Upload audio
// @Description Store a speaking answer or lesson recording
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param audio formData file true "Audio file"
// @Success 201 {object} UploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Router /media/audio [post]
func (h *MediaHandler) UploadAudio(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		h.respondError(w, http.StatusBadRequest, "failed to parse request")
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "audio file is required")
		return
	}
	defer file.Close()

	url, err := h.service.UploadAudio(r.Context(), userID, file, header.Filename)
	if err != nil {
		h.respondServiceError(w, err, "failed to upload audio", zap.Int("userID", userID))
		return
	}

	h.respondJSON(w, http.StatusCreated, UploadResponse{URL: url})
}

// GetAudio handles GET /api/media/audio/{name}
// @Summary Download audio
// @Tags media
// @Produce octet-stream
// @Param name path string true "File name returned by the upload"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /media/audio/{name} [get]
func (h *MediaHandler) GetAudio(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	f, err := h.service.OpenAudio(r.Context(), name)
	if err != nil {
		h.respondServiceError(w, err, "failed to open audio", zap.String("name", name))
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		h.logger.Error("failed to stat audio file", zap.String("name", name), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	http.ServeContent(w, r, name, info.ModTime(), f)
}
