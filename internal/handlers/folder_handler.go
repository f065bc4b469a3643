package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnlife319/app/internal/models"
	"go.uber.org/zap"
)

// FolderService is the interface that wraps methods for folders business logic.
type FolderService interface {
	// Method Create creates a folder owned by "userID".
	//
	// Public folders may only be created by admins, otherwise services.ErrPublicFolderAdmin is returned.
	Create(ctx context.Context, userID int, req *models.CreateFolderRequest) (*models.Folder, error)
	// Method ListByType returns folders of "folderType" (passage or vocabulary) owned by "userID" or public.
	ListByType(ctx context.Context, userID int, folderType string) ([]models.Folder, error)
}

// FolderHandler handles HTTP requests for folders
type FolderHandler struct {
	BaseHandler
	service FolderService
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(svc FolderService, logger *zap.Logger) *FolderHandler {
	return &FolderHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all folder handler routes
func (h *FolderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/folders", h.Create)
	r.Get("/folders/{type}", h.ListByType)
}

// Create handles POST /api/folders
// @Summary Create folder
// @Tags folders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateFolderRequest true "Folder"
// @Success 201 {object} models.Folder
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Only admins can create public folders"
// @Router /folders [post]
func (h *FolderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.CreateFolderRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	folder, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to create folder", zap.Int("userID", userID))
		return
	}

	h.respondJSON(w, http.StatusCreated, folder)
}

// ListByType handles GET /api/folders/{type}
// @Summary List folders
// @Description Folders of the given type owned by the caller or public
// @Tags folders
// @Produce json
// @Security ApiKeyAuth
// @Param type path string true "passage or vocabulary"
// @Success 200 {array} models.Folder
// @Failure 400 {object} ErrorResponse
// @Router /folders/{type} [get]
func (h *FolderHandler) ListByType(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	folders, err := h.service.ListByType(r.Context(), userID, chi.URLParam(r, "type"))
	if err != nil {
		h.respondServiceError(w, err, "failed to list folders", zap.Int("userID", userID))
		return
	}

	h.respondJSON(w, http.StatusOK, folders)
}
