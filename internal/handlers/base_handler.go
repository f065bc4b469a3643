package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/learnlife319/app/internal/auth/middleware"
	"github.com/learnlife319/app/internal/services"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string                `json:"error"`
	Details []services.FieldError `json:"details,omitempty"`
}

// BaseHandler provides common handler functionality
type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps a service error to its HTTP status.
// Unexpected errors are logged with msg and answered with a generic 500.
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, err error, msg string, fields ...zap.Field) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		h.respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "invalid request",
			Details: validationErr.Fields,
		})
		return
	}

	var status int
	switch {
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrConflict):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrExternalService):
		status = http.StatusInternalServerError
	default:
		h.logger.Error(msg, append(fields, zap.Error(err))...)
		h.respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	message := err.Error()
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		message = svcErr.Message
	}
	h.respondError(w, status, message)
}

// decodeJSON decodes the request body into dst, answering 400 on malformed JSON
func (h *BaseHandler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// userID returns the authenticated user id, answering 401 if there is none
func (h *BaseHandler) userID(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return 0, false
	}
	return userID, true
}

// pathID parses a positive integer URL parameter, answering 400 if it is not one
func (h *BaseHandler) pathID(w http.ResponseWriter, r *http.Request, param string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil || id < 1 {
		h.respondError(w, http.StatusBadRequest, "invalid "+param)
		return 0, false
	}
	return id, true
}
