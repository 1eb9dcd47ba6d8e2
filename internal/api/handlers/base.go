package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Project-Sylos/Desktop98/internal/desktop"
	"github.com/Project-Sylos/Desktop98/internal/desktopfs"
	"github.com/Project-Sylos/Desktop98/internal/logging"
	"github.com/Project-Sylos/Desktop98/internal/movable"
	"github.com/Project-Sylos/Desktop98/internal/types"
	"go.uber.org/zap"
)

// BaseHandler provides common functionality for all API handlers
type BaseHandler struct{}

// sendJSON sends a JSON response with the given status code and data
func (h *BaseHandler) sendJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// sendError sends an error response with the given status code and message
func (h *BaseHandler) sendError(w http.ResponseWriter, statusCode int, message string) {
	h.sendJSON(w, statusCode, types.APIResponse{
		Success: false,
		Message: message,
	})
}

// sendSuccess sends a success response with the given data
func (h *BaseHandler) sendSuccess(w http.ResponseWriter, message string, data any) {
	h.sendJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// sendFailure maps a service error to its HTTP status and sends it
func (h *BaseHandler) sendFailure(w http.ResponseWriter, req *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logging.WithContext(req.Context()).Error("request failed", zap.Error(err))
	}
	h.sendError(w, status, err.Error())
}

// decode reads a JSON request body into dest, answering 400 on failure
func (h *BaseHandler) decode(w http.ResponseWriter, req *http.Request, dest any) bool {
	if err := json.NewDecoder(req.Body).Decode(dest); err != nil {
		h.sendError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, desktopfs.ErrNotFound),
		errors.Is(err, movable.ErrNotFound),
		errors.Is(err, movable.ErrUnknownPrompt),
		errors.Is(err, desktop.ErrIconNotFound),
		errors.Is(err, desktop.ErrMenuItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, desktopfs.ErrNotAFile),
		errors.Is(err, desktopfs.ErrNoAction),
		errors.Is(err, movable.ErrInvalidDirection),
		errors.Is(err, movable.ErrInvalidPrompt),
		errors.Is(err, desktop.ErrInvalidSetting):
		return http.StatusBadRequest
	case errors.Is(err, desktop.ErrDuplicateIcon):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
