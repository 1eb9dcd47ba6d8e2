package handlers

import (
	"fmt"
	"net/http"

	"github.com/Project-Sylos/Desktop98/internal/api/models"
	"github.com/Project-Sylos/Desktop98/internal/movable"
	"github.com/Project-Sylos/Desktop98/internal/types"
	"github.com/Project-Sylos/Desktop98/sdk"
	"github.com/go-chi/chi/v5"
)

// WindowHandler handles window endpoints
type WindowHandler struct {
	movableHandler[*types.Window]
	desktop *sdk.Desktop
}

// NewWindowHandler creates a new window handler
func NewWindowHandler(desktop *sdk.Desktop) *WindowHandler {
	return &WindowHandler{
		movableHandler: newMovableHandler("Windows", desktop.Windows().Registry, desktop.WindowController()),
		desktop:        desktop,
	}
}

// Open handles the open window endpoint
func (h *WindowHandler) Open(w http.ResponseWriter, req *http.Request) {
	var request models.OpenWindowRequest
	if !h.decode(w, req, &request) {
		return
	}

	if request.Width <= 0 || request.Height <= 0 {
		h.sendError(w, http.StatusBadRequest, "width and height must be positive")
		return
	}

	win := request.LaunchSpec.Window()
	win.Minimized = request.Minimized
	opened := h.desktop.OpenWindow(win)

	h.sendJSON(w, http.StatusCreated, types.APIResponse{
		Success: true,
		Message: "Window opened successfully",
		Data:    opened,
	})
}

// Minimize handles the minimize endpoint
func (h *WindowHandler) Minimize(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	if !h.desktop.Windows().Minimize(id) {
		h.sendError(w, http.StatusNotFound, fmt.Sprintf("%v: %s", movable.ErrNotFound, id))
		return
	}
	h.respondEntity(w, id, "Window minimized")
}

// Restore handles the restore endpoint
func (h *WindowHandler) Restore(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	if !h.desktop.Windows().Restore(id) {
		h.sendError(w, http.StatusNotFound, fmt.Sprintf("%v: %s", movable.ErrNotFound, id))
		return
	}
	h.respondEntity(w, id, "Window restored")
}

// Inputs handles the content inputs endpoint
func (h *WindowHandler) Inputs(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")

	win, ok := h.desktop.Windows().Get(id)
	if !ok {
		h.sendError(w, http.StatusNotFound, fmt.Sprintf("%v: %s", movable.ErrNotFound, id))
		return
	}
	h.sendSuccess(w, "Inputs retrieved successfully", win.ContentInputs())
}
