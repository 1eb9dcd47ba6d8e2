package handlers

import (
	"net/http"

	"github.com/Project-Sylos/Desktop98/internal/api/models"
	"github.com/Project-Sylos/Desktop98/internal/types"
	"github.com/Project-Sylos/Desktop98/sdk"
	"github.com/go-chi/chi/v5"
)

// DesktopHandler handles icon, start menu, and taskbar endpoints
type DesktopHandler struct {
	BaseHandler
	desktop *sdk.Desktop
}

// NewDesktopHandler creates a new desktop handler
func NewDesktopHandler(desktop *sdk.Desktop) *DesktopHandler {
	return &DesktopHandler{
		desktop: desktop,
	}
}

// ListIcons handles the list icons endpoint
func (h *DesktopHandler) ListIcons(w http.ResponseWriter, req *http.Request) {
	h.sendSuccess(w, "Icons retrieved successfully", h.desktop.Icons())
}

// AddIcon handles the add icon endpoint
func (h *DesktopHandler) AddIcon(w http.ResponseWriter, req *http.Request) {
	var icon types.DesktopIcon
	if !h.decode(w, req, &icon) {
		return
	}

	added, err := h.desktop.AddIcon(icon)
	if err != nil {
		h.sendFailure(w, req, err)
		return
	}

	h.sendJSON(w, http.StatusCreated, types.APIResponse{
		Success: true,
		Message: "Icon added successfully",
		Data:    added,
	})
}

// MoveIcon handles the icon position endpoint
func (h *DesktopHandler) MoveIcon(w http.ResponseWriter, req *http.Request) {
	var request models.PositionRequest
	if !h.decode(w, req, &request) {
		return
	}

	icon, err := h.desktop.MoveIcon(chi.URLParam(req, "id"), request.X, request.Y)
	if err != nil {
		h.sendFailure(w, req, err)
		return
	}

	h.sendSuccess(w, "Icon moved successfully", icon)
}

// RemoveIcon handles the delete icon endpoint
func (h *DesktopHandler) RemoveIcon(w http.ResponseWriter, req *http.Request) {
	if err := h.desktop.RemoveIcon(chi.URLParam(req, "id")); err != nil {
		h.sendFailure(w, req, err)
		return
	}

	h.sendSuccess(w, "Icon removed successfully", nil)
}

// OpenIcon handles the endpoint that launches an icon
func (h *DesktopHandler) OpenIcon(w http.ResponseWriter, req *http.Request) {
	win, err := h.desktop.OpenIcon(chi.URLParam(req, "id"))
	if err != nil {
		h.sendFailure(w, req, err)
		return
	}

	h.sendSuccess(w, "Icon opened successfully", win)
}

// ListStartMenu handles the start menu endpoint
func (h *DesktopHandler) ListStartMenu(w http.ResponseWriter, req *http.Request) {
	h.sendSuccess(w, "Start menu retrieved successfully", h.desktop.StartMenu())
}

// OpenStartMenuItem handles the endpoint that runs a start menu item
func (h *DesktopHandler) OpenStartMenuItem(w http.ResponseWriter, req *http.Request) {
	win, err := h.desktop.OpenStartMenuItem(chi.URLParam(req, "id"))
	if err != nil {
		h.sendFailure(w, req, err)
		return
	}
	if win == nil {
		h.sendSuccess(w, "Nothing to open", nil)
		return
	}

	h.sendSuccess(w, "Start menu item opened", win)
}

// GetTaskbar handles the taskbar endpoint
func (h *DesktopHandler) GetTaskbar(w http.ResponseWriter, req *http.Request) {
	h.sendSuccess(w, "Taskbar retrieved successfully", h.desktop.Taskbar())
}

// SetViewport handles the viewport endpoint
func (h *DesktopHandler) SetViewport(w http.ResponseWriter, req *http.Request) {
	var request models.SizeRequest
	if !h.decode(w, req, &request) {
		return
	}

	if err := h.desktop.SetViewport(request.Width, request.Height); err != nil {
		h.sendFailure(w, req, err)
		return
	}

	h.sendSuccess(w, "Viewport updated", request)
}
