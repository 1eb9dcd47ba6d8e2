package handlers

import (
	"net/http"

	"github.com/Project-Sylos/Desktop98/internal/api/models"
	"github.com/Project-Sylos/Desktop98/internal/types"
	"github.com/Project-Sylos/Desktop98/sdk"
)

// SettingsHandler handles theme, screen saver, and wallpaper endpoints
type SettingsHandler struct {
	BaseHandler
	desktop *sdk.Desktop
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(desktop *sdk.Desktop) *SettingsHandler {
	return &SettingsHandler{
		desktop: desktop,
	}
}

// GetSettings handles the get settings endpoint
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, req *http.Request) {
	h.sendSuccess(w, "Settings retrieved successfully", h.desktop.Settings())
}

// SetTheme handles the theme selection endpoint
func (h *SettingsHandler) SetTheme(w http.ResponseWriter, req *http.Request) {
	var request models.SetThemeRequest
	if !h.decode(w, req, &request) {
		return
	}

	if err := h.desktop.SetTheme(request.Theme); err != nil {
		h.sendFailure(w, req, err)
		return
	}

	h.sendSuccess(w, "Theme updated", h.desktop.Theme())
}

// SetScreenSaver handles the screen saver endpoint
func (h *SettingsHandler) SetScreenSaver(w http.ResponseWriter, req *http.Request) {
	var request types.ScreenSaverSettings
	if !h.decode(w, req, &request) {
		return
	}

	if err := h.desktop.SetScreenSaver(request); err != nil {
		h.sendFailure(w, req, err)
		return
	}

	h.sendSuccess(w, "Screen saver updated", h.desktop.Settings().ScreenSaver)
}

// SetWallpaper handles the wallpaper endpoint
func (h *SettingsHandler) SetWallpaper(w http.ResponseWriter, req *http.Request) {
	var request types.Wallpaper
	if !h.decode(w, req, &request) {
		return
	}

	if err := h.desktop.SetWallpaper(request); err != nil {
		h.sendFailure(w, req, err)
		return
	}

	h.sendSuccess(w, "Wallpaper updated", h.desktop.Settings().Wallpaper)
}

// ListThemes handles the themes endpoint
func (h *SettingsHandler) ListThemes(w http.ResponseWriter, req *http.Request) {
	h.sendSuccess(w, "Themes retrieved successfully", h.desktop.Themes())
}

// CurrentTheme handles the selected theme endpoint
func (h *SettingsHandler) CurrentTheme(w http.ResponseWriter, req *http.Request) {
	h.sendSuccess(w, "Theme retrieved successfully", h.desktop.Theme())
}
