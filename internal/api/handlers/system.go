package handlers

import (
	"fmt"
	"net/http"

	"github.com/Project-Sylos/Desktop98/sdk"
)

// SystemHandler handles system-related endpoints
type SystemHandler struct {
	BaseHandler
	desktop *sdk.Desktop
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(desktop *sdk.Desktop) *SystemHandler {
	return &SystemHandler{
		desktop: desktop,
	}
}

// Reset handles the reset endpoint
func (h *SystemHandler) Reset(w http.ResponseWriter, req *http.Request) {
	if err := h.desktop.ResetState(); err != nil {
		h.sendError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to reset desktop: %v", err))
		return
	}

	h.sendSuccess(w, "Desktop reset successfully", nil)
}

// GetState handles the persisted state endpoint
func (h *SystemHandler) GetState(w http.ResponseWriter, req *http.Request) {
	h.sendSuccess(w, "State retrieved successfully", h.desktop.State())
}

// GetConfig handles the get config endpoint
func (h *SystemHandler) GetConfig(w http.ResponseWriter, req *http.Request) {
	config := h.desktop.GetConfig()
	h.sendSuccess(w, "Config retrieved successfully", config)
}

// GetStats handles the get stats endpoint
func (h *SystemHandler) GetStats(w http.ResponseWriter, req *http.Request) {
	fsys := h.desktop.FileSystem()
	index := fsys.Index()

	stats := map[string]any{
		"top_level_entries":   len(fsys.Forest()),
		"recycle_bin_entries": len(fsys.RecycleBin()),
		"indexed_entries":     index.Len(),
		"sensitive_buckets":   index.BucketCount(true),
		"insensitive_buckets": index.BucketCount(false),
		"open_windows":        h.desktop.Windows().Len(),
		"open_dialogs":        h.desktop.Dialogs().Len(),
		"pending_prompts":     len(h.desktop.Prompts().Pending()),
	}

	h.sendSuccess(w, "Stats retrieved successfully", stats)
}
