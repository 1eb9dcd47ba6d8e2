package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Project-Sylos/Desktop98/internal/api/models"
	"github.com/Project-Sylos/Desktop98/internal/movable"
	"github.com/Project-Sylos/Desktop98/internal/types"
	"github.com/Project-Sylos/Desktop98/sdk"
	"github.com/go-chi/chi/v5"
)

// DefaultPromptWait bounds how long the wait endpoint blocks
const DefaultPromptWait = 30 * time.Second

// PromptHandler handles confirmation, information, and error prompt endpoints
type PromptHandler struct {
	BaseHandler
	prompts *movable.Prompts
}

// NewPromptHandler creates a new prompt handler
func NewPromptHandler(desktop *sdk.Desktop) *PromptHandler {
	return &PromptHandler{
		prompts: desktop.Prompts(),
	}
}

// List handles the pending prompts endpoint
func (h *PromptHandler) List(w http.ResponseWriter, req *http.Request) {
	h.sendSuccess(w, "Prompts retrieved successfully", h.prompts.Pending())
}

// Show handles the show prompt endpoint
func (h *PromptHandler) Show(w http.ResponseWriter, req *http.Request) {
	var options types.PromptOptions
	if !h.decode(w, req, &options) {
		return
	}

	prompt, err := h.prompts.Show(options)
	if err != nil {
		h.sendFailure(w, req, err)
		return
	}

	h.sendJSON(w, http.StatusCreated, types.APIResponse{
		Success: true,
		Message: "Prompt shown",
		Data:    prompt,
	})
}

// Resolve handles the answer endpoint
func (h *PromptHandler) Resolve(w http.ResponseWriter, req *http.Request) {
	var request models.ResolvePromptRequest
	if !h.decode(w, req, &request) {
		return
	}

	result, err := h.prompts.Resolve(chi.URLParam(req, "id"), request.Confirmed)
	if err != nil {
		h.sendFailure(w, req, err)
		return
	}

	h.sendSuccess(w, "Prompt resolved", result)
}

// Wait blocks until the prompt is answered. The optional "timeout" query
// parameter is a Go duration and defaults to DefaultPromptWait.
func (h *PromptHandler) Wait(w http.ResponseWriter, req *http.Request) {
	timeout := DefaultPromptWait
	if value := req.URL.Query().Get("timeout"); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil || parsed <= 0 {
			h.sendError(w, http.StatusBadRequest, "timeout must be a positive duration")
			return
		}
		timeout = parsed
	}

	ctx, cancel := context.WithTimeout(req.Context(), timeout)
	defer cancel()

	result, err := h.prompts.Await(ctx, chi.URLParam(req, "id"))
	if errors.Is(err, context.DeadlineExceeded) {
		h.sendError(w, http.StatusRequestTimeout, "prompt was not answered in time")
		return
	}
	if err != nil {
		h.sendFailure(w, req, err)
		return
	}

	h.sendSuccess(w, "Prompt answered", result)
}
