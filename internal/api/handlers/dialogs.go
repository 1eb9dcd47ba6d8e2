package handlers

import (
	"fmt"
	"net/http"

	"github.com/Project-Sylos/Desktop98/internal/api/models"
	"github.com/Project-Sylos/Desktop98/internal/movable"
	"github.com/Project-Sylos/Desktop98/internal/types"
	"github.com/Project-Sylos/Desktop98/sdk"
)

// DialogHandler handles movable dialog endpoints
type DialogHandler struct {
	movableHandler[*types.Dialog]
	dialogs *movable.Dialogs
}

// NewDialogHandler creates a new dialog handler
func NewDialogHandler(desktop *sdk.Desktop) *DialogHandler {
	return &DialogHandler{
		movableHandler: newMovableHandler("Dialogs", desktop.Dialogs().Registry, desktop.DialogController()),
		dialogs:        desktop.Dialogs(),
	}
}

// Open handles the open dialog endpoint
func (h *DialogHandler) Open(w http.ResponseWriter, req *http.Request) {
	var request models.OpenDialogRequest
	if !h.decode(w, req, &request) {
		return
	}

	switch request.Kind {
	case types.DialogConfirmation, types.DialogInformation, types.DialogError, types.DialogFind:
	default:
		h.sendError(w, http.StatusBadRequest, fmt.Sprintf("unknown dialog type %q", request.Kind))
		return
	}
	if request.Width <= 0 || request.Height <= 0 {
		h.sendError(w, http.StatusBadRequest, "width and height must be positive")
		return
	}

	opened := h.dialogs.Open(&types.Dialog{
		Movable: types.Movable{
			ID:      request.ID,
			Title:   request.Title,
			Content: request.Content,
			X:       request.X,
			Y:       request.Y,
			Width:   request.Width,
			Height:  request.Height,
		},
		Kind: request.Kind,
	})

	h.sendJSON(w, http.StatusCreated, types.APIResponse{
		Success: true,
		Message: "Dialog opened successfully",
		Data:    opened,
	})
}

// OpenFind handles the find dialog endpoint
func (h *DialogHandler) OpenFind(w http.ResponseWriter, req *http.Request) {
	var request models.OpenFindRequest
	if !h.decode(w, req, &request) {
		return
	}

	mode, err := movable.ParseFindMode(request.Mode)
	if err != nil {
		h.sendError(w, http.StatusBadRequest, err.Error())
		return
	}
	if request.InstanceTitle == "" {
		h.sendError(w, http.StatusBadRequest, "instance_title is required")
		return
	}

	opened := h.dialogs.OpenFind(mode, request.InstanceTitle, request.CorrelationID)
	h.sendJSON(w, http.StatusCreated, types.APIResponse{
		Success: true,
		Message: "Find dialog opened successfully",
		Data:    opened,
	})
}
