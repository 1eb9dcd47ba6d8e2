package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Project-Sylos/Desktop98/internal/api/models"
	"github.com/Project-Sylos/Desktop98/internal/logging"
	"github.com/Project-Sylos/Desktop98/internal/movable"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Pointer session modes accepted by PointerDown
const (
	modeDrag   = "drag"
	modeResize = "resize"
)

// movableHandler serves the endpoints windows and dialogs share
type movableHandler[T movable.Entity[T]] struct {
	BaseHandler
	kind     string
	registry *movable.Registry[T]
	ctl      *movable.Controller
}

func newMovableHandler[T movable.Entity[T]](kind string, registry *movable.Registry[T], ctl *movable.Controller) movableHandler[T] {
	return movableHandler[T]{kind: kind, registry: registry, ctl: ctl}
}

// List handles the list endpoint
func (h *movableHandler[T]) List(w http.ResponseWriter, req *http.Request) {
	h.sendSuccess(w, fmt.Sprintf("%s retrieved successfully", h.kind), h.registry.Snapshot())
}

// Get handles the get endpoint
func (h *movableHandler[T]) Get(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")

	entity, ok := h.registry.Get(id)
	if !ok {
		h.sendError(w, http.StatusNotFound, fmt.Sprintf("%v: %s", movable.ErrNotFound, id))
		return
	}

	h.sendSuccess(w, "Retrieved successfully", entity)
}

// Close handles the close endpoint. Closing an id that is not open succeeds.
func (h *movableHandler[T]) Close(w http.ResponseWriter, req *http.Request) {
	removed := h.registry.Close(chi.URLParam(req, "id"))
	h.sendSuccess(w, "Closed successfully", map[string]any{"removed": removed})
}

// BringToFront handles the bring-to-front endpoint
func (h *movableHandler[T]) BringToFront(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	if !h.registry.BringToFront(id) {
		h.sendError(w, http.StatusNotFound, fmt.Sprintf("%v: %s", movable.ErrNotFound, id))
		return
	}
	h.respondEntity(w, id, "Brought to front")
}

// Move handles the position endpoint
func (h *movableHandler[T]) Move(w http.ResponseWriter, req *http.Request) {
	var request models.PositionRequest
	if !h.decode(w, req, &request) {
		return
	}

	id := chi.URLParam(req, "id")
	if !h.registry.Move(id, request.X, request.Y) {
		h.sendError(w, http.StatusNotFound, fmt.Sprintf("%v: %s", movable.ErrNotFound, id))
		return
	}
	h.respondEntity(w, id, "Moved successfully")
}

// Resize handles the size endpoint
func (h *movableHandler[T]) Resize(w http.ResponseWriter, req *http.Request) {
	var request models.SizeRequest
	if !h.decode(w, req, &request) {
		return
	}

	if request.Width <= 0 || request.Height <= 0 {
		h.sendError(w, http.StatusBadRequest, "width and height must be positive")
		return
	}

	id := chi.URLParam(req, "id")
	if !h.registry.Resize(id, request.Width, request.Height) {
		h.sendError(w, http.StatusNotFound, fmt.Sprintf("%v: %s", movable.ErrNotFound, id))
		return
	}
	h.respondEntity(w, id, "Resized successfully")
}

// PointerDown handles the endpoint that starts a drag or resize session
func (h *movableHandler[T]) PointerDown(w http.ResponseWriter, req *http.Request) {
	var request models.PointerDownRequest
	if !h.decode(w, req, &request) {
		return
	}

	if _, ok := h.registry.Get(request.ID); !ok {
		h.sendError(w, http.StatusNotFound, fmt.Sprintf("%v: %s", movable.ErrNotFound, request.ID))
		return
	}

	switch request.Mode {
	case "", modeDrag:
		if !h.ctl.BeginDrag(request.ID, request.X, request.Y, request.Button) {
			h.sendError(w, http.StatusBadRequest, "only the primary button starts a drag")
			return
		}
	case modeResize:
		if err := h.ctl.BeginResize(request.ID, request.Direction, request.X, request.Y); err != nil {
			h.sendFailure(w, req, err)
			return
		}
	default:
		h.sendError(w, http.StatusBadRequest, fmt.Sprintf("unknown pointer mode %q", request.Mode))
		return
	}

	session, _ := h.ctl.Active()
	h.sendSuccess(w, "Session started", session)
}

// PointerMove handles the pointer move endpoint
func (h *movableHandler[T]) PointerMove(w http.ResponseWriter, req *http.Request) {
	var request models.PointerMoveRequest
	if !h.decode(w, req, &request) {
		return
	}

	session, active := h.ctl.Active()
	applied := h.ctl.PointerMove(request.X, request.Y)

	response := map[string]any{"applied": applied}
	if applied && active {
		if geometry, ok := h.registry.Geometry(session.ID); ok {
			response["geometry"] = geometry
		}
	}
	h.sendSuccess(w, "Pointer moved", response)
}

// PointerUp handles the pointer up endpoint
func (h *movableHandler[T]) PointerUp(w http.ResponseWriter, req *http.Request) {
	h.ctl.PointerUp()
	h.sendSuccess(w, "Session ended", nil)
}

// Session handles the active session endpoint
func (h *movableHandler[T]) Session(w http.ResponseWriter, req *http.Request) {
	session, ok := h.ctl.Active()
	if !ok {
		h.sendSuccess(w, "No active session", nil)
		return
	}
	h.sendSuccess(w, "Active session", session)
}

// Stream sends every registry snapshot as a Server-Sent Event.
// A slow client only misses intermediate snapshots; the latest one is always delivered.
func (h *movableHandler[T]) Stream(w http.ResponseWriter, req *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		h.sendError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch := make(chan []T, 1)
	unsubscribe := h.registry.Subscribe(func(snapshot []T) {
		// deliveries are serialized, so after draining the send cannot block
		select {
		case ch <- snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snapshot
		}
	})
	defer unsubscribe()

	logger := logging.WithContext(req.Context())
	ctx := req.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case snapshot := <-ch:
			data, err := json.Marshal(snapshot)
			if err != nil {
				logger.Error("failed to marshal snapshot", zap.Error(err))
				continue
			}
			fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}

func (h *movableHandler[T]) respondEntity(w http.ResponseWriter, id, message string) {
	entity, ok := h.registry.Get(id)
	if !ok {
		// closed by another request in between
		h.sendSuccess(w, message, nil)
		return
	}
	h.sendSuccess(w, message, entity)
}
