package movable

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Project-Sylos/Desktop98/internal/types"
)

// Defaults of a Controller
const (
	DefaultViewportWidth  = 1024
	DefaultViewportHeight = 768
	DefaultMinWidth       = 200
	DefaultMinHeight      = 150
)

// PrimaryButton is the only pointer button that starts a drag
const PrimaryButton = 0

// Surface is the registry subset a Controller drives
type Surface interface {
	Geometry(id string) (types.Movable, bool)
	BringToFront(id string) bool
	Move(id string, x, y int) bool
	Resize(id string, width, height int) bool
}

// Direction is a resize handle: one of n, s, e, w or a corner
type Direction string

// ParseDirection validates a resize handle
func ParseDirection(value string) (Direction, error) {
	switch value {
	case "n", "s", "e", "w", "ne", "nw", "se", "sw":
		return Direction(value), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, value)
}

func (d Direction) has(axis string) bool {
	return strings.Contains(string(d), axis)
}

// Mode is the kind of an interaction session
type Mode string

// Mode constants
const (
	ModeDrag   Mode = "drag"
	ModeResize Mode = "resize"
)

// Session describes the active drag or resize
type Session struct {
	ID        string    `json:"id"`
	Mode      Mode      `json:"mode"`
	Direction Direction `json:"direction,omitempty"`
}

type session struct {
	Session
	offsetX, offsetY int
	startX, startY   int
	startW, startH   int
}

// Controller turns pointer events into Move and Resize calls on a Surface.
// At most one session is active; a new pointer-down replaces it.
type Controller struct {
	surface Surface

	mu        sync.Mutex
	viewportW int
	viewportH int
	clamp     bool
	minW      int
	minH      int
	active    *session
}

// ControllerOption configures a Controller
type ControllerOption func(*Controller)

// WithViewport sets the drag clamp bounds
func WithViewport(width, height int) ControllerOption {
	return func(c *Controller) {
		c.viewportW, c.viewportH = width, height
	}
}

// WithViewportClamp enables or disables keeping panels inside the viewport
func WithViewportClamp(enabled bool) ControllerOption {
	return func(c *Controller) {
		c.clamp = enabled
	}
}

// WithMinSize sets the smallest size a resize can produce
func WithMinSize(width, height int) ControllerOption {
	return func(c *Controller) {
		c.minW, c.minH = width, height
	}
}

// NewController creates a controller. By default it clamps drags to a
// 1024x768 viewport and keeps panels at least 200x150.
func NewController(surface Surface, opts ...ControllerOption) *Controller {
	c := &Controller{
		surface:   surface,
		viewportW: DefaultViewportWidth,
		viewportH: DefaultViewportHeight,
		clamp:     true,
		minW:      DefaultMinWidth,
		minH:      DefaultMinHeight,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BeginDrag starts dragging id by its title bar. Only the primary button
// starts a drag; it reports whether a session started.
func (c *Controller) BeginDrag(id string, pointerX, pointerY, button int) bool {
	if button != PrimaryButton {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.active = nil
	geometry, ok := c.surface.Geometry(id)
	if !ok {
		return false
	}

	c.surface.BringToFront(id)
	c.active = &session{
		Session: Session{ID: id, Mode: ModeDrag},
		offsetX: pointerX - geometry.X,
		offsetY: pointerY - geometry.Y,
	}
	return true
}

// BeginResize starts resizing id from a handle
func (c *Controller) BeginResize(id, direction string, pointerX, pointerY int) error {
	dir, err := ParseDirection(direction)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.active = nil
	geometry, ok := c.surface.Geometry(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	c.surface.BringToFront(id)
	c.active = &session{
		Session: Session{ID: id, Mode: ModeResize, Direction: dir},
		startX:  pointerX,
		startY:  pointerY,
		startW:  geometry.Width,
		startH:  geometry.Height,
	}
	return nil
}

// PointerMove applies the active session to the pointer position.
// It reports whether the surface changed; a vanished entity ends the session.
func (c *Controller) PointerMove(pointerX, pointerY int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.active
	if s == nil {
		return false
	}

	var applied bool
	switch s.Mode {
	case ModeDrag:
		geometry, ok := c.surface.Geometry(s.ID)
		if !ok {
			break
		}
		x := pointerX - s.offsetX
		y := pointerY - s.offsetY
		if c.clamp {
			x = max(0, min(x, c.viewportW-geometry.Width))
			y = max(0, min(y, c.viewportH-geometry.Height))
		}
		applied = c.surface.Move(s.ID, x, y)
	case ModeResize:
		deltaX := pointerX - s.startX
		deltaY := pointerY - s.startY

		width, height := s.startW, s.startH
		if s.Direction.has("e") {
			width = max(c.minW, s.startW+deltaX)
		}
		if s.Direction.has("w") {
			width = max(c.minW, s.startW-deltaX)
		}
		if s.Direction.has("s") {
			height = max(c.minH, s.startH+deltaY)
		}
		if s.Direction.has("n") {
			height = max(c.minH, s.startH-deltaY)
		}
		applied = c.surface.Resize(s.ID, width, height)
	}

	if !applied {
		c.active = nil
	}
	return applied
}

// PointerUp ends the active session
func (c *Controller) PointerUp() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.active = nil
}

// SetViewport updates the drag clamp bounds
func (c *Controller) SetViewport(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.viewportW, c.viewportH = width, height
}

// Viewport returns the drag clamp bounds
func (c *Controller) Viewport() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.viewportW, c.viewportH
}

// Active returns the active session
func (c *Controller) Active() (Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return Session{}, false
	}
	return c.active.Session, true
}
