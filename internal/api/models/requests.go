package models

import "github.com/Project-Sylos/Desktop98/internal/types"

// OpenWindowRequest represents the request to open a window from a template
type OpenWindowRequest struct {
	types.LaunchSpec
	Minimized bool `json:"minimized"`
}

// OpenDialogRequest represents the request to open a movable dialog
type OpenDialogRequest struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Kind    types.DialogKind `json:"type"`
	Content types.ContentRef `json:"content"`
	X       int              `json:"x"`
	Y       int              `json:"y"`
	Width   int              `json:"width"`
	Height  int              `json:"height"`
}

// OpenFindRequest represents the request to open a find dialog
type OpenFindRequest struct {
	Mode          string `json:"mode"`
	InstanceTitle string `json:"instance_title"`
	CorrelationID string `json:"correlation_id"`
}

// PositionRequest represents a move to x, y
type PositionRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SizeRequest represents a resize
type SizeRequest struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// PointerDownRequest starts a drag or a resize session
type PointerDownRequest struct {
	ID        string `json:"id"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Button    int    `json:"button"`
	Mode      string `json:"mode"` // drag or resize
	Direction string `json:"direction,omitempty"`
}

// PointerMoveRequest moves the pointer of the active session
type PointerMoveRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ResolvePromptRequest answers a prompt
type ResolvePromptRequest struct {
	Confirmed bool `json:"confirmed"`
}

// SetThemeRequest selects a theme
type SetThemeRequest struct {
	Theme string `json:"theme"`
}
