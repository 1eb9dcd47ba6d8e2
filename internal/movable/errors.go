package movable

import "errors"

var (
	// ErrNotFound is returned when no open entity has the requested id
	ErrNotFound = errors.New("entity not found")
	// ErrInvalidDirection is returned for a resize handle outside n, s, e, w and their corners
	ErrInvalidDirection = errors.New("invalid resize direction")
	// ErrUnknownPrompt is returned when no pending prompt has the requested id
	ErrUnknownPrompt = errors.New("unknown prompt")
	// ErrInvalidPrompt is returned for prompt options without a supported kind
	ErrInvalidPrompt = errors.New("invalid prompt")
)
