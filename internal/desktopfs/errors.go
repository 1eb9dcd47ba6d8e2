package desktopfs

import "errors"

var (
	// ErrNotFound is returned when no entry has the requested id
	ErrNotFound = errors.New("entry not found")
	// ErrNotAFile is returned when content is requested from a container
	ErrNotAFile = errors.New("entry is not a file")
	// ErrNoAction is returned when an entry has nothing to launch
	ErrNoAction = errors.New("entry has no action")

	errIsDir = errors.New("is a directory")
)
