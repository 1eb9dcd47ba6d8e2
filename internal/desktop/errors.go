package desktop

import "errors"

var (
	// ErrIconNotFound is returned for an unknown desktop icon id
	ErrIconNotFound = errors.New("icon not found")
	// ErrDuplicateIcon is returned when adding an icon whose id is taken
	ErrDuplicateIcon = errors.New("icon already exists")
	// ErrMenuItemNotFound is returned for an unknown start menu item id
	ErrMenuItemNotFound = errors.New("start menu item not found")
	// ErrInvalidSetting is returned when a settings value is rejected
	ErrInvalidSetting = errors.New("invalid setting")
)
