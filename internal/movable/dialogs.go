package movable

import (
	"fmt"

	"github.com/Project-Sylos/Desktop98/internal/types"
	"github.com/google/uuid"
)

// FindMode selects the find dialog flavour
type FindMode string

// FindMode constants
const (
	FindOnly       FindMode = "find"
	FindAndReplace FindMode = "replace"
)

// FindComponent is the content reference of find dialogs
const FindComponent = "find-replace"

// Dialogs is the registry of movable dialogs
type Dialogs struct {
	*Registry[*types.Dialog]
}

// NewDialogs creates the dialog registry, first dialog at zBase+1
func NewDialogs(zBase int) *Dialogs {
	return &Dialogs{Registry: NewRegistry[*types.Dialog](DialogsRegistry, zBase)}
}

// ParseFindMode validates a find mode
func ParseFindMode(value string) (FindMode, error) {
	switch mode := FindMode(value); mode {
	case FindOnly, FindAndReplace:
		return mode, nil
	}
	return "", fmt.Errorf("unknown find mode %q", value)
}

// OpenFind opens the find dialog of a text instance. The dialog id is the
// correlation id, so a second call for the same instance only brings it to front.
func (d *Dialogs) OpenFind(mode FindMode, instanceTitle, correlationID string) *types.Dialog {
	if correlationID == "" {
		correlationID = uuid.New().String()
	}

	label := "Find"
	if mode == FindAndReplace {
		label = "Find and Replace"
	}

	return d.Open(&types.Dialog{
		Movable: types.Movable{
			ID:    correlationID,
			Title: fmt.Sprintf("%s - %s", instanceTitle, label),
			Content: types.ContentRef{
				Component: FindComponent,
				Params: map[string]any{
					"mode":          string(mode),
					"correlationId": correlationID,
				},
			},
			X:      100,
			Y:      100,
			Width:  400,
			Height: 400,
		},
		Kind: types.DialogFind,
	})
}
