package desktop

import (
	"fmt"

	"github.com/Project-Sylos/Desktop98/internal/types"
)

// ShutdownID is the start menu item without a window
const ShutdownID = "shutdown"

// StartMenu returns the start menu items in display order
func (d *Desktop) StartMenu() []types.StartMenuItem {
	return []types.StartMenuItem{
		{ID: "my-computer", Title: "My Computer", IconURL: "/assets/icons/startMenu/computer_explorer-5.png",
			Launch: myComputer()},
		{ID: "settings", Title: "Settings", IconURL: "/assets/icons/startMenu/computer-5.png",
			Launch: launch("settings", "Settings", ComponentSettings, nil, 100, 100, 800, 600)},
		{ID: "find", Title: "Find", IconURL: "/assets/icons/startMenu/search_file-0.png",
			Launch: launch("search", "Search", ComponentSearch, nil, 100, 100, 800, 600)},
		{ID: "help", Title: "Help", IconURL: "/assets/icons/startMenu/help_question_mark.png",
			Launch: launch("help", "Help", ComponentHelp, nil, 100, 100, 800, 600)},
		{ID: ShutdownID, Title: "Shut Down", IconURL: "/assets/icons/startMenu/shut_down_normal-0.png"},
	}
}

// OpenStartMenuItem runs a start menu item. Items without a launch,
// like Shut Down, open nothing and return a nil window.
func (d *Desktop) OpenStartMenuItem(id string) (*types.Window, error) {
	for _, item := range d.StartMenu() {
		if item.ID != id {
			continue
		}
		if item.Launch == nil {
			return nil, nil
		}
		return d.Launch(item.Launch), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrMenuItemNotFound, id)
}
