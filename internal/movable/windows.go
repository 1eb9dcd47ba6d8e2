package movable

import "github.com/Project-Sylos/Desktop98/internal/types"

// Registry names
const (
	WindowsRegistry = "windows"
	DialogsRegistry = "dialogs"
)

// Windows is the registry of application windows
type Windows struct {
	*Registry[*types.Window]
}

// NewWindows creates the window registry, first window at zBase+1
func NewWindows(zBase int) *Windows {
	return &Windows{Registry: NewRegistry[*types.Window](WindowsRegistry, zBase)}
}

// Open opens win, or brings the open window with its id to front and un-minimizes it
func (w *Windows) Open(win *types.Window) *types.Window {
	return w.open(win, func(existing *types.Window) {
		existing.Minimized = false
	})
}

// Minimize hides the window without closing it
func (w *Windows) Minimize(id string) bool {
	return w.update(OpMinimize, id, func(win *types.Window) {
		win.Minimized = true
	})
}

// Restore un-minimizes the window and brings it to front
func (w *Windows) Restore(id string) bool {
	return w.update(OpRestore, id, func(win *types.Window) {
		win.Minimized = false
		w.bringToFrontLocked(win)
	})
}

// Taskbar lists the open windows in open order. The active window is the
// frontmost one that is not minimized.
func (w *Windows) Taskbar() []types.TaskbarItem {
	snapshot := w.Snapshot()

	active := -1
	for i, win := range snapshot {
		if win.Minimized {
			continue
		}
		if active < 0 || win.ZIndex > snapshot[active].ZIndex {
			active = i
		}
	}

	items := make([]types.TaskbarItem, len(snapshot))
	for i, win := range snapshot {
		items[i] = types.TaskbarItem{
			ID:        win.ID,
			Title:     win.Title,
			Minimized: win.Minimized,
			Active:    i == active,
		}
	}
	return items
}

// States returns the persisted geometry of every window in open order
func States(windows []*types.Window) []types.WindowState {
	states := make([]types.WindowState, len(windows))
	for i, win := range windows {
		states[i] = win.State()
	}
	return states
}
