package types

// ContentRef is an opaque handle resolved to a view by the rendering layer.
// The core never interprets Component or Params.
type ContentRef struct {
	Component string         `json:"component"`
	Params    map[string]any `json:"params,omitempty"`
}

// Clone returns a copy with its own params map
func (c ContentRef) Clone() ContentRef {
	if c.Params == nil {
		return ContentRef{Component: c.Component}
	}
	params := make(map[string]any, len(c.Params))
	for k, v := range c.Params {
		params[k] = v
	}
	return ContentRef{Component: c.Component, Params: params}
}

// Movable is the shared shape of every floating panel
type Movable struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Content ContentRef `json:"content"`
	X       int        `json:"x"`
	Y       int        `json:"y"`
	Width   int        `json:"width"`
	Height  int        `json:"height"`
	ZIndex  int        `json:"z_index"`
}

// Window is a movable application panel
type Window struct {
	Movable
	Minimized          bool `json:"minimized"`
	AddMinimizeAsInput bool `json:"add_minimize_as_input"`
}

// Base returns the embedded movable
func (w *Window) Base() *Movable {
	return &w.Movable
}

// Clone returns a deep copy of the window
func (w *Window) Clone() *Window {
	c := *w
	c.Content = w.Content.Clone()
	return &c
}

// ContentInputs returns the content params, with "minimized" injected when requested
func (w *Window) ContentInputs() map[string]any {
	inputs := w.Content.Clone().Params
	if !w.AddMinimizeAsInput {
		return inputs
	}
	if inputs == nil {
		inputs = make(map[string]any, 1)
	}
	inputs["minimized"] = w.Minimized
	return inputs
}

// State returns the persisted geometry of the window
func (w *Window) State() WindowState {
	return WindowState{
		ID:        w.ID,
		Title:     w.Title,
		X:         w.X,
		Y:         w.Y,
		Width:     w.Width,
		Height:    w.Height,
		Minimized: w.Minimized,
	}
}

// DialogKind is the kind of a dialog
type DialogKind string

// DialogKind constants
const (
	DialogConfirmation DialogKind = "confirmation"
	DialogInformation  DialogKind = "information"
	DialogError        DialogKind = "error"
	DialogFind         DialogKind = "find"
)

// Dialog is a movable dialog panel
type Dialog struct {
	Movable
	Kind DialogKind `json:"type"`
}

// Base returns the embedded movable
func (d *Dialog) Base() *Movable {
	return &d.Movable
}

// Clone returns a deep copy of the dialog
func (d *Dialog) Clone() *Dialog {
	c := *d
	c.Content = d.Content.Clone()
	return &c
}

// WindowState is the geometry of a window that survives a reload
type WindowState struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Minimized bool   `json:"minimized"`
}

// LaunchSpec is a window template opened by an entry, icon, or menu item action
type LaunchSpec struct {
	WindowID           string     `json:"window_id"`
	Title              string     `json:"title"`
	Content            ContentRef `json:"content"`
	X                  int        `json:"x"`
	Y                  int        `json:"y"`
	Width              int        `json:"width"`
	Height             int        `json:"height"`
	AddMinimizeAsInput bool       `json:"add_minimize_as_input,omitempty"`
}

// Window builds a fresh window from the template
func (l *LaunchSpec) Window() *Window {
	return &Window{
		Movable: Movable{
			ID:      l.WindowID,
			Title:   l.Title,
			Content: l.Content.Clone(),
			X:       l.X,
			Y:       l.Y,
			Width:   l.Width,
			Height:  l.Height,
		},
		AddMinimizeAsInput: l.AddMinimizeAsInput,
	}
}

// DesktopIcon is a launcher placed on the desktop
type DesktopIcon struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Icon    string      `json:"icon"`
	IconURL string      `json:"icon_url,omitempty"`
	X       int         `json:"x"`
	Y       int         `json:"y"`
	Launch  *LaunchSpec `json:"launch,omitempty"`
}

// StartMenuItem is an entry of the start menu
type StartMenuItem struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	IconURL string      `json:"icon_url"`
	Launch  *LaunchSpec `json:"launch,omitempty"`
}

// TaskbarItem is a window button on the taskbar
type TaskbarItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Minimized bool   `json:"minimized"`
	Active    bool   `json:"active"`
}

// PromptOptions describes a non-movable confirmation, information, or error prompt
type PromptOptions struct {
	Kind        DialogKind `json:"type"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	ConfirmText string     `json:"confirm_text,omitempty"`
	CancelText  string     `json:"cancel_text,omitempty"`
	OKText      string     `json:"ok_text,omitempty"`
}

// Prompt is a pending prompt
type Prompt struct {
	ID      string        `json:"id"`
	Options PromptOptions `json:"options"`
}

// PromptResult is the answer to a prompt
type PromptResult struct {
	ID        string `json:"id"`
	Confirmed bool   `json:"confirmed"`
}
