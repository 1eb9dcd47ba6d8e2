package desktop

import (
	"fmt"

	"github.com/Project-Sylos/Desktop98/internal/desktopfs"
	"github.com/Project-Sylos/Desktop98/internal/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Component names of the launchable applications
const (
	ComponentFileExplorer = "file-explorer"
	ComponentBrowser      = "browser"
	ComponentJSExecutor   = "js-executor"
	ComponentMediaPlayer  = "media-player"
	ComponentImageViewer  = "image-viewer"
	ComponentNotepad      = "notepad"
	ComponentPDFViewer    = "pdf-viewer"
	ComponentPaint        = "paint"
	ComponentSettings     = "settings"
	ComponentSearch       = "search"
	ComponentHelp         = "help"
)

func launch(windowID, title, component string, params map[string]any, x, y, width, height int) *types.LaunchSpec {
	return &types.LaunchSpec{
		WindowID: windowID,
		Title:    title,
		Content:  types.ContentRef{Component: component, Params: params},
		X:        x,
		Y:        y,
		Width:    width,
		Height:   height,
	}
}

// myComputer is shared by the desktop icon and the start menu
func myComputer() *types.LaunchSpec {
	return launch("file-explorer", desktopfs.RootName, ComponentFileExplorer,
		map[string]any{"folderId": desktopfs.RootID}, 100, 100, 800, 600)
}

// DefaultIcons returns the icons of a fresh desktop, laid out in two columns
func DefaultIcons() []types.DesktopIcon {
	player := launch("media-player.exe", "Media Player", ComponentMediaPlayer, nil, 150, 150, 700, 500)
	player.AddMinimizeAsInput = true

	return []types.DesktopIcon{
		{ID: "my-computer", Title: desktopfs.RootName, Icon: "🖥️", IconURL: desktopfs.RootIconURL, X: 50, Y: 50,
			Launch: myComputer()},
		{ID: "internet-explorer", Title: "Internet Explorer", Icon: "🌐", IconURL: "/assets/icons/desktop/IExplorer.png", X: 50, Y: 150,
			Launch: launch("internet-explorer", "Internet Explorer", ComponentBrowser, nil, 100, 100, 1280, 720)},
		{ID: "js-executor", Title: "JS Executor", Icon: "💻", IconURL: "/assets/icons/desktop/exe.png", X: 50, Y: 250,
			Launch: launch("js-executor", "JavaScript Executor", ComponentJSExecutor,
				map[string]any{"title": "JavaScript Executor"}, 150, 150, 700, 500)},
		{ID: "media-player", Title: "Media Player", Icon: "🎞️", IconURL: "/assets/icons/desktop/media_player.png", X: 50, Y: 350,
			Launch: player},
		{ID: "recycle-bin", Title: desktopfs.RecycleName, Icon: "🗑️", IconURL: desktopfs.RecycleBinIconURL, X: 50, Y: 450,
			Launch: launch("file-explorer1", desktopfs.RecycleName, ComponentFileExplorer,
				map[string]any{"folderId": desktopfs.RecycleBinID}, 100, 100, 800, 600)},
		{ID: "image-viewer", Title: "Image Viewer", Icon: "🏞️", IconURL: "/assets/icons/desktop/gallery.png", X: 150, Y: 50,
			Launch: launch("image-viewer", "Image Viewer", ComponentImageViewer,
				map[string]any{"initialIndex": 0}, 200, 200, 800, 500)},
		{ID: "note-pad", Title: "Notepad", Icon: "🗒️", IconURL: "/assets/icons/desktop/notepad.png", X: 150, Y: 150,
			Launch: launch("notepad", "Notepad", ComponentNotepad, nil, 100, 100, 800, 600)},
		{ID: "my-cv", Title: "My CV", Icon: "📄", IconURL: "/assets/icons/files/document.png", X: 150, Y: 250,
			Launch: launch("my-cv", "PDF Viewer - My CV", ComponentPDFViewer,
				map[string]any{"pdfSrc": "assets/documents/cv.pdf"}, 250, 250, 700, 500)},
		{ID: "paint", Title: "Paint", Icon: "🎨", IconURL: "/assets/icons/desktop/paint.png", X: 150, Y: 350,
			Launch: launch("paint", "Paint", ComponentPaint, nil, 100, 100, 800, 600)},
	}
}

// Icons returns the desktop icons in display order
func (d *Desktop) Icons() []types.DesktopIcon {
	d.mu.Lock()
	defer d.mu.Unlock()

	return cloneIcons(d.icons)
}

// Icon returns the icon with id
func (d *Desktop) Icon(id string) (types.DesktopIcon, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.iconIndexLocked(id)
	if i < 0 {
		return types.DesktopIcon{}, fmt.Errorf("%w: %s", ErrIconNotFound, id)
	}
	return cloneIcon(d.icons[i]), nil
}

// MoveIcon places an icon at x, y
func (d *Desktop) MoveIcon(id string, x, y int) (types.DesktopIcon, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.iconIndexLocked(id)
	if i < 0 {
		return types.DesktopIcon{}, fmt.Errorf("%w: %s", ErrIconNotFound, id)
	}
	d.icons[i].X, d.icons[i].Y = x, y
	return cloneIcon(d.icons[i]), d.saveIconsLocked()
}

// AddIcon appends an icon. An empty id is replaced by a fresh uuid.
func (d *Desktop) AddIcon(icon types.DesktopIcon) (types.DesktopIcon, error) {
	if icon.Title == "" {
		return types.DesktopIcon{}, fmt.Errorf("%w: icon title is required", ErrInvalidSetting)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if icon.ID == "" {
		icon.ID = uuid.New().String()
	}
	if d.iconIndexLocked(icon.ID) >= 0 {
		return types.DesktopIcon{}, fmt.Errorf("%w: %s", ErrDuplicateIcon, icon.ID)
	}
	icon = cloneIcon(icon)
	d.icons = append(d.icons, icon)
	return cloneIcon(icon), d.saveIconsLocked()
}

// RemoveIcon deletes an icon
func (d *Desktop) RemoveIcon(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.iconIndexLocked(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrIconNotFound, id)
	}
	d.icons = append(d.icons[:i], d.icons[i+1:]...)
	return d.saveIconsLocked()
}

// OpenIcon launches the window of an icon
func (d *Desktop) OpenIcon(id string) (*types.Window, error) {
	icon, err := d.Icon(id)
	if err != nil {
		return nil, err
	}
	if icon.Launch == nil {
		return nil, fmt.Errorf("%w: icon %s", desktopfs.ErrNoAction, id)
	}
	return d.Launch(icon.Launch), nil
}

func (d *Desktop) iconIndexLocked(id string) int {
	for i, icon := range d.icons {
		if icon.ID == id {
			return i
		}
	}
	return -1
}

func (d *Desktop) saveIconsLocked() error {
	if d.store == nil {
		return nil
	}
	if err := d.store.SaveIcons(d.icons); err != nil {
		d.logger.Error("failed to save icons", zap.Error(err))
		return fmt.Errorf("failed to save icons: %w", err)
	}
	return nil
}

func cloneIcon(icon types.DesktopIcon) types.DesktopIcon {
	if icon.Launch != nil {
		spec := *icon.Launch
		spec.Content = spec.Content.Clone()
		icon.Launch = &spec
	}
	return icon
}

func cloneIcons(icons []types.DesktopIcon) []types.DesktopIcon {
	cloned := make([]types.DesktopIcon, len(icons))
	for i, icon := range icons {
		cloned[i] = cloneIcon(icon)
	}
	return cloned
}
