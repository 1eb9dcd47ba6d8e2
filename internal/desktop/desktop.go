// Package desktop wires the simulated file system, the window and dialog
// registries, their pointer controllers, and the persistence store into one
// application context.
package desktop

import (
	"fmt"
	"sync"

	"github.com/Project-Sylos/Desktop98/internal/db"
	"github.com/Project-Sylos/Desktop98/internal/desktopfs"
	"github.com/Project-Sylos/Desktop98/internal/generator"
	"github.com/Project-Sylos/Desktop98/internal/logging"
	"github.com/Project-Sylos/Desktop98/internal/metrics"
	"github.com/Project-Sylos/Desktop98/internal/movable"
	"github.com/Project-Sylos/Desktop98/internal/types"
	"go.uber.org/zap"
)

// Store persists window geometry, desktop icons, and settings
type Store interface {
	SaveWindows(states []types.WindowState) error
	LoadWindows() ([]types.WindowState, error)
	SaveIcons(icons []types.DesktopIcon) error
	LoadIcons() ([]types.DesktopIcon, error)
	SaveSetting(key string, value any) error
	GetSetting(key string, dest any) (bool, error)
	Reset() error
	Close() error
}

// Desktop is the application context shared by the HTTP API, the SDK, and the CLI
type Desktop struct {
	cfg    *types.Config
	fs     *desktopfs.FileSystem
	store  Store
	logger *zap.Logger

	windows   *movable.Windows
	dialogs   *movable.Dialogs
	prompts   *movable.Prompts
	windowCtl *movable.Controller
	dialogCtl *movable.Controller

	mu        sync.Mutex
	overrides map[string]types.WindowState
	icons     []types.DesktopIcon
	settings  types.DesktopSettings

	unsubscribe func()
}

// Open opens the DuckDB store named by cfg and builds a Desktop on it
func Open(cfg *types.Config) (*Desktop, error) {
	store, err := db.New(cfg.Storage.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	d, err := New(cfg, store)
	if err != nil {
		store.Close()
		return nil, err
	}
	return d, nil
}

// New builds a Desktop from cfg. A nil store disables persistence.
// The Desktop owns store and closes it in Close.
func New(cfg *types.Config, store Store) (*Desktop, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	forest, err := loadForest(cfg)
	if err != nil {
		return nil, err
	}

	dc := cfg.Desktop
	windows := movable.NewWindows(dc.WindowZBase)
	dialogs := movable.NewDialogs(dc.DialogZBase)

	d := &Desktop{
		cfg:     cfg,
		fs:      desktopfs.New(forest),
		store:   store,
		logger:  logging.Named("desktop"),
		windows: windows,
		dialogs: dialogs,
		prompts: movable.NewPrompts(),
		windowCtl: movable.NewController(windows,
			movable.WithViewport(dc.ViewportWidth, dc.ViewportHeight),
			movable.WithMinSize(dc.MinWidth, dc.MinHeight),
		),
		dialogCtl: movable.NewController(dialogs,
			movable.WithViewport(dc.ViewportWidth, dc.ViewportHeight),
			movable.WithMinSize(dc.MinWidth, dc.MinHeight),
			movable.WithViewportClamp(false),
		),
		overrides: make(map[string]types.WindowState),
		icons:     DefaultIcons(),
		settings:  DefaultSettings(dc.Theme),
	}

	if err := d.restore(); err != nil {
		return nil, err
	}
	d.subscribeStore()

	d.logger.Info("desktop ready",
		zap.Int("top_level_entries", len(d.fs.Forest())),
		zap.Int("persisted_windows", len(d.overrides)),
		zap.Int("icons", len(d.icons)),
		zap.String("theme", d.settings.Theme),
	)
	return d, nil
}

// loadForest reads the configured forest and appends the synthetic drive
func loadForest(cfg *types.Config) (*desktopfs.Forest, error) {
	var forest *desktopfs.Forest
	if cfg.ForestPath != "" {
		loaded, err := desktopfs.LoadForestFile(cfg.ForestPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load forest: %w", err)
		}
		forest = loaded
	} else {
		forest = desktopfs.DefaultForest()
	}

	if cfg.Synthetic.Enabled {
		drive, err := generator.GenerateDrive(cfg.Synthetic)
		if err != nil {
			return nil, fmt.Errorf("failed to generate synthetic drive: %w", err)
		}
		forest.FileSystem = append(forest.FileSystem, drive)
	}
	return forest, nil
}

// restore loads the persisted geometry, icons, and settings
func (d *Desktop) restore() error {
	if d.store == nil {
		return nil
	}

	states, err := d.store.LoadWindows()
	if err != nil {
		return fmt.Errorf("failed to load window state: %w", err)
	}
	for _, state := range states {
		d.overrides[state.ID] = state
	}

	icons, err := d.store.LoadIcons()
	if err != nil {
		return fmt.Errorf("failed to load icons: %w", err)
	}
	if len(icons) > 0 {
		d.icons = icons
	}

	return d.loadSettings()
}

// subscribeStore saves window geometry on every registry change.
// The delivery made by Subscribe itself is skipped so it does not wipe
// geometry that has not been reopened yet.
func (d *Desktop) subscribeStore() {
	if d.store == nil {
		d.unsubscribe = func() {}
		return
	}

	primed := false
	d.unsubscribe = d.windows.Subscribe(func(snapshot []*types.Window) {
		if !primed {
			primed = true
			return
		}
		err := d.store.SaveWindows(movable.States(snapshot))
		metrics.RecordStateSave(err == nil)
		if err != nil {
			d.logger.Error("failed to save window state", zap.Error(err))
		}
	})
}

// Config returns the configuration
func (d *Desktop) Config() *types.Config {
	return d.cfg
}

// FileSystem returns the simulated file system
func (d *Desktop) FileSystem() *desktopfs.FileSystem {
	return d.fs
}

// Windows returns the window registry
func (d *Desktop) Windows() *movable.Windows {
	return d.windows
}

// Dialogs returns the dialog registry
func (d *Desktop) Dialogs() *movable.Dialogs {
	return d.dialogs
}

// Prompts returns the prompt tracker
func (d *Desktop) Prompts() *movable.Prompts {
	return d.prompts
}

// WindowController returns the clamping controller for windows
func (d *Desktop) WindowController() *movable.Controller {
	return d.windowCtl
}

// DialogController returns the unclamped controller for dialogs
func (d *Desktop) DialogController() *movable.Controller {
	return d.dialogCtl
}

// SetViewport updates the drag bounds of both controllers
func (d *Desktop) SetViewport(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: viewport must be positive, got %dx%d", ErrInvalidSetting, width, height)
	}
	d.windowCtl.SetViewport(width, height)
	d.dialogCtl.SetViewport(width, height)
	return nil
}

// OpenWindow opens win. The first time a persisted id is opened, its saved
// geometry and minimized flag replace the requested ones.
func (d *Desktop) OpenWindow(win *types.Window) *types.Window {
	if _, open := d.windows.Get(win.ID); !open {
		d.mu.Lock()
		state, ok := d.overrides[win.ID]
		delete(d.overrides, win.ID)
		d.mu.Unlock()

		if ok {
			win = win.Clone()
			win.X, win.Y = state.X, state.Y
			win.Width, win.Height = state.Width, state.Height
			win.Minimized = state.Minimized
		}
	}
	return d.windows.Open(win)
}

// Launch opens the window described by spec
func (d *Desktop) Launch(spec *types.LaunchSpec) *types.Window {
	return d.OpenWindow(spec.Window())
}

// OpenEntry runs the action of a file-system entry
func (d *Desktop) OpenEntry(id string) (*types.Window, error) {
	entry, err := d.fs.GetEntry(id)
	if err != nil {
		return nil, err
	}
	if entry.Action == nil {
		return nil, fmt.Errorf("%w: %s", desktopfs.ErrNoAction, id)
	}
	return d.Launch(entry.Action), nil
}

// Taskbar summarizes the open windows
func (d *Desktop) Taskbar() []types.TaskbarItem {
	return d.windows.Taskbar()
}

// State returns the current persistable state
func (d *Desktop) State() types.PersistedState {
	d.mu.Lock()
	defer d.mu.Unlock()

	return types.PersistedState{
		Windows:  movable.States(d.windows.Snapshot()),
		Icons:    cloneIcons(d.icons),
		Settings: d.settings,
	}
}

// ResetState clears the store and returns icons and settings to their defaults.
// Open windows stay open.
func (d *Desktop) ResetState() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.store != nil {
		if err := d.store.Reset(); err != nil {
			return fmt.Errorf("failed to reset store: %w", err)
		}
	}
	d.overrides = make(map[string]types.WindowState)
	d.icons = DefaultIcons()
	d.settings = DefaultSettings(d.cfg.Desktop.Theme)

	d.logger.Info("desktop state reset")
	return nil
}

// Close stops persisting and closes the store
func (d *Desktop) Close() error {
	d.unsubscribe()
	if d.store == nil {
		return nil
	}
	if err := d.store.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	return nil
}
