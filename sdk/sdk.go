package sdk

import (
	"fmt"
	"io/fs"

	"github.com/Project-Sylos/Desktop98/internal/config"
	"github.com/Project-Sylos/Desktop98/internal/desktop"
	"github.com/Project-Sylos/Desktop98/internal/desktopfs"
	"github.com/Project-Sylos/Desktop98/internal/movable"
	"github.com/Project-Sylos/Desktop98/internal/types"
)

// Desktop is the public SDK interface for the simulated desktop.
// It wraps the internal application context to provide a clean public API.
type Desktop struct {
	*desktop.Desktop
}

// New creates a Desktop using the specified config file.
// Environment overrides are applied after the file is read.
func New(configPath string) (*Desktop, error) {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Desktop persisting to cfg.Storage.DBPath
func NewWithConfig(cfg *types.Config) (*Desktop, error) {
	impl, err := desktop.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize desktop: %w", err)
	}
	return &Desktop{Desktop: impl}, nil
}

// NewWithDefaults creates a Desktop from the default configuration
// backed by an in-memory store
func NewWithDefaults() (*Desktop, error) {
	cfg := config.DefaultConfig()
	cfg.Storage.DBPath = ""
	return NewWithConfig(&cfg)
}

// NewEphemeral creates a Desktop that persists nothing
func NewEphemeral(cfg *types.Config) (*Desktop, error) {
	impl, err := desktop.New(cfg, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize desktop: %w", err)
	}
	return &Desktop{Desktop: impl}, nil
}

// GetConfig returns the current configuration
func (d *Desktop) GetConfig() *types.Config {
	return d.Config()
}

// AsFS returns the simulated disk as a read-only fs.FS addressed by display names,
// for example "Local Disk (C:)/Documents and Settings/Documents/Resume.pdf"
func (d *Desktop) AsFS() fs.FS {
	return d.FileSystem().AsFS()
}

// Search runs a substring search over entry names
func (d *Desktop) Search(query string, caseSensitive bool) []types.SearchResult {
	return d.FileSystem().SearchBySubstring(query, caseSensitive)
}

// Re-export types for convenience
type (
	Config          = types.Config
	Entry           = types.Entry
	Metadata        = types.Metadata
	SearchResult    = types.SearchResult
	NavigationLink  = types.NavigationLink
	Window          = types.Window
	Dialog          = types.Dialog
	WindowState     = types.WindowState
	LaunchSpec      = types.LaunchSpec
	DesktopIcon     = types.DesktopIcon
	StartMenuItem   = types.StartMenuItem
	TaskbarItem     = types.TaskbarItem
	Prompt          = types.Prompt
	PromptOptions   = types.PromptOptions
	PromptResult    = types.PromptResult
	Theme           = types.Theme
	DesktopSettings = types.DesktopSettings
	PersistedState  = types.PersistedState
	APIResponse     = types.APIResponse
)

// Re-export constants
const (
	KindFolder = types.KindFolder
	KindDrive  = types.KindDrive
	KindCdrom  = types.KindCdrom
	KindFile   = types.KindFile

	RootID       = desktopfs.RootID
	RecycleBinID = desktopfs.RecycleBinID

	FindOnly       = movable.FindOnly
	FindAndReplace = movable.FindAndReplace
)

// Re-export errors
var (
	ErrNotFound         = desktopfs.ErrNotFound
	ErrNotAFile         = desktopfs.ErrNotAFile
	ErrNoAction         = desktopfs.ErrNoAction
	ErrInvalidDirection = movable.ErrInvalidDirection
	ErrUnknownPrompt    = movable.ErrUnknownPrompt
	ErrIconNotFound     = desktop.ErrIconNotFound
	ErrInvalidSetting   = desktop.ErrInvalidSetting
)
