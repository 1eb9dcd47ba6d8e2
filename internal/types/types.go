package types

// Config represents the complete configuration for Desktop98
type Config struct {
	API        APIConfig       `json:"api"`
	Storage    StorageConfig   `json:"storage"`
	Logging    LoggingConfig   `json:"logging"`
	Desktop    DesktopConfig   `json:"desktop"`
	Themes     []Theme         `json:"themes"`
	ForestPath string          `json:"forest_path,omitempty"`
	Synthetic  SyntheticConfig `json:"synthetic"`
}

// APIConfig represents the HTTP API configuration
type APIConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// StorageConfig represents the persistence configuration
type StorageConfig struct {
	DBPath string `json:"db_path"`
}

// LoggingConfig represents the logger configuration
type LoggingConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, console
}

// DesktopConfig holds the window management policy
type DesktopConfig struct {
	ViewportWidth  int    `json:"viewport_width"`
	ViewportHeight int    `json:"viewport_height"`
	WindowZBase    int    `json:"window_z_base"`
	DialogZBase    int    `json:"dialog_z_base"`
	MinWidth       int    `json:"min_width"`
	MinHeight      int    `json:"min_height"`
	Theme          string `json:"theme"`
}

// SyntheticConfig represents the seeded generator configuration for the synthetic drive
type SyntheticConfig struct {
	Enabled    bool   `json:"enabled"`
	DriveID    string `json:"drive_id"`
	DriveName  string `json:"drive_name"`
	MaxDepth   int    `json:"max_depth"`
	MinFolders int    `json:"min_folders"`
	MaxFolders int    `json:"max_folders"`
	MinFiles   int    `json:"min_files"`
	MaxFiles   int    `json:"max_files"`
	Seed       int64  `json:"seed"`
}

// APIResponse represents a generic API response
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}
