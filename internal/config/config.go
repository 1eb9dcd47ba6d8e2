package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Project-Sylos/Desktop98/internal/generator"
	"github.com/Project-Sylos/Desktop98/internal/types"
	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv
const (
	EnvHost       = "DESKTOP98_HOST"
	EnvPort       = "DESKTOP98_PORT"
	EnvDBPath     = "DESKTOP98_DB_PATH"
	EnvLogLevel   = "DESKTOP98_LOG_LEVEL"
	EnvForestPath = "DESKTOP98_FOREST_PATH"
)

// DefaultConfig returns the default configuration
func DefaultConfig() types.Config {
	return types.Config{
		API: types.APIConfig{
			Host: "localhost",
			Port: 8098,
		},
		Storage: types.StorageConfig{
			DBPath: "./desktop98.db",
		},
		Logging: types.LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Desktop: types.DesktopConfig{
			ViewportWidth:  1024,
			ViewportHeight: 768,
			WindowZBase:    100,
			DialogZBase:    200,
			MinWidth:       200,
			MinHeight:      150,
			Theme:          "windows98",
		},
		Themes: DefaultThemes(),
		Synthetic: types.SyntheticConfig{
			Enabled:    false,
			DriveID:    "syntheticDriveS",
			DriveName:  "Synthetic (S:)",
			MaxDepth:   3,
			MinFolders: 1,
			MaxFolders: 3,
			MinFiles:   2,
			MaxFiles:   5,
			Seed:       42,
		},
	}
}

// LoadFromFile loads configuration from a JSON file.
// Missing sections fall back to DefaultConfig.
func LoadFromFile(configPath string) (*types.Config, error) {
	// Check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so omitted sections stay usable
	cfg := DefaultConfig()
	cfg.Themes = nil
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if len(cfg.Themes) == 0 {
		cfg.Themes = DefaultThemes()
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := resolvePaths(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyEnv overrides configuration values from the environment.
// A .env file in the working directory is loaded first when present.
func ApplyEnv(cfg *types.Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	if host := os.Getenv(EnvHost); host != "" {
		cfg.API.Host = host
	}
	if port := os.Getenv(EnvPort); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, port, err)
		}
		cfg.API.Port = p
	}
	if dbPath := os.Getenv(EnvDBPath); dbPath != "" {
		cfg.Storage.DBPath = dbPath
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if forest := os.Getenv(EnvForestPath); forest != "" {
		cfg.ForestPath = forest
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return resolvePaths(cfg)
}

// resolvePaths makes file paths absolute
func resolvePaths(cfg *types.Config) error {
	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = "./desktop98.db"
	}

	if !filepath.IsAbs(cfg.Storage.DBPath) {
		absPath, err := filepath.Abs(cfg.Storage.DBPath)
		if err != nil {
			return fmt.Errorf("failed to resolve DB path: %w", err)
		}
		cfg.Storage.DBPath = absPath
	}

	if cfg.ForestPath != "" && !filepath.IsAbs(cfg.ForestPath) {
		absPath, err := filepath.Abs(cfg.ForestPath)
		if err != nil {
			return fmt.Errorf("failed to resolve forest path: %w", err)
		}
		cfg.ForestPath = absPath
	}

	return nil
}

// Validate checks that the configuration parameters are valid
func Validate(cfg *types.Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	// Validate API config
	if cfg.API.Port < 1 || cfg.API.Port > 65535 {
		return fmt.Errorf("API port must be between 1 and 65535, got %d", cfg.API.Port)
	}

	// Validate logging config
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be one of debug, info, warn, error, got %q", cfg.Logging.Level)
	}
	switch cfg.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log format must be json or console, got %q", cfg.Logging.Format)
	}

	// Validate desktop config
	d := cfg.Desktop
	if d.ViewportWidth <= 0 || d.ViewportHeight <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", d.ViewportWidth, d.ViewportHeight)
	}
	if d.MinWidth <= 0 || d.MinHeight <= 0 {
		return fmt.Errorf("minimum window size must be positive, got %dx%d", d.MinWidth, d.MinHeight)
	}
	if d.WindowZBase < 0 {
		return fmt.Errorf("window_z_base must be non-negative, got %d", d.WindowZBase)
	}
	if d.DialogZBase <= d.WindowZBase {
		return fmt.Errorf("dialog_z_base (%d) must be greater than window_z_base (%d)", d.DialogZBase, d.WindowZBase)
	}

	// Validate themes
	if err := ValidateThemes(cfg.Themes); err != nil {
		return err
	}
	if FindTheme(cfg.Themes, d.Theme) == nil {
		return fmt.Errorf("theme %q is not configured", d.Theme)
	}

	// Validate synthetic drive config
	if cfg.Synthetic.Enabled {
		if err := generator.ValidateConfig(cfg.Synthetic); err != nil {
			return fmt.Errorf("invalid synthetic config: %w", err)
		}
	}

	return nil
}

// SaveToFile saves configuration to a JSON file
func SaveToFile(cfg *types.Config, configPath string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config to JSON: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
