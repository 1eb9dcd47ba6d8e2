package desktop

import (
	"fmt"

	"github.com/Project-Sylos/Desktop98/internal/config"
	"github.com/Project-Sylos/Desktop98/internal/types"
	"go.uber.org/zap"
)

// DefaultScreenSaverTimeout is the idle time, in minutes, of a fresh desktop
const DefaultScreenSaverTimeout = 1

// DefaultSettings returns the settings of a fresh desktop using theme
func DefaultSettings(theme string) types.DesktopSettings {
	return types.DesktopSettings{
		Theme: theme,
		ScreenSaver: types.ScreenSaverSettings{
			TimeoutMinutes: DefaultScreenSaverTimeout,
			Type:           types.ScreenSaverNone,
		},
		Wallpaper: types.Wallpaper{Type: types.WallpaperNone},
	}
}

// ValidateScreenSaver checks a screen saver configuration
func ValidateScreenSaver(s types.ScreenSaverSettings) error {
	switch s.Type {
	case types.ScreenSaverNone, types.ScreenSaverPipes, types.ScreenSaverClock:
	default:
		return fmt.Errorf("%w: unknown screen saver %q", ErrInvalidSetting, s.Type)
	}
	if s.TimeoutMinutes < 1 {
		return fmt.Errorf("%w: screen saver timeout must be at least 1 minute, got %d", ErrInvalidSetting, s.TimeoutMinutes)
	}
	return nil
}

// ValidateWallpaper checks a wallpaper configuration
func ValidateWallpaper(w types.Wallpaper) error {
	switch w.Type {
	case types.WallpaperNone:
	case types.WallpaperImage:
		if w.URL == "" {
			return fmt.Errorf("%w: image wallpaper needs a url", ErrInvalidSetting)
		}
	case types.WallpaperColor:
		if w.BackgroundColor == "" {
			return fmt.Errorf("%w: color wallpaper needs a background color", ErrInvalidSetting)
		}
	default:
		return fmt.Errorf("%w: unknown wallpaper type %q", ErrInvalidSetting, w.Type)
	}

	switch w.Position {
	case "", types.WallpaperCenter, types.WallpaperTile, types.WallpaperStretch:
	default:
		return fmt.Errorf("%w: unknown wallpaper position %q", ErrInvalidSetting, w.Position)
	}
	return nil
}

// loadSettings applies persisted settings over the defaults.
// A persisted theme that is no longer configured is ignored.
func (d *Desktop) loadSettings() error {
	var theme string
	found, err := d.store.GetSetting(types.SettingTheme, &theme)
	if err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}
	if found {
		if config.FindTheme(d.cfg.Themes, theme) != nil {
			d.settings.Theme = theme
		} else {
			d.logger.Warn("ignoring unknown persisted theme", zap.String("theme", theme))
		}
	}

	var saver types.ScreenSaverSettings
	found, err = d.store.GetSetting(types.SettingScreenSaver, &saver)
	if err != nil {
		return fmt.Errorf("failed to load screen saver: %w", err)
	}
	if found && ValidateScreenSaver(saver) == nil {
		d.settings.ScreenSaver = saver
	}

	var wallpaper types.Wallpaper
	found, err = d.store.GetSetting(types.SettingWallpaper, &wallpaper)
	if err != nil {
		return fmt.Errorf("failed to load wallpaper: %w", err)
	}
	if found && ValidateWallpaper(wallpaper) == nil {
		d.settings.Wallpaper = wallpaper
	}
	return nil
}

// Settings returns the current desktop settings
func (d *Desktop) Settings() types.DesktopSettings {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.settings
}

// Themes returns the configured themes
func (d *Desktop) Themes() []types.Theme {
	return d.cfg.Themes
}

// Theme returns the selected theme
func (d *Desktop) Theme() types.Theme {
	d.mu.Lock()
	id := d.settings.Theme
	d.mu.Unlock()

	if theme := config.FindTheme(d.cfg.Themes, id); theme != nil {
		return *theme
	}
	return d.cfg.Themes[0]
}

// SetTheme selects a configured theme
func (d *Desktop) SetTheme(id string) error {
	if config.FindTheme(d.cfg.Themes, id) == nil {
		return fmt.Errorf("%w: theme %q is not configured", ErrInvalidSetting, id)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.settings.Theme = id
	return d.saveSettingLocked(types.SettingTheme, id)
}

// SetScreenSaver replaces the screen saver configuration
func (d *Desktop) SetScreenSaver(s types.ScreenSaverSettings) error {
	if err := ValidateScreenSaver(s); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.settings.ScreenSaver = s
	return d.saveSettingLocked(types.SettingScreenSaver, s)
}

// SetWallpaper replaces the wallpaper. Image wallpapers default to centered.
func (d *Desktop) SetWallpaper(w types.Wallpaper) error {
	if err := ValidateWallpaper(w); err != nil {
		return err
	}
	if w.Type == types.WallpaperImage && w.Position == "" {
		w.Position = types.WallpaperCenter
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.settings.Wallpaper = w
	return d.saveSettingLocked(types.SettingWallpaper, w)
}

func (d *Desktop) saveSettingLocked(key string, value any) error {
	if d.store == nil {
		return nil
	}
	if err := d.store.SaveSetting(key, value); err != nil {
		d.logger.Error("failed to save setting", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return nil
}
