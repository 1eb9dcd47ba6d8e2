package types

// Theme is the closed set of visual properties of a desktop theme
type Theme struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	DesktopBackground string       `json:"desktop_background"`
	Icon              IconStyle    `json:"icon_style"`
	Window            WindowStyle  `json:"window_style"`
	Taskbar           TaskbarStyle `json:"taskbar_style"`
}

// IconStyle holds desktop icon styling
type IconStyle struct {
	Size                    string `json:"size"`
	Font                    string `json:"font"`
	Color                   string `json:"color"`
	SelectedColor           string `json:"selected_color"`
	BackgroundColor         string `json:"background_color"`
	SelectedBackgroundColor string `json:"selected_background_color"`
}

// WindowStyle holds window chrome styling
type WindowStyle struct {
	Border         string        `json:"border"`
	BorderRadius   string        `json:"border_radius"`
	TitleBar       TitleBarStyle `json:"title_bar"`
	CloseButton    ButtonStyle   `json:"close_button"`
	MinimizeButton ButtonStyle   `json:"minimize_button"`
}

// TitleBarStyle holds title bar styling
type TitleBarStyle struct {
	Height     string `json:"height"`
	Background string `json:"background"`
	Gradient   string `json:"gradient,omitempty"`
	Color      string `json:"color"`
	FontWeight string `json:"font_weight"`
}

// ButtonStyle holds button styling
type ButtonStyle struct {
	Background         string `json:"background"`
	Color              string `json:"color"`
	SelectedBackground string `json:"selected_background,omitempty"`
}

// TaskbarStyle holds taskbar styling
type TaskbarStyle struct {
	Height      string      `json:"height"`
	Background  string      `json:"background"`
	ButtonStyle ButtonStyle `json:"button_style"`
}

// ScreenSaverType names a screen saver animation
type ScreenSaverType string

// ScreenSaverType constants
const (
	ScreenSaverNone  ScreenSaverType = "none"
	ScreenSaverPipes ScreenSaverType = "pipes"
	ScreenSaverClock ScreenSaverType = "clock"
)

// ScreenSaverSettings holds the screen saver configuration
type ScreenSaverSettings struct {
	TimeoutMinutes int             `json:"screen_saver_timeout"`
	Enabled        bool            `json:"screen_saver_enabled"`
	Type           ScreenSaverType `json:"screen_saver_type"`
	Preview        bool            `json:"is_screen_saver_preview"`
}

// WallpaperType names how the desktop background is drawn
type WallpaperType string

// WallpaperType constants
const (
	WallpaperNone  WallpaperType = "none"
	WallpaperImage WallpaperType = "image"
	WallpaperColor WallpaperType = "color"
)

// Wallpaper holds the desktop background configuration
type Wallpaper struct {
	Type            WallpaperType `json:"wallpaper_type"`
	URL             string        `json:"wallpaper_url,omitempty"`
	Position        string        `json:"wallpaper_position,omitempty"` // center, tile, stretch
	BackgroundColor string        `json:"background_color,omitempty"`
}

// Settings keys in the settings store
const (
	SettingScreenSaver = "screen_saver"
	SettingWallpaper   = "wallpaper"
	SettingTheme       = "theme"
)

// Wallpaper positions
const (
	WallpaperCenter  = "center"
	WallpaperTile    = "tile"
	WallpaperStretch = "stretch"
)

// DesktopSettings is the user-adjustable desktop configuration
type DesktopSettings struct {
	Theme       string              `json:"theme"`
	ScreenSaver ScreenSaverSettings `json:"screen_saver"`
	Wallpaper   Wallpaper           `json:"wallpaper"`
}

// PersistedState is everything the store keeps across restarts
type PersistedState struct {
	Windows  []WindowState   `json:"windows"`
	Icons    []DesktopIcon   `json:"icons"`
	Settings DesktopSettings `json:"settings"`
}
