package config

import (
	"fmt"

	"github.com/Project-Sylos/Desktop98/internal/types"
)

// DefaultThemes returns the built-in desktop themes
func DefaultThemes() []types.Theme {
	return []types.Theme{
		{
			ID:                "windows98",
			Name:              "Windows 98",
			DesktopBackground: "#008080",
			Icon: types.IconStyle{
				Size:                    "32px",
				Font:                    "MS Sans Serif",
				Color:                   "#FFFFFF",
				SelectedColor:           "#FFFFFF",
				BackgroundColor:         "transparent",
				SelectedBackgroundColor: "#000080",
			},
			Window: types.WindowStyle{
				Border:       "2px solid #C0C0C0",
				BorderRadius: "0",
				TitleBar: types.TitleBarStyle{
					Height:     "24px",
					Background: "#000080",
					Gradient:   "linear-gradient(to right, #000080, #1084D0)",
					Color:      "#FFFFFF",
					FontWeight: "bold",
				},
				CloseButton:    types.ButtonStyle{Background: "#C0C0C0", Color: "#000000"},
				MinimizeButton: types.ButtonStyle{Background: "#C0C0C0", Color: "#000000"},
			},
			Taskbar: types.TaskbarStyle{
				Height:     "30px",
				Background: "#C0C0C0",
				ButtonStyle: types.ButtonStyle{
					Background:         "#C0C0C0",
					Color:              "#000000",
					SelectedBackground: "#808080",
				},
			},
		},
		{
			ID:                "windows7",
			Name:              "Windows 7",
			DesktopBackground: "linear-gradient(to bottom, #6CB8E3, #95D3F5)",
			Icon: types.IconStyle{
				Size:                    "48px",
				Font:                    "Segoe UI",
				Color:                   "#FFFFFF",
				SelectedColor:           "#FFFFFF",
				BackgroundColor:         "transparent",
				SelectedBackgroundColor: "rgba(0, 120, 215, 0.5)",
			},
			Window: types.WindowStyle{
				Border:       "1px solid #0078D7",
				BorderRadius: "4px",
				TitleBar: types.TitleBarStyle{
					Height:     "30px",
					Background: "#0078D7",
					Gradient:   "linear-gradient(to right, #0078D7, #4A9FDE)",
					Color:      "#FFFFFF",
					FontWeight: "normal",
				},
				CloseButton:    types.ButtonStyle{Background: "#E81123", Color: "#FFFFFF"},
				MinimizeButton: types.ButtonStyle{Background: "transparent", Color: "#FFFFFF"},
			},
			Taskbar: types.TaskbarStyle{
				Height:     "40px",
				Background: "linear-gradient(to bottom, #C3C6C9, #8B8E91)",
				ButtonStyle: types.ButtonStyle{
					Background:         "rgba(255, 255, 255, 0.2)",
					Color:              "#FFFFFF",
					SelectedBackground: "rgba(255, 255, 255, 0.4)",
				},
			},
		},
		{
			ID:                "windows10",
			Name:              "Windows 10",
			DesktopBackground: "linear-gradient(to bottom, #3B7EA1, #2C5282)",
			Icon: types.IconStyle{
				Size:                    "48px",
				Font:                    "Segoe UI",
				Color:                   "#FFFFFF",
				SelectedColor:           "#FFFFFF",
				BackgroundColor:         "transparent",
				SelectedBackgroundColor: "rgba(0, 120, 215, 0.5)",
			},
			Window: types.WindowStyle{
				Border:       "1px solid #0078D7",
				BorderRadius: "0",
				TitleBar: types.TitleBarStyle{
					Height:     "32px",
					Background: "#0078D7",
					Color:      "#FFFFFF",
					FontWeight: "normal",
				},
				CloseButton:    types.ButtonStyle{Background: "#E81123", Color: "#FFFFFF"},
				MinimizeButton: types.ButtonStyle{Background: "transparent", Color: "#FFFFFF"},
			},
			Taskbar: types.TaskbarStyle{
				Height:     "40px",
				Background: "linear-gradient(to bottom, #2D2D30, #1E1E1E)",
				ButtonStyle: types.ButtonStyle{
					Background:         "transparent",
					Color:              "#FFFFFF",
					SelectedBackground: "rgba(255, 255, 255, 0.2)",
				},
			},
		},
	}
}

// ValidateThemes checks that every theme is identified and ids are unique
func ValidateThemes(themes []types.Theme) error {
	if len(themes) == 0 {
		return fmt.Errorf("at least one theme must be configured")
	}

	seen := make(map[string]bool, len(themes))
	for i, theme := range themes {
		if theme.ID == "" {
			return fmt.Errorf("theme %d has no id", i)
		}
		if theme.Name == "" {
			return fmt.Errorf("theme %s has no name", theme.ID)
		}
		if seen[theme.ID] {
			return fmt.Errorf("duplicate theme id %s", theme.ID)
		}
		seen[theme.ID] = true
	}
	return nil
}

// FindTheme returns the theme with the given id, or nil
func FindTheme(themes []types.Theme, id string) *types.Theme {
	for i := range themes {
		if themes[i].ID == id {
			return &themes[i]
		}
	}
	return nil
}
