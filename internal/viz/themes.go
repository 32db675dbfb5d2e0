package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Guide   lipgloss.Color // orbit paths
	Star    lipgloss.Color // background dots
	Label   lipgloss.Color
	Warning lipgloss.Color
	// Mono draws bodies in Text instead of their configured colour.
	Mono bool
}

// Available themes
var (
	ThemeDeepSpace = Theme{
		Name:    "deepspace",
		Primary: lipgloss.Color("#00ffff"),
		Accent:  lipgloss.Color("#ffd700"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666688"),
		Guide:   lipgloss.Color("#3a3a4a"),
		Star:    lipgloss.Color("#55556a"),
		Label:   lipgloss.Color("#ffffff"),
		Warning: lipgloss.Color("#ff8800"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"), // Green phosphor
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Guide:   lipgloss.Color("#003300"),
		Star:    lipgloss.Color("#004400"),
		Label:   lipgloss.Color("#88ff88"),
		Warning: lipgloss.Color("#ffff00"),
		Mono:    true,
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Guide:   lipgloss.Color("#444444"),
		Star:    lipgloss.Color("#333333"),
		Label:   lipgloss.Color("#cccccc"),
		Warning: lipgloss.Color("#ffaa00"),
		Mono:    true,
	}

	ThemeNebula = Theme{
		Name:    "nebula",
		Primary: lipgloss.Color("#ff9ff3"),
		Accent:  lipgloss.Color("#feca57"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Guide:   lipgloss.Color("#4b2b4c"),
		Star:    lipgloss.Color("#6b4b6c"),
		Label:   lipgloss.Color("#fff5f5"),
		Warning: lipgloss.Color("#ffc048"),
	}

	// All available themes
	Themes = []Theme{
		ThemeDeepSpace,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeNebula,
	}
)

// GetTheme returns a theme by name, falling back to deepspace.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDeepSpace
}

// NextTheme returns the name of the theme after name, wrapping around.
func NextTheme(name string) string {
	names := ThemeNames()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
