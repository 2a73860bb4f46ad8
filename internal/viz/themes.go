package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/atomlab/internal/render"
)

// Theme defines color scheme for the TUI and the atom palette drawn in it.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	Palette   render.Palette
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:      "classic",
		Primary:   lipgloss.Color("#3949ab"), // Indigo
		Secondary: lipgloss.Color("#6464c8"),
		Accent:    lipgloss.Color("#2ecc71"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Success:   lipgloss.Color("#2ecc71"),
		Error:     lipgloss.Color("#e74c3c"),
		Palette:   render.DefaultPalette,
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"), // Magenta
		Secondary: lipgloss.Color("#00ffff"), // Cyan
		Accent:    lipgloss.Color("#ffff00"), // Yellow
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Success:   lipgloss.Color("#00ff00"),
		Error:     lipgloss.Color("#ff0000"),
		Palette: render.Palette{
			Nucleus:  render.WithAlpha(render.MustHex("#8800ff"), 0.7),
			Proton:   render.MustHex("#ff00ff"),
			Neutron:  render.MustHex("#00ffff"),
			Electron: render.MustHex("#ffff00"),
			Ring:     render.WithAlpha(render.MustHex("#ffff00"), 0.3),
			Hint:     render.MustHex("#ff00ff"),
		},
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"), // Green phosphor
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Success:   lipgloss.Color("#88ff88"),
		Error:     lipgloss.Color("#ff0000"),
		Palette: render.Palette{
			Nucleus:  render.WithAlpha(render.MustHex("#00cc00"), 0.7),
			Proton:   render.MustHex("#ccff00"),
			Neutron:  render.MustHex("#00cc00"),
			Electron: render.MustHex("#88ff88"),
			Ring:     render.WithAlpha(render.MustHex("#005500"), 0.3),
			Hint:     render.MustHex("#00ff00"),
		},
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"), // Ocean blue
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Success:   lipgloss.Color("#00ff88"),
		Error:     lipgloss.Color("#ff4444"),
		Palette: render.Palette{
			Nucleus:  render.WithAlpha(render.MustHex("#0077be"), 0.7),
			Proton:   render.MustHex("#ff6b6b"),
			Neutron:  render.MustHex("#00a8cc"),
			Electron: render.MustHex("#ffd700"),
			Ring:     render.WithAlpha(render.MustHex("#4488aa"), 0.3),
			Hint:     render.MustHex("#e0f0ff"),
		},
	}

	// Default theme
	CurrentTheme = ThemeClassic

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one and returns it.
func NextTheme() Theme {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return CurrentTheme
		}
	}
	CurrentTheme = ThemeClassic
	return CurrentTheme
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// HasTheme reports whether name is one of Themes.
func HasTheme(name string) bool {
	for _, t := range Themes {
		if t.Name == name {
			return true
		}
	}
	return false
}
