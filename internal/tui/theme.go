package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin palettes — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

// Theme bundles the semantic colors and styles for one appearance mode.
type Theme struct {
	Name string

	Text    lipgloss.Color
	Subtext lipgloss.Color
	Overlay lipgloss.Color
	Surface lipgloss.Color
	Base    lipgloss.Color
	Mantle  lipgloss.Color

	Accent  lipgloss.Color
	Focus   lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	Title     lipgloss.Style
	Header    lipgloss.Style
	Status    lipgloss.Style
	StatusBar lipgloss.Style
	Footer    lipgloss.Style
	Label     lipgloss.Style
	FocusWrap lipgloss.Style
	BlurWrap  lipgloss.Style
	Modal     lipgloss.Style
	Badge     lipgloss.Style
	BadgeFail lipgloss.Style
	BadgePass lipgloss.Style
}

// DarkTheme is Catppuccin Mocha.
func DarkTheme() Theme {
	t := Theme{
		Name:    "dark",
		Text:    "#cdd6f4",
		Subtext: "#a6adc8",
		Overlay: "#7f849c",
		Surface: "#313244",
		Base:    "#1e1e2e",
		Mantle:  "#181825",
		Accent:  "#f5c2e7",
		Focus:   "#b4befe",
		Success: "#a6e3a1",
		Error:   "#f38ba8",
		Warning: "#f9e2af",
	}
	return t.build()
}

// LightTheme is Catppuccin Latte.
func LightTheme() Theme {
	t := Theme{
		Name:    "light",
		Text:    "#4c4f69",
		Subtext: "#6c6f85",
		Overlay: "#8c8fa1",
		Surface: "#ccd0da",
		Base:    "#eff1f5",
		Mantle:  "#e6e9ef",
		Accent:  "#ea76cb",
		Focus:   "#7287fd",
		Success: "#40a02b",
		Error:   "#d20f39",
		Warning: "#df8e1d",
	}
	return t.build()
}

// ThemeByName resolves a persisted preference; unknown names fall back to
// dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

func (t Theme) build() Theme {
	t.Title = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.Header = lipgloss.NewStyle().Foreground(t.Text).Background(t.Mantle).Padding(0, 2)
	t.Status = lipgloss.NewStyle().Foreground(t.Subtext)
	t.StatusBar = lipgloss.NewStyle().Foreground(t.Subtext).Background(t.Surface).Padding(0, 2)
	t.Footer = lipgloss.NewStyle().Foreground(t.Subtext).Background(t.Mantle).Padding(0, 2)
	t.Label = lipgloss.NewStyle().Foreground(t.Overlay)
	t.FocusWrap = lipgloss.NewStyle().Foreground(t.Focus).Bold(true)
	t.BlurWrap = lipgloss.NewStyle().Foreground(t.Overlay)
	t.Modal = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Focus).Padding(0, 1)
	t.Badge = lipgloss.NewStyle().Foreground(t.Text).Background(t.Surface).Padding(0, 1)
	t.BadgeFail = lipgloss.NewStyle().Foreground(t.Base).Background(t.Error).Padding(0, 1)
	t.BadgePass = lipgloss.NewStyle().Foreground(t.Base).Background(t.Success).Padding(0, 1)
	return t
}

// Toggle returns the other appearance mode.
func (t Theme) Toggle() Theme {
	if t.Name == "dark" {
		return LightTheme()
	}
	return DarkTheme()
}
