package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the color palette for the terminal UI.
type Theme struct {
	Name string

	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Selection  lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
}

// Styles contains pre-built lipgloss styles derived from a Theme.
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Selected  lipgloss.Style
	Sidebar   lipgloss.Style
	NavActive lipgloss.Style
	NavItem   lipgloss.Style
	Box       lipgloss.Style
	Dialog    lipgloss.Style
	Label     lipgloss.Style
	Help      lipgloss.Style
}

// Styles builds the style set for the theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Foreground),
		Muted: lipgloss.NewStyle().
			Foreground(t.Muted),
		Error: lipgloss.NewStyle().
			Foreground(t.Error),
		Success: lipgloss.NewStyle().
			Foreground(t.Success),
		Warning: lipgloss.NewStyle().
			Foreground(t.Warning),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Background).
			Background(t.Selection),
		Sidebar: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(t.Border).
			PaddingRight(1),
		NavActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		NavItem: lipgloss.NewStyle().
			Foreground(t.Foreground),
		Box: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(1, 2),
		Dialog: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(t.Accent).
			Padding(1, 2),
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Muted),
		Help: lipgloss.NewStyle().
			Foreground(t.Muted),
	}
}

func nightfoxTheme() Theme {
	return Theme{
		Name:       "Nightfox",
		Background: lipgloss.Color("#192330"),
		Foreground: lipgloss.Color("#cdcecf"),
		Muted:      lipgloss.Color("#738091"),
		Accent:     lipgloss.Color("#719cd6"),
		Border:     lipgloss.Color("#39506d"),
		Selection:  lipgloss.Color("#719cd6"),
		Error:      lipgloss.Color("#c94f6d"),
		Success:    lipgloss.Color("#81b29a"),
		Warning:    lipgloss.Color("#dbc074"),
	}
}

func kanagawaTheme() Theme {
	return Theme{
		Name:       "Kanagawa",
		Background: lipgloss.Color("#1f1f28"),
		Foreground: lipgloss.Color("#dcd7ba"),
		Muted:      lipgloss.Color("#727169"),
		Accent:     lipgloss.Color("#7e9cd8"),
		Border:     lipgloss.Color("#54546d"),
		Selection:  lipgloss.Color("#957fb8"),
		Error:      lipgloss.Color("#e82424"),
		Success:    lipgloss.Color("#98bb6c"),
		Warning:    lipgloss.Color("#ff9e3b"),
	}
}

func slateTheme() Theme {
	return Theme{
		Name:       "Slate",
		Background: lipgloss.Color("#1e293b"),
		Foreground: lipgloss.Color("#e2e8f0"),
		Muted:      lipgloss.Color("#64748b"),
		Accent:     lipgloss.Color("#38bdf8"),
		Border:     lipgloss.Color("#334155"),
		Selection:  lipgloss.Color("#38bdf8"),
		Error:      lipgloss.Color("#f87171"),
		Success:    lipgloss.Color("#4ade80"),
		Warning:    lipgloss.Color("#facc15"),
	}
}

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

// GetTheme returns the named theme, falling back to Nightfox when the
// name is unknown.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["Nightfox"]
}

// NextTheme returns the theme following the named one, wrapping around.
func NextTheme(name string) Theme {
	names := ThemeNames()
	for i, n := range names {
		if n == name {
			return themes[names[(i+1)%len(names)]]
		}
	}
	return themes[names[0]]
}

// ThemeNames returns all theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
