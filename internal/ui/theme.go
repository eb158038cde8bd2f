package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the reader.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and footer bars
	Paper      string // Page faces

	// Border colors
	Border      string // Page edges
	BorderMuted string // Turning leaf
	BorderFocus string // Cover

	// Text colors
	Text   string
	Ink    string // Page text
	Muted  string
	Faint  string
	Accent string
	Warn   string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warn)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warn)).
			Bold(true),

		Page: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Paper)).
			Foreground(lipgloss.Color(t.Ink)).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			BorderBackground(lipgloss.Color(t.Background)),

		TurningPage: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Paper)).
			Foreground(lipgloss.Color(t.Ink)).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(t.BorderMuted)).
			BorderBackground(lipgloss.Color(t.Background)),

		PageTitle: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Paper)).
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Scrollbar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		ScrollThumb: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Modal: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(1, 2),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Base
	Background lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	WarningText lipgloss.Style

	// Components
	Header      lipgloss.Style
	Footer      lipgloss.Style
	Title       lipgloss.Style
	Page        lipgloss.Style
	TurningPage lipgloss.Style
	PageTitle   lipgloss.Style
	Scrollbar   lipgloss.Style
	ScrollThumb lipgloss.Style
	Modal       lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		Paper:      "#29394f", // bg3

		Border:      "#39506d", // sel1
		BorderMuted: "#2b3b51", // sel0
		BorderFocus: "#719cd6", // blue

		Text:   "#cdcecf", // fg1
		Ink:    "#dfdfe0", // fg0
		Muted:  "#aeafb0", // fg2
		Faint:  "#71839b", // fg3
		Accent: "#719cd6", // blue
		Warn:   "#dbc074", // yellow
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		Paper:      "#2A2A37", // sumiInk4

		Border:      "#54546D", // sumiInk6
		BorderMuted: "#363646", // sumiInk5
		BorderFocus: "#7E9CD8", // crystalBlue

		Text:   "#DCD7BA", // fujiWhite
		Ink:    "#DCD7BA", // fujiWhite
		Muted:  "#C8C093", // oldWhite
		Faint:  "#727169", // fujiGray
		Accent: "#7E9CD8", // crystalBlue
		Warn:   "#E6C384", // carpYellow
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		Paper:      "#1e293b", // slate-800

		Border:      "#334155", // slate-700
		BorderMuted: "#1e293b", // slate-800
		BorderFocus: "#38bdf8", // sky-400

		Text:   "#f1f5f9", // slate-100
		Ink:    "#e2e8f0", // slate-200
		Muted:  "#94a3b8", // slate-400
		Faint:  "#64748b", // slate-500
		Accent: "#38bdf8", // sky-400
		Warn:   "#f59e0b", // amber-500
	}
}
