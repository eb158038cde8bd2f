package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/flipbook/internal/input"
)

// keyMap defines all keyboard bindings for the reader.
type keyMap struct {
	// Global
	Quit           key.Binding
	Help           key.Binding
	CycleTheme     key.Binding
	ToggleProgress key.Binding

	// Navigation
	Next key.Binding
	Prev key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		ToggleProgress: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Toggle progress bar"),
		),

		Next: key.NewBinding(
			key.WithKeys("right", "down", "l", "j", "pgdown", " "),
			key.WithHelp("→/↓", "Next page"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "up", "h", "k", "pgup"),
			key.WithHelp("←/↑", "Previous page"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.CycleTheme, k.ToggleProgress, k.Help, k.Quit},
	}
}

// navKey maps a terminal key press to the DOM key the normalizer expects.
// Vim and paging aliases map to the horizontal arrows.
func navKey(msg tea.KeyMsg, forward bool) input.Key {
	switch msg.String() {
	case "down":
		return input.KeyArrowDown
	case "up":
		return input.KeyArrowUp
	}
	if forward {
		return input.KeyArrowRight
	}
	return input.KeyArrowLeft
}
