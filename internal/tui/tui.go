package tui

import (
	"photolicense-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// Options configures an interactive session.
type Options struct {
	Collection *store.Collection
	Logger     zerolog.Logger

	// Glyphs is "unicode" or "ascii".
	Glyphs string
	// Theme is "auto", "light" or "dark".
	Theme string
}

func Run(opts Options) error {
	applyGlyphPreference(opts.Glyphs)
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)

	col := opts.Collection
	if col == nil {
		col = store.New()
	}
	m := newAppModel(col, opts.Logger)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
