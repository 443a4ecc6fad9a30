package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/at-ishikawa/notebot/internal/store"
)

type palette struct {
	primary   lipgloss.Color
	accent    lipgloss.Color
	errColor  lipgloss.Color
	text      lipgloss.Color
	secondary lipgloss.Color
	muted     lipgloss.Color
}

var (
	lightPalette = palette{
		primary:   lipgloss.Color("#0A84FF"),
		accent:    lipgloss.Color("#FF9F0A"),
		errColor:  lipgloss.Color("#FF3B30"),
		text:      lipgloss.Color("#1A1D1E"),
		secondary: lipgloss.Color("#4A4E51"),
		muted:     lipgloss.Color("#8E9295"),
	}
	darkPalette = palette{
		primary:   lipgloss.Color("#0A84FF"),
		accent:    lipgloss.Color("#FF9F0A"),
		errColor:  lipgloss.Color("#FF453A"),
		text:      lipgloss.Color("#FFFFFF"),
		secondary: lipgloss.Color("#E0E0E5"),
		muted:     lipgloss.Color("#8A8A90"),
	}
)

type styles struct {
	title    lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	detail   lipgloss.Style
	favorite lipgloss.Style
	err      lipgloss.Style
	status   lipgloss.Style
	help     lipgloss.Style
}

func newStyles(theme store.Theme) styles {
	p := lightPalette
	if theme == store.ThemeDark {
		p = darkPalette
	}
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.primary).MarginBottom(1),
		item:     lipgloss.NewStyle().Foreground(p.text).PaddingLeft(2),
		selected: lipgloss.NewStyle().Bold(true).Foreground(p.primary).PaddingLeft(2),
		detail:   lipgloss.NewStyle().Foreground(p.secondary),
		favorite: lipgloss.NewStyle().Foreground(p.accent),
		err:      lipgloss.NewStyle().Foreground(p.errColor),
		status:   lipgloss.NewStyle().Foreground(p.accent).MarginTop(1),
		help:     lipgloss.NewStyle().Foreground(p.muted).MarginTop(1),
	}
}
