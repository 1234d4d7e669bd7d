package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/charcount/internal/model"
)

type palette struct {
	text   lipgloss.Color
	muted  lipgloss.Color
	accent lipgloss.Color
	border lipgloss.Color
	bar    lipgloss.Color
	warn   lipgloss.Color
}

var (
	lightPalette = palette{
		text:   lipgloss.Color("#1F1F1F"),
		muted:  lipgloss.Color("#6E6E6E"),
		accent: lipgloss.Color("#9A6B12"),
		border: lipgloss.Color("#BDBDBD"),
		bar:    lipgloss.Color("#3A7BC8"),
		warn:   lipgloss.Color("#D9363E"),
	}
	darkPalette = palette{
		text:   lipgloss.Color("#F0F0F0"),
		muted:  lipgloss.Color("#8C8C8C"),
		accent: lipgloss.Color("#C89A3A"),
		border: lipgloss.Color("#4A4A4A"),
		bar:    lipgloss.Color("#4ECDC4"),
		warn:   lipgloss.Color("#FF4D4F"),
	}
)

type styles struct {
	title     lipgloss.Style
	muted     lipgloss.Style
	card      lipgloss.Style
	cardTitle lipgloss.Style
	cardValue lipgloss.Style
	letter    lipgloss.Style
	bar       lipgloss.Style
	option    lipgloss.Style
	warn      lipgloss.Style
	footer    lipgloss.Style
}

func newStyles(theme model.Theme) styles {
	p := lightPalette
	if theme == model.ThemeDark {
		p = darkPalette
	}
	return styles{
		title: lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		muted: lipgloss.NewStyle().Foreground(p.muted),
		card: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(p.border),
		cardTitle: lipgloss.NewStyle().Foreground(p.muted),
		cardValue: lipgloss.NewStyle().Foreground(p.text).Bold(true),
		letter:    lipgloss.NewStyle().Foreground(p.text).Bold(true),
		bar:       lipgloss.NewStyle().Foreground(p.bar),
		option:    lipgloss.NewStyle().Foreground(p.text),
		warn:      lipgloss.NewStyle().Foreground(p.warn),
		footer:    lipgloss.NewStyle().Foreground(p.muted),
	}
}
