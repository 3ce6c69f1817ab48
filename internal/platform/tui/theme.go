package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// Theme maps color roles to lipgloss styles.
type Theme struct {
	styles  map[core.Color]lipgloss.Style
	Current lipgloss.Style // Viewed move in the history list
	Status  lipgloss.Style
	Title   lipgloss.Style
	Dim     lipgloss.Style
}

// NewTheme builds styles from configured colors.
func NewTheme(cfg config.ThemeConfig) Theme {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	return Theme{
		styles: map[core.Color]lipgloss.Style{
			core.ColorDefault: lipgloss.NewStyle(),
			core.ColorGrid:    fg(cfg.Grid),
			core.ColorMarkX:   fg(cfg.X).Bold(true),
			core.ColorMarkO:   fg(cfg.O).Bold(true),
			core.ColorWin:     fg(cfg.Win).Bold(true).Underline(true),
			core.ColorCursor:  fg(cfg.Cursor).Bold(true),
			core.ColorDim:     fg(cfg.Dim),
		},
		Current: lipgloss.NewStyle().Bold(true),
		Status:  lipgloss.NewStyle().Bold(true),
		Title:   fg(cfg.Cursor).Bold(true),
		Dim:     fg(cfg.Dim),
	}
}

// Style returns the style for a color role.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.styles[c]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
