package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title     lipgloss.Style
	Gutter    lipgloss.Style
	GridLine  lipgloss.Style
	NowMark   lipgloss.Style
	Block     lipgloss.Style
	BlockText lipgloss.Style
	Ghost     lipgloss.Style
	Preview   lipgloss.Style
	Hint      lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Modal     lipgloss.Style
	Label     lipgloss.Style
}

var DefaultTheme = Theme{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Gutter:    lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
	GridLine:  lipgloss.NewStyle().Faint(true),
	NowMark:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
	Block:     lipgloss.NewStyle().Background(lipgloss.Color("#45475A")).Foreground(lipgloss.Color("#F2CDCD")),
	BlockText: lipgloss.NewStyle().Bold(true),
	Ghost:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
	Preview:   lipgloss.NewStyle().Background(lipgloss.Color("#313244")).Foreground(lipgloss.Color("#A6E3A1")).Bold(true),
	Hint:      lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
	Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	Success:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Modal:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	Label:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
}
