package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	helpStyle       = lipgloss.NewStyle().Faint(true)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
