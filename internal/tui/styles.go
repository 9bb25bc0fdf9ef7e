package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/duogoals/internal/models"
)

// each profile gets its own accent for tabs and the header border
var profileAccent = map[models.Profile]lipgloss.Color{
	models.ProfileClement:   lipgloss.Color("39"),
	models.ProfileCharlotte: lipgloss.Color("205"),
}

func accent(p models.Profile) lipgloss.Color {
	if c, ok := profileAccent[p]; ok {
		return c
	}
	return lipgloss.Color("62")
}

func tabStyle(p models.Profile, active bool) lipgloss.Style {
	if !active {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	}
	return lipgloss.NewStyle().
		Foreground(accent(p)).
		Background(lipgloss.Color("236")).
		Padding(0, 1).
		Bold(true)
}

func headerStyle(p models.Profile) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent(p)).
		Padding(0, 1)
}

var (
	dangerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)
