package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/duogoals/internal/constants"
	"github.com/julianstephens/duogoals/internal/models"
	"github.com/julianstephens/duogoals/internal/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateSelectProfile:
		return m.viewSelectProfile()
	case constants.StateAddGoal:
		content = m.form.View()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	default:
		content = m.goalList.View()
	}

	parts := []string{m.viewTabs(), m.viewHeader(), docStyle.Render(content)}
	if m.err != nil {
		parts = append(parts, dangerStyle.Render("Erreur: "+m.err.Error()))
	}
	parts = append(parts, m.help.View(m))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for _, p := range models.Profiles() {
		tabs = append(tabs, tabStyle(p, p == m.profile).Render(p.DisplayName()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// viewHeader shows the streak, the motivation banner and the comparison.
func (m Model) viewHeader() string {
	snapshot := m.store.Snapshot()
	user, _ := snapshot.User(m.profile)
	other, _ := snapshot.User(m.profile.Other())
	now := m.now()

	streak := stats.StreakSummary(user)
	lines := []string{
		fmt.Sprintf("🔥 %s   🏆 Record: %d  %s", streak.Label(), streak.Longest, mutedStyle.Render(streak.RecordLabel())),
		fmt.Sprintf("Progression du jour: %.0f%%", stats.TodayPercentage(user, now)),
	}

	banner := stats.Motivation(user, now)
	switch banner.Kind {
	case stats.BannerWarning:
		lines = append(lines, warningStyle.Render(banner.Message()))
	case stats.BannerSuccess:
		lines = append(lines, successStyle.Render(banner.Message()))
	case stats.BannerNeutral:
		lines = append(lines, banner.Message())
	}

	if cmp := stats.Compare(user, other, now); cmp.Visible() {
		lines = append(lines, cmp.Message(other.Profile))
	}
	return headerStyle(m.profile).Render(strings.Join(lines, "\n"))
}

func (m Model) viewSelectProfile() string {
	lines := []string{"Qui êtes-vous ?", ""}
	for i, p := range models.Profiles() {
		label := "  " + p.DisplayName()
		if i == m.profileCursor {
			label = tabStyle(p, true).Render("> " + p.DisplayName())
		}
		lines = append(lines, label)
	}
	lines = append(lines, "", m.help.View(m))

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...),
	)
}

func (m Model) viewConfirmDelete() string {
	title := ""
	if m.goalToDelete != nil {
		title = m.goalToDelete.Label()
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		dangerStyle.Render(fmt.Sprintf("Supprimer « %s » et toute sa progression ?", title)),
		"",
		"[y] Oui",
		"[n] Non",
	)
}
