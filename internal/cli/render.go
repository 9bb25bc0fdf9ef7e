package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/duogoals/internal/models"
	"github.com/julianstephens/duogoals/internal/stats"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	DangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

const barWidth = 20

// ProgressBar draws current/target as a fixed-width bar.
func ProgressBar(current, target float64) string {
	ratio := 0.0
	if target > 0 {
		ratio = math.Min(current/target, 1)
	}
	filled := int(math.Round(ratio * barWidth))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	if ratio >= 1 {
		return SuccessStyle.Render(bar)
	}
	return bar
}

// GoalLine renders one goal with its progress for a listing.
func GoalLine(g models.Goal, current float64, completed bool) string {
	mark := "○"
	if completed {
		mark = SuccessStyle.Render("✓")
	}
	return fmt.Sprintf("%s %-28s %s %s/%s %s %s",
		mark, g.Label(), ProgressBar(current, g.Target),
		FormatAmount(current), FormatAmount(g.Target), g.Unit,
		MutedStyle.Render(ShortID(g.ID)))
}

// BannerLine renders the motivation banner, empty when there is none.
func BannerLine(b stats.Banner) string {
	msg := b.Message()
	switch b.Kind {
	case stats.BannerWarning:
		return WarningStyle.Render(msg)
	case stats.BannerSuccess:
		return SuccessStyle.Render(msg)
	case stats.BannerNeutral:
		return MutedStyle.Render(msg)
	}
	return ""
}
