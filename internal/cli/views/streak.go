package views

import (
	"context"
	"fmt"

	"github.com/julianstephens/duogoals/internal/cli"
	"github.com/julianstephens/duogoals/internal/stats"
)

type StreakShowCmd struct{}

func (c *StreakShowCmd) Run(ctx *cli.Context) error {
	user, err := ctx.User()
	if err != nil {
		return err
	}
	summary := stats.StreakSummary(user)

	ctx.Println(cli.TitleStyle.Render(fmt.Sprintf("Série de %s", user.Profile.DisplayName())))
	ctx.Printf("  🔥 Série actuelle: %s\n", summary.Label())
	ctx.Printf("  🏆 Record: %d jour%s  %s\n", summary.Longest, plural(summary.Longest),
		cli.MutedStyle.Render(summary.RecordLabel()))
	if user.LastStreakDate != "" {
		ctx.Printf("  Dernier jour complet: %s\n", user.LastStreakDate)
	}
	return nil
}

// StreakRebuildCmd recomputes the streak from the recorded daily history.
type StreakRebuildCmd struct{}

func (c *StreakRebuildCmd) Run(ctx *cli.Context) error {
	profile, err := ctx.RequireProfile()
	if err != nil {
		return err
	}
	before, err := ctx.User()
	if err != nil {
		return err
	}

	if err := ctx.Store.RebuildStreak(context.Background(), profile); err != nil {
		return fmt.Errorf("failed to rebuild streak: %w", err)
	}

	after, err := ctx.User()
	if err != nil {
		return err
	}
	ctx.Printf("✓ Streak rebuilt for %s: current %d → %d, longest %d → %d\n",
		profile.DisplayName(), before.CurrentStreak, after.CurrentStreak,
		before.LongestStreak, after.LongestStreak)
	return nil
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
