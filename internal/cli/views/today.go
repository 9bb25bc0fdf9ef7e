package views

import (
	"fmt"

	"github.com/julianstephens/duogoals/internal/cli"
	"github.com/julianstephens/duogoals/internal/models"
	"github.com/julianstephens/duogoals/internal/stats"
	"github.com/julianstephens/duogoals/internal/utils"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	user, err := ctx.User()
	if err != nil {
		return err
	}
	now := ctx.Clock()
	today := utils.FormatDate(now)
	week := utils.ISOWeek(now)

	ctx.Println(cli.TitleStyle.Render(fmt.Sprintf("%s · %s", user.Profile.DisplayName(), today)))
	ctx.Printf("🔥 %s\n", stats.StreakSummary(user).Label())
	if banner := cli.BannerLine(stats.Motivation(user, now)); banner != "" {
		ctx.Println(banner)
	}

	if len(user.Goals) == 0 {
		ctx.Println()
		ctx.Println("No goals yet. Add one with 'duogoals goal add --preset water'.")
		return nil
	}

	if daily := user.GoalsOfType(models.GoalDaily); len(daily) > 0 {
		ctx.Println()
		ctx.Println("Quotidiens")
		for _, g := range daily {
			p, _ := user.Daily(today, g.ID)
			ctx.Println("  " + cli.GoalLine(g, p.Current, p.Completed))
		}
	}
	if weekly := user.GoalsOfType(models.GoalWeekly); len(weekly) > 0 {
		ctx.Println()
		ctx.Printf("Hebdomadaires (%s)\n", week)
		for _, g := range weekly {
			p, _ := user.Weekly(week, g.ID)
			ctx.Println("  " + cli.GoalLine(g, p.Current, p.Completed))
		}
	}

	ctx.Println()
	ctx.Printf("Progression du jour: %.0f%%\n", stats.TodayPercentage(user, now))
	return printComparison(ctx, user, now)
}
