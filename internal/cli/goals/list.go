package goals

import (
	"fmt"

	"github.com/julianstephens/duogoals/internal/cli"
	"github.com/julianstephens/duogoals/internal/models"
	"github.com/julianstephens/duogoals/internal/utils"
)

type GoalListCmd struct {
	Type string `short:"t" help:"Only list goals of this type (daily|weekly)."`
}

func (c *GoalListCmd) Run(ctx *cli.Context) error {
	user, err := ctx.User()
	if err != nil {
		return err
	}

	var only models.GoalType
	if c.Type != "" {
		if only, err = models.ParseGoalType(c.Type); err != nil {
			return err
		}
	}

	now := ctx.Clock()
	today := utils.FormatDate(now)
	week := utils.ISOWeek(now)

	ctx.Println(cli.TitleStyle.Render(fmt.Sprintf("Objectifs de %s", user.Profile.DisplayName())))
	if len(user.Goals) == 0 {
		ctx.Println("No goals yet. Add one with 'duogoals goal add' or 'duogoals goal add --preset water'.")
		return nil
	}

	for _, t := range []models.GoalType{models.GoalDaily, models.GoalWeekly} {
		if only != "" && t != only {
			continue
		}
		goals := user.GoalsOfType(t)
		if len(goals) == 0 {
			continue
		}

		ctx.Println()
		if t == models.GoalDaily {
			ctx.Printf("Quotidiens (%s)\n", today)
		} else {
			ctx.Printf("Hebdomadaires (%s)\n", week)
		}
		for _, g := range goals {
			var current float64
			var completed bool
			if t == models.GoalDaily {
				if p, ok := user.Daily(today, g.ID); ok {
					current, completed = p.Current, p.Completed
				}
			} else if p, ok := user.Weekly(week, g.ID); ok {
				current, completed = p.Current, p.Completed
			}
			ctx.Println("  " + cli.GoalLine(g, current, completed))
			if g.Description != "" {
				ctx.Println("    " + cli.MutedStyle.Render(g.Description))
			}
		}
	}
	return nil
}

type GoalPresetsCmd struct{}

func (c *GoalPresetsCmd) Run(ctx *cli.Context) error {
	ctx.Println(cli.TitleStyle.Render("Presets"))
	for _, p := range models.Presets() {
		ctx.Printf("  %-11s %s %-18s %s %s (%s)\n",
			p.Key, p.Icon, p.Title, cli.FormatAmount(p.Target), p.Unit, p.Type)
	}
	return nil
}
