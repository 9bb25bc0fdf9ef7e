package progress

import (
	"context"
	"fmt"

	"github.com/julianstephens/duogoals/internal/cli"
	"github.com/julianstephens/duogoals/internal/models"
	"github.com/julianstephens/duogoals/internal/stats"
	"github.com/julianstephens/duogoals/internal/tracker"
	"github.com/julianstephens/duogoals/internal/utils"
)

// Period picks the day or week a value is recorded for.
type Period struct {
	Date string `help:"Day to record (YYYY-MM-DD), daily goals only. Defaults to today."`
	Week string `help:"ISO week to record (YYYY-Www), weekly goals only. Defaults to this week."`
}

// resolve returns the date or week key for goal.
func (p Period) resolve(goal models.Goal, ctx *cli.Context) (string, error) {
	now := ctx.Clock()
	switch goal.Type {
	case models.GoalDaily:
		if p.Week != "" {
			return "", fmt.Errorf("--week applies to weekly goals; %s is daily", goal.Title)
		}
		if p.Date == "" {
			return utils.FormatDate(now), nil
		}
		if !utils.ValidateDate(p.Date) {
			return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", p.Date)
		}
		return p.Date, nil
	case models.GoalWeekly:
		if p.Date != "" {
			return "", fmt.Errorf("--date applies to daily goals; %s is weekly", goal.Title)
		}
		if p.Week == "" {
			return utils.ISOWeek(now), nil
		}
		if !utils.ValidateWeek(p.Week) {
			return "", fmt.Errorf("invalid week %q: expected YYYY-Www", p.Week)
		}
		return p.Week, nil
	}
	return "", fmt.Errorf("goal %s has an unknown type %q", goal.Title, goal.Type)
}

type ProgressSetCmd struct {
	Goal   string `arg:"" help:"Goal id, id prefix or title."`
	Value  string `arg:"" help:"Value reached, e.g. 1.5."`
	Period Period `embed:""`
}

func (c *ProgressSetCmd) Run(ctx *cli.Context) error {
	value, err := cli.ParseAmount(c.Value)
	if err != nil {
		return err
	}
	return record(ctx, c.Goal, c.Period, func(profile models.Profile, goal models.Goal, key string) error {
		if goal.Type == models.GoalDaily {
			return ctx.Store.UpdateDailyProgress(context.Background(), profile, tracker.DailyFor(goal, key, value))
		}
		return ctx.Store.UpdateWeeklyProgress(context.Background(), profile, tracker.WeeklyFor(goal, key, value))
	})
}

type ProgressIncCmd struct {
	Goal   string `arg:"" help:"Goal id, id prefix or title."`
	By     string `arg:"" optional:"" default:"1" help:"Amount to add."`
	Period Period `embed:""`
}

func (c *ProgressIncCmd) Run(ctx *cli.Context) error {
	return step(ctx, c.Goal, c.By, 1, c.Period)
}

type ProgressDecCmd struct {
	Goal   string `arg:"" help:"Goal id, id prefix or title."`
	By     string `arg:"" optional:"" default:"1" help:"Amount to remove. Values never go below zero."`
	Period Period `embed:""`
}

func (c *ProgressDecCmd) Run(ctx *cli.Context) error {
	return step(ctx, c.Goal, c.By, -1, c.Period)
}

func step(ctx *cli.Context, ref, by string, sign float64, period Period) error {
	amount, err := cli.ParseAmount(by)
	if err != nil {
		return err
	}
	delta := sign * amount
	return record(ctx, ref, period, func(profile models.Profile, goal models.Goal, key string) error {
		if goal.Type == models.GoalDaily {
			return ctx.Store.StepDaily(context.Background(), profile, goal.ID, key, delta)
		}
		return ctx.Store.StepWeekly(context.Background(), profile, goal.ID, key, delta)
	})
}

// record resolves the goal and period, runs write and reports the result.
func record(ctx *cli.Context, ref string, period Period, write func(models.Profile, models.Goal, string) error) error {
	profile, err := ctx.RequireProfile()
	if err != nil {
		return err
	}
	goal, err := ctx.ResolveGoal(ref)
	if err != nil {
		return err
	}
	key, err := period.resolve(goal, ctx)
	if err != nil {
		return err
	}

	before, err := ctx.User()
	if err != nil {
		return err
	}
	if err := write(profile, goal, key); err != nil {
		return fmt.Errorf("failed to record progress: %w", err)
	}
	after, err := ctx.User()
	if err != nil {
		return err
	}

	var current float64
	var completed bool
	if goal.Type == models.GoalDaily {
		p, _ := after.Daily(key, goal.ID)
		current, completed = p.Current, p.Completed
	} else {
		p, _ := after.Weekly(key, goal.ID)
		current, completed = p.Current, p.Completed
	}

	ctx.Printf("%s  (%s)\n", cli.GoalLine(goal, current, completed), key)
	if after.CurrentStreak != before.CurrentStreak || after.LastStreakDate != before.LastStreakDate {
		summary := stats.StreakSummary(after)
		ctx.Println(cli.SuccessStyle.Render("🔥 " + summary.Label()))
	}
	return nil
}
