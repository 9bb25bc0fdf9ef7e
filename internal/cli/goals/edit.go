package goals

import (
	"context"
	"fmt"

	"github.com/julianstephens/duogoals/internal/cli"
	"github.com/julianstephens/duogoals/internal/models"
)

type GoalEditCmd struct {
	Goal        string   `arg:"" help:"Goal id, id prefix or title."`
	Title       *string  `help:"New title."`
	Type        *string  `short:"t" help:"New type (daily|weekly)."`
	Target      *float64 `short:"n" help:"New target value."`
	Unit        *string  `short:"u" help:"New unit."`
	Description *string  `short:"d" help:"New description."`
	Icon        *string  `short:"i" help:"New icon, empty to remove."`
}

func (c *GoalEditCmd) Run(ctx *cli.Context) error {
	profile, err := ctx.RequireProfile()
	if err != nil {
		return err
	}
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	patch := models.GoalPatch{
		Title:       c.Title,
		Target:      c.Target,
		Unit:        c.Unit,
		Description: c.Description,
		Icon:        c.Icon,
	}
	if c.Type != nil {
		t, err := models.ParseGoalType(*c.Type)
		if err != nil {
			return err
		}
		patch.Type = &t
	}
	if patch.IsEmpty() {
		return fmt.Errorf("nothing to change: pass at least one of --title, --type, --target, --unit, --description, --icon")
	}

	updated := patch.Apply(goal)
	if err := updated.Validate(); err != nil {
		return fmt.Errorf("invalid goal: %w", err)
	}

	if err := ctx.Store.UpdateGoal(context.Background(), profile, goal.ID, patch); err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}

	ctx.Printf("✓ Updated goal: %s (%s %s, %s)\n",
		updated.Label(), cli.FormatAmount(updated.Target), updated.Unit, updated.Type)
	return nil
}
