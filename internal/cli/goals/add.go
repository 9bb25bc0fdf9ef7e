package goals

import (
	"context"
	"fmt"
	"strings"

	"github.com/julianstephens/duogoals/internal/cli"
	"github.com/julianstephens/duogoals/internal/models"
	"github.com/julianstephens/duogoals/internal/utils"
)

type GoalAddCmd struct {
	Title       string  `arg:"" optional:"" help:"Goal title."`
	Preset      string  `help:"Start from a preset (see 'goal presets')."`
	Type        string  `short:"t" help:"Goal type (daily|weekly)."`
	Target      float64 `short:"n" help:"Target value, must be positive."`
	Unit        string  `short:"u" help:"Unit of the target (L, min, pas...)."`
	Description string  `short:"d" help:"Optional description."`
	Icon        string  `short:"i" help:"Optional emoji shown before the title."`
}

func (c *GoalAddCmd) Run(ctx *cli.Context) error {
	profile, err := ctx.RequireProfile()
	if err != nil {
		return err
	}

	goal, err := c.build()
	if err != nil {
		return err
	}
	if err := goal.Validate(); err != nil {
		return fmt.Errorf("invalid goal: %w", err)
	}

	if err := ctx.Store.AddGoal(context.Background(), profile, goal); err != nil {
		return fmt.Errorf("failed to add goal: %w", err)
	}

	ctx.Printf("✓ Added %s goal for %s: %s (%s %s) [%s]\n",
		goal.Type, profile.DisplayName(), goal.Label(),
		cli.FormatAmount(goal.Target), goal.Unit, cli.ShortID(goal.ID))
	return nil
}

// build merges the flags over the preset, if any.
func (c *GoalAddCmd) build() (models.Goal, error) {
	goal := models.Goal{ID: utils.NewGoalID(), Type: models.GoalDaily}

	if c.Preset != "" {
		preset, ok := models.FindPreset(c.Preset)
		if !ok {
			return models.Goal{}, fmt.Errorf("unknown preset %q (see 'duogoals goal presets')", c.Preset)
		}
		goal = preset.Goal(goal.ID)
	} else if strings.TrimSpace(c.Title) == "" {
		return models.Goal{}, fmt.Errorf("a title or --preset is required")
	}

	if c.Title != "" {
		goal.Title = strings.TrimSpace(c.Title)
	}
	if c.Type != "" {
		t, err := models.ParseGoalType(c.Type)
		if err != nil {
			return models.Goal{}, err
		}
		goal.Type = t
	}
	if c.Target != 0 {
		goal.Target = c.Target
	}
	if c.Unit != "" {
		goal.Unit = strings.TrimSpace(c.Unit)
	}
	if c.Description != "" {
		goal.Description = c.Description
	}
	if c.Icon != "" {
		goal.Icon = c.Icon
	}
	return goal, nil
}
