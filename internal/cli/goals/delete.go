package goals

import (
	"context"
	"fmt"

	"github.com/julianstephens/duogoals/internal/cli"
)

type GoalDeleteCmd struct {
	Goal string `arg:"" help:"Goal id, id prefix or title."`
	Yes  bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *GoalDeleteCmd) Run(ctx *cli.Context) error {
	profile, err := ctx.RequireProfile()
	if err != nil {
		return err
	}
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if !c.Yes {
		ctx.Printf("Deleting %s also deletes all of its recorded progress.\n", goal.Label())
		if !ctx.Confirm("Continue?") {
			ctx.Println("Delete cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeleteGoal(context.Background(), profile, goal.ID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	ctx.Printf("Deleted goal: %s (ID: %s)\n", goal.Label(), goal.ID)
	return nil
}
