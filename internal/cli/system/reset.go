package system

import (
	"context"
	"fmt"

	"github.com/julianstephens/duogoals/internal/cli"
)

// ResetCmd wipes the goals, progress and streaks of both profiles.
type ResetCmd struct {
	Yes bool `short:"y" help:"Do not ask for confirmation."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ctx.Println("⚠️  WARNING: This deletes the goals, progress and streaks of both profiles.")
		ctx.Println("A backup of your current data will be created first.")
		if !ctx.Confirm("Continue?") {
			ctx.Println("Reset cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.Reset(context.Background()); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}
	ctx.Println("✓ All data has been reset.")
	return nil
}
