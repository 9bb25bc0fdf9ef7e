package system

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/duogoals/internal/cli"
	"github.com/julianstephens/duogoals/internal/constants"
	"github.com/julianstephens/duogoals/internal/storage"
	"github.com/julianstephens/duogoals/internal/store"
)

type InitCmd struct {
	Force bool `help:"Delete an existing data file before initialization (file and sqlite backends)."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	path := ctx.Slot.GetConfigPath()
	local := ctx.Config == nil ||
		ctx.Config.Storage.Backend == constants.BackendFile ||
		ctx.Config.Storage.Backend == constants.BackendSQLite

	if c.Force && local {
		if _, err := os.Stat(path); err == nil {
			if err := ctx.Slot.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			ctx.Printf("Deleted existing storage at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.Slot.Init(); err != nil {
		if errors.Is(err, storage.ErrAlreadyInitialized) {
			return fmt.Errorf("%w (use --force to start over)", err)
		}
		return err
	}

	// Write the empty profiles so the slot is never read as absent again.
	st := store.New(ctx.Slot, store.WithClock(ctx.Clock))
	if err := st.Load(context.Background()); err != nil {
		return err
	}
	if err := st.Reset(context.Background()); err != nil {
		return fmt.Errorf("failed to write initial data: %w", err)
	}
	ctx.Store = st

	ctx.Printf("Initialized duogoals storage at: %s\n", ctx.Slot.GetConfigPath())
	return nil
}
