package system

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/duogoals/internal/cli"
	"github.com/julianstephens/duogoals/internal/constants"
	"github.com/julianstephens/duogoals/internal/models"
	"github.com/julianstephens/duogoals/internal/storage"
	"github.com/julianstephens/duogoals/internal/store"
	"github.com/julianstephens/duogoals/internal/utils"
)

type DoctorCmd struct{}

type check struct {
	name string
	// needsSlot checks are skipped when the slot is unreachable
	needsSlot bool
	// warnOnly failures do not fail the run
	warnOnly bool
	run      func(*cli.Context) error
}

var checks = []check{
	{name: "Schema version", needsSlot: true, run: checkSchemaVersion},
	{name: "Stored data", needsSlot: true, run: checkStoredData},
	{name: "Goal integrity", needsSlot: true, run: checkGoalIntegrity},
	{name: "Progress integrity", needsSlot: true, run: checkProgressIntegrity},
	{name: "Streak consistency", needsSlot: true, run: checkStreaks},
	{name: "Backups present", warnOnly: true, run: checkBackupsPresent},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	slotReachable := true

	if err := checkSlotReachable(ctx); err != nil {
		ctx.Printf("❌ Storage reachable: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
		slotReachable = false
	} else {
		ctx.Printf("✓ Storage reachable: OK (%s)\n", ctx.Slot.GetConfigPath())
	}

	for _, c := range checks {
		if c.needsSlot && !slotReachable {
			ctx.Printf("⊘ %s: SKIPPED (storage not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkSlotReachable(ctx *cli.Context) error {
	if err := ctx.Slot.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	c, cancel := context.WithTimeout(context.Background(), constants.SlotTimeout)
	defer cancel()
	if _, err := ctx.Slot.Get(c, constants.StorageKey); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to read storage: %w", err)
	}

	if ctx.Store == nil {
		st := store.New(ctx.Slot, store.WithClock(ctx.Clock))
		if err := st.Load(c); err != nil {
			return err
		}
		ctx.Store = st
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	runner, ok, err := storage.MigrationRunner(ctx.Slot)
	if !ok {
		// key-value backends have no schema
		return nil
	}
	if err != nil {
		return err
	}

	st, err := runner.Status()
	if err != nil {
		return err
	}
	if !st.UpToDate() {
		return fmt.Errorf("schema version is %d, expected %d", st.Current, st.Latest)
	}
	return nil
}

// checkStoredData decodes the raw slot value. Load falls back to defaults
// on malformed data, so this is the only place the corruption is reported.
func checkStoredData(ctx *cli.Context) error {
	c, cancel := context.WithTimeout(context.Background(), constants.SlotTimeout)
	defer cancel()

	raw, err := ctx.Slot.Get(c, constants.StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if _, _, err := store.Decode(raw); err != nil {
		return fmt.Errorf("stored data cannot be parsed and will be replaced on the next write: %w", err)
	}
	return nil
}

func checkGoalIntegrity(ctx *cli.Context) error {
	data := ctx.Store.Snapshot()
	for _, profile := range models.Profiles() {
		user, _ := data.User(profile)
		seen := make(map[string]bool)
		for _, g := range user.Goals {
			if seen[g.ID] {
				return fmt.Errorf("%s: duplicate goal ID found: %s", profile, g.ID)
			}
			seen[g.ID] = true
			if err := g.Validate(); err != nil {
				return fmt.Errorf("%s: goal %s: %w", profile, g.ID, err)
			}
		}
	}
	return nil
}

func checkProgressIntegrity(ctx *cli.Context) error {
	data := ctx.Store.Snapshot()
	for _, profile := range models.Profiles() {
		user, _ := data.User(profile)

		daily := make(map[string]bool)
		for _, p := range user.DailyProgress {
			if !utils.ValidateDate(p.Date) {
				return fmt.Errorf("%s: invalid date format: %q", profile, p.Date)
			}
			if _, ok := user.Goal(p.GoalID); !ok {
				return fmt.Errorf("%s: record on %s references unknown goal %s", profile, p.Date, p.GoalID)
			}
			k := p.Date + "|" + p.GoalID
			if daily[k] {
				return fmt.Errorf("%s: duplicate record for goal %s on %s", profile, p.GoalID, p.Date)
			}
			daily[k] = true
		}

		weekly := make(map[string]bool)
		for _, p := range user.WeeklyProgress {
			if !utils.ValidateWeek(p.Week) {
				return fmt.Errorf("%s: invalid week format: %q", profile, p.Week)
			}
			if _, ok := user.Goal(p.GoalID); !ok {
				return fmt.Errorf("%s: record for %s references unknown goal %s", profile, p.Week, p.GoalID)
			}
			k := p.Week + "|" + p.GoalID
			if weekly[k] {
				return fmt.Errorf("%s: duplicate record for goal %s in %s", profile, p.GoalID, p.Week)
			}
			weekly[k] = true
		}
	}
	return nil
}

func checkStreaks(ctx *cli.Context) error {
	data := ctx.Store.Snapshot()
	for _, profile := range models.Profiles() {
		user, _ := data.User(profile)
		if user.CurrentStreak > user.LongestStreak {
			return fmt.Errorf("%s: current streak %d exceeds longest %d (run 'duogoals streak rebuild')",
				profile, user.CurrentStreak, user.LongestStreak)
		}
		if user.LastStreakDate != "" && !utils.ValidateDate(user.LastStreakDate) {
			return fmt.Errorf("%s: invalid last streak date %q", profile, user.LastStreakDate)
		}
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	backups, err := ctx.BackupManager().ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'duogoals backup create'")
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := ctx.Clock()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
