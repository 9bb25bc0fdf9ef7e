package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/duogoals/internal/cli"
	"github.com/julianstephens/duogoals/internal/cli/backups"
	"github.com/julianstephens/duogoals/internal/cli/goals"
	"github.com/julianstephens/duogoals/internal/cli/progress"
	"github.com/julianstephens/duogoals/internal/cli/system"
	"github.com/julianstephens/duogoals/internal/cli/views"
	"github.com/julianstephens/duogoals/internal/config"
	"github.com/julianstephens/duogoals/internal/constants"
	apperrors "github.com/julianstephens/duogoals/internal/errors"
	"github.com/julianstephens/duogoals/internal/logger"
	"github.com/julianstephens/duogoals/internal/models"
	"github.com/julianstephens/duogoals/internal/storage"
	"github.com/julianstephens/duogoals/internal/store"
)

var CLI struct {
	Version    kong.VersionFlag
	Profile    string `short:"p" help:"Profile to act as (clement or charlotte)." env:"DUOGOALS_PROFILE"`
	Backend    string `help:"Storage backend: file, sqlite, postgres or redis. Overrides the config file."`
	Path       string `help:"Data file for the file and sqlite backends. Overrides the config file." type:"path"`
	ConfigFile string `name:"config-file" help:"Config file path." type:"path"`
	Debug      bool   `help:"Log debug output to stderr."`

	Init    system.InitCmd   `cmd:"" help:"Initialize duogoals storage."`
	Doctor  system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Reset   system.ResetCmd  `cmd:"" help:"Erase every goal and all progress."`
	Tui     system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Today   views.TodayCmd   `cmd:"" help:"Show today's goals and progress."`
	Week    views.WeekCmd    `cmd:"" help:"Show the current week day by day."`
	Compare views.CompareCmd `cmd:"" help:"Compare today's progress with the other profile."`
	Goal    struct {
		Add     goals.GoalAddCmd     `cmd:"" help:"Add a goal, from scratch or from a preset."`
		Edit    goals.GoalEditCmd    `cmd:"" help:"Edit an existing goal."`
		Delete  goals.GoalDeleteCmd  `cmd:"" help:"Delete a goal and its progress."`
		List    goals.GoalListCmd    `cmd:"" help:"List goals with their current progress."`
		Presets goals.GoalPresetsCmd `cmd:"" help:"List the built-in goal presets."`
	} `cmd:"" help:"Manage goals."`
	Progress struct {
		Set progress.ProgressSetCmd `cmd:"" help:"Set a goal's value for a day or week."`
		Inc progress.ProgressIncCmd `cmd:"" help:"Increase a goal's value."`
		Dec progress.ProgressDecCmd `cmd:"" help:"Decrease a goal's value."`
	} `cmd:"" help:"Record progress."`
	Streak struct {
		Show    views.StreakShowCmd    `cmd:"" help:"Show the current and longest streak." default:"1"`
		Rebuild views.StreakRebuildCmd `cmd:"" help:"Recompute the streak from recorded history."`
	} `cmd:"" help:"Inspect the daily streak."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage data backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store the PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Report whether a connection string is stored."`
	} `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

// commands that run without loading the app data
var skipLoad = []string{"init", "doctor", "keyring", "goal presets"}

func needsLoad(command string) bool {
	for _, prefix := range skipLoad {
		if command == prefix || strings.HasPrefix(command, prefix+" ") {
			return false
		}
	}
	return true
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily and weekly goals for two, with streaks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(config.LoadOptions{ConfigFile: CLI.ConfigFile})
	if err != nil {
		apperrors.Fatal(err)
	}
	if err := cfg.Apply(config.Overrides{Backend: CLI.Backend, Path: CLI.Path, Debug: CLI.Debug}); err != nil {
		apperrors.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		apperrors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, LogDir: cfg.LogDir}); err != nil {
		apperrors.Fatalf("failed to initialize logger: %v", err)
	}
	for _, w := range cfg.Warnings {
		logger.Warn(w)
		fmt.Fprintf(os.Stderr, "⚠ %s\n", w)
	}

	var profile models.Profile
	if CLI.Profile != "" {
		if profile, err = models.ParseProfile(CLI.Profile); err != nil {
			apperrors.Fatal(err)
		}
	}

	appCtx := &cli.Context{
		Config:  cfg,
		Profile: profile,
	}

	command := ctx.Command()
	// keyring commands must work while the configured slot is unreachable
	if !strings.HasPrefix(command, "keyring") {
		opts, err := cfg.StorageOptions()
		if err != nil {
			apperrors.Fatal(err)
		}
		slot, err := storage.New(opts)
		if err != nil {
			apperrors.Fatal(err)
		}
		appCtx.Slot = slot

		if needsLoad(command) {
			if err := loadStore(appCtx); err != nil {
				apperrors.Fatal(err)
			}
		}
		defer slotClose(appCtx)
	}

	logger.Debug("Running command", "command", command, "backend", cfg.Storage.Backend, "profile", profile)
	if err := ctx.Run(appCtx); err != nil {
		slotClose(appCtx)
		apperrors.Fatal(err)
	}
}

// loadStore opens the slot and reads the app data into ctx.Store. The slot
// is closed again when either step fails.
func loadStore(ctx *cli.Context) error {
	if err := ctx.Slot.Load(); err != nil {
		slotClose(ctx)
		return err
	}
	st := store.New(ctx.Slot)
	if err := st.Load(context.Background()); err != nil {
		slotClose(ctx)
		return err
	}
	ctx.Store = st
	return nil
}

// slotClose releases the slot before an exit that skips deferred calls.
// Close errors are logged only.
func slotClose(ctx *cli.Context) {
	if ctx.Slot == nil {
		return
	}
	if err := ctx.Slot.Close(); err != nil {
		logger.Warn("Failed to close storage", "error", err)
	}
}
