package goals

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/julianstephens/duogoals/internal/cli/clitest"
	apperrors "github.com/julianstephens/duogoals/internal/errors"
	"github.com/julianstephens/duogoals/internal/models"
	"github.com/julianstephens/duogoals/internal/tracker"
)

func water() models.Goal {
	return models.Goal{ID: "water-1", Title: "Boire de l'eau", Type: models.GoalDaily, Target: 2, Unit: "L"}
}

func TestGoalAddCmd(t *testing.T) {
	tests := []struct {
		name      string
		cmd       GoalAddCmd
		wantError bool
		want      models.Goal
	}{
		{
			name: "explicit fields",
			cmd:  GoalAddCmd{Title: "Lecture", Type: "daily", Target: 20, Unit: "pages"},
			want: models.Goal{Title: "Lecture", Type: models.GoalDaily, Target: 20, Unit: "pages"},
		},
		{
			name: "preset",
			cmd:  GoalAddCmd{Preset: "sport"},
			want: models.Goal{Title: "Séances de sport", Icon: "💪", Type: models.GoalWeekly, Target: 3, Unit: "séances"},
		},
		{
			name: "preset with overrides",
			cmd:  GoalAddCmd{Preset: "water", Target: 3, Title: "Eau"},
			want: models.Goal{Title: "Eau", Icon: "💧", Type: models.GoalDaily, Target: 3, Unit: "L"},
		},
		{name: "unknown preset", cmd: GoalAddCmd{Preset: "yoga"}, wantError: true},
		{name: "missing title", cmd: GoalAddCmd{Target: 1, Unit: "x"}, wantError: true},
		{name: "missing target", cmd: GoalAddCmd{Title: "Lecture", Unit: "pages"}, wantError: true},
		{name: "missing unit", cmd: GoalAddCmd{Title: "Lecture", Target: 1}, wantError: true},
		{name: "NaN target", cmd: GoalAddCmd{Title: "Lecture", Target: math.NaN(), Unit: "pages"}, wantError: true},
		{name: "bad type", cmd: GoalAddCmd{Title: "Lecture", Type: "monthly", Target: 1, Unit: "x"}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := clitest.New(t, models.ProfileClement)
			err := tt.cmd.Run(env.Ctx)
			if (err != nil) != tt.wantError {
				t.Fatalf("GoalAddCmd.Run() error = %v, wantError %v", err, tt.wantError)
			}

			goals := env.User(t).Goals
			if tt.wantError {
				if len(goals) != 0 {
					t.Errorf("expected no goal stored, got %d", len(goals))
				}
				return
			}
			if len(goals) != 1 {
				t.Fatalf("expected 1 goal, got %d", len(goals))
			}
			got := goals[0]
			if got.ID == "" {
				t.Error("expected a generated id")
			}
			got.ID = ""
			if got != tt.want {
				t.Errorf("stored goal = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGoalAddCmd_RequiresProfile(t *testing.T) {
	env := clitest.New(t, "")
	cmd := &GoalAddCmd{Preset: "water"}
	if err := cmd.Run(env.Ctx); err == nil {
		t.Fatal("expected an error without --profile")
	}
}

func TestGoalEditCmd(t *testing.T) {
	env := clitest.New(t, models.ProfileClement)
	env.AddGoal(t, water())

	target := 2.5
	icon := "🚰"
	cmd := &GoalEditCmd{Goal: "boire de l'eau", Target: &target, Icon: &icon}
	if err := cmd.Run(env.Ctx); err != nil {
		t.Fatalf("GoalEditCmd.Run() failed: %v", err)
	}

	g, _ := env.User(t).Goal("water-1")
	if g.Target != 2.5 || g.Icon != "🚰" || g.Title != "Boire de l'eau" {
		t.Errorf("unexpected goal after edit: %+v", g)
	}
}

func TestGoalEditCmd_Errors(t *testing.T) {
	env := clitest.New(t, models.ProfileClement)
	env.AddGoal(t, water())

	zero := 0.0
	badType := "monthly"
	blank := " "
	tests := []struct {
		name string
		cmd  GoalEditCmd
	}{
		{name: "no changes", cmd: GoalEditCmd{Goal: "water-1"}},
		{name: "unknown goal", cmd: GoalEditCmd{Goal: "nope", Target: &zero}},
		{name: "non-positive target", cmd: GoalEditCmd{Goal: "water-1", Target: &zero}},
		{name: "bad type", cmd: GoalEditCmd{Goal: "water-1", Type: &badType}},
		{name: "blank title", cmd: GoalEditCmd{Goal: "water-1", Title: &blank}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Run(env.Ctx); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if g, _ := env.User(t).Goal("water-1"); g != water() {
		t.Errorf("goal changed by failed edits: %+v", g)
	}
}

func TestGoalDeleteCmd(t *testing.T) {
	env := clitest.New(t, models.ProfileClement)
	g := env.AddGoal(t, water())
	record := tracker.DailyFor(g, "2026-10-16", 2)
	if err := env.Ctx.Store.UpdateDailyProgress(context.Background(), env.Ctx.Profile, record); err != nil {
		t.Fatalf("failed to record progress: %v", err)
	}

	cmd := &GoalDeleteCmd{Goal: "water-1", Yes: true}
	if err := cmd.Run(env.Ctx); err != nil {
		t.Fatalf("GoalDeleteCmd.Run() failed: %v", err)
	}

	user := env.User(t)
	if len(user.Goals) != 0 || len(user.DailyProgress) != 0 {
		t.Errorf("expected goal and progress removed, got %d goals, %d records", len(user.Goals), len(user.DailyProgress))
	}

	backups, err := env.Ctx.BackupManager().ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("expected an automatic backup before delete, got %d", len(backups))
	}
}

func TestGoalDeleteCmd_Confirmation(t *testing.T) {
	env := clitest.New(t, models.ProfileClement)
	env.AddGoal(t, water())

	env.Answer("n")
	cmd := &GoalDeleteCmd{Goal: "water-1"}
	if err := cmd.Run(env.Ctx); err != nil {
		t.Fatalf("GoalDeleteCmd.Run() failed: %v", err)
	}
	if len(env.User(t).Goals) != 1 {
		t.Fatal("goal deleted despite a negative answer")
	}

	env.Answer("y")
	if err := cmd.Run(env.Ctx); err != nil {
		t.Fatalf("GoalDeleteCmd.Run() failed: %v", err)
	}
	if len(env.User(t).Goals) != 0 {
		t.Error("goal kept despite confirmation")
	}
}

func TestGoalDeleteCmd_Unknown(t *testing.T) {
	env := clitest.New(t, models.ProfileClement)
	cmd := &GoalDeleteCmd{Goal: "nope", Yes: true}
	if err := cmd.Run(env.Ctx); !errors.Is(err, apperrors.ErrGoalNotFound) {
		t.Errorf("expected ErrGoalNotFound, got %v", err)
	}
}

func TestGoalListCmd(t *testing.T) {
	env := clitest.New(t, models.ProfileCharlotte)

	cmd := &GoalListCmd{}
	if err := cmd.Run(env.Ctx); err != nil {
		t.Fatalf("GoalListCmd.Run() failed: %v", err)
	}
	if !strings.Contains(env.Out.String(), "No goals yet") {
		t.Errorf("expected empty hint, got %q", env.Out.String())
	}

	env.AddGoal(t, water())
	env.AddGoal(t, models.Goal{ID: "sport-1", Title: "Sport", Type: models.GoalWeekly, Target: 3, Unit: "séances"})

	env.Out.Reset()
	if err := cmd.Run(env.Ctx); err != nil {
		t.Fatalf("GoalListCmd.Run() failed: %v", err)
	}
	out := env.Out.String()
	for _, want := range []string{"Charlotte", "Boire de l'eau", "Sport", "2026-10-16", "2026-W42"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	env.Out.Reset()
	weekly := &GoalListCmd{Type: "weekly"}
	if err := weekly.Run(env.Ctx); err != nil {
		t.Fatalf("GoalListCmd.Run() failed: %v", err)
	}
	if strings.Contains(env.Out.String(), "Boire de l'eau") {
		t.Error("daily goal listed with --type weekly")
	}

	if err := (&GoalListCmd{Type: "monthly"}).Run(env.Ctx); err == nil {
		t.Error("expected an error for an unknown type")
	}
}

func TestGoalPresetsCmd(t *testing.T) {
	env := clitest.New(t, "")
	if err := (&GoalPresetsCmd{}).Run(env.Ctx); err != nil {
		t.Fatalf("GoalPresetsCmd.Run() failed: %v", err)
	}
	for _, p := range models.Presets() {
		if !strings.Contains(env.Out.String(), p.Key) {
			t.Errorf("preset %s not listed", p.Key)
		}
	}
}
