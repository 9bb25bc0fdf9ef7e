package cli_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/julianstephens/duogoals/internal/cli"
	"github.com/julianstephens/duogoals/internal/cli/clitest"
	apperrors "github.com/julianstephens/duogoals/internal/errors"
	"github.com/julianstephens/duogoals/internal/models"
)

func goal(id, title string) models.Goal {
	return models.Goal{ID: id, Title: title, Type: models.GoalDaily, Target: 1, Unit: "fois"}
}

func TestResolveGoal(t *testing.T) {
	env := clitest.New(t, models.ProfileClement)
	env.AddGoal(t, goal("abcd1234-0000", "Boire de l'eau"))
	env.AddGoal(t, goal("abcd9999-0000", "Méditation"))
	env.AddGoal(t, goal("ffff0000-0000", "Sommeil"))

	tests := []struct {
		name    string
		ref     string
		wantID  string
		wantErr error
	}{
		{name: "exact id", ref: "ffff0000-0000", wantID: "ffff0000-0000"},
		{name: "title ignores case", ref: "boire de L'EAU", wantID: "abcd1234-0000"},
		{name: "unique id prefix", ref: "ffff", wantID: "ffff0000-0000"},
		{name: "ambiguous prefix", ref: "abcd", wantErr: apperrors.ErrAmbiguousGoal},
		{name: "unknown", ref: "running", wantErr: apperrors.ErrGoalNotFound},
		{name: "empty", ref: "  ", wantErr: apperrors.ErrGoalNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := env.Ctx.ResolveGoal(tt.ref)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ResolveGoal(%q) error = %v, want %v", tt.ref, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveGoal(%q) failed: %v", tt.ref, err)
			}
			if g.ID != tt.wantID {
				t.Errorf("ResolveGoal(%q) = %s, want %s", tt.ref, g.ID, tt.wantID)
			}
		})
	}
}

func TestResolveGoal_OtherProfileInvisible(t *testing.T) {
	env := clitest.New(t, models.ProfileClement)
	env.AddGoal(t, goal("abcd1234-0000", "Sommeil"))

	env.Ctx.Profile = models.ProfileCharlotte
	if _, err := env.Ctx.ResolveGoal("Sommeil"); !errors.Is(err, apperrors.ErrGoalNotFound) {
		t.Errorf("expected charlotte not to see clement's goal, got %v", err)
	}
}

func TestRequireProfile(t *testing.T) {
	env := clitest.New(t, "")
	if _, err := env.Ctx.RequireProfile(); err == nil {
		t.Fatal("expected an error without a profile")
	}
	if _, err := env.Ctx.User(); err == nil {
		t.Fatal("expected User to fail without a profile")
	}

	env.Ctx.Profile = models.ProfileCharlotte
	p, err := env.Ctx.RequireProfile()
	if err != nil || p != models.ProfileCharlotte {
		t.Errorf("RequireProfile() = %v, %v", p, err)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y", true},
		{"YES", true},
		{"n", false},
		{"", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			env := clitest.New(t, models.ProfileClement)
			env.Answer(tt.input)
			if got := env.Ctx.Confirm("Continue?"); got != tt.want {
				t.Errorf("Confirm with %q = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(env.Out.String(), "Continue? [y/N]") {
				t.Errorf("prompt not printed: %q", env.Out.String())
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"2", 2, false},
		{"1.5", 1.5, false},
		{"1,5", 1.5, false},
		{" 0 ", 0, false},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := cli.ParseAmount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAmount(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := map[float64]string{2: "2", 1.5: "1.5", 10000: "10000", 0.25: "0.25"}
	for v, want := range tests {
		if got := cli.FormatAmount(v); got != want {
			t.Errorf("FormatAmount(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		current, target float64
		filled          int
	}{
		{0, 2, 0},
		{1, 2, 10},
		{5, 2, 20},
		{1, 0, 0},
	}
	for _, tt := range tests {
		bar := cli.ProgressBar(tt.current, tt.target)
		if got := strings.Count(bar, "█"); got != tt.filled {
			t.Errorf("ProgressBar(%v, %v) has %d filled cells, want %d", tt.current, tt.target, got, tt.filled)
		}
	}
}

func TestPerformAutomaticBackup(t *testing.T) {
	env := clitest.New(t, models.ProfileClement)
	env.Ctx.PerformAutomaticBackup()

	backups, err := env.Ctx.BackupManager().ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("expected 1 automatic backup, got %d", len(backups))
	}
}
