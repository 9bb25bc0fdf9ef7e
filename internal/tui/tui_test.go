package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/duogoals/internal/constants"
	"github.com/julianstephens/duogoals/internal/models"
	"github.com/julianstephens/duogoals/internal/storage"
	"github.com/julianstephens/duogoals/internal/store"
	"github.com/julianstephens/duogoals/internal/tui/components/goallist"
)

var fixedNow = time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

var waterGoal = models.Goal{ID: "water-1", Title: "Eau", Type: models.GoalDaily, Target: 2, Unit: "L"}

func newStore(t *testing.T) *store.Store {
	t.Helper()
	slot := storage.NewFileStore(filepath.Join(t.TempDir(), "data.json"))
	if err := slot.Load(); err != nil {
		t.Fatalf("failed to load slot: %v", err)
	}
	st := store.New(slot, store.WithClock(clock))
	if err := st.Load(context.Background()); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	return st
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msg to m and then every message produced by the returned command.
func send(m Model, msg tea.Msg) Model {
	next, cmd := m.Update(msg)
	m = next.(Model)
	for cmd != nil {
		out := cmd()
		switch out.(type) {
		case goallist.StepMsg, goallist.AddGoalMsg, goallist.DeleteGoalMsg:
			next, cmd = m.Update(out)
			m = next.(Model)
		default:
			cmd = nil
		}
	}
	return m
}

// newModel returns a model sized like a regular terminal.
func newModel(st *store.Store, profile models.Profile) Model {
	return send(NewModel(st, profile, clock), tea.WindowSizeMsg{Width: 100, Height: 40})
}

func TestNewModel_StartState(t *testing.T) {
	st := newStore(t)

	m := NewModel(st, "", clock)
	if m.State() != constants.StateSelectProfile {
		t.Errorf("expected profile selector without a profile, got %v", m.State())
	}

	m = NewModel(st, models.ProfileCharlotte, clock)
	if m.State() != constants.StateDashboard || m.Profile() != models.ProfileCharlotte {
		t.Errorf("expected charlotte's dashboard, got state %v profile %q", m.State(), m.Profile())
	}
}

func TestSelectProfile(t *testing.T) {
	m := newModel(newStore(t), "")

	m = send(m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Profile() != models.ProfileCharlotte || m.State() != constants.StateDashboard {
		t.Fatalf("expected charlotte selected, got %q in state %v", m.Profile(), m.State())
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Profile() != models.ProfileClement {
		t.Errorf("tab should switch to clement, got %q", m.Profile())
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.State() != constants.StateSelectProfile {
		t.Errorf("esc should return to the selector, got %v", m.State())
	}
}

func TestStepKeys(t *testing.T) {
	st := newStore(t)
	if err := st.AddGoal(context.Background(), models.ProfileClement, waterGoal); err != nil {
		t.Fatal(err)
	}
	m := newModel(st, models.ProfileClement)

	m = send(m, runes("+"))
	m = send(m, runes("+"))
	p, ok := st.GetDailyProgress(models.ProfileClement, "2026-10-16", waterGoal.ID)
	if !ok || p.Current != 2 || !p.Completed {
		t.Fatalf("after two increments: %+v (found %v)", p, ok)
	}

	user, _ := st.Snapshot().User(models.ProfileClement)
	if user.CurrentStreak != 1 {
		t.Errorf("completing the only daily goal should start a streak, got %d", user.CurrentStreak)
	}

	for i := 0; i < 3; i++ {
		m = send(m, runes("-"))
	}
	p, _ = st.GetDailyProgress(models.ProfileClement, "2026-10-16", waterGoal.ID)
	if p.Current != 0 || p.Completed {
		t.Errorf("value should clamp at zero, got %+v", p)
	}

	if view := m.View(); !strings.Contains(view, "0/2 L") {
		t.Errorf("list not refreshed after stepping:\n%s", view)
	}
}

func TestStepKeys_Weekly(t *testing.T) {
	st := newStore(t)
	sport := models.Goal{ID: "sport-1", Title: "Sport", Type: models.GoalWeekly, Target: 3, Unit: "séances"}
	if err := st.AddGoal(context.Background(), models.ProfileCharlotte, sport); err != nil {
		t.Fatal(err)
	}
	m := newModel(st, models.ProfileCharlotte)

	send(m, runes("+"))
	p, ok := st.GetWeeklyProgress(models.ProfileCharlotte, "2026-W42", sport.ID)
	if !ok || p.Current != 1 {
		t.Errorf("weekly step not recorded: %+v (found %v)", p, ok)
	}
}

func TestDeleteConfirmation(t *testing.T) {
	st := newStore(t)
	if err := st.AddGoal(context.Background(), models.ProfileClement, waterGoal); err != nil {
		t.Fatal(err)
	}
	m := newModel(st, models.ProfileClement)

	m = send(m, runes("d"))
	if m.State() != constants.StateConfirmDelete {
		t.Fatalf("expected delete confirmation, got %v", m.State())
	}
	if !strings.Contains(m.View(), "Supprimer « Eau »") {
		t.Errorf("confirmation does not name the goal:\n%s", m.View())
	}

	m = send(m, runes("n"))
	if user, _ := st.Snapshot().User(models.ProfileClement); len(user.Goals) != 1 {
		t.Fatal("goal deleted after answering no")
	}

	m = send(m, runes("d"))
	m = send(m, runes("y"))
	if m.State() != constants.StateDashboard {
		t.Errorf("expected dashboard after delete, got %v", m.State())
	}
	if user, _ := st.Snapshot().User(models.ProfileClement); len(user.Goals) != 0 {
		t.Error("goal not deleted after confirmation")
	}
}

func TestAddGoalOpensForm(t *testing.T) {
	m := newModel(newStore(t), models.ProfileClement)

	m = send(m, runes("a"))
	if m.State() != constants.StateAddGoal {
		t.Fatalf("expected add-goal form, got %v", m.State())
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.State() != constants.StateDashboard {
		t.Errorf("esc should close the form, got %v", m.State())
	}
}

func TestBuildGoal(t *testing.T) {
	tests := []struct {
		name    string
		form    GoalFormModel
		want    models.Goal
		wantErr bool
	}{
		{
			name: "preset",
			form: GoalFormModel{Preset: "meditation"},
			want: models.Goal{Title: "Méditation", Icon: "🧘", Type: models.GoalDaily, Target: 10, Unit: "min"},
		},
		{
			name: "custom",
			form: GoalFormModel{Title: " Lecture ", Type: models.GoalWeekly, Target: "2,5", Unit: "livres"},
			want: models.Goal{Title: "Lecture", Type: models.GoalWeekly, Target: 2.5, Unit: "livres"},
		},
		{name: "unknown preset", form: GoalFormModel{Preset: "yoga"}, wantErr: true},
		{name: "zero target", form: GoalFormModel{Title: "x", Type: models.GoalDaily, Target: "0", Unit: "u"}, wantErr: true},
		{name: "NaN target", form: GoalFormModel{Title: "x", Type: models.GoalDaily, Target: "NaN", Unit: "u"}, wantErr: true},
		{name: "infinite target", form: GoalFormModel{Title: "x", Type: models.GoalDaily, Target: "Inf", Unit: "u"}, wantErr: true},
		{name: "missing unit", form: GoalFormModel{Title: "x", Type: models.GoalDaily, Target: "1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildGoal(&tt.form)
			if (err != nil) != tt.wantErr {
				t.Fatalf("buildGoal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.ID == "" {
				t.Error("expected a generated id")
			}
			got.ID = ""
			if got != tt.want {
				t.Errorf("buildGoal() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHeader(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	if err := st.AddGoal(ctx, models.ProfileClement, waterGoal); err != nil {
		t.Fatal(err)
	}
	if err := st.AddGoal(ctx, models.ProfileCharlotte, waterGoal); err != nil {
		t.Fatal(err)
	}
	if err := st.StepDaily(ctx, models.ProfileClement, waterGoal.ID, "2026-10-16", 2); err != nil {
		t.Fatal(err)
	}

	m := NewModel(st, models.ProfileCharlotte, clock)
	header := m.viewHeader()
	for _, want := range []string{"Commence ta série", "Progression du jour: 0%", "Clément vous devance de 100%"} {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %q:\n%s", want, header)
		}
	}
}
