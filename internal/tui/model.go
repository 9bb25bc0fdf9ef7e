package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/duogoals/internal/constants"
	"github.com/julianstephens/duogoals/internal/models"
	"github.com/julianstephens/duogoals/internal/store"
	"github.com/julianstephens/duogoals/internal/tui/components/goallist"
	"github.com/julianstephens/duogoals/internal/utils"
)

type GoalFormModel struct {
	Preset string
	Title  string
	Type   models.GoalType
	Target string
	Unit   string
	Icon   string
}

type Model struct {
	store         *store.Store
	now           func() time.Time
	state         constants.SessionState
	profile       models.Profile
	profileCursor int
	keys          KeyMap
	help          help.Model
	goalList      goallist.Model
	form          *huh.Form
	goalForm      *GoalFormModel
	goalToDelete  *models.Goal
	err           error
	quitting      bool
	width         int
	height        int
}

// NewModel opens on the dashboard of profile, or on the profile selector
// when no valid profile is given.
func NewModel(st *store.Store, profile models.Profile, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	m := Model{
		store:    st,
		now:      now,
		state:    constants.StateSelectProfile,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		goalList: goallist.New(0, 0),
	}
	if profile.Valid() {
		m.selectProfile(profile)
	}
	return m
}

func (m Model) ShortHelp() []key.Binding {
	goalKeys := goallist.DefaultKeyMap()
	switch m.state {
	case constants.StateDashboard:
		return []key.Binding{goalKeys.Inc, goalKeys.Dec, goalKeys.Add, goalKeys.Delete, m.keys.Tab, m.keys.Quit, m.keys.Help}
	case constants.StateSelectProfile:
		return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Quit}
	case constants.StateConfirmDelete:
		return []key.Binding{m.keys.Yes, m.keys.No}
	}
	return nil
}

func (m Model) FullHelp() [][]key.Binding {
	goalKeys := goallist.DefaultKeyMap()
	global := []key.Binding{m.keys.Tab, m.keys.Back, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}
	actions := []key.Binding{goalKeys.Inc, goalKeys.Dec, goalKeys.Add, goalKeys.Delete}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// State is the screen currently shown
func (m Model) State() constants.SessionState {
	return m.state
}

// Profile is the profile whose dashboard is shown, empty on the selector
func (m Model) Profile() models.Profile {
	return m.profile
}

func (m *Model) selectProfile(p models.Profile) {
	m.profile = p
	for i, candidate := range models.Profiles() {
		if candidate == p {
			m.profileCursor = i
		}
	}
	m.state = constants.StateDashboard
	m.refresh()
}

// user returns the active profile's data from the latest snapshot
func (m Model) user() models.UserData {
	u, ok := m.store.Snapshot().User(m.profile)
	if !ok {
		return models.NewUserData(m.profile)
	}
	return u
}

// refresh rebuilds the goal list from the store, daily goals first.
func (m *Model) refresh() {
	user := m.user()
	now := m.now()
	today := utils.FormatDate(now)
	week := utils.ISOWeek(now)

	items := make([]goallist.Item, 0, len(user.Goals))
	for _, g := range user.GoalsOfType(models.GoalDaily) {
		p, _ := user.Daily(today, g.ID)
		items = append(items, goallist.Item{Goal: g, Current: p.Current, Completed: p.Completed, Period: today})
	}
	for _, g := range user.GoalsOfType(models.GoalWeekly) {
		p, _ := user.Weekly(week, g.ID)
		items = append(items, goallist.Item{Goal: g, Current: p.Current, Completed: p.Completed, Period: week})
	}
	m.goalList.SetItems(items)
}
