package goallist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/duogoals/internal/models"
	"github.com/julianstephens/duogoals/internal/utils"
)

type AddGoalMsg struct{}

type DeleteGoalMsg struct {
	Goal models.Goal
}

// StepMsg asks for the selected goal's value to move by Delta
type StepMsg struct {
	Goal  models.Goal
	Delta float64
}

// Item is a goal with its value for the current day or week
type Item struct {
	Goal      models.Goal
	Current   float64
	Completed bool
	// Period is the date or ISO week the value belongs to
	Period string
}

func (i Item) Title() string {
	if i.Completed {
		return "✓ " + i.Goal.Label()
	}
	return i.Goal.Label()
}

func (i Item) Description() string {
	scope := "aujourd'hui"
	if i.Goal.Type == models.GoalWeekly {
		scope = "semaine " + i.Period
	}
	return fmt.Sprintf("%s/%s %s | %s", utils.FormatAmount(i.Current), utils.FormatAmount(i.Goal.Target), i.Goal.Unit, scope)
}

func (i Item) FilterValue() string { return i.Goal.Title }

type KeyMap struct {
	Inc    key.Binding
	Dec    key.Binding
	Add    key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Inc: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "increase"),
		),
		Dec: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "decrease"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Objectifs"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Inc, keys.Dec, keys.Add, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Inc, keys.Dec, keys.Add, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetItems(items []Item) {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}
	m.list.SetItems(listItems)
}

// Selected returns the highlighted item
func (m Model) Selected() (Item, bool) {
	i, ok := m.list.SelectedItem().(Item)
	return i, ok
}

// Filtering reports whether keystrokes go to the filter input
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddGoalMsg{} }
		case key.Matches(msg, m.keys.Inc):
			if i, ok := m.Selected(); ok {
				return m, func() tea.Msg { return StepMsg{Goal: i.Goal, Delta: 1} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Dec):
			if i, ok := m.Selected(); ok {
				return m, func() tea.Msg { return StepMsg{Goal: i.Goal, Delta: -1} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteGoalMsg{Goal: i.Goal} }
			}
			return m, nil
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && !m.Filtering() {
		return "\n  Aucun objectif pour l'instant.\n  Appuyez sur 'a' pour en ajouter un."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
