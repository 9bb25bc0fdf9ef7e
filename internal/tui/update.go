package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/duogoals/internal/constants"
	"github.com/julianstephens/duogoals/internal/logger"
	"github.com/julianstephens/duogoals/internal/models"
	"github.com/julianstephens/duogoals/internal/tui/components/goallist"
	"github.com/julianstephens/duogoals/internal/utils"
)

// headerHeight is the number of lines above the goal list
const headerHeight = 9

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		m.goalList.SetSize(msg.Width-h, msg.Height-v-headerHeight)
		return m, nil
	}

	switch m.state {
	case constants.StateAddGoal:
		return m.updateAddGoal(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	case constants.StateSelectProfile:
		return m.updateSelectProfile(msg)
	}
	return m.updateDashboard(msg)
}

func (m Model) updateSelectProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	profiles := models.Profiles()
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		m.profileCursor = (m.profileCursor - 1 + len(profiles)) % len(profiles)
	case key.Matches(keyMsg, m.keys.Down):
		m.profileCursor = (m.profileCursor + 1) % len(profiles)
	case key.Matches(keyMsg, m.keys.Enter):
		m.selectProfile(profiles[m.profileCursor])
	}
	return m, nil
}

func (m Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case goallist.StepMsg:
		m.step(msg)
		return m, nil

	case goallist.AddGoalMsg:
		m.goalForm = &GoalFormModel{Type: models.GoalDaily}
		m.form = NewGoalForm(m.goalForm)
		m.state = constants.StateAddGoal
		return m, m.form.Init()

	case goallist.DeleteGoalMsg:
		goal := msg.Goal
		m.goalToDelete = &goal
		m.state = constants.StateConfirmDelete
		return m, nil

	case tea.KeyMsg:
		if !m.goalList.Filtering() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				m.quitting = true
				return m, tea.Quit
			case key.Matches(msg, m.keys.Tab):
				m.selectProfile(m.profile.Other())
				return m, nil
			case key.Matches(msg, m.keys.Back):
				m.state = constants.StateSelectProfile
				return m, nil
			case key.Matches(msg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.goalList, cmd = m.goalList.Update(msg)
	return m, cmd
}

// step applies a +/- press to today's or this week's value.
func (m *Model) step(msg goallist.StepMsg) {
	now := m.now()
	var err error
	if msg.Goal.Type == models.GoalWeekly {
		err = m.store.StepWeekly(context.Background(), m.profile, msg.Goal.ID, utils.ISOWeek(now), msg.Delta)
	} else {
		err = m.store.StepDaily(context.Background(), m.profile, msg.Goal.ID, utils.FormatDate(now), msg.Delta)
	}
	m.setErr(err)
	m.refresh()
}

func (m Model) updateAddGoal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = constants.StateDashboard
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		goal, err := buildGoal(m.goalForm)
		if err == nil {
			err = m.store.AddGoal(context.Background(), m.profile, goal)
		}
		m.setErr(err)
		m.refresh()
		m.state = constants.StateDashboard
	case huh.StateAborted:
		m.state = constants.StateDashboard
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Yes):
		if m.goalToDelete != nil {
			m.setErr(m.store.DeleteGoal(context.Background(), m.profile, m.goalToDelete.ID))
			m.refresh()
		}
		m.goalToDelete = nil
		m.state = constants.StateDashboard
	case key.Matches(keyMsg, m.keys.No):
		m.goalToDelete = nil
		m.state = constants.StateDashboard
	}
	return m, nil
}

func (m *Model) setErr(err error) {
	m.err = err
	if err != nil {
		logger.Error("TUI action failed", "profile", m.profile, "error", err)
	}
}
