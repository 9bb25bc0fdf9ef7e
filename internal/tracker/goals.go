// Package tracker holds the pure state transitions of the app: goal
// mutations, progress upserts and the daily streak engine. Every function
// takes an AppData snapshot and returns a new one; the input is never
// modified.
package tracker

import (
	"github.com/julianstephens/duogoals/internal/models"
)

// AddGoal appends goal to the profile's goals. The goal is stored as given;
// id uniqueness and field validity are the caller's responsibility.
func AddGoal(data models.AppData, profile models.Profile, goal models.Goal) models.AppData {
	user, ok := data.User(profile)
	if !ok {
		return data
	}
	user = user.Clone()
	user.Goals = append(user.Goals, goal)
	return data.WithUser(profile, user)
}

// UpdateGoal merges patch into the goal with the given id. Unknown ids are a no-op.
func UpdateGoal(data models.AppData, profile models.Profile, goalID string, patch models.GoalPatch) models.AppData {
	user, ok := data.User(profile)
	if !ok {
		return data
	}
	if _, found := user.Goal(goalID); !found {
		return data
	}

	user = user.Clone()
	for i, g := range user.Goals {
		if g.ID == goalID {
			user.Goals[i] = patch.Apply(g)
		}
	}
	return data.WithUser(profile, user)
}

// DeleteGoal removes the goal and every daily and weekly record that
// references it. Only the given profile is touched.
func DeleteGoal(data models.AppData, profile models.Profile, goalID string) models.AppData {
	user, ok := data.User(profile)
	if !ok {
		return data
	}

	goals := make([]models.Goal, 0, len(user.Goals))
	for _, g := range user.Goals {
		if g.ID != goalID {
			goals = append(goals, g)
		}
	}

	daily := make([]models.DailyProgress, 0, len(user.DailyProgress))
	for _, p := range user.DailyProgress {
		if p.GoalID != goalID {
			daily = append(daily, p)
		}
	}

	weekly := make([]models.WeeklyProgress, 0, len(user.WeeklyProgress))
	for _, p := range user.WeeklyProgress {
		if p.GoalID != goalID {
			weekly = append(weekly, p)
		}
	}

	user.Goals = goals
	user.DailyProgress = daily
	user.WeeklyProgress = weekly
	return data.WithUser(profile, user)
}
