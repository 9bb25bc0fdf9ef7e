package tracker

import (
	"github.com/julianstephens/duogoals/internal/logger"
	"github.com/julianstephens/duogoals/internal/models"
)

// DailyFor builds the daily record for goal with completed derived from its target.
func DailyFor(goal models.Goal, date string, current float64) models.DailyProgress {
	return models.DailyProgress{
		Date:      date,
		GoalID:    goal.ID,
		Current:   current,
		Completed: current >= goal.Target,
	}
}

// WeeklyFor builds the weekly record for goal with completed derived from its target.
func WeeklyFor(goal models.Goal, week string, current float64) models.WeeklyProgress {
	return models.WeeklyProgress{
		Week:      week,
		GoalID:    goal.ID,
		Current:   current,
		Completed: current >= goal.Target,
	}
}

// UpdateWeeklyProgress upserts record by (week, goalId). Weekly goals never
// affect the streak.
func UpdateWeeklyProgress(data models.AppData, profile models.Profile, record models.WeeklyProgress) models.AppData {
	user, ok := data.User(profile)
	if !ok {
		return data
	}
	user = user.Clone()

	replaced := false
	for i, p := range user.WeeklyProgress {
		if p.Week == record.Week && p.GoalID == record.GoalID {
			user.WeeklyProgress[i] = record
			replaced = true
		}
	}
	if !replaced {
		user.WeeklyProgress = append(user.WeeklyProgress, record)
	}

	return data.WithUser(profile, user)
}

// UpdateDailyProgress upserts record by (date, goalId) and recomputes the
// streak from the resulting snapshot. The returned AppData carries both
// changes or, for an unknown profile, neither.
func UpdateDailyProgress(data models.AppData, profile models.Profile, record models.DailyProgress) models.AppData {
	user, ok := data.User(profile)
	if !ok {
		return data
	}
	user = user.Clone()

	replaced := false
	for i, p := range user.DailyProgress {
		if p.Date == record.Date && p.GoalID == record.GoalID {
			user.DailyProgress[i] = record
			replaced = true
		}
	}
	if !replaced {
		user.DailyProgress = append(user.DailyProgress, record)
	}

	if AllDailyCompleted(user, record.Date) {
		before := StreakOf(user)
		after, err := Advance(before, record.Date)
		if err != nil {
			logger.Warn("Streak left unchanged", "profile", profile, "date", record.Date, "error", err)
		} else {
			user = after.applyTo(user)
			logger.Debug("Streak updated", "profile", profile, "date", record.Date,
				"current", after.Current, "longest", after.Longest)
		}
	}

	return data.WithUser(profile, user)
}

// AllDailyCompleted reports whether every daily goal of the profile has a
// completed record on date. A profile without daily goals never qualifies.
func AllDailyCompleted(user models.UserData, date string) bool {
	dailyGoals := user.GoalsOfType(models.GoalDaily)
	if len(dailyGoals) == 0 {
		return false
	}

	completed := make(map[string]bool)
	for _, p := range user.DailyProgress {
		if p.Date == date && p.Completed {
			completed[p.GoalID] = true
		}
	}

	for _, g := range dailyGoals {
		if !completed[g.ID] {
			return false
		}
	}
	return true
}

// StepDaily adds delta to the goal's value on date, clamped at zero, and
// records the result through UpdateDailyProgress. Unknown goals are a no-op.
func StepDaily(data models.AppData, profile models.Profile, goalID, date string, delta float64) models.AppData {
	user, ok := data.User(profile)
	if !ok {
		return data
	}
	goal, found := user.Goal(goalID)
	if !found {
		return data
	}

	current := 0.0
	if p, exists := user.Daily(date, goalID); exists {
		current = p.Current
	}
	return UpdateDailyProgress(data, profile, DailyFor(goal, date, clamp(current+delta)))
}

// StepWeekly is the weekly counterpart of StepDaily.
func StepWeekly(data models.AppData, profile models.Profile, goalID, week string, delta float64) models.AppData {
	user, ok := data.User(profile)
	if !ok {
		return data
	}
	goal, found := user.Goal(goalID)
	if !found {
		return data
	}

	current := 0.0
	if p, exists := user.Weekly(week, goalID); exists {
		current = p.Current
	}
	return UpdateWeeklyProgress(data, profile, WeeklyFor(goal, week, clamp(current+delta)))
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
