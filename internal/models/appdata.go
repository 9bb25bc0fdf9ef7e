package models

import "time"

// UserData is everything owned by a single profile
type UserData struct {
	Profile        Profile          `json:"profile"`
	Goals          []Goal           `json:"goals"`
	DailyProgress  []DailyProgress  `json:"dailyProgress"`
	WeeklyProgress []WeeklyProgress `json:"weeklyProgress"`
	CurrentStreak  int              `json:"currentStreak"`
	LongestStreak  int              `json:"longestStreak"`
	LastStreakDate string           `json:"lastStreakDate"` // YYYY-MM-DD or empty
}

// AppData is the root of all persisted state
type AppData struct {
	Clement     UserData `json:"clement"`
	Charlotte   UserData `json:"charlotte"`
	LastUpdated string   `json:"lastUpdated"` // RFC3339
}

// NewUserData returns an empty aggregate with zeroed streak counters
func NewUserData(p Profile) UserData {
	return UserData{
		Profile:        p,
		Goals:          []Goal{},
		DailyProgress:  []DailyProgress{},
		WeeklyProgress: []WeeklyProgress{},
	}
}

// NewAppData returns the default state used on first start and on recovery
func NewAppData(now time.Time) AppData {
	return AppData{
		Clement:     NewUserData(ProfileClement),
		Charlotte:   NewUserData(ProfileCharlotte),
		LastUpdated: now.UTC().Format(time.RFC3339),
	}
}

// User returns a copy of the profile's aggregate. Unknown profiles yield ok=false.
func (a AppData) User(p Profile) (UserData, bool) {
	switch p {
	case ProfileClement:
		return a.Clement, true
	case ProfileCharlotte:
		return a.Charlotte, true
	}
	return UserData{}, false
}

// WithUser returns a copy of a with the profile's aggregate replaced.
func (a AppData) WithUser(p Profile, u UserData) AppData {
	switch p {
	case ProfileClement:
		a.Clement = u
	case ProfileCharlotte:
		a.Charlotte = u
	}
	return a
}

// Clone returns a deep copy so that callers may mutate slices freely
func (a AppData) Clone() AppData {
	a.Clement = a.Clement.Clone()
	a.Charlotte = a.Charlotte.Clone()
	return a
}

// Clone returns a deep copy of the aggregate
func (u UserData) Clone() UserData {
	u.Goals = append([]Goal{}, u.Goals...)
	u.DailyProgress = append([]DailyProgress{}, u.DailyProgress...)
	u.WeeklyProgress = append([]WeeklyProgress{}, u.WeeklyProgress...)
	return u
}

// Goal looks up a goal by id
func (u UserData) Goal(id string) (Goal, bool) {
	for _, g := range u.Goals {
		if g.ID == id {
			return g, true
		}
	}
	return Goal{}, false
}

// GoalsOfType returns the goals of the given type in insertion order
func (u UserData) GoalsOfType(t GoalType) []Goal {
	var goals []Goal
	for _, g := range u.Goals {
		if g.Type == t {
			goals = append(goals, g)
		}
	}
	return goals
}

// Daily looks up the record for (date, goalID)
func (u UserData) Daily(date, goalID string) (DailyProgress, bool) {
	for _, p := range u.DailyProgress {
		if p.Date == date && p.GoalID == goalID {
			return p, true
		}
	}
	return DailyProgress{}, false
}

// Weekly looks up the record for (week, goalID)
func (u UserData) Weekly(week, goalID string) (WeeklyProgress, bool) {
	for _, p := range u.WeeklyProgress {
		if p.Week == week && p.GoalID == goalID {
			return p, true
		}
	}
	return WeeklyProgress{}, false
}
