package models

// DailyProgress is the recorded value of a goal on one calendar day
type DailyProgress struct {
	Date      string  `json:"date"` // YYYY-MM-DD format
	GoalID    string  `json:"goalId"`
	Current   float64 `json:"current"`
	Completed bool    `json:"completed"`
}

// WeeklyProgress is the recorded value of a goal in one ISO week
type WeeklyProgress struct {
	Week      string  `json:"week"` // YYYY-Www format
	GoalID    string  `json:"goalId"`
	Current   float64 `json:"current"`
	Completed bool    `json:"completed"`
}
