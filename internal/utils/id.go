package utils

import "github.com/google/uuid"

// NewGoalID returns a fresh identifier for a goal.
func NewGoalID() string {
	return uuid.New().String()
}
