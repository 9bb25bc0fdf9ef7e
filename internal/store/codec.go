package store

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/duogoals/internal/models"
)

// Encode serializes data in the persisted format.
func Encode(data models.AppData) (string, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to serialize app data: %w", err)
	}
	return string(b), nil
}

// Decode parses a persisted value and normalizes it. migrated lists the
// profiles whose streak fields were absent and have been back-filled.
// Malformed JSON and a missing or null profile aggregate are errors.
func Decode(raw string) (data models.AppData, migrated []models.Profile, err error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &root); err != nil {
		return models.AppData{}, nil, fmt.Errorf("failed to parse app data: %w", err)
	}

	for _, p := range models.Profiles() {
		aggregate, ok := root[string(p)]
		if !ok || string(aggregate) == "null" {
			return models.AppData{}, nil, fmt.Errorf("app data has no %s profile", p)
		}

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(aggregate, &fields); err != nil {
			return models.AppData{}, nil, fmt.Errorf("failed to parse %s profile: %w", p, err)
		}
		if _, ok := fields["currentStreak"]; !ok {
			migrated = append(migrated, p)
		}
	}

	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return models.AppData{}, nil, fmt.Errorf("failed to parse app data: %w", err)
	}

	for _, p := range migrated {
		user, _ := data.User(p)
		user.CurrentStreak = 0
		user.LongestStreak = 0
		user.LastStreakDate = ""
		data = data.WithUser(p, user)
	}

	return Normalize(data), migrated, nil
}

// Normalize replaces nil collections with empty ones and fills a missing
// profile field from the aggregate's position.
func Normalize(data models.AppData) models.AppData {
	for _, p := range models.Profiles() {
		user, _ := data.User(p)
		if user.Profile == "" {
			user.Profile = p
		}
		if user.Goals == nil {
			user.Goals = []models.Goal{}
		}
		if user.DailyProgress == nil {
			user.DailyProgress = []models.DailyProgress{}
		}
		if user.WeeklyProgress == nil {
			user.WeeklyProgress = []models.WeeklyProgress{}
		}
		data = data.WithUser(p, user)
	}
	return data
}
