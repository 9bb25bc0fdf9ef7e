package tracker

import (
	"fmt"
	"sort"

	"github.com/julianstephens/duogoals/internal/models"
	"github.com/julianstephens/duogoals/internal/utils"
)

// Streak is the streak state stored on a profile.
type Streak struct {
	Current int
	Longest int
	Last    string
}

// StreakOf extracts the streak fields of user.
func StreakOf(user models.UserData) Streak {
	return Streak{
		Current: user.CurrentStreak,
		Longest: user.LongestStreak,
		Last:    user.LastStreakDate,
	}
}

func (s Streak) applyTo(user models.UserData) models.UserData {
	user.CurrentStreak = s.Current
	user.LongestStreak = s.Longest
	user.LastStreakDate = s.Last
	return user
}

// Advance moves the streak forward for a fully completed date.
//
// A repeat of the last date keeps the count, the next calendar day extends
// it, and any gap restarts it at 1. Dates before the last streak date leave
// the streak as it is.
func Advance(s Streak, date string) (Streak, error) {
	if s.Last == "" {
		return Streak{Current: 1, Longest: max(s.Longest, 1), Last: date}, nil
	}

	diff, err := utils.DaysBetween(s.Last, date)
	if err != nil {
		return s, fmt.Errorf("failed to compare %s with last streak date: %w", date, err)
	}

	switch {
	case diff < 0:
		return s, nil
	case diff == 0:
		current := max(s.Current, 1)
		return Streak{Current: current, Longest: max(s.Longest, current), Last: date}, nil
	case diff == 1:
		current := s.Current + 1
		return Streak{Current: current, Longest: max(s.Longest, current), Last: date}, nil
	default:
		return Streak{Current: 1, Longest: max(s.Longest, 1), Last: date}, nil
	}
}

// RebuildStreak recomputes the profile's streak from its whole daily
// history. Dates are replayed in ascending order and a date counts when every
// current daily goal is completed on it. The longest streak never drops below
// its previous value.
func RebuildStreak(data models.AppData, profile models.Profile) models.AppData {
	user, ok := data.User(profile)
	if !ok {
		return data
	}

	seen := make(map[string]bool)
	var dates []string
	for _, p := range user.DailyProgress {
		if !seen[p.Date] {
			seen[p.Date] = true
			dates = append(dates, p.Date)
		}
	}
	sort.Strings(dates)

	var replay Streak
	for _, date := range dates {
		if !AllDailyCompleted(user, date) {
			continue
		}
		next, err := Advance(replay, date)
		if err != nil {
			continue
		}
		replay = next
	}

	replay.Longest = max(replay.Longest, user.LongestStreak)
	user = user.Clone()
	user = replay.applyTo(user)
	return data.WithUser(profile, user)
}
