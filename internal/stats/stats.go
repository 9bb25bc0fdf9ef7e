// Package stats derives the dashboard figures from a profile's data. Every
// function takes the reference time explicitly.
package stats

import (
	"math"
	"time"

	"github.com/julianstephens/duogoals/internal/models"
	"github.com/julianstephens/duogoals/internal/utils"
)

// Outcome of comparing two profiles' completion percentages
type Outcome int

const (
	Tied Outcome = iota
	Ahead
	Behind
)

func (o Outcome) String() string {
	switch o {
	case Ahead:
		return "ahead"
	case Behind:
		return "behind"
	}
	return "tied"
}

// Comparison is one profile's standing against the other for today
type Comparison struct {
	Self       float64
	Other      float64
	Difference float64
	Outcome    Outcome

	selfGoals  int
	otherGoals int
}

// Visible reports whether the comparison is worth showing at all.
func (c Comparison) Visible() bool {
	return c.selfGoals > 0 || c.otherGoals > 0
}

// completedToday counts completed daily records for today plus completed
// weekly records for the current week.
func completedToday(u models.UserData, now time.Time) int {
	today := utils.FormatDate(now)
	week := utils.ISOWeek(now)

	n := 0
	for _, p := range u.DailyProgress {
		if p.Date == today && p.Completed {
			n++
		}
	}
	for _, p := range u.WeeklyProgress {
		if p.Week == week && p.Completed {
			n++
		}
	}
	return n
}

// TodayPercentage is the share of the profile's goals completed for today
// and this week, in percent. A profile without goals scores 0.
func TodayPercentage(u models.UserData, now time.Time) float64 {
	total := len(u.Goals)
	if total == 0 {
		return 0
	}
	return float64(completedToday(u, now)) / float64(total) * 100
}

// Compare ranks self against other by today's percentage.
func Compare(self, other models.UserData, now time.Time) Comparison {
	c := Comparison{
		Self:       TodayPercentage(self, now),
		Other:      TodayPercentage(other, now),
		selfGoals:  len(self.Goals),
		otherGoals: len(other.Goals),
	}
	c.Difference = math.Abs(c.Self - c.Other)

	switch {
	case c.Self == c.Other:
		c.Outcome = Tied
	case c.Self > c.Other:
		c.Outcome = Ahead
	default:
		c.Outcome = Behind
	}
	return c
}

// DayStatus summarizes the daily goals of one calendar day
type DayStatus struct {
	Date      string
	Completed int
	Total     int
	Rate      float64
	IsToday   bool
	IsPast    bool
}

// Perfect reports a day on which every daily goal was completed.
func (d DayStatus) Perfect() bool {
	return d.Total > 0 && d.Rate == 100
}

// Missed reports a past day that had daily goals left incomplete.
func (d DayStatus) Missed() bool {
	return d.IsPast && d.Total > 0 && d.Rate < 100
}

// DayCompletion counts the completed daily records on date against the
// number of daily goals.
func DayCompletion(u models.UserData, date string) DayStatus {
	status := DayStatus{
		Date:  date,
		Total: len(u.GoalsOfType(models.GoalDaily)),
	}
	for _, p := range u.DailyProgress {
		if p.Date == date && p.Completed {
			status.Completed++
		}
	}
	if status.Total > 0 {
		status.Rate = float64(status.Completed) / float64(status.Total) * 100
	}
	return status
}

// Week returns the status of the seven days of now's ISO week, Monday first.
func Week(u models.UserData, now time.Time) []DayStatus {
	days := utils.WeekDays(now)
	out := make([]DayStatus, 0, len(days))
	for _, day := range days {
		status := DayCompletion(u, utils.FormatDate(day))
		status.IsToday = utils.IsToday(day, now)
		status.IsPast = utils.IsPast(day, now)
		out = append(out, status)
	}
	return out
}

// PastIncompleteDays counts the days of this week before today on which
// fewer daily records were completed than there are daily goals.
func PastIncompleteDays(u models.UserData, now time.Time) int {
	n := 0
	for _, day := range Week(u, now) {
		if day.IsPast && day.Completed < day.Total {
			n++
		}
	}
	return n
}

// BannerKind selects the motivation message shown on the dashboard
type BannerKind int

const (
	BannerNone BannerKind = iota
	BannerWarning
	BannerSuccess
	BannerNeutral
)

// Banner is the motivation message for a profile. Count is the number of
// missed days for a warning and of incomplete daily goals for a neutral banner.
type Banner struct {
	Kind  BannerKind
	Count int
}

// Motivation picks the banner for the profile at now.
func Motivation(u models.UserData, now time.Time) Banner {
	if missed := PastIncompleteDays(u, now); missed > 0 {
		return Banner{Kind: BannerWarning, Count: missed}
	}

	today := utils.FormatDate(now)
	week := utils.ISOWeek(now)

	incompleteDaily := 0
	incompleteWeekly := 0
	for _, g := range u.Goals {
		switch g.Type {
		case models.GoalDaily:
			if p, ok := u.Daily(today, g.ID); !ok || !p.Completed {
				incompleteDaily++
			}
		case models.GoalWeekly:
			if p, ok := u.Weekly(week, g.ID); !ok || !p.Completed {
				incompleteWeekly++
			}
		}
	}

	switch {
	case incompleteDaily == 0 && incompleteWeekly == 0:
		return Banner{Kind: BannerSuccess}
	case incompleteDaily > 0:
		return Banner{Kind: BannerNeutral, Count: incompleteDaily}
	}
	return Banner{Kind: BannerNone}
}

// Streak is the streak panel of a profile
type Streak struct {
	Current      int
	Longest      int
	RecordBeaten bool
}

func StreakSummary(u models.UserData) Streak {
	return Streak{
		Current:      u.CurrentStreak,
		Longest:      u.LongestStreak,
		RecordBeaten: u.LongestStreak == u.CurrentStreak && u.CurrentStreak > 1,
	}
}
