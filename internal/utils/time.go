package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/julianstephens/duogoals/internal/constants"
)

var weekPattern = regexp.MustCompile(`^(\d{4})-W(\d{2})$`)

// FormatDate returns the calendar-day key (YYYY-MM-DD) of t in t's location.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDate parses a date string (YYYY-MM-DD) as local midnight.
func ParseDate(dateStr string) (time.Time, error) {
	return ParseDateInLocation(dateStr, time.Local)
}

// ParseDateInLocation parses a date string (YYYY-MM-DD) in the specified timezone.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", dateStr, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// ValidateDate checks if the string is a well-formed calendar day.
func ValidateDate(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

// ISOWeek returns the ISO-8601 week label (YYYY-Www) of t. The year is the
// ISO year, which differs from the calendar year around New Year.
func ISOWeek(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// ValidateWeek checks if the string is an ISO week label that exists in its
// year. Only years whose December 28th falls in week 53 have a W53.
func ValidateWeek(week string) bool {
	m := weekPattern.FindStringSubmatch(week)
	if m == nil {
		return false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	w, err := strconv.Atoi(m[2])
	if err != nil {
		return false
	}
	_, last := time.Date(year, time.December, 28, 12, 0, 0, 0, time.UTC).ISOWeek()
	return w >= 1 && w <= last
}

// StartOfDay truncates t to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekDays returns the seven days (at midnight) of the ISO week containing t,
// Monday first.
func WeekDays(t time.Time) []time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -offset)

	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// CurrentWeekDays returns the days of the current ISO week, Monday first.
func CurrentWeekDays() []time.Time {
	return WeekDays(time.Now())
}

// IsToday reports whether d falls on the same calendar day as now.
func IsToday(d, now time.Time) bool {
	return FormatDate(d) == FormatDate(now.In(d.Location()))
}

// IsPast reports whether d is a calendar day strictly before now's day.
func IsPast(d, now time.Time) bool {
	return StartOfDay(d).Before(StartOfDay(now.In(d.Location())))
}

// DaysBetween returns the number of calendar days from one date key to
// another. It is negative when to precedes from. Both dates are interpreted
// in UTC so daylight-saving transitions cannot shift the result.
func DaysBetween(from, to string) (int, error) {
	f, err := time.Parse(constants.DateFormat, from)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", from, err)
	}
	t, err := time.Parse(constants.DateFormat, to)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", to, err)
	}
	return int(t.Sub(f).Hours() / 24), nil
}
