package views

import (
	"fmt"
	"time"

	"github.com/julianstephens/duogoals/internal/cli"
	"github.com/julianstephens/duogoals/internal/stats"
	"github.com/julianstephens/duogoals/internal/utils"
)

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Lun",
	time.Tuesday:   "Mar",
	time.Wednesday: "Mer",
	time.Thursday:  "Jeu",
	time.Friday:    "Ven",
	time.Saturday:  "Sam",
	time.Sunday:    "Dim",
}

type WeekCmd struct{}

func (c *WeekCmd) Run(ctx *cli.Context) error {
	user, err := ctx.User()
	if err != nil {
		return err
	}
	now := ctx.Clock()

	ctx.Println(cli.TitleStyle.Render(fmt.Sprintf("Semaine %s · %s", utils.ISOWeek(now), user.Profile.DisplayName())))
	for _, day := range stats.Week(user, now) {
		ctx.Println("  " + dayLine(day))
	}

	if missed := stats.PastIncompleteDays(user, now); missed > 0 {
		ctx.Println()
		ctx.Println(cli.BannerLine(stats.Banner{Kind: stats.BannerWarning, Count: missed}))
	}
	return nil
}

func dayLine(day stats.DayStatus) string {
	name := day.Date
	if t, err := utils.ParseDate(day.Date); err == nil {
		name = fmt.Sprintf("%s %s", weekdayNames[t.Weekday()], day.Date)
	}

	line := fmt.Sprintf("%s  %d/%d", name, day.Completed, day.Total)
	switch {
	case day.Perfect():
		line = cli.SuccessStyle.Render(line + "  ✓")
	case day.Missed():
		line = cli.DangerStyle.Render(line + "  ✗")
	case !day.IsPast && !day.IsToday:
		line = cli.MutedStyle.Render(line)
	}
	if day.IsToday {
		line += "  ← aujourd'hui"
	}
	return line
}
