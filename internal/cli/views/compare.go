package views

import (
	"fmt"
	"time"

	"github.com/julianstephens/duogoals/internal/cli"
	"github.com/julianstephens/duogoals/internal/models"
	"github.com/julianstephens/duogoals/internal/stats"
)

type CompareCmd struct{}

func (c *CompareCmd) Run(ctx *cli.Context) error {
	user, err := ctx.User()
	if err != nil {
		return err
	}
	now := ctx.Clock()
	other := otherUser(ctx, user.Profile)

	ctx.Println(cli.TitleStyle.Render("Comparaison du jour"))
	for _, u := range []models.UserData{user, other} {
		pct := stats.TodayPercentage(u, now)
		ctx.Printf("  %-10s %s %3.0f%%\n", u.Profile.DisplayName(), cli.ProgressBar(pct, 100), pct)
	}
	return printComparison(ctx, user, now)
}

func otherUser(ctx *cli.Context, self models.Profile) models.UserData {
	other, ok := ctx.Store.Snapshot().User(self.Other())
	if !ok {
		return models.NewUserData(self.Other())
	}
	return other
}

// printComparison prints the standing against the other profile when
// either of them has goals.
func printComparison(ctx *cli.Context, user models.UserData, now time.Time) error {
	other := otherUser(ctx, user.Profile)
	cmp := stats.Compare(user, other, now)
	if !cmp.Visible() {
		return nil
	}

	msg := cmp.Message(other.Profile)
	switch cmp.Outcome {
	case stats.Ahead:
		msg = cli.SuccessStyle.Render(msg)
	case stats.Behind:
		msg = cli.WarningStyle.Render(msg)
	}
	ctx.Println(msg)
	ctx.Println(cli.MutedStyle.Render(fmt.Sprintf("%s %.0f%% · %s %.0f%%",
		user.Profile.DisplayName(), cmp.Self, other.Profile.DisplayName(), cmp.Other)))
	return nil
}
