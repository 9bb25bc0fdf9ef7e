package stats

import (
	"fmt"

	"github.com/julianstephens/duogoals/internal/models"
)

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

// Message renders the banner text, empty for BannerNone.
func (b Banner) Message() string {
	switch b.Kind {
	case BannerWarning:
		return fmt.Sprintf("⚠️  Vous avez %d jour%s cette semaine avec des objectifs non atteints. Il est temps de rattraper !",
			b.Count, plural(b.Count))
	case BannerSuccess:
		return "🎉 Incroyable ! Tous vos objectifs sont atteints ! Vous êtes au top !"
	case BannerNeutral:
		return fmt.Sprintf("💪 Encore %d objectif%s à compléter aujourd'hui. Vous pouvez le faire !",
			b.Count, plural(b.Count))
	}
	return ""
}

// Message renders the comparison from self's point of view.
func (c Comparison) Message(other models.Profile) string {
	name := other.DisplayName()
	switch c.Outcome {
	case Ahead:
		return fmt.Sprintf("🏆 Vous êtes en avance de %.0f%% sur %s !", c.Difference, name)
	case Behind:
		return fmt.Sprintf("⚡ %s vous devance de %.0f%% ! À vous de rattraper !", name, c.Difference)
	}
	return fmt.Sprintf("🤝 Vous êtes à égalité avec %s !", name)
}

// Label describes the current streak length.
func (s Streak) Label() string {
	switch s.Current {
	case 0:
		return "Commence ta série aujourd'hui !"
	case 1:
		return "1 jour consécutif"
	}
	return fmt.Sprintf("%d jours consécutifs", s.Current)
}

// RecordLabel is the hint shown under the longest streak.
func (s Streak) RecordLabel() string {
	if s.RecordBeaten {
		return "Tu bats ton record ! 🎉"
	}
	return "Bats ton record !"
}
