package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/duogoals/internal/models"
	"github.com/julianstephens/duogoals/internal/utils"
)

// NewGoalForm asks for a preset first; the custom fields are only shown
// when no preset is picked.
func NewGoalForm(fm *GoalFormModel) *huh.Form {
	presetOptions := []huh.Option[string]{huh.NewOption("Objectif personnalisé", "")}
	for _, p := range models.Presets() {
		label := fmt.Sprintf("%s %s (%s %s)", p.Icon, p.Title, utils.FormatAmount(p.Target), p.Unit)
		presetOptions = append(presetOptions, huh.NewOption(label, p.Key))
	}

	custom := func() bool { return fm.Preset != "" }

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Modèle").
				Options(presetOptions...).
				Value(&fm.Preset),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Titre").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[models.GoalType]().
				Title("Type").
				Options(
					huh.NewOption("Quotidien", models.GoalDaily),
					huh.NewOption("Hebdomadaire", models.GoalWeekly),
				).
				Value(&fm.Type),
			huh.NewInput().
				Title("Cible").
				Value(&fm.Target).
				Validate(func(s string) error {
					_, err := parseTarget(s)
					return err
				}),
			huh.NewInput().
				Title("Unité").
				Description("L, min, pas, séances...").
				Value(&fm.Unit).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("unit cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Icône").
				Description("Optionnel").
				Value(&fm.Icon),
		).WithHideFunc(custom),
	).WithTheme(huh.ThemeDracula())
}

func parseTarget(s string) (float64, error) {
	v, err := utils.ParseAmount(s)
	if err != nil {
		return 0, fmt.Errorf("target must be a number")
	}
	if v == 0 {
		return 0, fmt.Errorf("target must be positive")
	}
	return v, nil
}

// buildGoal turns a completed form into a new goal.
func buildGoal(fm *GoalFormModel) (models.Goal, error) {
	id := utils.NewGoalID()
	if fm.Preset != "" {
		preset, ok := models.FindPreset(fm.Preset)
		if !ok {
			return models.Goal{}, fmt.Errorf("unknown preset %q", fm.Preset)
		}
		return preset.Goal(id), nil
	}

	target, err := parseTarget(fm.Target)
	if err != nil {
		return models.Goal{}, err
	}
	goal := models.Goal{
		ID:     id,
		Title:  strings.TrimSpace(fm.Title),
		Type:   fm.Type,
		Target: target,
		Unit:   strings.TrimSpace(fm.Unit),
		Icon:   strings.TrimSpace(fm.Icon),
	}
	if err := goal.Validate(); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}
