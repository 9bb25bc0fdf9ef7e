package models

import "strings"

// GoalPreset is a ready-made goal offered by the add-goal form
type GoalPreset struct {
	Key    string
	Title  string
	Icon   string
	Type   GoalType
	Target float64
	Unit   string
}

var presets = []GoalPreset{
	{Key: "water", Title: "Boire de l'eau", Icon: "💧", Type: GoalDaily, Target: 2, Unit: "L"},
	{Key: "sport", Title: "Séances de sport", Icon: "💪", Type: GoalWeekly, Target: 3, Unit: "séances"},
	{Key: "meditation", Title: "Méditation", Icon: "🧘", Type: GoalDaily, Target: 10, Unit: "min"},
	{Key: "veggies", Title: "Légumes/Fruits", Icon: "🥗", Type: GoalDaily, Target: 5, Unit: "portions"},
	{Key: "sleep", Title: "Sommeil", Icon: "😴", Type: GoalDaily, Target: 8, Unit: "heures"},
	{Key: "steps", Title: "Pas", Icon: "👟", Type: GoalDaily, Target: 10000, Unit: "pas"},
}

// Presets returns the built-in goal templates
func Presets() []GoalPreset {
	return append([]GoalPreset{}, presets...)
}

// FindPreset looks a preset up by key
func FindPreset(key string) (GoalPreset, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, p := range presets {
		if p.Key == key {
			return p, true
		}
	}
	return GoalPreset{}, false
}

// Goal builds a goal from the preset with the given id
func (p GoalPreset) Goal(id string) Goal {
	return Goal{
		ID:     id,
		Title:  p.Title,
		Type:   p.Type,
		Target: p.Target,
		Unit:   p.Unit,
		Icon:   p.Icon,
	}
}
