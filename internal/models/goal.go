package models

import (
	"fmt"
	"math"
	"strings"
)

// GoalType tells whether progress is tracked per day or per ISO week
type GoalType string

const (
	GoalDaily  GoalType = "daily"
	GoalWeekly GoalType = "weekly"
)

// ParseGoalType parses a goal type name
func ParseGoalType(s string) (GoalType, error) {
	switch GoalType(strings.ToLower(strings.TrimSpace(s))) {
	case GoalDaily:
		return GoalDaily, nil
	case GoalWeekly:
		return GoalWeekly, nil
	}
	return "", fmt.Errorf("invalid goal type %q (expected daily or weekly)", s)
}

// Goal is a target a profile tracks progress against
type Goal struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        GoalType `json:"type"`
	Target      float64  `json:"target"`
	Unit        string   `json:"unit"`
	Icon        string   `json:"icon,omitempty"`
}

// Validate checks the fields a goal form must enforce before handing the
// goal to the tracker. The tracker itself does not call it.
func (g *Goal) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return fmt.Errorf("goal title cannot be empty")
	}
	if g.Type != GoalDaily && g.Type != GoalWeekly {
		return fmt.Errorf("invalid goal type %q", g.Type)
	}
	if math.IsNaN(g.Target) || math.IsInf(g.Target, 0) || g.Target <= 0 {
		return fmt.Errorf("goal target must be positive, got %v", g.Target)
	}
	if strings.TrimSpace(g.Unit) == "" {
		return fmt.Errorf("goal unit cannot be empty")
	}
	return nil
}

// Label returns the title prefixed with the icon when one is set
func (g Goal) Label() string {
	if g.Icon == "" {
		return g.Title
	}
	return g.Icon + " " + g.Title
}

// GoalPatch holds the fields of an update; nil fields are left unchanged.
type GoalPatch struct {
	Title       *string
	Description *string
	Type        *GoalType
	Target      *float64
	Unit        *string
	Icon        *string
}

// IsEmpty reports whether the patch changes nothing
func (p GoalPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Type == nil &&
		p.Target == nil && p.Unit == nil && p.Icon == nil
}

// Apply returns g with the patch merged in. The id is never changed.
func (p GoalPatch) Apply(g Goal) Goal {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.Type != nil {
		g.Type = *p.Type
	}
	if p.Target != nil {
		g.Target = *p.Target
	}
	if p.Unit != nil {
		g.Unit = *p.Unit
	}
	if p.Icon != nil {
		g.Icon = *p.Icon
	}
	return g
}
