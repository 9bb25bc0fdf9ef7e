package models

import (
	"fmt"
	"strings"
)

// Profile identifies one of the two fixed users. All data is partitioned by it.
type Profile string

const (
	ProfileClement   Profile = "clement"
	ProfileCharlotte Profile = "charlotte"
)

// Profiles returns both profiles in display order.
func Profiles() []Profile {
	return []Profile{ProfileClement, ProfileCharlotte}
}

// ParseProfile accepts a profile identifier case-insensitively.
func ParseProfile(s string) (Profile, error) {
	p := Profile(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown profile %q (expected %q or %q)", s, ProfileClement, ProfileCharlotte)
	}
	return p, nil
}

func (p Profile) Valid() bool {
	return p == ProfileClement || p == ProfileCharlotte
}

// Other returns the opposite profile.
func (p Profile) Other() Profile {
	if p == ProfileClement {
		return ProfileCharlotte
	}
	return ProfileClement
}

func (p Profile) DisplayName() string {
	switch p {
	case ProfileClement:
		return "Clément"
	case ProfileCharlotte:
		return "Charlotte"
	default:
		return string(p)
	}
}

func (p Profile) String() string {
	return string(p)
}
