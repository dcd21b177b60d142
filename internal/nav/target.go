package nav

import (
	"fmt"
	"strings"
)

// Target identifies a navigation destination shown in the bottom bar.
type Target int

const (
	Home Target = iota
	Map
	Journey
	Diary
	Profile
)

// targetCount is the size of the closed Target set.
const targetCount = int(Profile) + 1

func (t Target) String() string {
	switch t {
	case Home:
		return "Home"
	case Map:
		return "Map"
	case Journey:
		return "Journey"
	case Diary:
		return "Diary"
	case Profile:
		return "Profile"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}

// Valid reports whether t belongs to the closed Target set.
func (t Target) Valid() bool {
	return t >= 0 && int(t) < targetCount
}

// Targets returns every Target in navigation-bar order.
func Targets() []Target {
	out := make([]Target, targetCount)
	for i := range out {
		out[i] = Target(i)
	}
	return out
}

// ParseTarget resolves a case-insensitive target name ("home", "Map", ...).
func ParseTarget(s string) (Target, error) {
	name := strings.TrimSpace(s)
	for _, t := range Targets() {
		if strings.EqualFold(t.String(), name) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("nav: unknown target %q", s)
}
