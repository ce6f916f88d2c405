package entities

import (
	"fmt"
	"strings"
)

// Team identifies one of the two squad tiers
type Team string

const (
	TeamA Team = "A"
	TeamB Team = "B"
)

// ParseTeam normalizes a team selector to TeamA or TeamB.
// Anything that does not normalize to exactly "A" or "B" is rejected.
func ParseTeam(s string) (Team, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return TeamA, nil
	case "B":
		return TeamB, nil
	default:
		return "", fmt.Errorf("invalid team %q: must be A or B", s)
	}
}

// String returns the team selector as entered by users
func (t Team) String() string {
	return string(t)
}
