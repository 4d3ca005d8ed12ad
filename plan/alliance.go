package plan

import (
	"fmt"
	"strings"
)

// Alliance selects which driver station the path is planned from. It flips
// the sign of both axes of every displacement.
type Alliance int

const (
	Blue Alliance = iota
	Red
)

func (a Alliance) String() string {
	switch a {
	case Blue:
		return "Blue"
	case Red:
		return "Red"
	default:
		return fmt.Sprintf("Alliance(%d)", int(a))
	}
}

// ParseAlliance accepts "red" or "blue" in any case.
func ParseAlliance(s string) (Alliance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blue":
		return Blue, nil
	case "red":
		return Red, nil
	default:
		return Blue, fmt.Errorf("plan: unknown alliance %q", s)
	}
}
