package plan

import (
	"strconv"
	"strings"
)

// Serialize renders the actions of waypoints as "{A1, A2, ..., An}".
// Positions are not part of the output.
func Serialize(waypoints []Waypoint) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, wp := range waypoints {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(wp.Action.String())
	}
	b.WriteByte('}')
	return b.String()
}

// formatFeet prints the shortest decimal that round-trips v as a float32,
// without exponent notation.
func formatFeet(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
