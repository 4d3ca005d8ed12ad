package plan

// Waypoint is a clicked screen position and the action that reaches it.
type Waypoint struct {
	Pos    Vec2
	Action Action
}

// Path is the ordered list of waypoints. It only grows by one waypoint at a
// time or is cleared entirely.
type Path struct {
	waypoints []Waypoint
}

func (p *Path) Len() int { return len(p.waypoints) }

// Waypoints returns a copy of the waypoints in traversal order.
func (p *Path) Waypoints() []Waypoint {
	if len(p.waypoints) == 0 {
		return nil
	}
	out := make([]Waypoint, len(p.waypoints))
	copy(out, p.waypoints)
	return out
}

// Last returns the most recently appended waypoint.
func (p *Path) Last() (Waypoint, bool) {
	if len(p.waypoints) == 0 {
		return Waypoint{}, false
	}
	return p.waypoints[len(p.waypoints)-1], true
}

func (p *Path) append(wp Waypoint) {
	p.waypoints = append(p.waypoints, wp)
}

// Reset drops every waypoint.
func (p *Path) Reset() {
	p.waypoints = nil
}

func (p *Path) String() string {
	return Serialize(p.waypoints)
}
