package plan

const (
	MinAngle = -360
	MaxAngle = 360
)

// State is everything the planner mutates in response to input: the path,
// the selected alliance and the angle waiting to be attached to the next
// waypoint.
type State struct {
	field    Field
	path     Path
	alliance Alliance
	angle    int
}

func NewState(field Field, alliance Alliance) *State {
	return &State{field: field, alliance: alliance}
}

func (s *State) Field() Field { return s.field }

// SetField replaces the screen geometry. Waypoints already placed keep the
// actions computed when they were added.
func (s *State) SetField(f Field) { s.field = f }

func (s *State) Path() *Path { return &s.path }

func (s *State) Alliance() Alliance { return s.alliance }

func (s *State) SetAlliance(a Alliance) { s.alliance = a }

// PendingAngle is the rotation, in degrees, for the next waypoint.
func (s *State) PendingAngle() int { return s.angle }

// SetPendingAngle stores deg clamped to [MinAngle, MaxAngle].
func (s *State) SetPendingAngle(deg int) {
	s.angle = max(MinAngle, min(MaxAngle, deg))
}

// Click turns a primary-button press at pos into a waypoint. Presses outside
// the field are ignored and leave the state untouched. It reports whether a
// waypoint was added.
func (s *State) Click(pos Vec2) bool {
	if !s.field.Bounds.Contains(pos) {
		return false
	}

	wp := Waypoint{Pos: pos, Action: None()}
	if prev, ok := s.path.Last(); ok {
		dx, dy := s.field.Displacement(prev.Pos, pos, s.alliance)
		if s.angle == 0 {
			wp.Action = Translate(dx, dy)
		} else {
			wp.Action = TranslateAndRotate(dx, dy, s.angle)
		}
	}

	s.path.append(wp)
	s.angle = 0
	return true
}

// Reset clears the path. Alliance and pending angle are kept.
func (s *State) Reset() {
	s.path.Reset()
}

// Serialize returns the exported text of the current path.
func (s *State) Serialize() string {
	return s.path.String()
}
