package plan

import "fmt"

// ActionKind identifies which variant an Action holds.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionTranslate
	ActionTranslateAndRotate
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "None"
	case ActionTranslate:
		return "Translate"
	case ActionTranslateAndRotate:
		return "TranslateAndRotate"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is the motion a robot performs to reach a waypoint from the one
// before it. DX and DY are in feet; Angle is in degrees and only meaningful
// for ActionTranslateAndRotate.
type Action struct {
	Kind  ActionKind
	DX    float32
	DY    float32
	Angle int
}

func None() Action { return Action{Kind: ActionNone} }

func Translate(dx, dy float32) Action {
	return Action{Kind: ActionTranslate, DX: dx, DY: dy}
}

func TranslateAndRotate(dx, dy float32, angle int) Action {
	return Action{Kind: ActionTranslateAndRotate, DX: dx, DY: dy, Angle: angle}
}

// String returns the exported form, e.g. "Action::Translate(1.5, -2)".
func (a Action) String() string {
	switch a.Kind {
	case ActionTranslate:
		return fmt.Sprintf("Action::Translate(%s, %s)", formatFeet(a.DX), formatFeet(a.DY))
	case ActionTranslateAndRotate:
		return fmt.Sprintf("Action::TranslateAndRotate(%s, %s, %d)", formatFeet(a.DX), formatFeet(a.DY), a.Angle)
	default:
		return "Action::None"
	}
}
