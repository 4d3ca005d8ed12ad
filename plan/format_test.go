package plan

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerialize(t *testing.T) {
	cases := []struct {
		name string
		wps  []Waypoint
		want string
	}{
		{"empty", nil, "{}"},
		{"single", []Waypoint{{Pos: Vec2{10, 10}, Action: None()}}, "{Action::None}"},
		{
			"mixed",
			[]Waypoint{
				{Pos: Vec2{10, 10}, Action: None()},
				{Pos: Vec2{20, 10}, Action: Translate(0.5, 0)},
				{Pos: Vec2{20, 30}, Action: TranslateAndRotate(0, -1.25, 90)},
			},
			"{Action::None, Action::Translate(0.5, 0), Action::TranslateAndRotate(0, -1.25, 90)}",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Serialize(c.wps))
		})
	}
}

func TestSerializeTwoClickPath(t *testing.T) {
	s := NewState(DefaultField(), Blue)
	s.Click(Vec2{100, 100})
	s.Click(Vec2{200, 150})

	dx := formatFeet(100 * FeetPerPixel)
	dy := formatFeet(-50 * FeetPerPixel)
	want := fmt.Sprintf("{Action::None, Action::Translate(%s, %s)}", dx, dy)

	assert.Equal(t, want, s.Serialize())
	assert.Equal(t, want, s.Serialize(), "serialization is deterministic")
}

func TestSerializeMatchesRobotConstant(t *testing.T) {
	s := NewState(DefaultField(), Blue)
	s.Click(Vec2{100, 100})
	s.Click(Vec2{200, 150})

	assert.Equal(t, "{Action::None, Action::Translate(4.1759877, -2.0879939)}", s.Serialize())
}
