package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionString(t *testing.T) {
	cases := []struct {
		name   string
		action Action
		want   string
	}{
		{"none", None(), "Action::None"},
		{"translate", Translate(1.5, -2), "Action::Translate(1.5, -2)"},
		{"translate_float32_shortest", Translate(0.1, 4.2), "Action::Translate(0.1, 4.2)"},
		{"translate_negative_zero", Translate(float32(negZero()), 0), "Action::Translate(-0, 0)"},
		{"rotate", TranslateAndRotate(0.25, 3, -90), "Action::TranslateAndRotate(0.25, 3, -90)"},
		{"rotate_full_turn", TranslateAndRotate(0, 0, 360), "Action::TranslateAndRotate(0, 0, 360)"},
		{"no_exponent", Translate(0.000001, 123456), "Action::Translate(0.000001, 123456)"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.action.String())
		})
	}
}

func TestActionKindString(t *testing.T) {
	assert.Equal(t, "None", ActionNone.String())
	assert.Equal(t, "Translate", ActionTranslate.String())
	assert.Equal(t, "TranslateAndRotate", ActionTranslateAndRotate.String())
	assert.Equal(t, "ActionKind(9)", ActionKind(9).String())
}

func negZero() float64 {
	var z float64
	return -z
}
