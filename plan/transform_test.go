package plan

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeetPerPixel(t *testing.T) {
	assert.InDelta(t, (18.0+2.0/3.0)/447.0, float64(FeetPerPixel), 1e-7)
	assert.InDelta(t, 0.04176, float64(FeetPerPixel), 1e-5)
	// Rounded to float32 after each step, not folded once.
	assert.Equal(t, uint32(1026231400), math.Float32bits(FeetPerPixel))
	assert.Equal(t, FeetPerPixel, ScaleFeetPerPixel(18, 8, 447))
}

func TestRectContains(t *testing.T) {
	bounds := DefaultField().Bounds

	cases := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"center", Vec2{500, 250}, true},
		{"just_inside_min", Vec2{5.1, 5.1}, true},
		{"just_inside_max", Vec2{1084.9, 527.9}, true},
		{"left_of_field", Vec2{4.9, 250}, false},
		{"below_field", Vec2{500, 530}, false},
		{"on_left_edge", Vec2{5, 250}, false},
		{"on_top_edge", Vec2{500, 5}, false},
		{"on_right_edge", Vec2{1085, 250}, false},
		{"on_bottom_edge", Vec2{500, 528}, false},
		{"controls_panel", Vec2{1150, 300}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, bounds.Contains(c.p))
		})
	}
}

func TestDisplacement(t *testing.T) {
	f := DefaultField()
	k := float64(FeetPerPixel)

	cases := []struct {
		name        string
		prev, click Vec2
		alliance    Alliance
		wantDX      float64
		wantDY      float64
	}{
		{"blue_right_down", Vec2{100, 100}, Vec2{200, 150}, Blue, 100 * k, -50 * k},
		{"red_right_down", Vec2{100, 100}, Vec2{200, 150}, Red, -100 * k, 50 * k},
		{"blue_left_up", Vec2{300, 300}, Vec2{250, 100}, Blue, -50 * k, 200 * k},
		{"red_left_up", Vec2{300, 300}, Vec2{250, 100}, Red, 50 * k, -200 * k},
		{"same_point", Vec2{42, 42}, Vec2{42, 42}, Blue, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dx, dy := f.Displacement(c.prev, c.click, c.alliance)
			assert.InDelta(t, c.wantDX, float64(dx), 1e-4)
			assert.InDelta(t, c.wantDY, float64(dy), 1e-4)
		})
	}
}

func TestDisplacementRedMirrorsBlue(t *testing.T) {
	f := DefaultField()
	prev, click := Vec2{612.5, 77.25}, Vec2{18, 401}

	bdx, bdy := f.Displacement(prev, click, Blue)
	rdx, rdy := f.Displacement(prev, click, Red)

	assert.Equal(t, -bdx, rdx)
	assert.Equal(t, -bdy, rdy)
}

func TestDisplacementUsesFieldScale(t *testing.T) {
	f := Field{Bounds: Rect{Width: 100, Height: 100}, FeetPerPixel: 0.5}
	dx, dy := f.Displacement(Vec2{10, 10}, Vec2{20, 30}, Blue)
	assert.Equal(t, float32(5), dx)
	assert.Equal(t, float32(-10), dy)
}
