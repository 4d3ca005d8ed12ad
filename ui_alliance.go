package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/pathplanner/plan"
)

// alliances lists the radio buttons in display order.
var alliances = []plan.Alliance{plan.Red, plan.Blue}

// AllianceSelector is the Red/Blue radio group.
type AllianceSelector struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
}

func buildAllianceSelector(theme *widget.Theme, fontFace *text.Face, onAllianceSelected func(a plan.Alliance), initial plan.Alliance) (*widget.Container, *AllianceSelector) {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(10),
			),
		),
	)

	idleColors := map[plan.Alliance]color.Color{
		plan.Red:  color.RGBA{220, 60, 60, 255},
		plan.Blue: color.RGBA{60, 110, 220, 255},
	}

	var buttons []*widget.Button
	for _, a := range alliances {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(a.String(), fontFace, &widget.ButtonTextColor{
				Idle:     idleColors[a],
				Hover:    idleColors[a],
				Pressed:  color.Black,
				Disabled: color.Gray{Y: 128},
			}),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(60, 28),
			),
		)
		buttons = append(buttons, btn)
		row.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(buttons))
	for _, b := range buttons {
		elements = append(elements, b)
	}

	sel := &AllianceSelector{buttons: buttons}
	sel.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if onAllianceSelected == nil {
				return
			}
			for idx, b := range buttons {
				if args.Active == b {
					onAllianceSelected(alliances[idx])
					return
				}
			}
		}),
	)
	sel.SetAlliance(initial)

	return row, sel
}

// SetAlliance marks a as the active button without waiting for a click.
func (s *AllianceSelector) SetAlliance(a plan.Alliance) {
	if s == nil || s.group == nil {
		return
	}
	for idx, candidate := range alliances {
		if candidate != a || idx >= len(s.buttons) {
			continue
		}
		if s.group.Active() != s.buttons[idx] {
			s.group.SetActive(s.buttons[idx])
		}
		return
	}
}
