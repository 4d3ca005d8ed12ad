package main

import (
	"bytes"
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/pathplanner/export"
	"github.com/milk9111/pathplanner/field"
	"github.com/milk9111/pathplanner/plan"
	"golang.org/x/image/font/gofont/goregular"
)

// Controls holds the widgets that mirror planner state each frame.
type Controls struct {
	pathText    *widget.Text
	angleSlider *widget.Slider
	angleText   *widget.Text
	alliance    *AllianceSelector

	quoted bool
	angle  angleSync
}

// Sync copies state into the widgets. It never mutates state.
func (c *Controls) Sync(s *plan.State) {
	if c == nil {
		return
	}
	c.pathText.Label = pathLabel(s, c.quoted)
	if deg, ok := c.angle.next(s.PendingAngle()); ok {
		c.angleSlider.Current = deg
	}
	c.angleText.Label = angleLabel(s.PendingAngle())
	c.alliance.SetAlliance(s.Alliance())
}

// angleSync decides when the pending angle is pushed into the slider. Track
// clicks and wheel steps change the slider during ui.Update but are only
// reported from Render, so the slider is overwritten only when the state
// moved on its own, e.g. a waypoint consumed the angle.
type angleSync struct {
	last int
}

func (a *angleSync) next(state int) (int, bool) {
	if state == a.last {
		return 0, false
	}
	a.last = state
	return state, true
}

func pathLabel(s *plan.State, quoted bool) string {
	return "Your Path: " + export.Text(s.Path(), quoted)
}

func angleLabel(deg int) string {
	return fmt.Sprintf("%d°", deg)
}

// PlannerCallbacks are invoked from widget handlers during ui.Update.
type PlannerCallbacks struct {
	OnCopy     func()
	OnReset    func()
	OnAngle    func(deg int)
	OnAlliance func(a plan.Alliance)
}

func BuildPlannerUI(spec field.Spec, cb PlannerCallbacks, initial *plan.State, quoted bool) (*ebitenui.UI, *Controls) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newPlannerTheme(&fontFace)

	bottom, pathText := buildPathPanel(ui.PrimaryTheme, &fontFace, spec, cb)
	right, controls := buildSettingsPanel(ui.PrimaryTheme, &fontFace, spec, cb, initial)
	controls.pathText = pathText
	controls.quoted = quoted

	// Root container: anchor layout, one full-size overlay per panel so each
	// can be offset around the field independently.
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(bottom)
	root.AddChild(right)

	ui.Container = root
	controls.Sync(initial)
	return ui, controls
}

func overlay(padding widget.Insets) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&padding),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchHorizontal: true,
				StretchVertical:   true,
			}),
		),
	)
}

// buildPathPanel lays out the export/reset buttons and the path readout
// under the field frame.
func buildPathPanel(theme *widget.Theme, fontFace *text.Face, spec field.Spec, cb PlannerCallbacks) (*widget.Container, *widget.Text) {
	frame := spec.FrameRect
	wrap := overlay(widget.Insets{
		Top:  int(frame.MaxY) + 5,
		Left: int(frame.MinX) + 10,
	})

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
			widget.WidgetOpts.MinSize(int(frame.Width())-20, 0),
		),
	)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(50),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
	)
	buttons.AddChild(newPlannerButton(theme, fontFace, "Copy Path to Clipboard", cb.OnCopy))
	buttons.AddChild(newPlannerButton(theme, fontFace, "Reset Path", cb.OnReset))

	pathText := widget.NewText(
		widget.TextOpts.Text("Your Path: {}", fontFace, labelTextColor),
		widget.TextOpts.MaxWidth(float64(frame.Width())-20),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart}),
		),
	)

	panel.AddChild(buttons)
	panel.AddChild(pathText)
	wrap.AddChild(panel)
	return wrap, pathText
}

// buildSettingsPanel lays out the angle slider and alliance selector to the
// right of the field.
func buildSettingsPanel(theme *widget.Theme, fontFace *text.Face, spec field.Spec, cb PlannerCallbacks, initial *plan.State) (*widget.Container, *Controls) {
	wrap := overlay(widget.Insets{
		Top:  215,
		Left: int(spec.FrameRect.MaxX) + 10,
	})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(newPlannerLabel(fontFace, "The Angle to rotate during the translation"))

	angleText := newPlannerLabel(fontFace, angleLabel(initial.PendingAngle()))
	slider := widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(plan.MinAngle, plan.MaxAngle),
		widget.SliderOpts.InitialCurrent(initial.PendingAngle()),
		widget.SliderOpts.Images(theme.SliderTheme.TrackImage, theme.SliderTheme.HandleImage),
		widget.SliderOpts.FixedHandleSize(12),
		widget.SliderOpts.PageSizeFunc(func() int {
			return 15
		}),
		widget.SliderOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(260, 20),
		),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			angleText.Label = angleLabel(args.Current)
			if cb.OnAngle != nil {
				cb.OnAngle(args.Current)
			}
		}),
	)
	panel.AddChild(slider)
	panel.AddChild(angleText)

	panel.AddChild(newPlannerLabel(fontFace, "Select the alliance that this auto is for"))
	allianceRow, alliance := buildAllianceSelector(theme, fontFace, cb.OnAlliance, initial.Alliance())
	panel.AddChild(allianceRow)

	wrap.AddChild(panel)
	return wrap, &Controls{
		angleSlider: slider,
		angleText:   angleText,
		alliance:    alliance,
		angle:       angleSync{last: initial.PendingAngle()},
	}
}

func newPlannerButton(theme *widget.Theme, fontFace *text.Face, label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(label, fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.TextPadding(&widget.Insets{Left: 20, Right: 20, Top: 4, Bottom: 4}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 24),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func newPlannerLabel(fontFace *text.Face, label string) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, fontFace, labelTextColor),
	)
}
