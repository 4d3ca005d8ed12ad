package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/pathplanner/field"
	"github.com/milk9111/pathplanner/plan"
	"golang.org/x/image/colornames"
)

const (
	waypointRadius = 10
	pathStroke     = 2
)

var (
	frameColor    = color.RGBA{90, 90, 90, 255}
	pathColor     = colornames.Dimgray
	waypointColor = color.RGBA{50, 50, 50, 255}
)

type segment struct {
	from, to plan.Vec2
}

// scene is everything Draw puts on screen for one frame, independent of
// the ebiten target it is drawn to.
type scene struct {
	frame       plan.Rect
	frameStroke float32
	image       plan.Rect
	segments    []segment
	points      []plan.Vec2
}

func sceneFor(spec field.Spec, p *plan.Path) scene {
	sc := scene{
		frame:       spec.FrameRect.Rect(),
		frameStroke: spec.FrameStroke,
		image:       spec.ImageRect.Rect(),
	}

	wps := p.Waypoints()
	for i, wp := range wps {
		sc.points = append(sc.points, wp.Pos)
		if i+1 < len(wps) {
			sc.segments = append(sc.segments, segment{from: wp.Pos, to: wps[i+1].Pos})
		}
	}
	return sc
}

func drawScene(screen, fieldImg *ebiten.Image, sc scene) {
	if fieldImg != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(sc.image.X), float64(sc.image.Y))
		screen.DrawImage(fieldImg, op)
	}

	if sc.frameStroke > 0 {
		vector.StrokeRect(screen, sc.frame.X, sc.frame.Y, sc.frame.Width, sc.frame.Height, sc.frameStroke, frameColor, false)
	}

	for _, s := range sc.segments {
		vector.StrokeLine(screen, s.from.X, s.from.Y, s.to.X, s.to.Y, pathStroke, pathColor, true)
	}
	for _, pt := range sc.points {
		vector.FillCircle(screen, pt.X, pt.Y, waypointRadius, waypointColor, true)
		vector.StrokeCircle(screen, pt.X, pt.Y, waypointRadius, pathStroke, pathColor, true)
	}
}
