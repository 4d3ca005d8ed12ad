package main

import (
	"image"

	"github.com/ebitenui/ebitenui"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/pathplanner/config"
	"github.com/milk9111/pathplanner/export"
	"github.com/milk9111/pathplanner/field"
	"github.com/milk9111/pathplanner/plan"
	"github.com/rs/zerolog"
)

// planner applies input to the path state and exports it. It has no ebiten
// dependencies so it can be driven from tests.
type planner struct {
	state  *plan.State
	sink   export.Sink
	quoted bool
	script *export.Script
	log    zerolog.Logger
}

func newPlanner(state *plan.State, sink export.Sink, quoted bool, log zerolog.Logger) *planner {
	return &planner{state: state, sink: sink, quoted: quoted, log: log}
}

func (p *planner) click(x, y float32) bool {
	angle := p.state.PendingAngle()
	if !p.state.Click(plan.Vec2{X: x, Y: y}) {
		return false
	}
	wp, _ := p.state.Path().Last()
	p.log.Debug().
		Float32("x", x).
		Float32("y", y).
		Int("angle", angle).
		Stringer("action", wp.Action).
		Int("waypoints", p.state.Path().Len()).
		Msg("waypoint added")
	return true
}

// exportText renders the path with the export script when one is loaded.
func (p *planner) exportText() (string, error) {
	if p.script == nil {
		return export.Text(p.state.Path(), p.quoted), nil
	}
	return p.script.Format(p.state.Path(), p.state.Alliance())
}

func (p *planner) copyPath() error {
	out, err := p.exportText()
	if err != nil {
		p.log.Error().Err(err).Msg("format path")
		return err
	}
	if err := p.sink.Copy(out); err != nil {
		p.log.Error().Err(err).Msg("copy path")
		return err
	}
	p.log.Info().Int("waypoints", p.state.Path().Len()).Str("path", out).Msg("path copied")
	return nil
}

func (p *planner) resetPath() {
	n := p.state.Path().Len()
	p.state.Reset()
	p.log.Info().Int("cleared", n).Msg("path reset")
}

func (p *planner) setAlliance(a plan.Alliance) {
	if p.state.Alliance() == a {
		return
	}
	p.state.SetAlliance(a)
	p.log.Debug().Stringer("alliance", a).Msg("alliance changed")
}

func (p *planner) setAngle(deg int) {
	p.state.SetPendingAngle(deg)
}

func (p *planner) setScript(s *export.Script) {
	p.script = s
}

// reloadField swaps in a new field after a hot reload.
func (p *planner) reloadField(spec field.Spec) {
	p.state.SetField(spec.Field())
	p.log.Info().Str("field", spec.Name).Msg("field reloaded")
}

type Game struct {
	planner *planner

	spec     field.Spec
	fieldImg *ebiten.Image

	ui       *ebitenui.UI
	controls *Controls

	specPath      string
	imageOverride string
	scriptPath    string
	watcher       *field.Watcher

	width, height int
	log           zerolog.Logger
}

func NewGame(cfg config.Config, spec field.Spec, img image.Image, state *plan.State, sink export.Sink, script *export.Script, watcher *field.Watcher, log zerolog.Logger) *Game {
	g := &Game{
		planner:       newPlanner(state, sink, cfg.Clipboard.Quoted, log),
		spec:          spec,
		fieldImg:      ebiten.NewImageFromImage(img),
		specPath:      cfg.Field.Spec,
		imageOverride: cfg.Field.Image,
		scriptPath:    cfg.Export.Script,
		watcher:       watcher,
		width:         cfg.Window.Width,
		height:        cfg.Window.Height,
		log:           log,
	}
	g.planner.setScript(script)

	g.ui, g.controls = BuildPlannerUI(spec, PlannerCallbacks{
		OnCopy:     func() { _ = g.planner.copyPath() },
		OnReset:    g.planner.resetPath,
		OnAngle:    g.planner.setAngle,
		OnAlliance: g.planner.setAlliance,
	}, state, cfg.Clipboard.Quoted)

	return g
}

func (g *Game) Update() error {
	g.pollWatcher()

	g.ui.Update()

	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			_ = g.planner.copyPath()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.planner.resetPath()
		}
	}

	// Clicks on buttons or the slider must not also drop a waypoint.
	if !ebuiinput.UIHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.planner.click(float32(x), float32(y))
	}

	g.controls.Sync(g.planner.state)
	return nil
}

// pollWatcher drains pending file events without blocking the frame.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}

	changed := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Debug().Str("file", name).Msg("field file changed")
			changed = true
			continue
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Warn().Err(err).Msg("field watcher")
			continue
		default:
		}
		break
	}

	if changed {
		g.reload()
	}
}

func (g *Game) reload() {
	spec, img, err := loadField(g.specPath, g.imageOverride)
	if err != nil {
		g.log.Error().Err(err).Msg("reload field, keeping previous")
	} else {
		g.spec = spec
		g.fieldImg = ebiten.NewImageFromImage(img)
		g.planner.reloadField(spec)
	}

	if g.scriptPath == "" {
		return
	}
	script, err := export.LoadScript(g.scriptPath)
	if err != nil {
		g.log.Error().Err(err).Msg("reload export script, keeping previous")
		return
	}
	g.planner.setScript(script)
	g.log.Info().Str("script", g.scriptPath).Msg("export script reloaded")
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawScene(screen, g.fieldImg, sceneFor(g.spec, g.planner.state.Path()))
	g.ui.Draw(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.width), float64(g.height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops the file watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

// loadField reads the field spec and its image scaled to the image rect.
func loadField(specPath, imageOverride string) (field.Spec, image.Image, error) {
	spec, err := field.LoadSpec(specPath)
	if err != nil {
		return field.Spec{}, nil, err
	}
	img, err := field.LoadImage(
		spec.ImagePath(imageOverride),
		int(spec.ImageRect.Width()),
		int(spec.ImageRect.Height()),
	)
	if err != nil {
		return field.Spec{}, nil, err
	}
	return spec, img, nil
}
