package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pathplanner/config"
	"github.com/milk9111/pathplanner/export"
	"github.com/milk9111/pathplanner/field"
	"github.com/milk9111/pathplanner/logging"
	"github.com/milk9111/pathplanner/plan"
)

func main() {
	configPath := flag.String("config", "", "config file (default ./pathplanner.yaml if present)")
	fieldPath := flag.String("field", "", "field spec YAML (default: built-in 2023 field)")
	allianceName := flag.String("alliance", "", "initial alliance: red or blue")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath, ".")
	if err != nil {
		bootLog := logging.New(os.Stderr, "info")
		bootLog.Fatal().Err(err).Msg("load config")
	}
	if *fieldPath != "" {
		cfg.Field.Spec = *fieldPath
	}
	if *allianceName != "" {
		cfg.Alliance = *allianceName
	}
	if *debug {
		cfg.Log.Level = "debug"
	}

	log := logging.New(os.Stderr, cfg.Log.Level)

	alliance, err := plan.ParseAlliance(cfg.Alliance)
	if err != nil {
		log.Fatal().Err(err).Msg("parse alliance")
	}

	spec, img, err := loadField(cfg.Field.Spec, cfg.Field.Image)
	if err != nil {
		log.Fatal().Err(err).Msg("load field")
	}
	log.Info().
		Str("field", spec.Name).
		Str("image", spec.ImagePath(cfg.Field.Image)).
		Float32("feet_per_pixel", spec.Scale.FeetPerPixel()).
		Msg("field loaded")

	var sink export.Sink
	cb, err := export.NewClipboard()
	if err != nil {
		log.Warn().Err(err).Msg("clipboard unavailable, copies stay in memory")
		sink = &export.Memory{}
	} else {
		sink = cb
	}

	var script *export.Script
	if cfg.Export.Script != "" {
		script, err = export.LoadScript(cfg.Export.Script)
		if err != nil {
			log.Fatal().Err(err).Msg("load export script")
		}
		log.Info().Str("script", cfg.Export.Script).Msg("export script loaded")
	}

	var watcher *field.Watcher
	if cfg.Watch {
		watcher, err = field.NewWatcher(cfg.Field.Spec, spec.ImagePath(cfg.Field.Image), cfg.Export.Script)
		if err != nil {
			log.Warn().Err(err).Msg("field hot reload disabled")
			watcher = nil
		}
	}

	state := plan.NewState(spec.Field(), alliance)
	game := NewGame(cfg, spec, img, state, sink, script, watcher, log)
	defer game.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	log.Info().Stringer("alliance", alliance).Msg("starting planner")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("run game")
	}
}
