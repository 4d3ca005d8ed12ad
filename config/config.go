package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the planner's settings. Zero values are never used directly;
// Load always fills defaults first.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Field     FieldConfig     `mapstructure:"field"`
	Alliance  string          `mapstructure:"alliance"`
	Clipboard ClipboardConfig `mapstructure:"clipboard"`
	Export    ExportConfig    `mapstructure:"export"`
	Watch     bool            `mapstructure:"watch"`
	Window    WindowConfig    `mapstructure:"window"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type FieldConfig struct {
	// Spec is a field YAML file; empty selects the built-in field.
	Spec string `mapstructure:"spec"`
	// Image overrides the image named in the spec.
	Image string `mapstructure:"image"`
}

type ClipboardConfig struct {
	// Quoted copies the path as a quoted, escaped string literal.
	Quoted bool `mapstructure:"quoted"`
}

type ExportConfig struct {
	// Script is a Tengo formatter replacing the built-in path text.
	Script string `mapstructure:"script"`
}

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

const defaultName = "pathplanner"

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("field.spec", "")
	v.SetDefault("field.image", "")
	v.SetDefault("alliance", "blue")
	v.SetDefault("clipboard.quoted", false)
	v.SetDefault("export.script", "")
	v.SetDefault("watch", true)
	v.SetDefault("window.width", 1400)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "FRC 2023 Path Planner")
}

// Load reads the YAML config at path. With an empty path it looks for
// pathplanner.yaml in dir and falls back to defaults when none exists.
func Load(path, dir string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("PATHPLANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(defaultName)
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read %s: %w", describe(path, dir), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", describe(path, dir), err)
	}
	return cfg, nil
}

// defaults returns the configuration used when no file is present.
func defaults() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return cfg
}

func describe(path, dir string) string {
	if path != "" {
		return path
	}
	return dir + "/" + defaultName + ".yaml"
}
