package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "", cfg.Field.Spec)
	assert.Equal(t, "", cfg.Field.Image)
	assert.Equal(t, "blue", cfg.Alliance)
	assert.False(t, cfg.Clipboard.Quoted)
	assert.Equal(t, "", cfg.Export.Script)
	assert.True(t, cfg.Watch)
	assert.Equal(t, 1400, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "FRC 2023 Path Planner", cfg.Window.Title)

	assert.Equal(t, defaults(), cfg)
}

func TestLoad_FileInDir(t *testing.T) {
	dir := t.TempDir()
	data := `
log:
  level: debug
field:
  spec: fields/practice.yaml
alliance: red
clipboard:
  quoted: true
export:
  script: scripts/java.tengo
watch: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pathplanner.yaml"), []byte(data), 0o644))

	cfg, err := Load("", dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "fields/practice.yaml", cfg.Field.Spec)
	assert.Equal(t, "red", cfg.Alliance)
	assert.True(t, cfg.Clipboard.Quoted)
	assert.Equal(t, "scripts/java.tengo", cfg.Export.Script)
	assert.False(t, cfg.Watch)
	assert.Equal(t, 1400, cfg.Window.Width, "unset keys keep defaults")
}

func TestLoad_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  title: Scrimmage\n"), 0o644))

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "Scrimmage", cfg.Window.Title)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pathplanner.yaml"), []byte("log: [oops"), 0o644))

	_, err := Load("", dir)
	require.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PATHPLANNER_ALLIANCE", "red")
	t.Setenv("PATHPLANNER_LOG_LEVEL", "warn")

	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "red", cfg.Alliance)
	assert.Equal(t, "warn", cfg.Log.Level)
}
