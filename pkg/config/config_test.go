package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/pulltoload/pkg/errors"
	"github.com/go-drift/pulltoload/pkg/pull"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOptional_Defaults(t *testing.T) {
	s, err := LoadOptional(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
	assert.Empty(t, s.Source)
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "pulltoload.yaml", `
mode: pull-from-end
orientation: horizontal
touch_slop: 12
return_to_start: 450ms
manual_delay: 1s
return_curve: ease-out
log_level: debug
`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "pull-from-end", s.Mode)
	assert.Equal(t, "horizontal", s.Orientation)
	assert.Equal(t, 12.0, s.TouchSlop)
	assert.Equal(t, path, s.Source)

	r, err := s.Resolve()
	require.NoError(t, err)
	assert.Equal(t, pull.ModePullFromEnd, r.Mode)
	assert.Equal(t, pull.Horizontal, r.Orientation)
	assert.Equal(t, 450*time.Millisecond, r.ReturnToStart)
	assert.Equal(t, time.Second, r.ManualDelay)
	assert.Zero(t, r.ReturnToEnd)
	assert.Equal(t, log.DebugLevel, r.LogLevel)
	require.NotNil(t, r.ReturnCurve)
}

func TestLoad_TOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "pulltoload.toml", `
mode = "pull-from-start-auto-load-more"
default_return = "200ms"
under_bar = true
`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "vertical", s.Orientation, "missing keys keep defaults")

	var cfg pull.Config
	require.NoError(t, s.Apply(&cfg))
	assert.Equal(t, pull.ModePullFromStartAutoLoadMore, cfg.Mode)
	assert.Equal(t, 200*time.Millisecond, cfg.DefaultReturnDuration)
	assert.True(t, cfg.UnderBar)
}

func TestLoadOptional_PrefersYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pulltoload.toml", `mode = "disabled"`)
	writeFile(t, dir, "pulltoload.yaml", "mode: manual-only\n")

	s, err := LoadOptional(dir)
	require.NoError(t, err)
	assert.Equal(t, "manual-only", s.Mode)
	assert.Equal(t, filepath.Join(dir, "pulltoload.yaml"), s.Source)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "settings.json", `{}`))
	assert.ErrorContains(t, err, "unsupported settings format")

	_, err = Load(writeFile(t, dir, "broken.yaml", "mode: [unterminated\n"))
	assert.ErrorContains(t, err, "failed to parse broken.yaml")
}

func TestResolve_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Settings)
		field string
	}{
		{"mode", func(s *Settings) { s.Mode = "sideways" }, "mode"},
		{"orientation", func(s *Settings) { s.Orientation = "diagonal" }, "orientation"},
		{"slop", func(s *Settings) { s.TouchSlop = -1 }, "touch_slop"},
		{"curve", func(s *Settings) { s.ReturnCurve = "bounce" }, "return_curve"},
		{"level", func(s *Settings) { s.LogLevel = "loud" }, "log_level"},
		{"duration", func(s *Settings) { s.ReturnToEnd = "soon" }, "return_to_end"},
		{"negative duration", func(s *Settings) { s.ManualDelay = "-1s" }, "manual_delay"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.edit(s)

			cfg := pull.Config{Mode: pull.ModeManualOnly}
			err := s.Apply(&cfg)
			var cfgErr *errors.ConfigError
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
			assert.Equal(t, tt.field, cfgErr.Field)
			assert.Equal(t, pull.ModeManualOnly, cfg.Mode, "config untouched on error")
		})
	}
}

func TestResolve_ModeErrorWrapsSentinel(t *testing.T) {
	s := Default()
	s.Mode = "nope"
	_, err := s.Resolve()
	assert.True(t, errors.Is(err, errors.ErrInvalidMode))
}
