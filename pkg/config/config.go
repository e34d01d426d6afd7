// Package config loads engine settings from pulltoload.yaml or
// pulltoload.toml.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/pulltoload/pkg/animation"
	"github.com/go-drift/pulltoload/pkg/errors"
	"github.com/go-drift/pulltoload/pkg/pull"
)

// FileNames are the settings files LoadOptional looks for, in order.
var FileNames = []string{"pulltoload.yaml", "pulltoload.yml", "pulltoload.toml"}

// Settings is the on-disk form of the engine configuration. Durations are
// Go duration strings such as "450ms".
type Settings struct {
	Mode          string  `yaml:"mode" toml:"mode"`
	Orientation   string  `yaml:"orientation" toml:"orientation"`
	TouchSlop     float64 `yaml:"touch_slop" toml:"touch_slop"`
	ReturnToStart string  `yaml:"return_to_start" toml:"return_to_start"`
	ReturnToEnd   string  `yaml:"return_to_end" toml:"return_to_end"`
	DefaultReturn string  `yaml:"default_return" toml:"default_return"`
	ManualDelay   string  `yaml:"manual_delay" toml:"manual_delay"`
	ReturnCurve   string  `yaml:"return_curve" toml:"return_curve"`
	UnderBar      bool    `yaml:"under_bar" toml:"under_bar"`
	LogLevel      string  `yaml:"log_level" toml:"log_level"`

	// Source is the file the settings were read from, empty for defaults.
	Source string `yaml:"-" toml:"-"`
}

// Default returns the settings used when no file exists.
func Default() *Settings {
	return &Settings{
		Mode:        "both",
		Orientation: "vertical",
		LogLevel:    "info",
	}
}

// Load reads settings from path. The format follows the extension.
// Keys missing from the file keep their defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	s := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, s)
	case ".toml":
		err = toml.Unmarshal(data, s)
	default:
		return nil, fmt.Errorf("unsupported settings format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	s.Source = path
	return s, nil
}

// LoadOptional reads the first of FileNames present in dir, or returns
// defaults when none exists.
func LoadOptional(dir string) (*Settings, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if stderrors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to stat %s: %w", name, err)
		}
		return Load(path)
	}
	return Default(), nil
}

// Resolved holds validated settings.
type Resolved struct {
	Mode          pull.LoadMode
	Orientation   pull.Orientation
	TouchSlop     float64
	ReturnToStart time.Duration
	ReturnToEnd   time.Duration
	DefaultReturn time.Duration
	ManualDelay   time.Duration
	ReturnCurve   func(float64) float64
	UnderBar      bool
	LogLevel      log.Level
}

// Resolve validates the settings. Empty values resolve to the engine
// defaults.
func (s *Settings) Resolve() (*Resolved, error) {
	mode, err := pull.ParseLoadMode(s.Mode)
	if err != nil {
		return nil, invalid("mode", s.Mode, "unknown load mode", err)
	}
	orientation, err := pull.ParseOrientation(s.Orientation)
	if err != nil {
		return nil, invalid("orientation", s.Orientation, "must be vertical or horizontal", err)
	}
	if s.TouchSlop < 0 {
		return nil, invalid("touch_slop", s.TouchSlop, "must not be negative", nil)
	}
	curve, err := animation.CurveByName(s.ReturnCurve)
	if err != nil {
		return nil, invalid("return_curve", s.ReturnCurve, "unknown curve", err)
	}
	level := log.InfoLevel
	if strings.TrimSpace(s.LogLevel) != "" {
		if level, err = log.ParseLevel(strings.ToLower(s.LogLevel)); err != nil {
			return nil, invalid("log_level", s.LogLevel, "unknown level", err)
		}
	}

	r := &Resolved{
		Mode:        mode,
		Orientation: orientation,
		TouchSlop:   s.TouchSlop,
		ReturnCurve: curve,
		UnderBar:    s.UnderBar,
		LogLevel:    level,
	}
	durations := []struct {
		key   string
		value string
		dst   *time.Duration
	}{
		{"return_to_start", s.ReturnToStart, &r.ReturnToStart},
		{"return_to_end", s.ReturnToEnd, &r.ReturnToEnd},
		{"default_return", s.DefaultReturn, &r.DefaultReturn},
		{"manual_delay", s.ManualDelay, &r.ManualDelay},
	}
	for _, d := range durations {
		if *d.dst, err = parseDuration(d.key, d.value); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Apply copies the resolved values onto cfg. Collaborators are left alone.
func (r *Resolved) Apply(cfg *pull.Config) {
	cfg.Mode = r.Mode
	cfg.TouchSlop = r.TouchSlop
	cfg.ReturnToStartDuration = r.ReturnToStart
	cfg.ReturnToEndDuration = r.ReturnToEnd
	cfg.DefaultReturnDuration = r.DefaultReturn
	cfg.ManualDelay = r.ManualDelay
	cfg.ReturnCurve = r.ReturnCurve
	cfg.UnderBar = r.UnderBar
}

// Apply resolves the settings and copies them onto cfg. cfg is untouched
// when validation fails.
func (s *Settings) Apply(cfg *pull.Config) error {
	r, err := s.Resolve()
	if err != nil {
		return err
	}
	r.Apply(cfg)
	return nil
}

func parseDuration(key, value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, invalid(key, value, "not a duration", err)
	}
	if d < 0 {
		return 0, invalid(key, value, "must not be negative", nil)
	}
	return d, nil
}

func invalid(key string, value any, reason string, err error) error {
	return errors.New("config.Resolve", errors.KindConfig, &errors.ConfigError{
		Field: key, Value: value, Reason: reason, Err: err,
	})
}
