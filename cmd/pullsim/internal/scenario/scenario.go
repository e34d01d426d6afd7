// Package scenario loads scripted gesture sequences and replays them
// through a pull engine under a virtual clock.
package scenario

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the newest scenario format this build understands.
const SupportedVersion = "v1.1.0"

// Scenario is a scripted interaction.
type Scenario struct {
	// Version is the scenario format version. Empty means v1.0.0.
	Version     string  `yaml:"version"`
	Name        string  `yaml:"name"`
	Mode        string  `yaml:"mode"`
	Orientation string  `yaml:"orientation"`
	Header      int     `yaml:"header"`
	Footer      int     `yaml:"footer"`
	Viewport    Size    `yaml:"viewport"`
	Content     Content `yaml:"content"`
	Steps       []Step  `yaml:"steps"`
}

// Size is a viewport size in logical pixels.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Content describes the scripted content's scroll limits.
type Content struct {
	CanScrollStart bool `yaml:"can_scroll_start"`
	CanScrollEnd   bool `yaml:"can_scroll_end"`
	Nested         bool `yaml:"nested"`
}

// Step is one scripted action.
type Step struct {
	Action string `yaml:"action"`
	// At is the along-axis pointer position for down and move.
	At float64 `yaml:"at"`
	// Cross is the cross-axis pointer position. Nil means the viewport
	// center.
	Cross *float64 `yaml:"cross"`
	// Delta is the along-axis amount for pre-scroll.
	Delta int `yaml:"delta"`
	// Duration is a Go duration for wait.
	Duration string `yaml:"duration"`
	Value    *bool  `yaml:"value"`
	Mode     string `yaml:"mode"`
	// CanScrollStart and CanScrollEnd update the content limits.
	CanScrollStart *bool `yaml:"can_scroll_start"`
	CanScrollEnd   *bool `yaml:"can_scroll_end"`
}

// Actions lists the step actions in the order they are documented.
var Actions = []string{
	"down", "move", "up", "cancel",
	"nested-start", "pre-scroll", "nested-stop",
	"wait", "settle", "complete", "set-loading",
	"all-loaded", "mode", "content",
}

// Load reads a YAML scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML scenario.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	if s.Version == "" {
		s.Version = "v1.0.0"
	}
	if !semver.IsValid(s.Version) {
		return fmt.Errorf("scenario version %q is not a semantic version", s.Version)
	}
	if semver.Major(s.Version) != semver.Major(SupportedVersion) || semver.Compare(s.Version, SupportedVersion) > 0 {
		return fmt.Errorf("scenario version %s is not supported (max %s)", s.Version, SupportedVersion)
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario has no steps")
	}
	for i := range s.Steps {
		step := &s.Steps[i]
		step.Action = strings.ToLower(strings.TrimSpace(step.Action))
		if !knownAction(step.Action) {
			return fmt.Errorf("step %d: unknown action %q", i+1, step.Action)
		}
		if step.Action == "wait" {
			if _, err := step.wait(); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		if step.Action == "mode" && step.Mode == "" {
			return fmt.Errorf("step %d: mode action needs a mode", i+1)
		}
	}
	return nil
}

func knownAction(action string) bool {
	for _, a := range Actions {
		if a == action {
			return true
		}
	}
	return false
}

func (s Step) wait() (time.Duration, error) {
	d, err := time.ParseDuration(s.Duration)
	if err != nil {
		return 0, fmt.Errorf("invalid wait duration %q", s.Duration)
	}
	if d < 0 {
		return 0, fmt.Errorf("wait duration %q is negative", s.Duration)
	}
	return d, nil
}
