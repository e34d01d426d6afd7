package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const refreshYAML = `
name: refresh
mode: both
steps:
  - action: down
    at: 0
  - action: move
    at: 200
  - action: move
    at: 400
  - action: up
  - action: settle
  - action: complete
  - action: settle
`

func TestParse_DefaultsVersion(t *testing.T) {
	s, err := Parse([]byte(refreshYAML))
	require.NoError(t, err)
	assert.Equal(t, "v1.0.0", s.Version)
	assert.Equal(t, "refresh", s.Name)
	assert.Len(t, s.Steps, 7)
}

func TestParse_NormalizesActions(t *testing.T) {
	s, err := Parse([]byte("steps:\n  - action: \" Nested-Start \"\n"))
	require.NoError(t, err)
	assert.Equal(t, "nested-start", s.Steps[0].Action)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"not semver", "version: one\nsteps: [{action: up}]", "not a semantic version"},
		{"newer minor", "version: v1.9.0\nsteps: [{action: up}]", "not supported"},
		{"other major", "version: v2.0.0\nsteps: [{action: up}]", "not supported"},
		{"no steps", "name: empty", "no steps"},
		{"unknown action", "steps: [{action: fling}]", "unknown action"},
		{"bad wait", "steps: [{action: wait, duration: soon}]", "invalid wait duration"},
		{"negative wait", "steps: [{action: wait, duration: -1s}]", "negative"},
		{"mode without value", "steps: [{action: mode}]", "needs a mode"},
		{"bad yaml", "steps: [", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_AcceptsSupportedVersion(t *testing.T) {
	_, err := Parse([]byte("version: " + SupportedVersion + "\nsteps: [{action: up}]"))
	assert.NoError(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario")
}
