package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/pulltoload/pkg/errors"
)

const refreshScenario = `
name: refresh
mode: both
steps:
  - {action: down, at: 0}
  - {action: move, at: 200}
  - {action: move, at: 400}
  - {action: up}
  - {action: settle}
  - {action: complete}
  - {action: settle}
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	plotPath, showSamples, configPath = "", false, ""
	t.Cleanup(func() { errors.SetHandler(nil) })

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersionCommand(t *testing.T) {
	origVersion := Version
	defer func() { Version = origVersion }()
	Version = "1.2.3"

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pullsim version 1.2.3")
}

func TestModesCommand(t *testing.T) {
	out, err := execute(t, "modes")
	require.NoError(t, err)
	for _, name := range []string{"pull-from-start", "pull-from-start-auto-load-more-with-footer", "both", "disabled", "manual-only"} {
		assert.Contains(t, out, name)
	}
}

func TestTransitionsCommand(t *testing.T) {
	out, err := execute(t, "transitions")
	require.NoError(t, err)
	assert.Contains(t, out, "ReleaseToUpdate")
	assert.Contains(t, out, "Complete")
	assert.Contains(t, out, "ManualUpdate")
}

func TestRunCommand(t *testing.T) {
	path := writeFile(t, "refresh.yaml", refreshScenario)

	out, err := execute(t, "run", path)
	require.NoError(t, err)
	assert.Contains(t, out, "refresh (both)")
	assert.Contains(t, out, "load new")
	assert.Contains(t, out, "final state Reset, offset 0, load-new 1, load-more 0")
}

func TestRunCommand_Samples(t *testing.T) {
	path := writeFile(t, "refresh.yaml", refreshScenario)

	out, err := execute(t, "run", "--samples", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Updating")
	assert.Contains(t, out, "-200")
}

func TestRunCommand_Plot(t *testing.T) {
	path := writeFile(t, "refresh.yaml", refreshScenario)
	out := filepath.Join(t.TempDir(), "trace.png")

	_, err := execute(t, "run", "--plot", out, path)
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	assert.NoError(t, err)
}

func TestRunCommand_SettingsFile(t *testing.T) {
	scenarioPath := writeFile(t, "manual.yaml", `
steps:
  - {action: set-loading}
  - {action: wait, duration: 100ms}
`)
	settingsPath := writeFile(t, "pulltoload.toml", "manual_delay = \"50ms\"\nlog_level = \"debug\"\n")

	out, err := execute(t, "run", "--config", settingsPath, scenarioPath)
	require.NoError(t, err)
	assert.Contains(t, out, "load-new 1")
	assert.Equal(t, log.DebugLevel, logger.GetLevel())
}

func TestRunCommand_Errors(t *testing.T) {
	badSettings := writeFile(t, "pulltoload.yaml", "mode: sideways\n")
	good := writeFile(t, "ok.yaml", refreshScenario)
	badScenario := writeFile(t, "bad.yaml", "version: v9.0.0\nsteps: [{action: up}]\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing scenario", []string{"run", filepath.Join(t.TempDir(), "nope.yaml")}, "failed to read scenario"},
		{"unsupported version", []string{"run", badScenario}, "not supported"},
		{"invalid settings", []string{"run", "--config", badSettings, good}, "mode"},
		{"no args", []string{"run"}, "accepts 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
