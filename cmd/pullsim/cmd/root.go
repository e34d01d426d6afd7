// Package cmd implements the pullsim CLI commands.
//
// The root command carries the logging and settings flags shared by every
// subcommand (run, modes, transitions, version).
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/pulltoload/pkg/config"
	"github.com/go-drift/pulltoload/pkg/errors"
	"github.com/go-drift/pulltoload/pkg/logging"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var (
	logLevel   string
	configPath string
	logger     = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "pullsim",
	Short: "Replay pull-to-load gestures against the interaction engine",
	Long: `pullsim drives the pull-to-load engine with scripted pointer and
nested-scroll input under a virtual clock, then prints every indicator,
listener and edge effect call it observed.

Settings are read from --config, or from pulltoload.yaml, pulltoload.yml
or pulltoload.toml in the working directory.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.New(cmd.ErrOrStderr(), logging.Options{Level: logLevel, Prefix: "pullsim"})
		errors.SetHandler(errors.NewLogHandler(logger))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "settings file (default: pulltoload.{yaml,yml,toml} in the working directory)")
}

// loadSettings reads --config when set and the working directory's
// settings file otherwise.
func loadSettings(cmd *cobra.Command) (*config.Resolved, error) {
	var (
		settings *config.Settings
		err      error
	)
	if configPath != "" {
		settings, err = config.Load(configPath)
	} else {
		var dir string
		if dir, err = os.Getwd(); err == nil {
			settings, err = config.LoadOptional(dir)
		}
	}
	if err != nil {
		return nil, err
	}
	resolved, err := settings.Resolve()
	if err != nil {
		return nil, err
	}
	if !cmd.Flags().Changed("log-level") {
		logger.SetLevel(resolved.LogLevel)
	}
	if settings.Source != "" {
		logger.Debug("loaded settings", "path", settings.Source)
	}
	return resolved, nil
}
