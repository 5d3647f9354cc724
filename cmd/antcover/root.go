// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/antcover/config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	var g globalFlags
	root := &cobra.Command{
		Use:           "antcover",
		Short:         "Ant Colony heuristic for the unicost Set Covering Problem",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&g.logFormat, "log-format", "", "log format (text, json)")

	root.AddCommand(newSolveCmd(&g), newValidateCmd(&g), newPreprocessCmd(&g))

	return root
}

// loadConfig reads the configuration file, overlays the global flags and
// applies the logging section.
func loadConfig(cmd *cobra.Command, g *globalFlags) (config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return cfg, err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Log.Format = g.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if err := configureLogging(cfg.Log, cmd.ErrOrStderr()); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// configureLogging sets the global logrus level, formatter and output.
func configureLogging(lc config.LogConfig, out io.Writer) error {
	level, err := logrus.ParseLevel(lc.Level)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	logrus.SetOutput(out)
	if lc.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return nil
}
