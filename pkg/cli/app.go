// Package cli implements the bayscreen command line application.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/bayscreen/bayscreen/pkg/config"
	"github.com/bayscreen/bayscreen/pkg/logging"
)

const (
	appName      = "bayscreen"
	appConfigKey = "app-config"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	configDirFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to the config directory (default: ~/.bayscreen)",
	}

	logFileFlag = &cli.StringFlag{
		Name:  "log-file",
		Usage: "Appends a JSON copy of the logs to this file",
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefaultCLILogger("info")

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

type appConfig struct {
	Conf     *config.Config
	Debug    bool
	closeLog func() error
}

func getConfig(c *cli.Context) *appConfig {
	return c.App.Metadata[appConfigKey].(*appConfig)
}

func newApp() *cli.App {
	return &cli.App{
		Name:                 appName,
		Version:              fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Compiled:             time.Now(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Usage:                "Score molecules against trained activity models and aggregate feature importance reports",
		Flags: []cli.Flag{
			debugFlag,
			configDirFlag,
			logFileFlag,
		},
		Commands: []*cli.Command{
			screenCmd,
			aggregateCmd,
		},
		Before: func(c *cli.Context) error {
			dir := c.String(configDirFlag.Name)
			if dir == "" {
				var err error
				dir, _, err = config.GetOrCreateHomeDir(appName)
				if err != nil {
					return fmt.Errorf("resolving config directory: %w", err)
				}
			}

			conf, err := config.ReadOrCreate(dir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			level := conf.LogLevel
			if c.Bool(debugFlag.Name) {
				level = "debug"
			}
			logFile := c.String(logFileFlag.Name)
			if logFile == "" {
				logFile = conf.LogFile
			}

			closeLog, err := logging.Setup(level, logFile)
			if err != nil {
				return fmt.Errorf("initializing logging: %w", err)
			}

			c.App.Metadata[appConfigKey] = &appConfig{
				Conf:     conf,
				Debug:    c.Bool(debugFlag.Name),
				closeLog: closeLog,
			}
			return nil
		},
		After: func(c *cli.Context) error {
			if cfg, ok := c.App.Metadata[appConfigKey].(*appConfig); ok && cfg.closeLog != nil {
				if err := cfg.closeLog(); err != nil {
					slog.Error("error closing log file", "error", err)
				}
			}
			return nil
		},
	}
}
