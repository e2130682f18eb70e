package main

import (
	urfavecli "github.com/urfave/cli/v3"
)

// globalFlags returns all global flags for the application.
// Note: --version is provided automatically by urfave/cli via Command.Version
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringSliceFlag{
			Name:    "config",
			Aliases: []string{"C"},
			Usage:   "Override config values (repeatable): --config=ls.key=value",
		},
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Override the UI theme",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.StringFlag{
			Name:  "catalog",
			Usage: "Path to a YAML listing catalog",
		},
		&urfavecli.BoolFlag{
			Name:  "watch",
			Usage: "Reload the catalog file when it changes",
		},
		&urfavecli.StringFlag{
			Name:  "output-criteria",
			Usage: "Write the last applied filter criteria as JSON to a file",
		},
		&urfavecli.StringFlag{
			Name:  "dismiss-policy",
			Usage: "What closing the filter panel does to unapplied edits: keep or discard",
		},
	}
}
