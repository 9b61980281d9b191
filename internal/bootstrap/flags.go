// Package bootstrap builds the lazycommit command tree and wires
// configuration, the git and AI collaborators, and the TUI together.
package bootstrap

import (
	"github.com/chmouel/lazycommit/internal/config"
	urfavecli "github.com/urfave/cli/v3"
)

// globalFlags returns the flags shared by the root command and every
// subcommand.
// Note: --version is provided automatically by urfave/cli.
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Override the UI theme",
		},
	}
}

// baseFlag returns the --base flag used by every range-based
// subcommand. Leaving it at the built-in default defers to the
// configured default_branch.
func baseFlag() *urfavecli.StringFlag {
	return &urfavecli.StringFlag{
		Name:    "base",
		Aliases: []string{"b"},
		Usage:   "Base branch to compare against",
		Value:   config.DefaultBranchName,
	}
}
