package bootstrap

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	urfavecli "github.com/urfave/cli/v3"
)

// handleSubcommandCompletion checks if completion is being requested
// and outputs the command's flags. Returns true if completion was
// handled, false otherwise.
func handleSubcommandCompletion(cmd *urfavecli.Command) bool {
	if !slices.Contains(os.Args, "--generate-shell-completion") {
		return false
	}
	printFlagCompletions(cmd, "")
	return true
}

// subcommandShellComplete handles shell completion for subcommands. It
// handles the bare "--" case by outputting all flags and filters for
// partial matches (e.g. --f<TAB>).
func subcommandShellComplete(_ context.Context, cmd *urfavecli.Command) {
	args := os.Args
	lastArg := ""
	if len(args) > 1 {
		lastArg = args[len(args)-2]
	}

	if lastArg != "--" && strings.HasPrefix(lastArg, "-") {
		printFlagCompletions(cmd, lastArg)
		return
	}
	printFlagCompletions(cmd, "")
}

// printFlagCompletions prints the visible flags of cmd in completion
// format, one "--name:usage" line each. When prefix is non-empty only
// flags matching it are printed.
func printFlagCompletions(cmd *urfavecli.Command, prefix string) {
	for _, flag := range cmd.Flags {
		if bf, ok := flag.(*urfavecli.BoolFlag); ok && bf.Hidden {
			continue
		}
		if sf, ok := flag.(*urfavecli.StringFlag); ok && sf.Hidden {
			continue
		}
		name := flag.Names()[0]
		dashes := "--"
		if len(name) == 1 {
			dashes = "-"
		}
		fullFlag := dashes + name
		if prefix != "" && !strings.HasPrefix(fullFlag, prefix) {
			continue
		}
		usage := ""
		if df, ok := flag.(urfavecli.DocGenerationFlag); ok {
			usage = df.GetUsage()
		}
		if usage != "" {
			fmt.Printf("%s:%s\n", fullFlag, usage)
		} else {
			fmt.Printf("%s\n", fullFlag)
		}
	}
}
