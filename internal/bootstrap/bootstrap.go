package bootstrap

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazycommit/internal/ai"
	"github.com/chmouel/lazycommit/internal/app"
	"github.com/chmouel/lazycommit/internal/buildinfo"
	"github.com/chmouel/lazycommit/internal/config"
	"github.com/chmouel/lazycommit/internal/forge"
	"github.com/chmouel/lazycommit/internal/git"
	"github.com/chmouel/lazycommit/internal/log"
	"github.com/chmouel/lazycommit/internal/theme"
	"github.com/chmouel/lazycommit/internal/utils"
	urfavecli "github.com/urfave/cli/v3"
)

// NewRootCommand assembles the lazycommit command tree. Running it
// without a subcommand starts the interactive TUI.
func NewRootCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "lazycommit",
		Usage:                 "AI-powered git companion for enhanced development workflow",
		Version:               buildinfo.Version(),
		Flags:                 globalFlags(),
		EnableShellCompletion: true,
		Action:                runTUI,
		Commands: []*urfavecli.Command{
			prDescriptionCommand(),
			generateTestsCommand(),
			improveCommitCommand(),
			commitCommand(),
			changelogCommand(),
			reviewCommand(),
		},
	}
}

// Execute parses args and runs the selected command.
func Execute(ctx context.Context, args []string) error {
	return NewRootCommand().Run(ctx, args)
}

// runTUI is the root action: it loads configuration and hands the
// terminal to the Bubble Tea program.
func runTUI(ctx context.Context, cmd *urfavecli.Command) error {
	cfg, err := loadCLIConfigFunc(cmd.String("config-file"), cmd.String("theme"), cmd.String("debug-log"))
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	gitSvc := git.NewService("")
	if !gitSvc.IsRepository(ctx) {
		return fmt.Errorf("not a git repository (or any of the parent directories)")
	}

	model := app.New(cfg, gitSvc, ai.NewClient(cfg), forge.NewClient(cfg.GitHubToken, ""))
	program := tea.NewProgram(model, tea.WithAltScreen())

	_, runErr := program.Run()
	model.Close()
	if runErr != nil {
		return fmt.Errorf("run TUI: %w", runErr)
	}
	return nil
}

// loadCLIConfig loads configuration and applies the global flag
// overrides shared by the TUI and the subcommands.
func loadCLIConfig(configFile, themeName, debugLog string) (*config.AppConfig, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	if err := applyThemeConfig(cfg, themeName); err != nil {
		return nil, err
	}

	if debugLog != "" {
		cfg.DebugLog = debugLog
	}
	setupDebugLog(cfg.DebugLog)

	return cfg, nil
}

// applyThemeConfig validates the configured theme and applies the
// --theme override. An unknown name from the config file falls back to
// the default; an unknown name from the flag is an error.
func applyThemeConfig(cfg *config.AppConfig, themeName string) error {
	if themeName == "" {
		if theme.ByName(cfg.Theme) == nil {
			cfg.Theme = theme.NarnaName
		}
		return nil
	}

	normalized := strings.ToLower(strings.TrimSpace(themeName))
	if theme.ByName(normalized) == nil {
		names := theme.AvailableThemes()
		sort.Strings(names)
		return fmt.Errorf("unknown theme %q (available: %s)", themeName, strings.Join(names, ", "))
	}
	cfg.Theme = normalized
	return nil
}

// setupDebugLog routes buffered debug messages to the configured file,
// or discards them when no path is set.
func setupDebugLog(path string) {
	if path == "" {
		_ = log.SetFile("")
		return
	}
	if expanded, err := utils.ExpandPath(path); err == nil {
		path = expanded
	}
	if err := log.SetFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", path, err)
	}
}
