package bootstrap

import (
	"context"
	"io"
	"os"

	"github.com/chmouel/lazycommit/internal/ai"
	"github.com/chmouel/lazycommit/internal/cli"
	"github.com/chmouel/lazycommit/internal/config"
	"github.com/chmouel/lazycommit/internal/git"
	"github.com/chmouel/lazycommit/internal/log"
	urfavecli "github.com/urfave/cli/v3"
)

// Function types for the one-shot flows. Tests replace the variables
// below to avoid needing a git binary or an AI endpoint.
type (
	prDescriptionFuncType     func(ctx context.Context, gitSvc *git.Service, gen *ai.Client, base, format string, out io.Writer) error
	generateTestsFuncType     func(ctx context.Context, gitSvc *git.Service, gen *ai.Client, base string, out io.Writer) error
	improveCommitFuncType     func(ctx context.Context, gitSvc *git.Service, gen *ai.Client, rev string, out io.Writer) error
	interactiveCommitFuncType func(ctx context.Context, gitSvc *git.Service, gen *ai.Client, stageAll bool, in io.Reader, out io.Writer) error
	changelogFuncType         func(ctx context.Context, gitSvc *git.Service, gen *ai.Client, base, output string, out io.Writer) error
	reviewFuncType            func(ctx context.Context, gitSvc *git.Service, gen *ai.Client, base string, out io.Writer) error
)

var (
	loadCLIConfigFunc = loadCLIConfig

	prDescriptionFunc prDescriptionFuncType = func(ctx context.Context, gitSvc *git.Service, gen *ai.Client, base, format string, out io.Writer) error {
		return cli.PRDescription(ctx, gitSvc, gen, base, format, out)
	}
	generateTestsFunc generateTestsFuncType = func(ctx context.Context, gitSvc *git.Service, gen *ai.Client, base string, out io.Writer) error {
		return cli.GenerateTests(ctx, gitSvc, gen, base, out)
	}
	improveCommitFunc improveCommitFuncType = func(ctx context.Context, gitSvc *git.Service, gen *ai.Client, rev string, out io.Writer) error {
		return cli.ImproveCommit(ctx, gitSvc, gen, rev, out)
	}
	interactiveCommitFunc interactiveCommitFuncType = func(ctx context.Context, gitSvc *git.Service, gen *ai.Client, stageAll bool, in io.Reader, out io.Writer) error {
		return cli.InteractiveCommit(ctx, gitSvc, gen, stageAll, in, out)
	}
	changelogFunc changelogFuncType = func(ctx context.Context, gitSvc *git.Service, gen *ai.Client, base, output string, out io.Writer) error {
		return cli.Changelog(ctx, gitSvc, gen, base, output, out)
	}
	reviewFunc reviewFuncType = func(ctx context.Context, gitSvc *git.Service, gen *ai.Client, base string, out io.Writer) error {
		return cli.Review(ctx, gitSvc, gen, base, out)
	}
)

// effectiveBase resolves the --base flag against the configured
// default branch. The built-in default defers to default_branch; any
// explicitly requested branch wins.
func effectiveBase(cfg *config.AppConfig, base string) string {
	if base == "" || base == config.DefaultBranchName {
		return cfg.DefaultBranch
	}
	return base
}

// newCLIServices creates the git service and AI client shared by every
// one-shot handler.
func newCLIServices(cfg *config.AppConfig) (*git.Service, *ai.Client) {
	return git.NewService(""), ai.NewClient(cfg)
}

// loadSubcommandConfig loads configuration from the flags common to
// all subcommands.
func loadSubcommandConfig(cmd *urfavecli.Command) (*config.AppConfig, error) {
	return loadCLIConfigFunc(cmd.String("config-file"), cmd.String("theme"), cmd.String("debug-log"))
}

func prDescriptionCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "pr-description",
		Usage: "Generate AI-powered PR description from commits",
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			if handleSubcommandCompletion(cmd) {
				return nil
			}
			return handlePRDescriptionAction(ctx, cmd)
		},
		ShellComplete: subcommandShellComplete,
		Flags: []urfavecli.Flag{
			baseFlag(),
			&urfavecli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (markdown, json)",
				Value:   "markdown",
			},
		},
	}
}

func handlePRDescriptionAction(ctx context.Context, cmd *urfavecli.Command) error {
	cfg, err := loadSubcommandConfig(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	gitSvc, gen := newCLIServices(cfg)
	return prDescriptionFunc(ctx, gitSvc, gen, effectiveBase(cfg, cmd.String("base")), cmd.String("format"), os.Stdout)
}

func generateTestsCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "generate-tests",
		Usage: "Generate unit tests for changed code",
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			if handleSubcommandCompletion(cmd) {
				return nil
			}
			return handleGenerateTestsAction(ctx, cmd)
		},
		ShellComplete: subcommandShellComplete,
		Flags: []urfavecli.Flag{
			baseFlag(),
			&urfavecli.StringFlag{
				Name:    "framework",
				Aliases: []string{"f"},
				Usage:   "Test framework to use (jest, pytest, etc.)",
				Value:   "auto",
			},
		},
	}
}

func handleGenerateTestsAction(ctx context.Context, cmd *urfavecli.Command) error {
	cfg, err := loadSubcommandConfig(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	gitSvc, gen := newCLIServices(cfg)
	gen.SetTestFramework(cmd.String("framework"))
	return generateTestsFunc(ctx, gitSvc, gen, effectiveBase(cfg, cmd.String("base")), os.Stdout)
}

func improveCommitCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "improve-commit",
		Usage: "Improve commit messages with AI suggestions",
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			if handleSubcommandCompletion(cmd) {
				return nil
			}
			return handleImproveCommitAction(ctx, cmd)
		},
		ShellComplete: subcommandShellComplete,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:    "commit",
				Aliases: []string{"c"},
				Usage:   "Commit hash to improve (default: HEAD)",
			},
		},
	}
}

func handleImproveCommitAction(ctx context.Context, cmd *urfavecli.Command) error {
	cfg, err := loadSubcommandConfig(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	gitSvc, gen := newCLIServices(cfg)
	return improveCommitFunc(ctx, gitSvc, gen, cmd.String("commit"), os.Stdout)
}

func commitCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "commit",
		Usage: "Interactive commit message assistant",
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			if handleSubcommandCompletion(cmd) {
				return nil
			}
			return handleCommitAction(ctx, cmd)
		},
		ShellComplete: subcommandShellComplete,
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   "Stage all changes before committing",
			},
		},
	}
}

func handleCommitAction(ctx context.Context, cmd *urfavecli.Command) error {
	cfg, err := loadSubcommandConfig(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	gitSvc, gen := newCLIServices(cfg)
	return interactiveCommitFunc(ctx, gitSvc, gen, cmd.Bool("all"), os.Stdin, os.Stdout)
}

func changelogCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "changelog",
		Usage: "Generate changelog from commits",
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			if handleSubcommandCompletion(cmd) {
				return nil
			}
			return handleChangelogAction(ctx, cmd)
		},
		ShellComplete: subcommandShellComplete,
		Flags: []urfavecli.Flag{
			baseFlag(),
			&urfavecli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file (default: stdout)",
			},
		},
	}
}

func handleChangelogAction(ctx context.Context, cmd *urfavecli.Command) error {
	cfg, err := loadSubcommandConfig(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	gitSvc, gen := newCLIServices(cfg)
	return changelogFunc(ctx, gitSvc, gen, effectiveBase(cfg, cmd.String("base")), cmd.String("output"), os.Stdout)
}

func reviewCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "review",
		Usage: "Code review assistance",
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			if handleSubcommandCompletion(cmd) {
				return nil
			}
			return handleReviewAction(ctx, cmd)
		},
		ShellComplete: subcommandShellComplete,
		Flags: []urfavecli.Flag{
			baseFlag(),
		},
	}
}

func handleReviewAction(ctx context.Context, cmd *urfavecli.Command) error {
	cfg, err := loadSubcommandConfig(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	gitSvc, gen := newCLIServices(cfg)
	return reviewFunc(ctx, gitSvc, gen, effectiveBase(cfg, cmd.String("base")), os.Stdout)
}
