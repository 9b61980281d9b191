package bootstrap

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chmouel/lazycommit/internal/config"
	"github.com/chmouel/lazycommit/internal/log"
	"github.com/chmouel/lazycommit/internal/theme"
	urfavecli "github.com/urfave/cli/v3"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stdout
	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = writer

	fn()

	_ = writer.Close()
	os.Stdout = orig

	out, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return string(out)
}

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand()

	if root.Name != "lazycommit" {
		t.Fatalf("root name = %q, want lazycommit", root.Name)
	}
	if !root.EnableShellCompletion {
		t.Error("expected shell completion to be enabled")
	}

	wantCommands := []string{
		"pr-description", "generate-tests", "improve-commit",
		"commit", "changelog", "review",
	}
	if len(root.Commands) != len(wantCommands) {
		t.Fatalf("got %d subcommands, want %d", len(root.Commands), len(wantCommands))
	}
	for i, name := range wantCommands {
		if root.Commands[i].Name != name {
			t.Errorf("subcommand %d = %q, want %q", i, root.Commands[i].Name, name)
		}
	}

	var flagNames []string
	for _, flag := range root.Flags {
		flagNames = append(flagNames, flag.Names()[0])
	}
	for _, want := range []string{"config-file", "debug-log", "theme"} {
		found := false
		for _, name := range flagNames {
			if name == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected global flag %q, got %v", want, flagNames)
		}
	}
}

func TestApplyThemeConfig(t *testing.T) {
	tests := []struct {
		name        string
		themeName   string
		wantTheme   string
		expectError bool
	}{
		{
			name:      "valid theme",
			themeName: "dracula",
			wantTheme: theme.DraculaName,
		},
		{
			name:      "uppercase is normalized",
			themeName: "DRACULA",
			wantTheme: theme.DraculaName,
		},
		{
			name:      "surrounding whitespace is trimmed",
			themeName: "  clean-light ",
			wantTheme: theme.CleanLightName,
		},
		{
			name:        "unknown theme",
			themeName:   "nonexistent-theme",
			expectError: true,
		},
		{
			name:      "empty leaves config value",
			themeName: "",
			wantTheme: theme.NarnaName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()

			err := applyThemeConfig(cfg, tt.themeName)
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if !strings.Contains(err.Error(), "unknown theme") {
					t.Errorf("error = %v, want mention of unknown theme", err)
				}
				if !strings.Contains(err.Error(), theme.NarnaName) {
					t.Errorf("error = %v, want available theme list", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Theme != tt.wantTheme {
				t.Errorf("theme = %q, want %q", cfg.Theme, tt.wantTheme)
			}
		})
	}
}

func TestApplyThemeConfigRepairsUnknownConfigured(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Theme = "no-such-theme"

	if err := applyThemeConfig(cfg, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme != theme.NarnaName {
		t.Errorf("theme = %q, want fallback %q", cfg.Theme, theme.NarnaName)
	}
}

func TestEffectiveBase(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DefaultBranch = "main"

	tests := []struct {
		name string
		base string
		want string
	}{
		{name: "built-in default defers to config", base: config.DefaultBranchName, want: "main"},
		{name: "empty defers to config", base: "", want: "main"},
		{name: "explicit branch wins", base: "develop", want: "develop"},
		{name: "explicit main stays main", base: "main", want: "main"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := effectiveBase(cfg, tt.base); got != tt.want {
				t.Errorf("effectiveBase(%q) = %q, want %q", tt.base, got, tt.want)
			}
		})
	}
}

func TestLoadCLIConfig(t *testing.T) {
	t.Setenv(config.EnvDefaultBranch, "")
	t.Setenv(config.EnvTheme, "")

	t.Run("missing config file yields defaults", func(t *testing.T) {
		cfg, err := loadCLIConfig(filepath.Join(t.TempDir(), "missing.yaml"), "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.DefaultBranch != config.DefaultBranchName {
			t.Errorf("default branch = %q, want %q", cfg.DefaultBranch, config.DefaultBranchName)
		}
		if cfg.Theme != theme.NarnaName {
			t.Errorf("theme = %q, want %q", cfg.Theme, theme.NarnaName)
		}
	})

	t.Run("reads values from the config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		data := "default_branch: main\ntheme: clean-light\n"
		if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := loadCLIConfig(path, "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.DefaultBranch != "main" {
			t.Errorf("default branch = %q, want main", cfg.DefaultBranch)
		}
		if cfg.Theme != theme.CleanLightName {
			t.Errorf("theme = %q, want %q", cfg.Theme, theme.CleanLightName)
		}
	})

	t.Run("theme flag overrides the config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("theme: dracula\n"), 0o600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := loadCLIConfig(path, "catppuccin-mocha", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Theme != theme.CatppuccinMochaName {
			t.Errorf("theme = %q, want %q", cfg.Theme, theme.CatppuccinMochaName)
		}
	})

	t.Run("unknown theme flag is an error", func(t *testing.T) {
		_, err := loadCLIConfig(filepath.Join(t.TempDir(), "missing.yaml"), "bogus", "")
		if err == nil {
			t.Fatal("expected error but got none")
		}
		if !strings.Contains(err.Error(), "unknown theme") {
			t.Errorf("error = %v, want mention of unknown theme", err)
		}
	})

	t.Run("debug log flag overrides the config file", func(t *testing.T) {
		t.Cleanup(func() { _ = log.Close() })

		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.yaml")
		configured := filepath.Join(tmpDir, "configured.log")
		flagged := filepath.Join(tmpDir, "flagged.log")
		data := "debug_log: " + configured + "\n"
		if err := os.WriteFile(configPath, []byte(data), 0o600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := loadCLIConfig(configPath, "", flagged)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.DebugLog != flagged {
			t.Errorf("debug log = %q, want %q", cfg.DebugLog, flagged)
		}
		if _, err := os.Stat(flagged); err != nil {
			t.Errorf("expected debug log file to be created: %v", err)
		}
		if _, err := os.Stat(configured); err == nil {
			t.Error("config-file debug log should not be opened when the flag is set")
		}
	})
}

func TestPrintFlagCompletions(t *testing.T) {
	cmd := &urfavecli.Command{Flags: globalFlags()}

	out := captureStdout(t, func() {
		printFlagCompletions(cmd, "")
	})

	for _, want := range []string{"--config-file:", "--debug-log:", "--theme:"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got %q", want, out)
		}
	}
}

func TestPrintFlagCompletionsFiltered(t *testing.T) {
	cmd := &urfavecli.Command{Flags: globalFlags()}

	out := captureStdout(t, func() {
		printFlagCompletions(cmd, "--th")
	})

	if !strings.Contains(out, "--theme") {
		t.Errorf("expected --theme in filtered output, got %q", out)
	}
	if strings.Contains(out, "--debug-log") {
		t.Errorf("did not expect --debug-log in filtered output, got %q", out)
	}
}

func TestPrintFlagCompletionsSkipsHidden(t *testing.T) {
	cmd := &urfavecli.Command{
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{Name: "visible", Usage: "Shown"},
			&urfavecli.StringFlag{Name: "secret", Hidden: true},
			&urfavecli.BoolFlag{Name: "also-secret", Hidden: true},
		},
	}

	out := captureStdout(t, func() {
		printFlagCompletions(cmd, "")
	})

	if !strings.Contains(out, "--visible:Shown") {
		t.Errorf("expected visible flag with usage, got %q", out)
	}
	if strings.Contains(out, "secret") {
		t.Errorf("hidden flags should be skipped, got %q", out)
	}
}
