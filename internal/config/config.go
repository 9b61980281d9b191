// Package config loads application configuration from YAML and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chmouel/lazycommit/internal/theme"
	"github.com/chmouel/lazycommit/internal/utils"
	"gopkg.in/yaml.v3"
)

// Defaults for the AI collaborator. Model and sampling parameters follow
// the OpenAI chat-completions conventions.
const (
	DefaultBranchName  = "master"
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultOpenAIBase  = "https://api.openai.com/v1"
	DefaultMaxTokens   = 2000
	DefaultTemperature = 0.7
)

// Environment variable names honored on top of the YAML file.
const (
	EnvDefaultBranch = "LAZYCOMMIT_DEFAULT_BRANCH"
	EnvTheme         = "LAZYCOMMIT_THEME"
	EnvOpenAIKey     = "OPENAI_API_KEY"
	EnvGitHubToken   = "GITHUB_TOKEN"
	EnvGHToken       = "GH_TOKEN"
)

// AppConfig defines the global lazycommit configuration options.
type AppConfig struct {
	DefaultBranch string  `yaml:"default_branch"`
	OpenAIAPIKey  string  `yaml:"openai_api_key"`
	OpenAIModel   string  `yaml:"openai_model"`
	OpenAIBaseURL string  `yaml:"openai_base_url"`
	MaxTokens     int     `yaml:"max_tokens"`
	Temperature   float64 `yaml:"temperature"`
	GitHubToken   string  `yaml:"github_token"`
	Theme         string  `yaml:"theme"`
	DebugLog      string  `yaml:"debug_log"`
	AutoRefresh   bool    `yaml:"auto_refresh"`
	ShowIcons     bool    `yaml:"show_icons"`
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		DefaultBranch: DefaultBranchName,
		OpenAIModel:   DefaultOpenAIModel,
		OpenAIBaseURL: DefaultOpenAIBase,
		MaxTokens:     DefaultMaxTokens,
		Temperature:   DefaultTemperature,
		Theme:         theme.NarnaName,
		AutoRefresh:   true,
		ShowIcons:     true,
	}
}

// LoadConfig reads the YAML configuration and applies environment
// overrides. An explicit configPath wins over the default locations; a
// missing file is not an error.
func LoadConfig(configPath string) (*AppConfig, error) {
	cfg := DefaultConfig()

	paths := defaultConfigPaths()
	if configPath != "" {
		expanded, err := utils.ExpandPath(configPath)
		if err != nil {
			return cfg, err
		}
		paths = []string{expanded}
	}

	for _, path := range paths {
		data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's own flag or config dir
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		break
	}

	cfg.applyEnv()
	cfg.normalize()
	return cfg, nil
}

func defaultConfigPaths() []string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return nil
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, "lazycommit")
	return []string{
		filepath.Join(dir, "config.yaml"),
		filepath.Join(dir, "config.yml"),
	}
}

func (c *AppConfig) applyEnv() {
	if v := os.Getenv(EnvDefaultBranch); v != "" {
		c.DefaultBranch = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		c.Theme = v
	}
	if v := os.Getenv(EnvOpenAIKey); v != "" {
		c.OpenAIAPIKey = v
	}
	if v := os.Getenv(EnvGitHubToken); v != "" {
		c.GitHubToken = v
	} else if v := os.Getenv(EnvGHToken); v != "" && c.GitHubToken == "" {
		c.GitHubToken = v
	}
}

func (c *AppConfig) normalize() {
	if strings.TrimSpace(c.DefaultBranch) == "" {
		c.DefaultBranch = DefaultBranchName
	}
	if strings.TrimSpace(c.OpenAIModel) == "" {
		c.OpenAIModel = DefaultOpenAIModel
	}
	c.OpenAIBaseURL = strings.TrimRight(strings.TrimSpace(c.OpenAIBaseURL), "/")
	if c.OpenAIBaseURL == "" {
		c.OpenAIBaseURL = DefaultOpenAIBase
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.Temperature <= 0 {
		c.Temperature = DefaultTemperature
	}
}

// HasOpenAIKey reports whether an AI credential is configured.
func (c *AppConfig) HasOpenAIKey() bool {
	return strings.TrimSpace(c.OpenAIAPIKey) != ""
}

// HasGitHubToken reports whether a forge credential is configured.
func (c *AppConfig) HasGitHubToken() bool {
	return strings.TrimSpace(c.GitHubToken) != ""
}

// Describe renders the effective configuration with secrets masked, for
// the Configuration display.
func (c *AppConfig) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "default_branch:  %s\n", c.DefaultBranch)
	fmt.Fprintf(&b, "openai_model:    %s\n", c.OpenAIModel)
	fmt.Fprintf(&b, "openai_base_url: %s\n", c.OpenAIBaseURL)
	fmt.Fprintf(&b, "openai_api_key:  %s\n", utils.MaskSecret(c.OpenAIAPIKey))
	fmt.Fprintf(&b, "max_tokens:      %d\n", c.MaxTokens)
	fmt.Fprintf(&b, "temperature:     %.1f\n", c.Temperature)
	fmt.Fprintf(&b, "github_token:    %s\n", utils.MaskSecret(c.GitHubToken))
	fmt.Fprintf(&b, "theme:           %s\n", c.Theme)
	fmt.Fprintf(&b, "auto_refresh:    %t\n", c.AutoRefresh)
	fmt.Fprintf(&b, "show_icons:      %t\n", c.ShowIcons)
	if c.DebugLog != "" {
		fmt.Fprintf(&b, "debug_log:       %s\n", c.DebugLog)
	}
	return b.String()
}
