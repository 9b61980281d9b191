package forge

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	log "github.com/chmouel/lazycommit/internal/log"
)

// ghTimeout bounds one gh invocation.
const ghTimeout = 60 * time.Second

// LookupPath finds executables in PATH; a package variable so tests
// can avoid depending on an installed gh.
var LookupPath = exec.LookPath

// PullRequest carries everything needed to open a PR.
type PullRequest struct {
	Title string
	Body  string
	Head  string
	Base  string
}

// RepoInfo is the metadata subset surfaced before creating a PR.
type RepoInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PrimaryLanguage struct {
		Name string `json:"name"`
	} `json:"primaryLanguage"`
	StargazerCount int `json:"stargazerCount"`
	ForkCount      int `json:"forkCount"`
}

// Client shells out to gh in a fixed working directory.
type Client struct {
	token string
	dir   string
}

// NewClient returns a Client. token may be empty, in which case gh
// falls back to its own stored credentials.
func NewClient(token, dir string) *Client {
	return &Client{token: token, dir: dir}
}

// Available reports whether the gh binary can be found.
func (c *Client) Available() bool {
	_, err := LookupPath("gh")
	return err == nil
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, ghTimeout)
	defer cancel()

	log.Printf("run: gh %s (cwd=%s)", strings.Join(args, " "), c.dir)
	// #nosec G204 -- arguments for gh are supplied by vetted code paths
	cmd := exec.CommandContext(ctx, "gh", args...)
	if c.dir != "" {
		cmd.Dir = c.dir
	}
	cmd.Env = os.Environ()
	if c.token != "" {
		cmd.Env = append(cmd.Env, "GH_TOKEN="+c.token)
	}

	output, err := cmd.Output()
	if err != nil {
		sub := args[0]
		if exitError, ok := err.(*exec.ExitError); ok {
			detail := strings.TrimSpace(string(exitError.Stderr))
			if detail == "" {
				detail = fmt.Sprintf("exit %d", exitError.ExitCode())
			}
			log.Printf("error: gh %s: %s", sub, detail)
			return "", fmt.Errorf("gh %s: %s: %w", sub, detail, err)
		}
		log.Printf("error: gh %s: %v", sub, err)
		return "", fmt.Errorf("gh %s: %w", sub, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CreatePullRequest opens a PR and returns its URL.
func (c *Client) CreatePullRequest(ctx context.Context, pr PullRequest) (string, error) {
	out, err := c.run(ctx, "pr", "create",
		"--title", pr.Title,
		"--body", pr.Body,
		"--base", pr.Base,
		"--head", pr.Head)
	if err != nil {
		return "", err
	}
	// gh prints the PR URL on its last output line.
	lines := strings.Split(out, "\n")
	return strings.TrimSpace(lines[len(lines)-1]), nil
}

// Repository fetches metadata for the current repository.
func (c *Client) Repository(ctx context.Context) (*RepoInfo, error) {
	out, err := c.run(ctx, "repo", "view",
		"--json", "name,description,primaryLanguage,stargazerCount,forkCount")
	if err != nil {
		return nil, err
	}
	var info RepoInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		return nil, fmt.Errorf("parse repo metadata: %w", err)
	}
	return &info, nil
}
