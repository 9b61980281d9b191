// Package forge talks to the repository hosting service. All calls go
// through the gh CLI, which carries its own authentication; a token
// from the configuration is forwarded via GH_TOKEN when present.
package forge

import (
	"fmt"
	"strings"
)

// Repo identifies a hosted repository.
type Repo struct {
	Owner string
	Name  string
}

// String returns the owner/name slug.
func (r Repo) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRemoteURL extracts the owner and repository name from an origin
// remote URL. Both https://github.com/owner/repo[.git] and
// git@github.com:owner/repo[.git] forms are supported.
func ParseRemoteURL(url string) (Repo, error) {
	url = strings.TrimSpace(url)

	var path string
	switch {
	case strings.HasPrefix(url, "https://github.com/"):
		path = strings.TrimPrefix(url, "https://github.com/")
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	default:
		return Repo{}, fmt.Errorf("not a GitHub repository: %q", url)
	}

	path = strings.TrimSuffix(path, ".git")
	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Repo{}, fmt.Errorf("invalid GitHub URL format: %q", url)
	}
	return Repo{Owner: parts[0], Name: parts[1]}, nil
}

// PRTitle derives a pull-request title from a branch name, replacing
// dashes and underscores with spaces.
func PRTitle(branch string) string {
	title := strings.ReplaceAll(branch, "-", " ")
	title = strings.ReplaceAll(title, "_", " ")
	return "feat: " + title
}
