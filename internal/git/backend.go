// Package git talks to the local git binary and turns its output into
// the model types the UI consumes.
package git

import (
	"context"

	"github.com/chmouel/lazycommit/internal/models"
)

// Backend is the version-control surface the application depends on.
// The exec-based Service is the only production implementation; tests
// substitute fakes.
type Backend interface {
	// IsRepository reports whether the working directory is inside a
	// git work tree.
	IsRepository(ctx context.Context) bool

	// Status scans the working tree and returns the dual-listing
	// summary shown in the Git Operations tab.
	Status(ctx context.Context) (*models.WorkingTreeStatus, error)

	// FileEntries scans the working tree and returns one entry per
	// changed file for the staging view.
	FileEntries(ctx context.Context) ([]models.FileEntry, error)

	// Commits returns the commits on HEAD that are not on base,
	// newest first.
	Commits(ctx context.Context, base string) (*models.ChangeSet, error)

	// StagedChanges returns a change set holding only the synthetic
	// staged-changes record, or an empty set when nothing is staged.
	StagedChanges(ctx context.Context) (*models.ChangeSet, error)

	// StagedDiff returns the raw diff of the index against HEAD.
	StagedDiff(ctx context.Context) (string, error)

	Stage(ctx context.Context, path string) error
	Unstage(ctx context.Context, path string) error
	Remove(ctx context.Context, path string) error
	StageAll(ctx context.Context) error
	UnstageAll(ctx context.Context) error

	Commit(ctx context.Context, message string) error
	Push(ctx context.Context) error
	Pull(ctx context.Context) error
	CheckoutNewBranch(ctx context.Context, name string) error
	Merge(ctx context.Context, branch string) error

	CurrentBranch(ctx context.Context) (string, error)
	LocalBranches(ctx context.Context) ([]string, error)

	// CommitMessage returns the full message of the given revision.
	CommitMessage(ctx context.Context, rev string) (string, error)

	// RemoteURL returns the fetch URL of origin.
	RemoteURL(ctx context.Context) (string, error)
}
