// Package models defines the data objects shared across lazycommit packages.
package models

import "time"

// StagedID is the sentinel commit ID used for the synthetic record that
// represents uncommitted staged changes.
const StagedID = "STAGED"

// WorkingTreeStatus is a whole snapshot of the repository's working tree.
// It is rebuilt from scratch on every refresh and replaced atomically; a
// file with both staged and unstaged changes (codes "AM"/"MM") appears in
// both Staged and Unstaged.
type WorkingTreeStatus struct {
	Branch    string
	Staged    []string
	Unstaged  []string
	Untracked []string
	Summary   string
}

// Clean reports whether the working tree has no pending changes.
func (s *WorkingTreeStatus) Clean() bool {
	return len(s.Staged) == 0 && len(s.Unstaged) == 0 && len(s.Untracked) == 0
}

// FileStatus classifies a file entry in the staging view. Unlike
// WorkingTreeStatus this is single-valued: a file that is partially staged
// surfaces once, as Staged.
type FileStatus int

const (
	// StatusStaged marks a file whose changes are in the index.
	StatusStaged FileStatus = iota
	// StatusModified marks a file with unstaged worktree changes.
	StatusModified
	// StatusUntracked marks a file unknown to the repository.
	StatusUntracked
	// StatusDeleted marks a file removed from the worktree but not the index.
	StatusDeleted
)

// String returns the display label for a file status.
func (s FileStatus) String() string {
	switch s {
	case StatusStaged:
		return "staged"
	case StatusModified:
		return "modified"
	case StatusUntracked:
		return "untracked"
	case StatusDeleted:
		return "deleted"
	}
	return "unknown"
}

// FileEntry is one selectable row in the file staging view.
type FileEntry struct {
	Path   string
	Status FileStatus
}

// CommitRecord describes one commit (or the staged sentinel) together with
// its patch and the distinct file paths it touches. Immutable once built.
type CommitRecord struct {
	ID           string
	Message      string
	Author       string
	Timestamp    time.Time
	FilesChanged []string
	Patch        string
}

// IsStaged reports whether the record is the synthetic staged-changes entry.
func (c *CommitRecord) IsStaged() bool {
	return c.ID == StagedID
}

// ShortID returns the abbreviated commit ID used in prompts and listings.
func (c *CommitRecord) ShortID() string {
	if len(c.ID) > 8 {
		return c.ID[:8]
	}
	return c.ID
}

// ChangeSet is an ordered sequence of commit records plus the cardinality
// of the union of their changed-file sets. TotalFilesChanged is computed
// once, after collection; additions/deletions are deliberately not tracked.
type ChangeSet struct {
	Commits           []CommitRecord
	TotalFilesChanged int
}

// Empty reports whether the change set carries no commits.
func (cs *ChangeSet) Empty() bool {
	return len(cs.Commits) == 0
}

// DistinctFiles returns the union of every commit's changed files, in
// first-seen order.
func (cs *ChangeSet) DistinctFiles() []string {
	seen := make(map[string]struct{})
	var files []string
	for i := range cs.Commits {
		for _, f := range cs.Commits[i].FilesChanged {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			files = append(files, f)
		}
	}
	return files
}
