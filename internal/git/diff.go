package git

import (
	"strings"
	"time"

	"github.com/chmouel/lazycommit/internal/models"
)

// ExtractPaths pulls the distinct set of touched file paths out of raw
// patch text. Three kinds of header lines contribute: "diff --git"
// lines yield their third whitespace token minus a leading "a/", and
// "+++"/"---" lines yield the path after the 4-character prefix minus
// a leading "a/" or "b/", unless it points at /dev/null. Paths are
// deduplicated, first occurrence order.
func ExtractPaths(patch string) []string {
	seen := make(map[string]bool)
	var paths []string
	add := func(path string) {
		if path == "" || seen[path] {
			return
		}
		seen[path] = true
		paths = append(paths, path)
	}

	for _, line := range strings.Split(patch, "\n") {
		switch {
		case strings.HasPrefix(line, "diff --git"):
			fields := strings.Fields(line)
			if len(fields) >= 3 {
				add(strings.TrimPrefix(fields[2], "a/"))
			}
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			if len(line) < 4 {
				continue
			}
			path := line[4:]
			path = strings.TrimPrefix(path, "a/")
			path = strings.TrimPrefix(path, "b/")
			if strings.HasPrefix(path, "/dev/null") {
				continue
			}
			add(path)
		}
	}
	return paths
}

// NewStagedRecord builds the synthetic record representing the index.
// It reports false when the diff touches no files.
func NewStagedRecord(diff string) (models.CommitRecord, bool) {
	files := ExtractPaths(diff)
	if len(files) == 0 {
		return models.CommitRecord{}, false
	}
	return models.CommitRecord{
		ID:           models.StagedID,
		Message:      "Staged changes",
		Author:       "Current user",
		Timestamp:    time.Now(),
		FilesChanged: files,
		Patch:        diff,
	}, true
}

// BuildChangeSet wraps records into a ChangeSet, fixing the distinct
// file count before the set is handed to callers.
func BuildChangeSet(records []models.CommitRecord) *models.ChangeSet {
	set := &models.ChangeSet{Commits: records}
	set.TotalFilesChanged = len(set.DistinctFiles())
	return set
}
