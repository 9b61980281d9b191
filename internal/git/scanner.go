package git

import (
	"fmt"
	"strings"

	log "github.com/chmouel/lazycommit/internal/log"
	"github.com/chmouel/lazycommit/internal/models"
)

// ParseStatus classifies porcelain status lines into the three lists
// of a WorkingTreeStatus. Files with a staged and an unstaged part
// ("AM", "MM") land in both lists. Order follows the input; the branch
// field is left for the caller to fill.
func ParseStatus(raw string) *models.WorkingTreeStatus {
	status := &models.WorkingTreeStatus{}
	for _, line := range strings.Split(raw, "\n") {
		if len(line) < 3 {
			continue
		}
		code := line[:2]
		path := line[3:]
		switch code {
		case "A ", "M ", "D ":
			status.Staged = append(status.Staged, path)
		case " M", " D":
			status.Unstaged = append(status.Unstaged, path)
		case "??":
			status.Untracked = append(status.Untracked, path)
		case "AM", "MM":
			status.Staged = append(status.Staged, path)
			status.Unstaged = append(status.Unstaged, path)
		default:
			log.Printf("status: unrecognized code %q for %q", code, path)
		}
	}
	status.Summary = summarize(status)
	return status
}

// summarize builds the headline shown above the status panes. Files
// listed twice count twice, matching the pane contents.
func summarize(status *models.WorkingTreeStatus) string {
	total := len(status.Staged) + len(status.Unstaged) + len(status.Untracked)
	if total == 0 {
		return "Clean working directory"
	}
	return fmt.Sprintf("%d files changed", total)
}

// ParseFileEntries classifies porcelain status lines into flat entries
// for the staging view. Unlike ParseStatus, a file with mixed state is
// surfaced once, as Staged. Unknown codes produce no entry.
func ParseFileEntries(raw string) []models.FileEntry {
	var entries []models.FileEntry
	for _, line := range strings.Split(raw, "\n") {
		if len(line) < 3 {
			continue
		}
		code := line[:2]
		path := line[3:]

		var status models.FileStatus
		switch code {
		case "A ", "M ", "D ":
			status = models.StatusStaged
		case " M", " D":
			status = models.StatusModified
		case "??":
			status = models.StatusUntracked
		case "AM", "MM":
			// Any staged part wins in the single-valued view.
			status = models.StatusStaged
		default:
			continue
		}
		entries = append(entries, models.FileEntry{Path: path, Status: status})
	}
	return entries
}
