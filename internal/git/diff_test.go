package git

import (
	"testing"

	"github.com/chmouel/lazycommit/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestExtractPathsDeduplicatesHeaderLines(t *testing.T) {
	patch := "diff --git a/src/x.rs b/src/x.rs\n" +
		"index 83db48f..f735c2d 100644\n" +
		"--- a/src/x.rs\n" +
		"+++ b/src/x.rs\n" +
		"@@ -1 +1 @@\n" +
		"-old\n" +
		"+new\n"

	assert.Equal(t, []string{"src/x.rs"}, ExtractPaths(patch))
}

func TestExtractPathsIgnoresDevNull(t *testing.T) {
	t.Run("deleted file", func(t *testing.T) {
		patch := "diff --git a/old.txt b/old.txt\n" +
			"--- a/old.txt\n" +
			"+++ /dev/null\n"
		assert.Equal(t, []string{"old.txt"}, ExtractPaths(patch))
	})

	t.Run("new file", func(t *testing.T) {
		patch := "diff --git a/new.txt b/new.txt\n" +
			"--- /dev/null\n" +
			"+++ b/new.txt\n"
		assert.Equal(t, []string{"new.txt"}, ExtractPaths(patch))
	})
}

func TestExtractPathsMultipleFiles(t *testing.T) {
	patch := "diff --git a/one.go b/one.go\n" +
		"--- a/one.go\n" +
		"+++ b/one.go\n" +
		"diff --git a/two.go b/two.go\n" +
		"--- a/two.go\n" +
		"+++ b/two.go\n"

	assert.Equal(t, []string{"one.go", "two.go"}, ExtractPaths(patch))
}

func TestExtractPathsEmptyPatch(t *testing.T) {
	assert.Empty(t, ExtractPaths(""))
	assert.Empty(t, ExtractPaths("just some text\nwith no headers\n"))
}

func TestNewStagedRecord(t *testing.T) {
	diff := "diff --git a/file.txt b/file.txt\n" +
		"--- a/file.txt\n" +
		"+++ b/file.txt\n" +
		"@@ -1 +1 @@\n" +
		"-a\n" +
		"+b\n"

	record, ok := NewStagedRecord(diff)

	assert.True(t, ok)
	assert.Equal(t, models.StagedID, record.ID)
	assert.Equal(t, "Staged changes", record.Message)
	assert.Equal(t, "Current user", record.Author)
	assert.Equal(t, []string{"file.txt"}, record.FilesChanged)
	assert.Equal(t, diff, record.Patch)
	assert.False(t, record.Timestamp.IsZero())
	assert.True(t, record.IsStaged())
}

func TestNewStagedRecordEmptyDiff(t *testing.T) {
	_, ok := NewStagedRecord("")
	assert.False(t, ok)
}

func TestBuildChangeSetCountsDistinctFiles(t *testing.T) {
	set := BuildChangeSet([]models.CommitRecord{
		{ID: "c1", FilesChanged: []string{"a", "b"}},
		{ID: "c2", FilesChanged: []string{"b", "c"}},
	})

	assert.Equal(t, 3, set.TotalFilesChanged)
	assert.Len(t, set.Commits, 2)
}

func TestBuildChangeSetEmpty(t *testing.T) {
	set := BuildChangeSet(nil)

	assert.Equal(t, 0, set.TotalFilesChanged)
	assert.True(t, set.Empty())
}
