package forge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    Repo
		wantErr bool
	}{
		{name: "https", url: "https://github.com/owner/repo.git", want: Repo{Owner: "owner", Name: "repo"}},
		{name: "https without suffix", url: "https://github.com/owner/repo", want: Repo{Owner: "owner", Name: "repo"}},
		{name: "ssh", url: "git@github.com:owner/repo.git", want: Repo{Owner: "owner", Name: "repo"}},
		{name: "ssh without suffix", url: "git@github.com:owner/repo", want: Repo{Owner: "owner", Name: "repo"}},
		{name: "trailing newline", url: "https://github.com/owner/repo.git\n", want: Repo{Owner: "owner", Name: "repo"}},
		{name: "other host", url: "https://gitlab.com/owner/repo.git", wantErr: true},
		{name: "missing repo", url: "https://github.com/owner", wantErr: true},
		{name: "empty", url: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := ParseRemoteURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, repo)
		})
	}
}

func TestRepoString(t *testing.T) {
	assert.Equal(t, "owner/repo", Repo{Owner: "owner", Name: "repo"}.String())
}

func TestPRTitle(t *testing.T) {
	assert.Equal(t, "feat: add new parser", PRTitle("add-new-parser"))
	assert.Equal(t, "feat: fix login flow", PRTitle("fix_login_flow"))
	assert.Equal(t, "feat: mixed style branch", PRTitle("mixed-style_branch"))
	assert.Equal(t, "feat: main", PRTitle("main"))
}
