package gitinfo

import (
	"testing"

	"github.com/go-git/go-git/v5"
	ggitcfg "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakater/developer-handbook/internal/foundation/errors"
)

func TestRepoFromURL(t *testing.T) {
	cases := map[string]string{
		"https://github.com/stakater/developer-handbook.git": "stakater/developer-handbook",
		"git@github.com:stakater/developer-handbook.git":     "stakater/developer-handbook",
		"ssh://git@github.com/stakater/developer-handbook":   "stakater/developer-handbook",
		"https://gitlab.com/group/sub/handbook.git":          "https://gitlab.com/group/sub/handbook",
	}
	for in, want := range cases {
		got, err := RepoFromURL(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := RepoFromURL("https://github.com/only")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryGit))

	_, err = RepoFromURL("/local/path")
	require.Error(t, err)
}

func TestDetectRepo(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = DetectRepo(dir)
	require.Error(t, err, "repository without origin")

	_, err = repo.CreateRemote(&ggitcfg.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:stakater/developer-handbook.git"},
	})
	require.NoError(t, err)

	got, err := DetectRepo(dir)
	require.NoError(t, err)
	assert.Equal(t, "stakater/developer-handbook", got)
}

func TestDetectRepoOutsideGit(t *testing.T) {
	_, err := DetectRepo(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryGit))
}

func TestEditURL(t *testing.T) {
	assert.Equal(t,
		"https://github.com/stakater/developer-handbook/edit/master/api/naming.md",
		EditURL("stakater/developer-handbook", "", "", "api/naming.md"))
	assert.Equal(t,
		"https://gitlab.com/group/handbook/-/edit/main/docs/README.md",
		EditURL("https://gitlab.com/group/handbook/", "main", "/docs/", "README.md"))
	assert.Empty(t, EditURL("", "main", "", "README.md"))
}
