// Package gitinfo derives repository details for the theme configuration from
// the local git checkout.
package gitinfo

import (
	"net/url"
	"path"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/stakater/developer-handbook/internal/foundation/errors"
)

// DefaultBranch is the branch edit links point at when none is configured.
const DefaultBranch = "master"

// DetectRepo opens the repository containing dir and returns the repo value
// for the theme configuration derived from the origin remote.
func DetectRepo(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryGit, "not a git repository").
			WithContext("dir", dir).
			Build()
	}
	remote, err := repo.Remote("origin")
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryGit, "no origin remote").
			WithContext("dir", dir).
			Build()
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", errors.GitError("origin remote has no URL").WithContext("dir", dir).Build()
	}
	return RepoFromURL(urls[0])
}

// RepoFromURL converts a clone URL to the theme's repo value: "owner/name" for
// GitHub, the https URL of the project for any other host.
func RepoFromURL(raw string) (string, error) {
	host, p, err := splitRemote(raw)
	if err != nil {
		return "", err
	}
	p = strings.TrimSuffix(strings.Trim(p, "/"), ".git")
	if p == "" || !strings.Contains(p, "/") {
		return "", errors.GitError("remote URL has no owner/name path").WithContext("url", raw).Build()
	}
	if host == "github.com" {
		return p, nil
	}
	return "https://" + host + "/" + p, nil
}

func splitRemote(raw string) (host, p string, err error) {
	if strings.Contains(raw, "://") {
		u, perr := url.Parse(raw)
		if perr != nil {
			return "", "", errors.WrapError(perr, errors.CategoryGit, "invalid remote URL").WithContext("url", raw).Build()
		}
		return u.Hostname(), u.Path, nil
	}
	// scp-like syntax: git@github.com:owner/name.git
	at := strings.Index(raw, "@")
	colon := strings.Index(raw, ":")
	if colon <= at+1 {
		return "", "", errors.GitError("unsupported remote URL").WithContext("url", raw).Build()
	}
	return raw[at+1 : colon], raw[colon+1:], nil
}

// EditURL builds the "edit this page" link the theme shows for a content file
// (relative to the content directory).
func EditURL(repo, branch, docsDir, file string) string {
	if repo == "" {
		return ""
	}
	base := repo
	if !strings.HasPrefix(repo, "http://") && !strings.HasPrefix(repo, "https://") {
		base = "https://github.com/" + repo
	}
	base = strings.TrimSuffix(base, "/")
	if branch == "" {
		branch = DefaultBranch
	}
	rel := path.Join(strings.Trim(docsDir, "/"), strings.TrimPrefix(file, "/"))
	if strings.Contains(base, "gitlab") {
		return base + "/-/edit/" + branch + "/" + rel
	}
	return base + "/edit/" + branch + "/" + rel
}
