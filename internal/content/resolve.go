// Package content maps sidebar paths onto the markdown pages of the handbook.
package content

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/stakater/developer-handbook/internal/foundation/errors"
)

// ErrNotFound is returned when a sidebar path has no backing page.
var ErrNotFound = stderrors.New("content file not found")

// indexNames are the page names served for a directory path ("/api/").
var indexNames = []string{"README", "index"}

// Resolver resolves root-relative sidebar paths inside a content directory.
type Resolver struct {
	dir  string
	exts []string
}

// NewResolver creates a resolver for pages with the given extensions
// (".md" when none are given).
func NewResolver(dir string, exts ...string) *Resolver {
	if len(exts) == 0 {
		exts = []string{".md"}
	}
	return &Resolver{dir: dir, exts: exts}
}

// Clean strips query and fragment from a sidebar path and checks its shape.
// The returned path keeps a trailing slash when the input had one.
func Clean(p string) (string, error) {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		return "", errors.ValidationError("sidebar path must be root-relative").WithContext("path", p).Build()
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", errors.ValidationError("sidebar path must not contain '..'").WithContext("path", p).Build()
		}
	}
	cleaned := path.Clean(p)
	if strings.HasSuffix(p, "/") && cleaned != "/" {
		cleaned += "/"
	}
	return cleaned, nil
}

// Candidates lists, in lookup order, the slash-separated files (relative to
// the content directory) that could back sidebar path p.
func (r *Resolver) Candidates(p string) ([]string, error) {
	cleaned, err := Clean(p)
	if err != nil {
		return nil, err
	}
	rel := strings.TrimPrefix(cleaned, "/")

	var out []string
	if rel == "" || strings.HasSuffix(rel, "/") {
		for _, name := range indexNames {
			for _, ext := range r.exts {
				out = append(out, rel+name+ext)
			}
		}
		return out, nil
	}

	rel = strings.TrimSuffix(rel, ".html")
	for _, ext := range r.exts {
		if strings.HasSuffix(rel, ext) {
			return []string{rel}, nil
		}
	}
	for _, ext := range r.exts {
		out = append(out, rel+ext)
	}
	return out, nil
}

// Resolve returns the content file backing sidebar path p, relative to the
// content directory with forward slashes.
func (r *Resolver) Resolve(p string) (string, error) {
	candidates, err := r.Candidates(p)
	if err != nil {
		return "", err
	}
	for _, c := range candidates {
		info, err := os.Stat(filepath.Join(r.dir, filepath.FromSlash(c)))
		if err == nil && info.Mode().IsRegular() {
			return c, nil
		}
		if err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			return "", errors.WrapError(err, errors.CategoryFileSystem, "failed to stat content file").
				WithContext("file", c).
				Build()
		}
	}
	return "", ErrNotFound
}

// PagePath converts a content file (relative, forward slashes) to the
// canonical sidebar path that serves it.
func (r *Resolver) PagePath(file string) string {
	ext := path.Ext(file)
	base := strings.TrimSuffix(path.Base(file), ext)
	dir := path.Dir(file)
	for _, name := range indexNames {
		if base == name {
			if dir == "." {
				return "/"
			}
			return "/" + dir + "/"
		}
	}
	return "/" + strings.TrimSuffix(file, ext)
}
