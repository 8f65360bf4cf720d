package content

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/stakater/developer-handbook/internal/foundation/errors"
)

// Page is a markdown file found in the content directory.
type Page struct {
	File string // relative to the content directory, forward slashes
	Path string // canonical sidebar path
}

// skipDirs are never scanned for pages besides dot-directories.
var skipDirs = []string{"node_modules"}

// Scan lists every page in the content directory in lexical file order.
// Dot-directories such as .vuepress and node_modules are skipped.
func (r *Resolver) Scan() ([]Page, error) {
	var pages []Page
	err := filepath.WalkDir(r.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != r.dir && (strings.HasPrefix(d.Name(), ".") || slices.Contains(skipDirs, d.Name())) {
				return filepath.SkipDir
			}
			return nil
		}
		if !slices.Contains(r.exts, filepath.Ext(p)) {
			return nil
		}
		rel, err := filepath.Rel(r.dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		pages = append(pages, Page{File: rel, Path: r.PagePath(rel)})
		return nil
	})
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to scan content directory").
			WithContext("dir", r.dir).
			Build()
	}
	return pages, nil
}
