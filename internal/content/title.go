package content

import (
	"bytes"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/stakater/developer-handbook/internal/foundation/errors"
	"github.com/stakater/developer-handbook/internal/frontmatter"
)

// PageInfo is what the generator shows for a bare sidebar link.
type PageInfo struct {
	Title  string
	Source TitleSource
	Hidden bool // frontmatter sidebar_hide
}

// TitleSource tells where a page title came from.
type TitleSource string

const (
	TitleFromFrontmatter TitleSource = "frontmatter"
	TitleFromHeading     TitleSource = "heading"
	TitleFromFilename    TitleSource = "filename"
)

// Info reads a content file (relative to the content directory) and derives
// its display title: frontmatter title, else the first level-1 heading, else
// a title built from the file name.
func (r *Resolver) Info(file string) (PageInfo, error) {
	data, err := os.ReadFile(filepath.Join(r.dir, filepath.FromSlash(file)))
	if err != nil {
		return PageInfo{}, errors.WrapError(err, errors.CategoryFileSystem, "failed to read content file").
			WithContext("file", file).
			Build()
	}
	fields, body, err := frontmatter.Parse(data)
	if err != nil {
		return PageInfo{}, errors.WrapError(err, errors.CategoryValidation, "invalid frontmatter").
			WithContext("file", file).
			Build()
	}
	info := PageInfo{Hidden: fields.SidebarHide}
	switch {
	case strings.TrimSpace(fields.Title) != "":
		info.Title, info.Source = strings.TrimSpace(fields.Title), TitleFromFrontmatter
	default:
		if h := FirstHeading(body); h != "" {
			info.Title, info.Source = h, TitleFromHeading
		} else {
			info.Title, info.Source = TitleFromPath(file), TitleFromFilename
		}
	}
	return info, nil
}

// FirstHeading returns the text of the first level-1 heading in a markdown body.
func FirstHeading(body []byte) string {
	root := goldmark.New().Parser().Parse(text.NewReader(body))
	var title string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if h, ok := n.(*gmast.Heading); ok && h.Level == 1 {
			title = strings.TrimSpace(inlineText(h, body))
			return gmast.WalkStop, nil
		}
		return gmast.WalkContinue, nil
	})
	return title
}

func inlineText(n gmast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *gmast.Text:
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *gmast.String:
			buf.Write(t.Value)
		default:
			buf.WriteString(inlineText(c, src))
		}
	}
	return buf.String()
}

// TitleFromPath builds a readable title from a file or sidebar path:
// "java-backend/README.md" becomes "Java Backend", "/" becomes "Home".
func TitleFromPath(p string) string {
	p = strings.Trim(p, "/")
	base := strings.TrimSuffix(path.Base(p), path.Ext(p))
	for _, name := range indexNames {
		if strings.EqualFold(base, name) {
			base = path.Base(path.Dir(p))
		}
	}
	if base == "." || base == "" {
		return "Home"
	}
	words := strings.FieldsFunc(base, func(r rune) bool { return r == '-' || r == '_' || r == ' ' })
	return cases.Title(language.English).String(strings.Join(words, " "))
}
