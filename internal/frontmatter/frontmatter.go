// Package frontmatter reads the YAML header of markdown pages.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Fields holds the frontmatter keys the handbook tooling looks at.
type Fields struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	SidebarHide bool   `yaml:"sidebar_hide"` // excluded from orphan detection
}

// Split separates `---` delimited YAML frontmatter from the markdown body.
// When the document has no frontmatter, had is false and body is the input.
func Split(content []byte) (front, body []byte, had bool, err error) {
	nl := newline(content)
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	start := len(open)
	if bytes.HasPrefix(content[start:], open) {
		return []byte{}, content[start+len(open):], true, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		if bytes.HasSuffix(content, []byte(nl+"---")) {
			return content[start : len(content)-3], []byte{}, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	return content[start : start+idx+len(nl)], content[start+idx+len(closeSeq):], true, nil
}

// Parse splits content and decodes the frontmatter into Fields.
func Parse(content []byte) (Fields, []byte, error) {
	front, body, had, err := Split(content)
	if err != nil || !had {
		return Fields{}, body, err
	}
	var f Fields
	if err := yaml.Unmarshal(front, &f); err != nil {
		return Fields{}, body, err
	}
	return f, body, nil
}

func newline(content []byte) string {
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
