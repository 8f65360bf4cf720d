// Package site models the configuration object consumed by the external
// documentation site generator: global options plus the sidebar tree.
//
// Values are built once (decoded from YAML or written as literals) and are
// only read afterwards; nothing in this package mutates a loaded tree.
package site

import "strings"

// SiteConfig is the top-level object handed to the site generator.
type SiteConfig struct {
	Title       string          `yaml:"title" json:"title"`
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
	Head        []HeadTag       `yaml:"head,omitempty" json:"head,omitempty"`
	Plugins     []string        `yaml:"plugins,omitempty" json:"plugins,omitempty"`
	Markdown    MarkdownOptions `yaml:"markdown,omitempty" json:"markdown,omitzero"`
	ThemeConfig ThemeConfig     `yaml:"themeConfig" json:"themeConfig"`
}

// HeadTag is a single tag injected into the rendered page head, for example
// ["link", {rel: "icon", href: "/favicon.png"}].
type HeadTag struct {
	Tag   string
	Attrs map[string]string
}

// MarkdownOptions carries the markdown rendering flags of the generator.
type MarkdownOptions struct {
	LineNumbers    bool          `yaml:"lineNumbers,omitempty" json:"lineNumbers,omitempty"`
	Anchor         AnchorOptions `yaml:"anchor,omitempty" json:"anchor,omitzero"`
	TOC            TOCOptions    `yaml:"toc,omitempty" json:"toc"`
	ExtractHeaders []string      `yaml:"extractHeaders,omitempty" json:"extractHeaders,omitempty"`
}

// AnchorOptions controls heading anchors. A nil Permalink keeps the
// generator's default.
type AnchorOptions struct {
	Permalink       *bool  `yaml:"permalink,omitempty" json:"permalink,omitempty"`
	PermalinkBefore bool   `yaml:"permalinkBefore,omitempty" json:"permalinkBefore,omitempty"`
	PermalinkSymbol string `yaml:"permalinkSymbol,omitempty" json:"permalinkSymbol,omitempty"`
}

// TOCOptions holds the heading level range included in [[toc]] blocks.
type TOCOptions struct {
	IncludeLevel []int `yaml:"includeLevel,omitempty" json:"includeLevel,omitempty"`
}

// ThemeConfig controls the navigational behaviour of the default theme.
type ThemeConfig struct {
	Sidebar      Sidebar `yaml:"sidebar" json:"sidebar"`
	Repo         string  `yaml:"repo,omitempty" json:"repo,omitempty"`
	EditLinks    bool    `yaml:"editLinks,omitempty" json:"editLinks"`
	EditLinkText string  `yaml:"editLinkText,omitempty" json:"editLinkText,omitempty"`
	SmoothScroll bool    `yaml:"smoothScroll,omitempty" json:"smoothScroll,omitempty"`
	DocsDir      string  `yaml:"docsDir,omitempty" json:"docsDir,omitempty"`
	DocsBranch   string  `yaml:"docsBranch,omitempty" json:"docsBranch,omitempty"`
}

// IconPath returns the href of the first <link rel="icon"> head tag, or "".
func (c *SiteConfig) IconPath() string {
	for _, h := range c.Head {
		if h.Tag == "link" && strings.EqualFold(h.Attrs["rel"], "icon") {
			return h.Attrs["href"]
		}
	}
	return ""
}

// IconTag builds the head tag referencing a favicon.
func IconTag(href string) HeadTag {
	return HeadTag{Tag: "link", Attrs: map[string]string{"rel": "icon", "href": href}}
}
