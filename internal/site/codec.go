package site

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// sectionFields is the wire shape of a Section: {title, path?, collapsable?, children}.
type sectionFields struct {
	Title       string         `yaml:"title" json:"title"`
	Path        string         `yaml:"path,omitempty" json:"path,omitempty"`
	Collapsable *bool          `yaml:"collapsable,omitempty" json:"collapsable,omitempty"`
	Children    []SidebarEntry `yaml:"children" json:"children"`
}

// UnmarshalYAML accepts either a path scalar or a {title, children} mapping.
func (e *SidebarEntry) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var p string
		if err := n.Decode(&p); err != nil {
			return err
		}
		*e = SidebarEntry{Path: p}
		return nil
	case yaml.MappingNode:
		var f sectionFields
		if err := n.Decode(&f); err != nil {
			return err
		}
		*e = SidebarEntry{Section: &Section{
			Title:       f.Title,
			Path:        f.Path,
			Collapsable: f.Collapsable,
			Children:    f.Children,
		}}
		return nil
	default:
		return fmt.Errorf("line %d: sidebar entry must be a path or a section mapping", n.Line)
	}
}

// MarshalYAML mirrors UnmarshalYAML.
func (e SidebarEntry) MarshalYAML() (any, error) {
	if e.Section == nil {
		return e.Path, nil
	}
	return e.Section.fields(), nil
}

// MarshalJSON renders a bare link as a string and a section as an object.
func (e SidebarEntry) MarshalJSON() ([]byte, error) {
	if e.Section == nil {
		return json.Marshal(e.Path)
	}
	return json.Marshal(e.Section.fields())
}

func (sec *Section) fields() sectionFields {
	children := sec.Children
	if children == nil {
		children = []SidebarEntry{}
	}
	return sectionFields{
		Title:       sec.Title,
		Path:        sec.Path,
		Collapsable: sec.Collapsable,
		Children:    children,
	}
}

// UnmarshalYAML accepts both the generator's tuple form
// ["link", {rel: icon, href: /favicon.png}] and {tag: link, attrs: {...}}.
func (h *HeadTag) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.SequenceNode:
		if len(n.Content) == 0 || len(n.Content) > 2 {
			return fmt.Errorf("line %d: head tag must be [name] or [name, attributes]", n.Line)
		}
		var tag string
		if err := n.Content[0].Decode(&tag); err != nil {
			return err
		}
		attrs := map[string]string{}
		if len(n.Content) == 2 {
			if err := n.Content[1].Decode(&attrs); err != nil {
				return err
			}
		}
		*h = HeadTag{Tag: tag, Attrs: attrs}
		return nil
	case yaml.MappingNode:
		var f struct {
			Tag   string            `yaml:"tag"`
			Attrs map[string]string `yaml:"attrs"`
		}
		if err := n.Decode(&f); err != nil {
			return err
		}
		*h = HeadTag{Tag: f.Tag, Attrs: f.Attrs}
		return nil
	default:
		return fmt.Errorf("line %d: head tag must be a sequence or mapping", n.Line)
	}
}

// MarshalYAML emits the tuple form.
func (h HeadTag) MarshalYAML() (any, error) {
	return []any{h.Tag, h.attrs()}, nil
}

// MarshalJSON emits the tuple form expected by the generator.
func (h HeadTag) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{h.Tag, h.attrs()})
}

func (h HeadTag) attrs() map[string]string {
	if h.Attrs == nil {
		return map[string]string{}
	}
	return h.Attrs
}

// MarshalJSON emits an empty array for an empty sidebar.
func (s Sidebar) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]SidebarEntry(s))
}
