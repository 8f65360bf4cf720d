package site

// Sidebar is the ordered top-level list of navigation entries. Order is the
// display order.
type Sidebar []SidebarEntry

// SidebarEntry is either a bare link (Path set, Section nil) or a Section.
// A bare link is displayed with the linked page's own title.
type SidebarEntry struct {
	Path    string
	Section *Section
}

// Section is a titled group of entries. Sections may nest.
type Section struct {
	Title       string
	Path        string // optional landing page for the group header
	Collapsable *bool
	Children    []SidebarEntry
}

// Link creates a bare path entry.
func Link(path string) SidebarEntry { return SidebarEntry{Path: path} }

// Group creates a section entry.
func Group(title string, children ...SidebarEntry) SidebarEntry {
	return SidebarEntry{Section: &Section{Title: title, Children: children}}
}

// Links creates bare path entries in order.
func Links(paths ...string) []SidebarEntry {
	out := make([]SidebarEntry, 0, len(paths))
	for _, p := range paths {
		out = append(out, Link(p))
	}
	return out
}

// IsSection reports whether the entry is a section.
func (e SidebarEntry) IsSection() bool { return e.Section != nil }

// Visit describes one entry reached during a walk.
type Visit struct {
	Entry   SidebarEntry
	Level   int      // 1 for top-level entries
	Index   int      // position among siblings
	Parents []string // titles of the enclosing sections, outermost first
	Parent  *Section // nil for top-level entries
}

// Walk visits every entry depth-first in display order. Returning false from
// fn skips the children of a section.
func (s Sidebar) Walk(fn func(Visit) bool) {
	walkEntries(s, nil, 1, nil, fn)
}

func walkEntries(entries []SidebarEntry, parent *Section, level int, parents []string, fn func(Visit) bool) {
	for i, e := range entries {
		if !fn(Visit{Entry: e, Level: level, Index: i, Parents: parents, Parent: parent}) {
			continue
		}
		if e.Section != nil {
			next := make([]string, len(parents), len(parents)+1)
			copy(next, parents)
			walkEntries(e.Section.Children, e.Section, level+1, append(next, e.Section.Title), fn)
		}
	}
}

// Paths returns every path in display order, including section landing paths.
func (s Sidebar) Paths() []string {
	var out []string
	s.Walk(func(v Visit) bool {
		switch {
		case v.Entry.Section == nil:
			out = append(out, v.Entry.Path)
		case v.Entry.Section.Path != "":
			out = append(out, v.Entry.Section.Path)
		}
		return true
	})
	return out
}

// Depth returns the deepest entry level; an empty sidebar has depth 0.
func (s Sidebar) Depth() int {
	depth := 0
	s.Walk(func(v Visit) bool {
		depth = max(depth, v.Level)
		return true
	})
	return depth
}

// Sections returns all sections in display order.
func (s Sidebar) Sections() []*Section {
	var out []*Section
	s.Walk(func(v Visit) bool {
		if v.Entry.Section != nil {
			out = append(out, v.Entry.Section)
		}
		return true
	})
	return out
}

// Links returns the direct child paths of the section.
func (sec *Section) Links() []string {
	var out []string
	for _, c := range sec.Children {
		if c.Section == nil {
			out = append(out, c.Path)
		}
	}
	return out
}
