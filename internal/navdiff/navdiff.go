// Package navdiff compares two versions of a sidebar and reports which
// entries were added, removed, moved to another section, or reordered.
package navdiff

import (
	"fmt"
	"io"

	"github.com/stakater/developer-handbook/internal/site"
)

// Kind classifies a change to a single entry or section.
type Kind string

const (
	KindUnchanged Kind = "unchanged"
	KindAdded     Kind = "added"
	KindRemoved   Kind = "removed"
	KindMoved     Kind = "moved"
	KindReordered Kind = "reordered"
	KindRetarget  Kind = "retargeted" // section landing path changed
)

// TopLevel labels entries that are not inside a section.
const TopLevel = "(top level)"

// Change describes what happened to one path.
type Change struct {
	Kind      Kind   `json:"kind"`
	Path      string `json:"path"`
	From      string `json:"from,omitempty"` // enclosing section in the old sidebar
	To        string `json:"to,omitempty"`   // enclosing section in the new sidebar
	FromIndex int    `json:"from_index"`
	ToIndex   int    `json:"to_index"`
}

// SectionChange describes an added, removed or retargeted section.
type SectionChange struct {
	Kind    Kind   `json:"kind"`
	Section string `json:"section"`
	OldPath string `json:"old_path,omitempty"`
	NewPath string `json:"new_path,omitempty"`
}

// Diff is the result of Compare. Changes follow the new sidebar's display
// order, with removed paths appended in old display order.
type Diff struct {
	Changes  []Change        `json:"changes"`
	Sections []SectionChange `json:"sections,omitempty"`
}

type location struct {
	container string
	index     int
}

type sectionInfo struct {
	key  string
	path string
}

type snapshot struct {
	order    []string
	at       map[string]location
	members  map[string][]string // container -> paths in display order
	sections []sectionInfo
}

func collect(sb site.Sidebar) snapshot {
	snap := snapshot{at: map[string]location{}, members: map[string][]string{}}
	seen := map[string]int{}
	keys := map[*site.Section]string{} // section -> disambiguated title chain
	sb.Walk(func(v site.Visit) bool {
		container := ""
		if v.Parent != nil {
			container = keys[v.Parent]
		}
		if sec := v.Entry.Section; sec != nil {
			key := sec.Title
			if container != "" {
				key = container + " > " + key
			}
			seen[key]++
			if n := seen[key]; n > 1 {
				key = fmt.Sprintf("%s #%d", key, n)
			}
			keys[sec] = key
			snap.sections = append(snap.sections, sectionInfo{key: key, path: sec.Path})
			return true
		}
		if _, dup := snap.at[v.Entry.Path]; dup {
			return true
		}
		snap.at[v.Entry.Path] = location{container: container, index: v.Index}
		snap.order = append(snap.order, v.Entry.Path)
		snap.members[container] = append(snap.members[container], v.Entry.Path)
		return true
	})
	return snap
}

// Compare reports per-path changes from prev to next. Paths are the identity
// of link entries; a repeated path only counts at its first occurrence.
// Sections are identified by their title chain; a repeated title under the
// same parent gets a "#n" suffix, and entries inside it carry that key.
func Compare(prev, next site.Sidebar) *Diff {
	before, after := collect(prev), collect(next)
	reordered := reorderedPaths(before, after)

	d := &Diff{Changes: []Change{}}
	for _, p := range after.order {
		to := after.at[p]
		from, ok := before.at[p]
		c := Change{Path: p, To: label(to.container), ToIndex: to.index, FromIndex: -1}
		switch {
		case !ok:
			c.Kind = KindAdded
		case from.container != to.container:
			c.Kind, c.From, c.FromIndex = KindMoved, label(from.container), from.index
		case reordered[p]:
			c.Kind, c.From, c.FromIndex = KindReordered, label(from.container), from.index
		default:
			c.Kind, c.From, c.FromIndex = KindUnchanged, label(from.container), from.index
		}
		d.Changes = append(d.Changes, c)
	}
	for _, p := range before.order {
		if _, ok := after.at[p]; ok {
			continue
		}
		from := before.at[p]
		d.Changes = append(d.Changes, Change{
			Kind: KindRemoved, Path: p, From: label(from.container), FromIndex: from.index, ToIndex: -1,
		})
	}

	d.Sections = compareSections(before.sections, after.sections)
	return d
}

// reorderedPaths marks the surviving paths of each section that fall outside
// the longest common subsequence of the old and new orders.
func reorderedPaths(before, after snapshot) map[string]bool {
	out := map[string]bool{}
	for container, newPaths := range after.members {
		oldSurvivors := survivors(before.members[container], after.at, container)
		newSurvivors := survivors(newPaths, before.at, container)
		keep := lcs(oldSurvivors, newSurvivors)
		for _, p := range newSurvivors {
			if !keep[p] {
				out[p] = true
			}
		}
	}
	return out
}

func survivors(paths []string, other map[string]location, container string) []string {
	var out []string
	for _, p := range paths {
		if loc, ok := other[p]; ok && loc.container == container {
			out = append(out, p)
		}
	}
	return out
}

// lcs returns the members of one longest common subsequence of a and b.
func lcs(a, b []string) map[string]bool {
	n, m := len(a), len(b)
	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				table[i][j] = table[i+1][j+1] + 1
			} else {
				table[i][j] = max(table[i+1][j], table[i][j+1])
			}
		}
	}
	keep := map[string]bool{}
	for i, j := 0, 0; i < n && j < m; {
		switch {
		case a[i] == b[j]:
			keep[a[i]] = true
			i++
			j++
		case table[i+1][j] >= table[i][j+1]:
			i++
		default:
			j++
		}
	}
	return keep
}

func compareSections(before, after []sectionInfo) []SectionChange {
	old := make(map[string]string, len(before))
	for _, s := range before {
		old[s.key] = s.path
	}
	var out []SectionChange
	current := make(map[string]bool, len(after))
	for _, s := range after {
		current[s.key] = true
		prev, ok := old[s.key]
		switch {
		case !ok:
			out = append(out, SectionChange{Kind: KindAdded, Section: s.key, NewPath: s.path})
		case prev != s.path:
			out = append(out, SectionChange{Kind: KindRetarget, Section: s.key, OldPath: prev, NewPath: s.path})
		}
	}
	for _, s := range before {
		if !current[s.key] {
			out = append(out, SectionChange{Kind: KindRemoved, Section: s.key, OldPath: s.path})
		}
	}
	return out
}

func label(container string) string {
	if container == "" {
		return TopLevel
	}
	return container
}

// ByKind returns the path changes of the given kind.
func (d *Diff) ByKind(k Kind) []Change {
	var out []Change
	for _, c := range d.Changes {
		if c.Kind == k {
			out = append(out, c)
		}
	}
	return out
}

// Empty reports whether nothing changed.
func (d *Diff) Empty() bool {
	return len(d.Changes) == len(d.ByKind(KindUnchanged)) && len(d.Sections) == 0
}

// WriteText prints one line per change, skipping unchanged entries.
func (d *Diff) WriteText(w io.Writer) error {
	if d.Empty() {
		_, err := fmt.Fprintln(w, "No navigation changes.")
		return err
	}
	for _, s := range d.Sections {
		var err error
		switch s.Kind {
		case KindAdded:
			_, err = fmt.Fprintf(w, "+ section %s\n", s.Section)
		case KindRemoved:
			_, err = fmt.Fprintf(w, "- section %s\n", s.Section)
		default:
			_, err = fmt.Fprintf(w, "~ section %s: landing %q -> %q\n", s.Section, s.OldPath, s.NewPath)
		}
		if err != nil {
			return err
		}
	}
	for _, c := range d.Changes {
		var err error
		switch c.Kind {
		case KindAdded:
			_, err = fmt.Fprintf(w, "+ %s (%s)\n", c.Path, c.To)
		case KindRemoved:
			_, err = fmt.Fprintf(w, "- %s (%s)\n", c.Path, c.From)
		case KindMoved:
			_, err = fmt.Fprintf(w, "> %s: %s -> %s\n", c.Path, c.From, c.To)
		case KindReordered:
			_, err = fmt.Fprintf(w, "^ %s (%s): position %d -> %d\n", c.Path, c.To, c.FromIndex+1, c.ToIndex+1)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
