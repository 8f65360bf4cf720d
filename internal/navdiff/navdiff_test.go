package navdiff

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/stakater/developer-handbook/internal/site"
)

func handbook() site.Sidebar {
	return site.Sidebar{
		site.Link("/"),
		site.Group("Architecture", site.Links("/architecture/ddd", "/architecture/rest")...),
		site.Group("API", site.Links("/api/naming", "/api/resources", "/api/request-response")...),
	}
}

func TestCompareIdentical(t *testing.T) {
	d := Compare(handbook(), handbook())
	assert.True(t, d.Empty())
	assert.Len(t, d.ByKind(KindUnchanged), 6)
	assert.Empty(t, d.Sections)

	var buf bytes.Buffer
	require.NoError(t, d.WriteText(&buf))
	assert.Equal(t, "No navigation changes.\n", buf.String())
}

func TestCompareAddRemoveMove(t *testing.T) {
	next := site.Sidebar{
		site.Link("/"),
		site.Group("Architecture", site.Links("/architecture/ddd", "/api/naming")...),
		site.Group("API", site.Links("/api/resources", "/api/request-response", "/api/versioning")...),
	}
	d := Compare(handbook(), next)
	require.False(t, d.Empty())

	added := d.ByKind(KindAdded)
	require.Len(t, added, 1)
	assert.Equal(t, Change{Kind: KindAdded, Path: "/api/versioning", To: "API", FromIndex: -1, ToIndex: 2}, added[0])

	removed := d.ByKind(KindRemoved)
	require.Len(t, removed, 1)
	assert.Equal(t, "/architecture/rest", removed[0].Path)
	assert.Equal(t, "Architecture", removed[0].From)

	moved := d.ByKind(KindMoved)
	require.Len(t, moved, 1)
	assert.Equal(t, "/api/naming", moved[0].Path)
	assert.Equal(t, "API", moved[0].From)
	assert.Equal(t, "Architecture", moved[0].To)

	assert.Empty(t, d.ByKind(KindReordered))
	assert.Len(t, d.ByKind(KindUnchanged), 4)

	var buf bytes.Buffer
	require.NoError(t, d.WriteText(&buf))
	assert.Equal(t, "> /api/naming: API -> Architecture\n+ /api/versioning (API)\n- /architecture/rest (Architecture)\n", buf.String())
}

func TestCompareReorderReportsOnlyTheMovedEntry(t *testing.T) {
	next := site.Sidebar{
		site.Link("/"),
		site.Group("Architecture", site.Links("/architecture/ddd", "/architecture/rest")...),
		site.Group("API", site.Links("/api/naming", "/api/request-response", "/api/resources")...),
	}
	d := Compare(handbook(), next)
	reordered := d.ByKind(KindReordered)
	require.Len(t, reordered, 1)
	assert.Equal(t, "/api/resources", reordered[0].Path)
	assert.Equal(t, 1, reordered[0].FromIndex)
	assert.Equal(t, 2, reordered[0].ToIndex)
	assert.Len(t, d.ByKind(KindUnchanged), 5)
}

func TestCompareSections(t *testing.T) {
	prev := handbook()
	prev[2].Section.Path = "/api/"
	next := site.Sidebar{
		site.Link("/"),
		site.Group("API", site.Links("/api/naming", "/api/resources", "/api/request-response")...),
		site.Group("Database", site.Link("/database/")),
	}
	next[1].Section.Path = "/api/overview"

	d := Compare(prev, next)
	assert.Equal(t, []SectionChange{
		{Kind: KindRetarget, Section: "API", OldPath: "/api/", NewPath: "/api/overview"},
		{Kind: KindAdded, Section: "Database"},
		{Kind: KindRemoved, Section: "Architecture"},
	}, d.Sections)
}

func TestCompareNestedSectionKeys(t *testing.T) {
	prev := site.Sidebar{site.Group("A", site.Group("B", site.Link("/x")))}
	next := site.Sidebar{site.Group("A", site.Group("C", site.Link("/x")))}

	d := Compare(prev, next)
	moved := d.ByKind(KindMoved)
	require.Len(t, moved, 1)
	assert.Equal(t, "A > B", moved[0].From)
	assert.Equal(t, "A > C", moved[0].To)
	require.Len(t, d.Sections, 2)
	assert.Equal(t, "A > C", d.Sections[0].Section)
	assert.Equal(t, "A > B", d.Sections[1].Section)
}

func distinctPaths(t *rapid.T) []string {
	return rapid.SliceOfNDistinct(rapid.StringMatching(`/[a-z]{1,6}`), 2, 15, rapid.ID[string]).Draw(t, "paths")
}

func without(paths []string, i int) []string {
	out := append([]string{}, paths[:i]...)
	return append(out, paths[i+1:]...)
}

func TestRemovingOneEntryChangesOnlyThatEntry(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		paths := distinctPaths(t)
		i := rapid.IntRange(0, len(paths)-1).Draw(t, "i")

		d := Compare(site.Links(paths...), site.Links(without(paths, i)...))
		removed := d.ByKind(KindRemoved)
		if len(removed) != 1 || removed[0].Path != paths[i] {
			t.Fatalf("expected only %q removed, got %+v", paths[i], removed)
		}
		if n := len(d.ByKind(KindUnchanged)); n != len(paths)-1 {
			t.Fatalf("expected %d unchanged, got %d", len(paths)-1, n)
		}
	})
}

func TestAddingOneEntryChangesOnlyThatEntry(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		paths := distinctPaths(t)
		i := rapid.IntRange(0, len(paths)-1).Draw(t, "i")

		d := Compare(site.Links(without(paths, i)...), site.Links(paths...))
		added := d.ByKind(KindAdded)
		if len(added) != 1 || added[0].Path != paths[i] {
			t.Fatalf("expected only %q added, got %+v", paths[i], added)
		}
		if n := len(d.ByKind(KindUnchanged)); n != len(paths)-1 {
			t.Fatalf("expected %d unchanged, got %d", len(paths)-1, n)
		}
	})
}

func TestMovingOneEntryReordersAtMostOne(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		paths := distinctPaths(t)
		from := rapid.IntRange(0, len(paths)-1).Draw(t, "from")
		rest := without(paths, from)
		to := rapid.IntRange(0, len(rest)).Draw(t, "to")
		moved := append(append(append([]string{}, rest[:to]...), paths[from]), rest[to:]...)

		d := Compare(site.Links(paths...), site.Links(moved...))
		want := 1
		if to == from {
			want = 0
		}
		if n := len(d.ByKind(KindReordered)); n != want {
			t.Fatalf("expected %d reordered, got %d", want, n)
		}
		if n := len(d.ByKind(KindUnchanged)); n != len(paths)-want {
			t.Fatalf("expected %d unchanged, got %d", len(paths)-want, n)
		}
	})
}

func TestCompareRepeatedSiblingTitles(t *testing.T) {
	prev := site.Sidebar{site.Group("Misc", site.Link("/a")), site.Group("Misc", site.Link("/b"))}
	next := site.Sidebar{site.Group("Misc"), site.Group("Misc", site.Links("/b", "/a")...)}

	d := Compare(prev, next)
	assert.Empty(t, d.ByKind(KindReordered))
	moved := d.ByKind(KindMoved)
	require.Len(t, moved, 1)
	assert.Equal(t, "/a", moved[0].Path)
	assert.Equal(t, "Misc", moved[0].From)
	assert.Equal(t, "Misc #2", moved[0].To)
	assert.Equal(t, []Change{{Kind: KindUnchanged, Path: "/b", From: "Misc #2", To: "Misc #2", FromIndex: 0, ToIndex: 0}}, d.ByKind(KindUnchanged))
	assert.Empty(t, d.Sections)
}
