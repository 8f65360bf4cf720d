package lint

import (
	"fmt"
	"path"
	"strings"
	"unicode"

	"github.com/stakater/developer-handbook/internal/content"
	"github.com/stakater/developer-handbook/internal/foundation/errors"
	"github.com/stakater/developer-handbook/internal/site"
)

// sidebarLocation renders "sidebar: API > /api/naming" for a visited entry.
func sidebarLocation(v site.Visit) string {
	parts := make([]string, 0, len(v.Parents)+1)
	for _, title := range v.Parents {
		parts = append(parts, sectionLabel(title))
	}
	if v.Entry.Section != nil {
		parts = append(parts, sectionLabel(v.Entry.Section.Title))
	} else {
		parts = append(parts, v.Entry.Path)
	}
	return "sidebar: " + strings.Join(parts, " > ")
}

func sectionLabel(title string) string {
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

// visitPath returns the link carried by the entry: the path of a bare link
// or the landing path of a section.
func visitPath(v site.Visit) (string, bool) {
	if v.Entry.Section == nil {
		return v.Entry.Path, true
	}
	return v.Entry.Section.Path, v.Entry.Section.Path != ""
}

// PathFormatRule requires root-relative paths without whitespace or "..".
type PathFormatRule struct{}

func (r *PathFormatRule) Name() string { return RulePathFormat }

func (r *PathFormatRule) Check(in *Input) []Issue {
	var issues []Issue
	in.Site.ThemeConfig.Sidebar.Walk(func(v site.Visit) bool {
		p, ok := visitPath(v)
		if !ok {
			return true
		}
		var msg string
		switch {
		case strings.TrimSpace(p) == "":
			msg = "Sidebar path is empty"
		case strings.ContainsFunc(p, unicode.IsSpace):
			msg = fmt.Sprintf("Sidebar path %q contains whitespace", p)
		default:
			if _, err := content.Clean(p); err != nil {
				msg = fmt.Sprintf("Invalid sidebar path %q", p)
				if ce, ok := errors.AsClassified(err); ok {
					msg = fmt.Sprintf("Invalid sidebar path %q: %s", p, ce.Message())
				}
			}
		}
		if msg != "" {
			issues = append(issues, Issue{
				Location:    sidebarLocation(v),
				Path:        p,
				Severity:    SeverityError,
				Rule:        RulePathFormat,
				Message:     msg,
				Explanation: "Paths are resolved by the site generator against the content root and must start with '/'.",
				Fix:         "Write the path like /api/naming or /java-backend/",
			})
		}
		return true
	})
	return issues
}

// DuplicatePathRule enforces that each path appears once in the sidebar.
type DuplicatePathRule struct{}

func (r *DuplicatePathRule) Name() string { return RuleDuplicatePath }

func (r *DuplicatePathRule) Check(in *Input) []Issue {
	type occurrence struct {
		parent   *site.Section
		location string
	}
	var issues []Issue
	seen := make(map[string]occurrence)
	in.Site.ThemeConfig.Sidebar.Walk(func(v site.Visit) bool {
		p, ok := visitPath(v)
		if !ok || strings.TrimSpace(p) == "" {
			return true
		}
		first, dup := seen[p]
		if !dup {
			seen[p] = occurrence{parent: v.Parent, location: sidebarLocation(v)}
			return true
		}
		msg := fmt.Sprintf("Path %q is listed twice in the same section", p)
		if v.Parent == nil {
			msg = fmt.Sprintf("Path %q is listed twice at the top level", p)
		}
		if first.parent != v.Parent {
			msg = fmt.Sprintf("Path %q is already listed elsewhere in the sidebar", p)
		}
		issues = append(issues, Issue{
			Location:    sidebarLocation(v),
			Path:        p,
			Severity:    SeverityError,
			Rule:        RuleDuplicatePath,
			Message:     msg,
			Explanation: "First listed at " + first.location + ".",
			Fix:         "Remove one of the entries",
		})
		return true
	})
	return issues
}

// SectionRule requires section titles and flags sections without entries.
type SectionRule struct{}

func (r *SectionRule) Name() string { return RuleEmptyTitle }

func (r *SectionRule) Check(in *Input) []Issue {
	var issues []Issue
	in.Site.ThemeConfig.Sidebar.Walk(func(v site.Visit) bool {
		sec := v.Entry.Section
		if sec == nil {
			return true
		}
		if strings.TrimSpace(sec.Title) == "" {
			issues = append(issues, Issue{
				Location: sidebarLocation(v),
				Severity: SeverityError,
				Rule:     RuleEmptyTitle,
				Message:  "Section title is empty",
				Fix:      "Give the section a title",
			})
		}
		if len(sec.Children) == 0 && sec.Path == "" {
			issues = append(issues, Issue{
				Location: sidebarLocation(v),
				Severity: SeverityWarning,
				Rule:     RuleEmptySection,
				Message:  "Section has no entries",
				Fix:      "Add children or remove the section",
			})
		}
		return true
	})
	return issues
}

// MaxDepthRule bounds how deeply sections nest.
type MaxDepthRule struct{}

func (r *MaxDepthRule) Name() string { return RuleMaxDepth }

func (r *MaxDepthRule) Check(in *Input) []Issue {
	var issues []Issue
	limit := in.Config.MaxDepth
	in.Site.ThemeConfig.Sidebar.Walk(func(v site.Visit) bool {
		if v.Level <= limit {
			return true
		}
		issues = append(issues, Issue{
			Location:    sidebarLocation(v),
			Severity:    SeverityError,
			Rule:        RuleMaxDepth,
			Message:     fmt.Sprintf("Entry is nested %d levels deep (max %d)", v.Level, limit),
			Explanation: "The theme only renders a limited number of sidebar levels; deeper entries are hidden.",
			Fix:         "Flatten the section or raise validation.max_depth",
		})
		return false
	})
	return issues
}

// DanglingPathRule reports sidebar paths without a content file.
type DanglingPathRule struct{}

func (r *DanglingPathRule) Name() string { return RuleDanglingPath }

func (r *DanglingPathRule) Check(in *Input) []Issue {
	var issues []Issue
	in.Site.ThemeConfig.Sidebar.Walk(func(v site.Visit) bool {
		p, ok := visitPath(v)
		if !ok {
			return true
		}
		candidates, missing := in.Missing[p]
		if !missing {
			return true
		}
		issue := Issue{
			Location: sidebarLocation(v),
			Path:     p,
			Severity: SeverityError,
			Rule:     RuleDanglingPath,
			Message:  fmt.Sprintf("No page found for %q", p),
			Fix:      "Remove the entry or create the page",
		}
		if len(candidates) > 0 {
			issue.Explanation = "Looked for: " + strings.Join(candidates, ", ")
			issue.Fix = fmt.Sprintf("Create %s or remove the entry", candidates[0])
		}
		issues = append(issues, issue)
		return true
	})
	return issues
}

// OrphanPageRule reports pages that no sidebar entry links to.
type OrphanPageRule struct{}

func (r *OrphanPageRule) Name() string { return RuleOrphanPage }

func (r *OrphanPageRule) Check(in *Input) []Issue {
	linked := make(map[string]bool, len(in.Files))
	for _, file := range in.Files {
		linked[file] = true
	}
	var issues []Issue
	for _, page := range in.Pages {
		if linked[page.File] || ignored(in.Config.Ignore, page) {
			continue
		}
		if info, err := in.Resolver.Info(page.File); err == nil && info.Hidden {
			continue
		}
		issues = append(issues, Issue{
			Location: page.File,
			Path:     page.Path,
			Severity: SeverityWarning,
			Rule:     RuleOrphanPage,
			Message:  fmt.Sprintf("Page is not listed in the sidebar (%s)", page.Path),
			Fix:      fmt.Sprintf("Add %s to the sidebar, set sidebar_hide: true in its frontmatter, or add it to validation.ignore", page.Path),
		})
	}
	return issues
}

func ignored(patterns []string, page content.Page) bool {
	for _, pattern := range patterns {
		if ok, _ := path.Match(pattern, page.File); ok {
			return true
		}
		if ok, _ := path.Match(pattern, page.Path); ok {
			return true
		}
	}
	return false
}
