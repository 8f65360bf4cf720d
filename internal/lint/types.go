// Package lint checks a handbook site configuration: sidebar structure,
// global options and, when a content directory is available, that every
// sidebar path is backed by a page.
package lint

// Severity indicates the importance level of a linting issue.
type Severity int

const (
	// SeverityInfo indicates informational messages.
	SeverityInfo Severity = iota
	// SeverityWarning indicates issues that should be fixed but don't break the site.
	SeverityWarning
	// SeverityError indicates issues that produce a broken or misleading sidebar.
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Rule identifiers.
const (
	RuleSiteTitle     = "site-title"
	RulePluginID      = "plugin-id"
	RuleTOCLevels     = "toc-levels"
	RuleEditLinks     = "edit-links"
	RulePathFormat    = "path-format"
	RuleDuplicatePath = "duplicate-path"
	RuleEmptyTitle    = "empty-title"
	RuleEmptySection  = "empty-section"
	RuleMaxDepth      = "max-depth"
	RuleDanglingPath  = "dangling-path"
	RuleOrphanPage    = "orphan-page"
)

// Issue is a single problem found in the configuration.
type Issue struct {
	Location    string   // "site.title", "sidebar: API > /api/naming", or a content file
	Path        string   // sidebar path involved, if any
	Severity    Severity // Issue severity level
	Rule        string   // Rule identifier (e.g., "duplicate-path")
	Message     string   // Brief description of the issue
	Explanation string   // Detailed explanation with context
	Fix         string   // Suggested fix
}

// Result contains all issues found during linting.
type Result struct {
	Issues   []Issue
	Pages    int // sidebar paths checked
	Sections int
}

// HasErrors returns true if any error-level issues exist.
func (r *Result) HasErrors() bool { return r.ErrorCount() > 0 }

// HasWarnings returns true if any warning-level issues exist.
func (r *Result) HasWarnings() bool { return r.WarningCount() > 0 }

// ErrorCount returns the number of error-level issues.
func (r *Result) ErrorCount() int { return r.count(SeverityError) }

// WarningCount returns the number of warning-level issues.
func (r *Result) WarningCount() int { return r.count(SeverityWarning) }

func (r *Result) count(s Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == s {
			n++
		}
	}
	return n
}

// ByRule returns the issues reported by rule.
func (r *Result) ByRule(rule string) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Rule == rule {
			out = append(out, issue)
		}
	}
	return out
}

// Config contains configuration for the linter.
type Config struct {
	// MaxDepth bounds entry nesting; top-level entries are at depth 1.
	MaxDepth int

	// ContentDir enables the page checks (dangling paths, orphans) when set.
	ContentDir string

	// Extensions are the page file extensions (".md" by default).
	Extensions []string

	// Orphans enables reporting of pages missing from the sidebar.
	Orphans bool

	// Ignore holds globs (matched against page files and sidebar paths)
	// excluded from orphan detection.
	Ignore []string

	// Quiet suppresses warnings, only reporting errors.
	Quiet bool
}
