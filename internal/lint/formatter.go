package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter formats linting results for output.
type Formatter interface {
	Format(w io.Writer, result *Result, configPath string) error
}

// NewFormatter creates the formatter for format ("text" or "json").
func NewFormatter(format string) Formatter {
	if format == "json" {
		return &JSONFormatter{}
	}
	return &TextFormatter{}
}

// TextFormatter formats results as human-readable text.
type TextFormatter struct{}

// Format outputs results in human-readable text format.
func (f *TextFormatter) Format(w io.Writer, result *Result, configPath string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Checking sidebar in: %s\n", configPath)
	b.WriteString(strings.Repeat("━", 60) + "\n\n")

	for _, issue := range result.Issues {
		writeIssue(&b, issue)
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("━", 60) + "\n")
	b.WriteString("Results:\n")
	fmt.Fprintf(&b, "  %d page%s in %d section%s\n", result.Pages, pluralize(result.Pages), result.Sections, pluralize(result.Sections))
	if n := result.ErrorCount(); n > 0 {
		fmt.Fprintf(&b, "  %d error%s (breaks navigation)\n", n, pluralize(n))
	}
	if n := result.WarningCount(); n > 0 {
		fmt.Fprintf(&b, "  %d warning%s (should fix)\n", n, pluralize(n))
	}
	b.WriteString("\n")

	switch {
	case result.HasErrors():
		b.WriteString("❌ Sidebar has errors; the rendered navigation would be broken.\n")
	case result.HasWarnings():
		b.WriteString("⚠️  Sidebar has warnings. Consider fixing before publishing.\n")
	default:
		b.WriteString("✨ Sidebar passes all checks!\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeIssue(b *strings.Builder, issue Issue) {
	icon := "ℹ"
	switch issue.Severity {
	case SeverityError:
		icon = "✗"
	case SeverityWarning:
		icon = "⚠"
	}
	fmt.Fprintf(b, "%s %s\n", icon, issue.Location)
	fmt.Fprintf(b, "  %s [%s]: %s\n", issue.Severity, issue.Rule, issue.Message)
	if issue.Explanation != "" {
		for line := range strings.SplitSeq(strings.TrimSpace(issue.Explanation), "\n") {
			fmt.Fprintf(b, "  %s\n", line)
		}
	}
	if issue.Fix != "" {
		fmt.Fprintf(b, "  Fix: %s\n", issue.Fix)
	}
}

// JSONFormatter formats results as JSON.
type JSONFormatter struct{}

// JSONOutput represents the JSON output structure.
type JSONOutput struct {
	Config       string      `json:"config"`
	Pages        int         `json:"pages"`
	Sections     int         `json:"sections"`
	ErrorCount   int         `json:"error_count"`
	WarningCount int         `json:"warning_count"`
	Issues       []JSONIssue `json:"issues"`
}

// JSONIssue represents a single issue in JSON format.
type JSONIssue struct {
	Location    string `json:"location"`
	Path        string `json:"path,omitempty"`
	Severity    string `json:"severity"`
	Rule        string `json:"rule"`
	Message     string `json:"message"`
	Explanation string `json:"explanation,omitempty"`
	Fix         string `json:"fix,omitempty"`
}

// Format outputs results in JSON format.
func (f *JSONFormatter) Format(w io.Writer, result *Result, configPath string) error {
	out := JSONOutput{
		Config:       configPath,
		Pages:        result.Pages,
		Sections:     result.Sections,
		ErrorCount:   result.ErrorCount(),
		WarningCount: result.WarningCount(),
		Issues:       make([]JSONIssue, 0, len(result.Issues)),
	}
	for _, issue := range result.Issues {
		out.Issues = append(out.Issues, JSONIssue{
			Location:    issue.Location,
			Path:        issue.Path,
			Severity:    issue.Severity.String(),
			Rule:        issue.Rule,
			Message:     issue.Message,
			Explanation: issue.Explanation,
			Fix:         issue.Fix,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// pluralize returns "s" if count != 1, otherwise empty string.
func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

// ExitCode maps a result to the lint exit code: 2 errors, 1 warnings, 0 clean.
func ExitCode(result *Result) int {
	switch {
	case result.HasErrors():
		return 2
	case result.HasWarnings():
		return 1
	default:
		return 0
	}
}
