package lint

import (
	"fmt"
	"strings"
)

// SiteTitleRule requires a site title.
type SiteTitleRule struct{}

func (r *SiteTitleRule) Name() string { return RuleSiteTitle }

func (r *SiteTitleRule) Check(in *Input) []Issue {
	if strings.TrimSpace(in.Site.Title) != "" {
		return nil
	}
	return []Issue{{
		Location: "site.title",
		Severity: SeverityError,
		Rule:     RuleSiteTitle,
		Message:  "Site title is empty",
		Fix:      "Set site.title",
	}}
}

// PluginRule rejects empty and repeated plugin identifiers.
type PluginRule struct{}

func (r *PluginRule) Name() string { return RulePluginID }

func (r *PluginRule) Check(in *Input) []Issue {
	var issues []Issue
	seen := make(map[string]int)
	for i, id := range in.Site.Plugins {
		loc := fmt.Sprintf("site.plugins[%d]", i)
		id = strings.TrimSpace(id)
		if id == "" {
			issues = append(issues, Issue{
				Location: loc,
				Severity: SeverityError,
				Rule:     RulePluginID,
				Message:  "Plugin identifier is empty",
				Fix:      "Remove the entry or name the plugin",
			})
			continue
		}
		if first, dup := seen[id]; dup {
			issues = append(issues, Issue{
				Location:    loc,
				Severity:    SeverityError,
				Rule:        RulePluginID,
				Message:     fmt.Sprintf("Plugin %q is listed more than once", id),
				Explanation: fmt.Sprintf("First listed at site.plugins[%d].", first),
				Fix:         "Remove the duplicate entry",
			})
			continue
		}
		seen[id] = i
	}
	return issues
}

// TOCLevelsRule checks the markdown table-of-contents heading range.
type TOCLevelsRule struct{}

func (r *TOCLevelsRule) Name() string { return RuleTOCLevels }

func (r *TOCLevelsRule) Check(in *Input) []Issue {
	levels := in.Site.Markdown.TOC.IncludeLevel
	if len(levels) == 0 {
		return nil
	}
	issue := Issue{
		Location: "site.markdown.toc.includeLevel",
		Severity: SeverityError,
		Rule:     RuleTOCLevels,
		Fix:      "Use a [min, max] pair such as [2, 3]",
	}
	switch {
	case len(levels) != 2:
		issue.Message = fmt.Sprintf("Heading level range must have two values, got %d", len(levels))
	case levels[0] < 1 || levels[1] > 6:
		issue.Message = fmt.Sprintf("Heading levels %v are outside 1..6", levels)
	case levels[0] > levels[1]:
		issue.Message = fmt.Sprintf("Heading level range %v is reversed", levels)
	default:
		return nil
	}
	return []Issue{issue}
}

// EditLinksRule warns when edit links are enabled without a repository.
type EditLinksRule struct{}

func (r *EditLinksRule) Name() string { return RuleEditLinks }

func (r *EditLinksRule) Check(in *Input) []Issue {
	tc := in.Site.ThemeConfig
	if !tc.EditLinks || strings.TrimSpace(tc.Repo) != "" {
		return nil
	}
	return []Issue{{
		Location:    "site.themeConfig.editLinks",
		Severity:    SeverityWarning,
		Rule:        RuleEditLinks,
		Message:     "Edit links are enabled but no repository is configured",
		Explanation: "The theme builds edit links from themeConfig.repo; without it no link is shown.",
		Fix:         "Set themeConfig.repo (handbook init detects it from the git origin)",
	}}
}
