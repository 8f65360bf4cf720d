package lint

import (
	stderrors "errors"
	"log/slog"

	"github.com/stakater/developer-handbook/internal/content"
	"github.com/stakater/developer-handbook/internal/foundation/errors"
	"github.com/stakater/developer-handbook/internal/site"
)

// Rule checks one aspect of the configuration.
type Rule interface {
	// Name returns the rule identifier.
	Name() string

	// Check returns the issues found in the input.
	Check(in *Input) []Issue
}

// Input is what rules inspect. Files and Missing are only populated when the
// linter has a content directory.
type Input struct {
	Site     *site.SiteConfig
	Config   *Config
	Resolver *content.Resolver

	Files   map[string]string   // sidebar path -> content file
	Missing map[string][]string // sidebar path -> candidate files that were tried
	Pages   []content.Page      // every page in the content directory
}

// Linter runs the rule set over a site configuration.
type Linter struct {
	cfg   *Config
	rules []Rule
}

// NewLinter creates a linter with the default rule set.
func NewLinter(cfg *Config) *Linter {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = 2
	}
	rules := []Rule{
		&SiteTitleRule{},
		&PluginRule{},
		&TOCLevelsRule{},
		&EditLinksRule{},
		&PathFormatRule{},
		&DuplicatePathRule{},
		&SectionRule{},
		&MaxDepthRule{},
	}
	if cfg.ContentDir != "" {
		rules = append(rules, &DanglingPathRule{})
		if cfg.Orphans {
			rules = append(rules, &OrphanPageRule{})
		}
	}
	return &Linter{cfg: cfg, rules: rules}
}

// Rules returns the identifiers of the active rules.
func (l *Linter) Rules() []string {
	out := make([]string, 0, len(l.rules))
	for _, r := range l.rules {
		out = append(out, r.Name())
	}
	return out
}

// Lint checks s. An error is returned only when the content directory cannot
// be read; configuration problems are reported as issues.
func (l *Linter) Lint(s *site.SiteConfig) (*Result, error) {
	in := &Input{Site: s, Config: l.cfg}
	if l.cfg.ContentDir != "" {
		if err := l.loadContent(in); err != nil {
			return nil, err
		}
	}

	sidebar := s.ThemeConfig.Sidebar
	result := &Result{
		Issues:   []Issue{},
		Pages:    len(sidebar.Paths()),
		Sections: len(sidebar.Sections()),
	}
	for _, rule := range l.rules {
		for _, issue := range rule.Check(in) {
			if l.cfg.Quiet && issue.Severity < SeverityError {
				continue
			}
			result.Issues = append(result.Issues, issue)
		}
	}
	slog.Debug("Lint completed",
		slog.Int("pages", result.Pages),
		slog.Int("errors", result.ErrorCount()),
		slog.Int("warnings", result.WarningCount()))
	return result, nil
}

func (l *Linter) loadContent(in *Input) error {
	in.Resolver = content.NewResolver(l.cfg.ContentDir, l.cfg.Extensions...)
	in.Files = make(map[string]string)
	in.Missing = make(map[string][]string)

	for _, p := range in.Site.ThemeConfig.Sidebar.Paths() {
		file, err := in.Resolver.Resolve(p)
		switch {
		case err == nil:
			in.Files[p] = file
		case stderrors.Is(err, content.ErrNotFound):
			in.Missing[p], _ = in.Resolver.Candidates(p)
		case errors.HasCategory(err, errors.CategoryValidation):
			// malformed path, reported by the path-format rule
		default:
			return err
		}
	}

	if l.cfg.Orphans {
		pages, err := in.Resolver.Scan()
		if err != nil {
			return err
		}
		in.Pages = pages
	}
	return nil
}
