package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/stakater/developer-handbook/internal/foundation/errors"
	"github.com/stakater/developer-handbook/internal/site"
)

// Example returns the developer handbook configuration used by init.
func Example(repo string) *Config {
	return &Config{
		Site: site.SiteConfig{
			Title:       DefaultTitle,
			Description: "Engineering practices and conventions",
			Head:        []site.HeadTag{site.IconTag("/favicon.png")},
			Plugins:     []string{"@vuepress/back-to-top", "@vuepress/medium-zoom"},
			Markdown: site.MarkdownOptions{
				LineNumbers: true,
				TOC:         site.TOCOptions{IncludeLevel: append([]int(nil), DefaultTOCLevels...)},
			},
			ThemeConfig: site.ThemeConfig{
				Sidebar: site.Sidebar{
					site.Link("/"),
					site.Group("Architecture", site.Links(
						"/architecture/ddd",
						"/architecture/rest",
						"/architecture/microservices/",
					)...),
					site.Group("Java Backend", site.Links(
						"/java-backend/",
						"/java-backend/datetime",
						"/java-backend/logging",
					)...),
					site.Group("Database", site.Links("/database/")...),
					site.Group("API", site.Links(
						"/api/naming",
						"/api/resources",
						"/api/request-response",
					)...),
				},
				Repo:         repo,
				EditLinks:    repo != "",
				EditLinkText: "Help us improve this page!",
				SmoothScroll: true,
			},
		},
		Content:    ContentConfig{Dir: ".", Extensions: []string{".md"}},
		Validation: ValidationConfig{MaxDepth: DefaultMaxDepth, Orphans: OrphansWarn},
		Output:     OutputConfig{Format: OutputJS, Path: DefaultOutputPath},
	}
}

// Init writes the example configuration to path. An existing file is only
// replaced when force is set.
func Init(path string, force bool, repo string) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}

	var buf bytes.Buffer
	buf.WriteString("# Handbook site configuration. Paths in the sidebar are resolved against content.dir.\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Example(repo)); err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to create config directory").Build()
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			WithContext("path", path).
			Build()
	}
	return nil
}
