package config

const (
	DefaultTitle        = "Developer Handbook"
	DefaultEditLinkText = "Edit this page"
	DefaultMaxDepth     = 2
	DefaultOutputPath   = ".vuepress/config.js"
)

// DefaultTOCLevels is the heading range written by init.
var DefaultTOCLevels = []int{2, 3}

func applyDefaults(cfg *Config) {
	// Title and markdown options are left alone: an omitted title is
	// reported by validation and omitted markdown keeps the generator defaults.
	s := &cfg.Site
	if s.ThemeConfig.EditLinks && s.ThemeConfig.EditLinkText == "" {
		s.ThemeConfig.EditLinkText = DefaultEditLinkText
	}

	if cfg.Content.Dir == "" {
		cfg.Content.Dir = "."
	}
	if len(cfg.Content.Extensions) == 0 {
		cfg.Content.Extensions = []string{".md"}
	}

	if cfg.Validation.MaxDepth == 0 {
		cfg.Validation.MaxDepth = DefaultMaxDepth
	}

	if cfg.Output.Path == "" {
		if outputFormats.Normalize(string(cfg.Output.Format)) == OutputJSON {
			cfg.Output.Path = ".vuepress/config.json"
		} else {
			cfg.Output.Path = DefaultOutputPath
		}
	}
}
