package config

import (
	"path/filepath"
	"strings"

	"github.com/stakater/developer-handbook/internal/foundation/errors"
)

// Validate checks tool settings and normalizes enum fields in place. The
// sidebar itself is checked by the navcheck package, not here.
func Validate(cfg *Config) error {
	var err error
	if cfg.Output.Format, err = outputFormats.Parse(string(cfg.Output.Format)); err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid output.format").Fatal().Build()
	}
	if cfg.Validation.Orphans, err = orphanModes.Parse(string(cfg.Validation.Orphans)); err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid validation.orphans").Fatal().Build()
	}
	if cfg.Logging.Level, err = logLevels.Parse(string(cfg.Logging.Level)); err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid logging.level").Fatal().Build()
	}
	if cfg.Logging.Format, err = logFormats.Parse(string(cfg.Logging.Format)); err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid logging.format").Fatal().Build()
	}

	if cfg.Validation.MaxDepth < 0 {
		return errors.ConfigError("validation.max_depth cannot be negative").
			WithContext("max_depth", cfg.Validation.MaxDepth).
			Build()
	}
	for _, ext := range cfg.Content.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return errors.ConfigError("content.extensions entries must look like .md").
				WithContext("extension", ext).
				Build()
		}
	}
	for _, pattern := range cfg.Validation.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return errors.WrapError(err, errors.CategoryConfig, "invalid validation.ignore pattern").
				Fatal().
				WithContext("pattern", pattern).
				Build()
		}
	}
	return nil
}
