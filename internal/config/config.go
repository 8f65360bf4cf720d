package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/stakater/developer-handbook/internal/foundation/errors"
	"github.com/stakater/developer-handbook/internal/site"
)

// DefaultPath is the configuration file looked up when --config is not given.
const DefaultPath = "handbook.yaml"

// Config is the handbook configuration: the site object handed to the
// generator plus settings for this tool.
type Config struct {
	Site       site.SiteConfig  `yaml:"site"`
	Content    ContentConfig    `yaml:"content"`
	Validation ValidationConfig `yaml:"validation"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`

	// baseDir is the directory of the loaded file; relative paths resolve against it.
	baseDir string
}

// ContentConfig locates the markdown pages that sidebar paths refer to.
type ContentConfig struct {
	Dir        string   `yaml:"dir"`
	Extensions []string `yaml:"extensions,omitempty"`
}

// ValidationConfig tunes the sidebar checks.
type ValidationConfig struct {
	MaxDepth    int        `yaml:"max_depth"`
	Orphans     OrphanMode `yaml:"orphans"`
	SkipContent bool       `yaml:"skip_content,omitempty"` // structural checks only
	Ignore      []string   `yaml:"ignore,omitempty"`       // page globs excluded from orphan detection
}

// OutputConfig controls where the generator configuration is rendered.
type OutputConfig struct {
	Format OutputFormat `yaml:"format"`
	Path   string       `yaml:"path"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty"`
}

// Load reads, expands, defaults and validates the configuration at path.
func Load(path string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigError("configuration file not found").
				WithContext("path", path).
				WithCause(err).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read config file").
			WithContext("path", path).
			Build()
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve config directory").Build()
	}
	cfg.baseDir = abs
	return cfg, nil
}

// Parse decodes YAML content (after ${VAR} expansion), applies defaults and
// validates tool settings. Relative paths resolve against the working directory.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to unmarshal config").Fatal().Build()
	}
	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ContentDir returns the content directory resolved against the config file.
func (c *Config) ContentDir() string {
	return c.resolve(c.Content.Dir)
}

// OutputPath returns the render target resolved against the config file.
func (c *Config) OutputPath() string {
	return c.resolve(c.Output.Path)
}

// BaseDir returns the directory the configuration was loaded from.
func (c *Config) BaseDir() string {
	if c.baseDir == "" {
		return "."
	}
	return c.baseDir
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) || c.baseDir == "" {
		return p
	}
	return filepath.Join(c.baseDir, p)
}
