package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/stakater/developer-handbook/internal/config"
	"github.com/stakater/developer-handbook/internal/gitinfo"
	"github.com/stakater/developer-handbook/internal/lint"
	"github.com/stakater/developer-handbook/internal/logfields"
	"github.com/stakater/developer-handbook/internal/version"
)

// Global context passed to subcommands.
type Global struct {
	Out io.Writer
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"handbook.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init     InitCmd     `cmd:"" help:"Write an example handbook configuration"`
	Validate ValidateCmd `cmd:"" help:"Check the sidebar, site settings and content links"`
	Render   RenderCmd   `cmd:"" help:"Write the configuration consumed by the site generator"`
	Tree     TreeCmd     `cmd:"" help:"Print the sidebar with resolved page titles"`
	Diff     DiffCmd     `cmd:"" help:"Compare the sidebars of two configuration files"`
	Watch    WatchCmd    `cmd:"" help:"Re-validate whenever the configuration or content changes"`
}

// NewParser builds the kong parser for cli.
func NewParser(cli *CLI, opts ...kong.Option) (*kong.Kong, error) {
	base := []kong.Option{
		kong.Name("handbook"),
		kong.Description("Validate and render the developer handbook site configuration."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	}
	return kong.New(cli, append(base, opts...)...)
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	setupLogging(c.Verbose, config.LogLevelInfo, config.LogFormatText)
	return nil
}

// loadConfig loads the configuration and applies its logging section.
// --verbose always wins over the configured level.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	setupLogging(c.Verbose, cfg.Logging.Level, cfg.Logging.Format)

	theme := &cfg.Site.ThemeConfig
	if theme.EditLinks && theme.Repo == "" {
		if repo, derr := gitinfo.DetectRepo(cfg.BaseDir()); derr == nil {
			theme.Repo = repo
			slog.Debug("Detected repository from git origin", slog.String("repo", repo))
		}
	}
	slog.Debug("Loaded configuration", logfields.Config(c.Config), logfields.ContentDir(cfg.ContentDir()))
	return cfg, nil
}

func setupLogging(verbose bool, level config.LogLevel, format config.LogFormat) {
	lvl := level.SlogLevel()
	if verbose {
		lvl = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// lintConfig runs the sidebar checks configured in cfg.
func lintConfig(cfg *config.Config, quiet, noContent bool) (*lint.Result, error) {
	lc := &lint.Config{
		MaxDepth:   cfg.Validation.MaxDepth,
		Extensions: cfg.Content.Extensions,
		Orphans:    cfg.Validation.Orphans == config.OrphansWarn,
		Ignore:     cfg.Validation.Ignore,
		Quiet:      quiet,
	}
	if !noContent && !cfg.Validation.SkipContent {
		lc.ContentDir = cfg.ContentDir()
	}
	result, err := lint.NewLinter(lc).Lint(&cfg.Site)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return result, nil
}

// ExitError ends the process with Code. The command has already reported
// the reason on stdout.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

func exitFor(result *lint.Result) error {
	if code := lint.ExitCode(result); code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}
