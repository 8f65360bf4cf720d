package commands

import (
	"fmt"
	"log/slog"

	"github.com/stakater/developer-handbook/internal/config"
	"github.com/stakater/developer-handbook/internal/foundation/errors"
	"github.com/stakater/developer-handbook/internal/lint"
	"github.com/stakater/developer-handbook/internal/logfields"
	"github.com/stakater/developer-handbook/internal/render"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Format    string `short:"f" help:"Output format (js or json); defaults to output.format"`
	Output    string `short:"o" help:"Output file; defaults to output.path"`
	Stdout    bool   `help:"Write to stdout instead of a file"`
	Force     bool   `help:"Render even when validation reports errors"`
	NoContent bool   `help:"Skip checks that read the content directory"`
}

func (r *RenderCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	format := cfg.Output.Format
	if r.Format != "" {
		if format, err = config.ParseOutputFormat(r.Format); err != nil {
			return errors.WrapError(err, errors.CategoryConfig, "invalid --format").Build()
		}
	}

	result, err := lintConfig(cfg, true, r.NoContent)
	if err != nil {
		return err
	}
	if result.HasErrors() {
		logIssues(result, "")
		if !r.Force {
			return errors.ValidationError("sidebar has validation errors; fix them or pass --force").
				WithContext("errors", result.ErrorCount()).
				Build()
		}
		slog.Warn("Rendering despite validation errors", logfields.Errors(result.ErrorCount()))
	}

	if r.Stdout {
		data, err := render.Bytes(&cfg.Site, format, root.Config)
		if err != nil {
			return err
		}
		_, err = g.out().Write(data)
		return err
	}

	path := r.Output
	if path == "" {
		path = cfg.OutputPath()
	}
	if err := render.WriteFile(&cfg.Site, format, root.Config, path); err != nil {
		return err
	}
	slog.Info("Rendered configuration", logfields.Output(path), logfields.Pages(result.Pages))
	_, _ = fmt.Fprintf(g.out(), "Wrote %s\n", path)
	return nil
}

// logIssues logs each issue at a level matching its severity.
func logIssues(result *lint.Result, runID string) {
	for _, issue := range result.Issues {
		attrs := []any{logfields.Rule(issue.Rule), slog.String("location", issue.Location)}
		if runID != "" {
			attrs = append(attrs, logfields.RunID(runID))
		}
		switch issue.Severity {
		case lint.SeverityError:
			slog.Error(issue.Message, attrs...)
		case lint.SeverityWarning:
			slog.Warn(issue.Message, attrs...)
		default:
			slog.Info(issue.Message, attrs...)
		}
	}
}
