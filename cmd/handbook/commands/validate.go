package commands

import (
	"fmt"

	"github.com/stakater/developer-handbook/internal/lint"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	Format    string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	Quiet     bool   `short:"q" help:"Quiet mode: only show errors, suppress warnings"`
	NoContent bool   `help:"Skip checks that read the content directory (dangling paths, orphan pages)"`
}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	result, err := lintConfig(cfg, v.Quiet, v.NoContent)
	if err != nil {
		return err
	}
	if err := lint.NewFormatter(v.Format).Format(g.out(), result, root.Config); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	return exitFor(result)
}
