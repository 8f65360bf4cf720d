package commands

import (
	"encoding/json"

	"github.com/stakater/developer-handbook/internal/config"
	"github.com/stakater/developer-handbook/internal/navdiff"
)

// DiffCmd implements the 'diff' command.
type DiffCmd struct {
	Old      string `arg:"" help:"Previous configuration file" type:"existingfile"`
	New      string `arg:"" help:"Current configuration file" type:"existingfile"`
	Format   string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	ExitCode bool   `help:"Exit with status 1 when the sidebars differ"`
}

func (d *DiffCmd) Run(g *Global) error {
	prev, err := config.Load(d.Old)
	if err != nil {
		return err
	}
	next, err := config.Load(d.New)
	if err != nil {
		return err
	}

	diff := navdiff.Compare(prev.Site.ThemeConfig.Sidebar, next.Site.ThemeConfig.Sidebar)
	if d.Format == "json" {
		enc := json.NewEncoder(g.out())
		enc.SetIndent("", "  ")
		if err := enc.Encode(diff); err != nil {
			return err
		}
	} else if err := diff.WriteText(g.out()); err != nil {
		return err
	}

	if d.ExitCode && !diff.Empty() {
		return &ExitError{Code: 1}
	}
	return nil
}
