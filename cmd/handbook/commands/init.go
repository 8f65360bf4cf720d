package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/stakater/developer-handbook/internal/config"
	"github.com/stakater/developer-handbook/internal/gitinfo"
	"github.com/stakater/developer-handbook/internal/logfields"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool   `help:"Overwrite existing configuration file"`
	Repo  string `help:"Repository slug for edit links (default: detected from the git origin remote)"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	repo := i.Repo
	if repo == "" {
		detected, err := gitinfo.DetectRepo(filepath.Dir(root.Config))
		if err != nil {
			slog.Debug("No repository detected", logfields.Error(err))
		}
		repo = detected
	}

	out := g.out()
	_, _ = fmt.Fprintf(out, "Writing configuration to %s\n", root.Config)
	if err := config.Init(root.Config, i.Force, repo); err != nil {
		_, _ = fmt.Fprintln(out, "Initialization failed")
		return err
	}
	if repo != "" {
		_, _ = fmt.Fprintf(out, "Edit links point at %s\n", repo)
	}
	_, _ = fmt.Fprintln(out, "Initialized successfully")
	return nil
}
