package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/stakater/developer-handbook/internal/config"
	"github.com/stakater/developer-handbook/internal/content"
	"github.com/stakater/developer-handbook/internal/gitinfo"
	"github.com/stakater/developer-handbook/internal/site"
)

// TreeCmd implements the 'tree' command.
type TreeCmd struct {
	EditLinks bool `help:"Print the edit URL under each page"`
}

func (tc *TreeCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	printTree(g.out(), cfg, tc.EditLinks)
	return nil
}

func printTree(w io.Writer, cfg *config.Config, editLinks bool) {
	resolver := content.NewResolver(cfg.ContentDir(), cfg.Content.Extensions...)
	theme := cfg.Site.ThemeConfig

	_, _ = fmt.Fprintln(w, cfg.Site.Title)
	cfg.Site.ThemeConfig.Sidebar.Walk(func(v site.Visit) bool {
		indent := strings.Repeat("  ", v.Level)
		if sec := v.Entry.Section; sec != nil {
			line := indent + "▸ " + sec.Title
			if sec.Path != "" {
				line += "  " + sec.Path
			}
			_, _ = fmt.Fprintln(w, line)
			return true
		}

		file, err := resolver.Resolve(v.Entry.Path)
		if err != nil {
			_, _ = fmt.Fprintf(w, "%s- %s  (missing)\n", indent, v.Entry.Path)
			return true
		}
		title := content.TitleFromPath(v.Entry.Path)
		if info, ierr := resolver.Info(file); ierr == nil {
			title = info.Title
		}
		_, _ = fmt.Fprintf(w, "%s- %s  %s\n", indent, title, v.Entry.Path)
		if editLinks {
			if u := gitinfo.EditURL(theme.Repo, theme.DocsBranch, theme.DocsDir, file); u != "" {
				_, _ = fmt.Fprintf(w, "%s    %s\n", indent, u)
			}
		}
		return true
	})
}
