package commands

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gerunddev/sitegen/internal/state"
	"github.com/gerunddev/sitegen/internal/tui"
	"github.com/spf13/cobra"
)

func newPagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "pages",
		Aliases: []string{"browse"},
		Short:   "Browse the pages generated by the last build",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Pages(cmd)
		},
	}
}

// Pages opens the page browser
func Pages(cmd *cobra.Command) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	contentDir := env.cfg.ContentDir
	preview := func(source string) (string, error) {
		data, err := os.ReadFile(filepath.Join(contentDir, source))
		if err != nil {
			return "", err
		}
		return renderMarkdown(string(data), 0)
	}

	p := tea.NewProgram(tui.InitPagesModel(preview), tea.WithInput(os.Stdin), tea.WithAltScreen())

	go func() {
		p.Send(tui.PagesMsg{Pages: pageInfos(env.state, contentDir, env.cfg.PublicDir)})
	}()

	_, err = p.Run()
	return err
}

// pageInfos lists the recorded pages relative to the content and public directories
func pageInfos(st *state.State, contentDir, publicDir string) []tui.PageInfo {
	records := st.SortedPages()
	pages := make([]tui.PageInfo, 0, len(records))

	for _, rec := range records {
		info := tui.PageInfo{
			Source:  relTo(contentDir, rec.Source),
			Output:  relTo(publicDir, rec.Output),
			Title:   rec.Title,
			Size:    rec.Size,
			BuiltAt: rec.BuiltAt,
		}
		changed, err := st.HasChanged(rec.Source)
		info.Stale = changed || err != nil
		pages = append(pages, info)
	}

	return pages
}

func relTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}
