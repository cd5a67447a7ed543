package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/gerunddev/sitegen/internal/site"
	"github.com/gerunddev/sitegen/internal/styles"
	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "preview <file.md>",
		Short:   "Render one Markdown file and print the result",
		Example: "  sitegen preview content/index.md --html",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			html, _ := cmd.Flags().GetBool("html")
			return Preview(cmd, args[0], html)
		},
	}
	cmd.Flags().Bool("html", false, "print the full generated document instead of the terminal rendering")
	return cmd
}

// Preview renders a single file without writing anything.
// The page is always converted so that errors are reported the way a build would.
func Preview(cmd *cobra.Command, path string, html bool) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	page, err := site.RenderFile(path, env.cfg.Template, site.Options{
		BasePath: env.cfg.BasePath,
		Sanitize: env.cfg.Sanitize,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if html {
		fmt.Print(page.HTML)
		return nil
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	rendered, err := renderMarkdown(string(source), 100)
	if err != nil {
		return err
	}

	fmt.Println(styles.TitleStyle.Render(page.Title))
	fmt.Println(styles.DimStyle.Render(fmt.Sprintf("%d bytes of HTML", len(page.HTML))))
	fmt.Print(rendered)
	return nil
}

// renderMarkdown formats markdown for the terminal. A zero width disables wrapping.
func renderMarkdown(source string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(source)
}
