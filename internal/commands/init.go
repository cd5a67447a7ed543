package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gerunddev/sitegen/internal/config"
	"github.com/gerunddev/sitegen/internal/styles"
	"github.com/spf13/cobra"
)

const starterTemplate = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>{{ Title }}</title>
    <link href="/index.css" rel="stylesheet">
  </head>
  <body>
    <article>{{ Content }}</article>
  </body>
</html>
`

const starterPage = `# Hello

This site was generated by **sitegen**.

- Edit *content/index.md*
- Run ` + "`sitegen build`" + `
`

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a sitegen.json and a starter site",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return Init(dir)
		},
	}
}

// Init writes a default project config and starter files into dir.
// Existing files are left untouched.
func Init(dir string) error {
	cfg := config.DefaultConfig()

	files := []struct {
		path    string
		content string
	}{
		{filepath.Join(dir, cfg.Template), starterTemplate},
		{filepath.Join(dir, cfg.ContentDir, "index.md"), starterPage},
		{filepath.Join(dir, cfg.StaticDir, "index.css"), "body { max-width: 42rem; margin: 2rem auto; }\n"},
	}

	configPath := filepath.Join(dir, config.ProjectFile)
	if _, err := os.Stat(configPath); err == nil {
		fmt.Println(styles.DimStyle.Render("• " + configPath + " exists, skipping"))
	} else {
		if err := cfg.SaveTo(configPath); err != nil {
			return err
		}
		fmt.Println(styles.SuccessStyle.Render("✓ Created " + configPath))
	}

	for _, f := range files {
		if _, err := os.Stat(f.path); err == nil {
			fmt.Println(styles.DimStyle.Render("• " + f.path + " exists, skipping"))
			continue
		}
		if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
		if err := os.WriteFile(f.path, []byte(f.content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.path, err)
		}
		fmt.Println(styles.SuccessStyle.Render("✓ Created " + f.path))
	}

	fmt.Println(styles.DimStyle.Render("  Run 'sitegen build' to generate the site"))
	return nil
}
