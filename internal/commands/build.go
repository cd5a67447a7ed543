package commands

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gerunddev/sitegen/internal/config"
	"github.com/gerunddev/sitegen/internal/diff"
	"github.com/gerunddev/sitegen/internal/site"
	"github.com/gerunddev/sitegen/internal/styles"
	"github.com/gerunddev/sitegen/internal/tui"
	"github.com/spf13/cobra"
)

var (
	// ErrBuildFailed is returned when a build stopped before generating pages
	ErrBuildFailed = errors.New("build failed")
	// ErrPagesFailed is returned when a build finished but some pages did not generate
	ErrPagesFailed = errors.New("some pages failed to generate")
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Copy static files and generate every page",
		Example: `  sitegen build
  sitegen build --dry-run
  sitegen build --no-clean`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			noClean, _ := cmd.Flags().GetBool("no-clean")
			return Build(cmd, dryRun, noClean)
		},
	}
	cmd.Flags().Bool("dry-run", false, "render pages and show what would change without writing")
	cmd.Flags().Bool("no-clean", false, "keep existing files in the public directory")
	return cmd
}

// Build performs a one-shot build
func Build(cmd *cobra.Command, dryRun, noClean bool) error {
	if dryRun {
		fmt.Println(styles.TitleStyle.Render("sitegen build (DRY RUN)"))
	} else {
		fmt.Println(styles.TitleStyle.Render("sitegen build"))
	}
	fmt.Println()

	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	if noClean {
		env.cfg.Clean = false
	}

	fmt.Printf("%s → %s\n", styles.DimStyle.Render(env.cfg.ContentDir), styles.DimStyle.Render(env.cfg.PublicDir))
	if dryRun {
		fmt.Println(styles.DimStyle.Render("(dry run - no files will be written)"))
	}

	builder := site.NewBuilder(env.cfg, env.state)
	builder.SetLogger(env.log)
	builder.SetDryRun(dryRun)

	m := tui.InitBuildModel(env.cfg.ContentDir, dryRun)
	p := tea.NewProgram(m, tea.WithInput(os.Stdin))

	go func() {
		result, err := builder.Build()
		p.Send(tui.BuildMsg{Result: result, Err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}
	result, complete, err := tui.BuildOutcome(final)
	if !complete {
		// interrupted before the build finished
		return nil
	}
	if err != nil {
		return ErrBuildFailed
	}

	if dryRun {
		for _, d := range result.Diffs {
			fmt.Println(styles.HighlightStyle.Render(d.Output))
			fmt.Println(diff.Render(d.Diff))
		}
		if len(result.Diffs) == 0 {
			fmt.Println(styles.SuccessStyle.Render("✓ Output is up to date"))
		}
	} else if err := env.state.Save(config.StateFilePath()); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	if len(result.Errors) > 0 {
		return ErrPagesFailed
	}
	return nil
}
