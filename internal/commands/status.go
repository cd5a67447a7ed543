package commands

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gerunddev/sitegen/internal/config"
	"github.com/gerunddev/sitegen/internal/site"
	"github.com/gerunddev/sitegen/internal/styles"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configuration, the last build and pending changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Status(cmd)
		},
	}
}

// Status prints a summary of the site
func Status(cmd *cobra.Command) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	cfg := env.cfg
	st := env.state

	fmt.Print(statusReport(cfg))

	var b strings.Builder
	b.WriteString(styles.LabelStyle.Render("Last Build"))
	b.WriteString("\n")
	if st.LastBuild.IsZero() {
		b.WriteString(fmt.Sprintf("  %s\n", styles.HelpStyle.Render("Never built")))
	} else {
		var total int64
		for _, p := range st.Pages {
			total += p.Size
		}
		b.WriteString(fmt.Sprintf("  Built:    %s\n", styles.ValueStyle.Render(humanize.Time(st.LastBuild))))
		b.WriteString(fmt.Sprintf("  Build ID: %s\n", styles.ValueStyle.Render(st.BuildID)))
		b.WriteString(fmt.Sprintf("  Pages:    %s\n", styles.ValueStyle.Render(
			fmt.Sprintf("%s (%s)", humanize.Comma(int64(len(st.Pages))), humanize.Bytes(uint64(total))))))
		b.WriteString(fmt.Sprintf("  Tracked:  %s\n", styles.ValueStyle.Render(humanize.Comma(int64(len(st.Files)))+" input files")))
	}
	b.WriteString("\n")

	b.WriteString(styles.LabelStyle.Render("Pending Changes"))
	b.WriteString("\n")
	changed, err := site.NewBuilder(cfg, st).Changed()
	switch {
	case err != nil:
		b.WriteString(fmt.Sprintf("  %s\n", styles.ErrorStyle.Render("✗ "+err.Error())))
	case changed:
		b.WriteString(fmt.Sprintf("  %s\n", styles.HighlightStyle.Render("● Inputs changed since the last build")))
	default:
		b.WriteString(fmt.Sprintf("  %s\n", styles.SuccessStyle.Render("✓ Output is up to date")))
	}

	if cfg.LogFile != "" {
		_, summary := ParseLogFile(cfg.LogFile, 200)
		if !summary.Time.IsZero() && summary.Errors > 0 {
			b.WriteString(fmt.Sprintf("  %s\n", styles.ErrorStyle.Render(
				fmt.Sprintf("✗ %d page(s) failed in the last logged build", summary.Errors))))
		}
	}

	fmt.Print(b.String())
	return nil
}

// statusReport renders the configuration section
func statusReport(cfg *config.Config) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("sitegen status"))
	b.WriteString("\n\n")

	b.WriteString(styles.LabelStyle.Render("Configuration"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Config:    %s\n", styles.ValueStyle.Render(config.ConfigPath())))
	b.WriteString(fmt.Sprintf("  Content:   %s\n", styles.ValueStyle.Render(cfg.ContentDir)))
	b.WriteString(fmt.Sprintf("  Static:    %s\n", styles.ValueStyle.Render(cfg.StaticDir)))
	b.WriteString(fmt.Sprintf("  Public:    %s\n", styles.ValueStyle.Render(cfg.PublicDir)))
	b.WriteString(fmt.Sprintf("  Template:  %s\n", styles.ValueStyle.Render(cfg.Template)))
	b.WriteString(fmt.Sprintf("  Base path: %s\n", styles.ValueStyle.Render(cfg.BasePath)))
	if cfg.Sanitize {
		b.WriteString(fmt.Sprintf("  %s\n", styles.DimStyle.Render("HTML sanitization enabled")))
	}
	b.WriteString("\n")

	return b.String()
}
