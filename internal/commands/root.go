package commands

import (
	"fmt"

	"github.com/gerunddev/sitegen/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the sitegen command tree
func NewRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "sitegen",
		Short: "Generate a static site from a tree of Markdown pages",
		Long: fmt.Sprintf(`sitegen - Generate a static site from a tree of Markdown pages

Every .md file under the content directory becomes an .html file in the
public directory, substituted into the page template. Static assets are
copied alongside.

Configuration:
  Config file: %s
  State file:  %s`, config.ConfigPath(), config.StateFilePath()),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().Bool("debug", false, "log debug events to the log file")

	root.AddCommand(
		newBuildCmd(),
		newWatchCmd(),
		newPagesCmd(),
		newStatusCmd(),
		newPreviewCmd(),
		newInitCmd(),
	)

	return root
}

// Execute runs the command named by the process arguments
func Execute(version string) error {
	return NewRootCmd(version).Execute()
}
