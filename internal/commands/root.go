package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gradekey-dev/gradekey/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "gradekey",
		Short:   "Answer-key reconstruction and grading for accounting performance tasks",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newKeyCommand())
	rootCmd.AddCommand(newGradeCommand())

	return rootCmd
}
