package cmd

import (
	"github.com/spf13/cobra"

	"fuze.dev/pkg/fuze/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [shader]",
		Short: "Show per-line provenance of a fused shader",
		Long: `Resolve the include tree of an entry shader and show, for every line of the
merged output, the original file and local line that produced it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{Path: args[0]})
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
