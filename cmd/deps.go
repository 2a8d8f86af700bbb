package cmd

import (
	"github.com/spf13/cobra"

	"fuze.dev/pkg/fuze/internal/domain"
)

// depsCmd represents the deps command.
var depsCmd = newDepsCmd()

func newDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps [shaders...]",
		Short: "List every file an entry shader pulls in",
		Long: `Resolve the include tree of each entry shader and list the distinct files
that contribute to the merged output, in inclusion order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Deps(cmd.Context(), domain.DepsArgs{Paths: args})
		},
	}
}

func init() {
	rootCmd.AddCommand(depsCmd)
}
