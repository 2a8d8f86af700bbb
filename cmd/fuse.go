package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fuze.dev/pkg/fuze/internal/domain"
)

var fuseParallelFlagValue int
var fuseDiffFlag bool

// fuseCmd represents the fuse command.
var fuseCmd = newFuseCmd()

func newFuseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fuse [shaders...]",
		Short: "Resolve include_once directives into single fused files",
		Long:  fuseLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Fuse(cmd.Context(), domain.FuseArgs{
				Paths:     args,
				OutputDir: viper.GetString(outputFlagName),
				Manifest:  viper.GetBool(manifestConfigKey),
				ShowDiff:  fuseDiffFlag,
				Threads:   viper.GetInt(fuseParallelConfigKey),
			})
		},
	}

	configureFuseFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(fuseCmd)
}

func configureFuseFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&fuseParallelFlagValue, fuseParallelFlag, "p", viper.GetInt(fuseParallelConfigKey), "number of entries fused in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(fuseParallelFlag), fuseParallelConfigKey)
	cmd.Flags().BoolVar(&fuseDiffFlag, "diff", false, "print a unified diff between each entry and its fused output")
}
