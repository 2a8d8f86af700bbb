package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fuze.dev/pkg/fuze/internal/domain"
)

var checkStageFlag string
var checkCompilerFlag string
var checkTimeoutFlag time.Duration

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [shaders...]",
		Short: "Compile fused shaders and remap compiler errors",
		Long: `Resolve each entry shader, submit the merged text to the external compiler,
and rewrite every "N(line) :" diagnostic so it names the original file, the
include chain, and the local line number.

The shader stage is inferred from the entry extension (.vert, .geom, .frag,
.comp) unless --stage overrides it.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Check(cmd.Context(), domain.CheckArgs{
				Paths: args,
				Stage: checkStageFlag,
			})
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&checkStageFlag, "stage", "s", "", "shader stage (vert, geom, frag, comp), inferred from the extension when empty")

	cmd.Flags().StringVar(&checkCompilerFlag, compilerBinaryFlag, viper.GetString(compilerBinaryConfigKey), "external compiler binary")
	bindFlagToConfig(cmd.Flags().Lookup(compilerBinaryFlag), compilerBinaryConfigKey)

	cmd.Flags().DurationVar(&checkTimeoutFlag, compileTimeoutFlag, viper.GetDuration(compileTimeoutConfigKey), "timeout for a single compile invocation")
	bindFlagToConfig(cmd.Flags().Lookup(compileTimeoutFlag), compileTimeoutConfigKey)
}
