// Package cmd provides the root command and CLI setup for fuze.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"fuze.dev/pkg/fuze/internal/adapter"
	"fuze.dev/pkg/fuze/internal/controller"
	"fuze.dev/pkg/fuze/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var manifestStore adapter.ManifestStore
var compilerAdapter adapter.CompilerAdapter
var resolver *domain.Resolver
var workflow domain.Workflow
var ui controller.UI

// outputDirFlag is a root-level flag shared by commands that write fused files.
var outputDirFlag string

// manifestFlag enables the provenance sidecar next to each fused file.
var manifestFlag bool

// mountFlags maps extra protocol schemes onto directories (scheme=dir).
var mountFlags []string

// verboseFlag switches file logging to debug level.
var verboseFlag bool

// mountedSchemes tracks schemes already registered so repeated command
// invocations (tests) do not trip the duplicate-protocol check.
var mountedSchemes = map[string]bool{}

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	manifestStore = adapter.NewLocalManifestStore()
	compilerAdapter = adapter.NewLocalGlslangAdapter(
		viper.GetString(compilerBinaryConfigKey),
		viper.GetDuration(compileTimeoutConfigKey),
	)
	resolver = domain.NewResolver(fsAdapter)
	workflow = domain.NewWorkflow(resolver, fsAdapter, manifestStore, compilerAdapter, ui)
}

const includeSyntaxHelp = `Include directives are single-line and resolved relative to the including
file's directory:
  #include_once "lighting.glsl"
  #include_once <lib/noise.glsl>
  #pragma include_once "res://shared/constants.glsl"`

const rootLongDescription = `Fuze resolves include_once directives across a tree of shader source files,
producing one merged file per entry while retaining enough provenance to map
any line of the merged text back to the original file and line. Compiler
errors against the merged text become errors you can act on.

` + includeSyntaxHelp

const fuseLongDescription = `Resolve every include_once directive of the given entry shaders and write one
merged file per entry into the output directory.

` + includeSyntaxHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fuze",
		Short: "Shader include preprocessor with provenance tracking",
		Long:  rootLongDescription,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey) || verboseFlag)

			// Flags and config are resolved now, so the compiler settings are final.
			compilerAdapter = adapter.NewLocalGlslangAdapter(
				viper.GetString(compilerBinaryConfigKey),
				viper.GetDuration(compileTimeoutConfigKey),
			)
			workflow = domain.NewWorkflow(resolver, fsAdapter, manifestStore, compilerAdapter, ui)

			return applyMounts(resolver, viper.GetStringSlice(mountsConfigKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for fused shaders and manifests",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVar(&manifestFlag, manifestFlagName, viper.GetBool(manifestConfigKey), "write a .provenance.yaml sidecar next to each fused file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(manifestFlagName), manifestConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&mountFlags, mountFlagName, "m", viper.GetStringSlice(mountsConfigKey), "mount a protocol scheme onto a directory as scheme=dir (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(mountFlagName), mountsConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup("verbose"), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// applyMounts registers scheme=dir pairs as protocol backends on the resolver.
func applyMounts(r *domain.Resolver, mounts []string) error {
	for _, mount := range mounts {
		scheme, dir, ok := strings.Cut(mount, "=")
		if !ok || scheme == "" || dir == "" {
			return fmt.Errorf("malformed mount %q, expected scheme=dir", mount)
		}

		if mountedSchemes[scheme] {
			continue
		}

		if err := r.Register(scheme, fsAdapter.DirLoader(dir)); err != nil {
			return err
		}

		mountedSchemes[scheme] = true
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
