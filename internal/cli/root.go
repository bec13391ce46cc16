package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tfprep/tfprep/internal/config"
	"github.com/tfprep/tfprep/internal/errors"
	"github.com/tfprep/tfprep/internal/gha"
	"github.com/tfprep/tfprep/internal/ui"
)

// Global flags available to all subcommands
var (
	cfgFile    string
	repoRoot   string
	outputFile string
	colorMode  string
	debugFlag  bool
)

// rootCmd is the base command for tfprep
var rootCmd = &cobra.Command{
	Use:   "tfprep",
	Short: "Prepare terraform arguments for environment deploys",
	Long: `tfprep resolves the terraform init, plan, and apply argument lists
for one deploy environment and publishes them as step outputs.

It reads an optional .tfprep.yaml at the repository root, merges the
defaults block with the target environment's overrides, resolves declared
backend-config and var-file paths relative to the working directory, and
appends sanitized dynamic flags to the plan arguments.

Designed to run inside a GitHub Actions job step:

  - name: Prepare terraform arguments
    id: prep
    run: tfprep prepare infra/ ${{ inputs.environment }} "${{ inputs.extra-flags }}"

Downstream steps consume steps.prep.outputs.working_dir, .init_args,
.plan_args, and .apply_args.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := ui.ConfigureColors(effectiveColorMode(colorMode)); err != nil {
			return errors.WrapWithCode(err, errors.ErrUsage,
				"Invalid --color value",
				"Use auto, always, or never")
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"configuration document (default: "+config.ConfigFileName+" at the repo root)")
	rootCmd.PersistentFlags().StringVar(&repoRoot, "repo-root", "",
		"repository root (default: $GITHUB_WORKSPACE, then the current directory)")
	rootCmd.PersistentFlags().StringVar(&outputFile, "output-file", "",
		"step output file (default: $GITHUB_OUTPUT)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", ui.ColorModeAuto,
		"color output: auto, always, or never")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"emit debug diagnostics (also enabled by RUNNER_DEBUG=1)")
}

// Execute runs the root command. On failure it emits exactly one ::error::
// workflow command so the step annotation carries a single headline, prints
// the full detail for the job log, and exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		gha.NewWorkflowLogger(os.Stdout, false).Error("%s", errors.Headline(err))
		fmt.Fprintln(os.Stderr, ui.ErrorStyle().Render(err.Error()))
		os.Exit(1)
	}
}
