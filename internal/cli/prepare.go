package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tfprep/tfprep/internal/deploy"
	"github.com/tfprep/tfprep/internal/gha"
	"github.com/tfprep/tfprep/internal/ui"
)

// prepare command flags
var (
	prepareSkipWorkdirCheck bool
	prepareNoRepoFallback   bool
)

// prepareCmd resolves one environment and publishes the step outputs
var prepareCmd = &cobra.Command{
	Use:   "prepare <default-working-dir> <environment> <dynamic-flags>",
	Short: "Resolve terraform arguments for one environment",
	Long: `Resolve the terraform init, plan, and apply argument lists for the
target environment and append them to the step output file.

Takes exactly three arguments: the working directory to fall back to when
the environment declares none, the environment name, and a single string of
dynamic plan flags (may be empty). Dynamic flags are tokenized with shell
quoting rules; only -var=, --var=, -target=, and --target= tokens pass, the
rest are dropped with a warning.

Examples:
  tfprep prepare . production ""
  tfprep prepare infra/ staging "-var=image_tag=v1.2.3"
  tfprep prepare infra/ staging "-target=module.app -var='greeting=hello world'"`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return prepareCommand(args[0], args[1], args[2])
	},
}

func init() {
	prepareCmd.Flags().BoolVar(&prepareSkipWorkdirCheck, "skip-workdir-check", false,
		"do not require the working directory to exist")
	prepareCmd.Flags().BoolVar(&prepareNoRepoFallback, "no-repo-fallback", false,
		"resolve declared paths against the working directory only")

	rootCmd.AddCommand(prepareCmd)
}

func prepareCommand(defaultWorkDir, environment, dynamicFlags string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	log := gha.NewWorkflowLogger(os.Stdout, settings.Debug)

	result, err := deploy.Prepare(deploy.Options{
		DefaultWorkingDir: defaultWorkDir,
		Environment:       environment,
		DynamicFlags:      dynamicFlags,
		RepoRoot:          settings.RepoRoot,
		ConfigPath:        settings.ConfigPath,
		OutputPath:        settings.OutputPath,
		SkipWorkdirCheck:  prepareSkipWorkdirCheck,
		NoRepoFallback:    prepareNoRepoFallback,
		Log:               log,
	})
	if err != nil {
		return err
	}

	if err := writeOutputs(settings.OutputPath, result); err != nil {
		return err
	}

	// The summary renders only after every output landed; a truncated
	// write must never look like success.
	log.Group(fmt.Sprintf("tfprep: %s", result.Environment))
	fmt.Print(ui.RenderSummary(&ui.RunSummary{
		Environment: result.Environment,
		WorkingDir:  result.WorkingDir,
		ConfigPath:  result.ConfigPath,
		InitArgs:    result.InitArgs,
		PlanArgs:    result.PlanArgs,
		ApplyArgs:   result.ApplyArgs,
	}))
	log.EndGroup()

	return nil
}

// writeOutputs appends the four step outputs in a stable order.
func writeOutputs(path string, result *deploy.Result) error {
	w := gha.NewOutputWriter(path)
	outputs := []struct {
		key   string
		value string
	}{
		{"working_dir", result.WorkingDir},
		{"init_args", result.InitArgsLine()},
		{"plan_args", result.PlanArgsLine()},
		{"apply_args", result.ApplyArgsLine()},
	}
	for _, o := range outputs {
		if err := w.Set(o.key, o.value); err != nil {
			return err
		}
	}
	return nil
}
