package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tfprep/tfprep/internal/config"
	"github.com/tfprep/tfprep/internal/deploy"
	"github.com/tfprep/tfprep/internal/errors"
	"github.com/tfprep/tfprep/internal/gha"
	"github.com/tfprep/tfprep/internal/ui"
	"github.com/tfprep/tfprep/internal/util"
)

// validateCmd shape-checks the configuration document
var validateCmd = &cobra.Command{
	Use:   "validate [environment]",
	Short: "Check the configuration document for problems",
	Long: `Load the configuration document and report structural problems:
malformed YAML, category blocks with the wrong shape, bad inherit flags,
and blank working directories. Unknown keys produce warnings.

With an environment argument, additionally resolve that environment's
working directory and declared paths, so a broken deploy surfaces before
the deploy workflow runs it.

Examples:
  tfprep validate
  tfprep validate staging`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		environment := ""
		if len(args) == 1 {
			environment = args[0]
		}
		return validateCommand(environment)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateCommand(environment string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	log := gha.NewWorkflowLogger(os.Stdout, settings.Debug)

	path, err := config.Find(settings.RepoRoot, settings.ConfigPath)
	if err != nil {
		return err
	}
	if path == "" {
		return errors.New(errors.ErrConfig,
			"No "+config.ConfigFileName+" found under "+settings.RepoRoot,
			"Create one with 'tfprep init', or point --config at the document")
	}

	doc, err := config.Load(path)
	if err != nil {
		return err
	}

	warnings, err := doc.Validate()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.Warn("%s", w)
	}

	if environment != "" {
		err := deploy.Check(deploy.Options{
			DefaultWorkingDir: ".",
			Environment:       environment,
			RepoRoot:          settings.RepoRoot,
			ConfigPath:        path,
			NoRepoFallback:    false,
			Log:               log,
		})
		if err != nil {
			return err
		}
	}

	names := doc.EnvironmentNames()
	fmt.Println(ui.SuccessStyle().Render(
		fmt.Sprintf("%s %s is valid (%d %s)", ui.SymbolSuccess, filepath.Base(path),
			len(names), util.Pluralize(len(names), "environment", "environments"))))
	return nil
}
