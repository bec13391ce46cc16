package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tfprep/tfprep/internal/config"
	"github.com/tfprep/tfprep/internal/errors"
	"github.com/tfprep/tfprep/internal/ui"
)

var initForce bool

// initCmd scaffolds a starter configuration document
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter " + config.ConfigFileName,
	Long: `Write a starter configuration document at the repository root.

The generated file declares a defaults block and a staging environment with
the common category blocks commented for editing. When the file already
exists, an interactive prompt asks before overwriting; pass --force to skip
the prompt.

Examples:
  tfprep init
  tfprep init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing document")

	rootCmd.AddCommand(initCmd)
}

// starterConfig is the scaffold written by tfprep init.
const starterConfig = `# tfprep deploy configuration
# Run 'tfprep validate' after editing, 'tfprep envs' to list targets.

defaults:
  # Applied to every environment unless it sets 'inherit: false'.
  var-files:
    paths:
      - base.tfvars
  # init-args:
  #   args: ["-upgrade"]

environments:
  staging:
    # Directory terraform runs in, relative to the repository root.
    # Omit to use the caller-provided default.
    working-directory: infra/
    var-files:
      paths:
        - staging.tfvars
    # backend-configs:
    #   paths: ["backend.hcl"]
    # plan-args:
    #   args: ["-parallelism=10"]
    # apply-args:
    #   args: ["-auto-approve"]
`

func initCommand(force bool) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	configPath := filepath.Join(settings.RepoRoot, config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !force {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Configuration already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("'%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := os.WriteFile(configPath, []byte(starterConfig), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n\n", ui.SuccessStyle().Render(ui.SymbolSuccess), configPath)
	fmt.Println("Next steps:")
	fmt.Println("  edit the environments to match your repository layout")
	fmt.Println("  tfprep validate   - check the document")
	fmt.Println("  tfprep envs       - list deploy targets")
	return nil
}
