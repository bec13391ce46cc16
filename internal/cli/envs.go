package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tfprep/tfprep/internal/config"
	"github.com/tfprep/tfprep/internal/deploy"
	"github.com/tfprep/tfprep/internal/ui"
)

// envsCmd lists the environments a deploy can target
var envsCmd = &cobra.Command{
	Use:   "envs",
	Short: "List configured environments",
	Long: `List the environments declared in the configuration document, with
their working directories. The production environment is always a valid
target, declared or not.

Examples:
  tfprep envs
  tfprep envs --config deploy/.tfprep.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return envsCommand()
	},
}

func init() {
	rootCmd.AddCommand(envsCmd)
}

func envsCommand() error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	doc, cfgPath, err := config.LoadOrEmpty(settings.RepoRoot, settings.ConfigPath)
	if err != nil {
		return err
	}

	if cfgPath == "" {
		fmt.Println(ui.MutedStyle().Render("No " + config.ConfigFileName + " found; only the built-in target is available."))
	} else {
		fmt.Println(ui.InfoStyle().Render("Environments in " + cfgPath + ":"))
	}

	names := doc.EnvironmentNames()
	rows := make([]ui.EnvironmentRow, 0, len(names)+1)
	listed := false
	for _, name := range names {
		row := ui.EnvironmentRow{
			Name:       name,
			WorkingDir: workdirDisplay(doc, name),
		}
		if name == deploy.ProductionEnv {
			listed = true
			row.Sentinel = true
			row.Note = "always valid"
		}
		rows = append(rows, row)
	}
	if !listed {
		rows = append(rows, ui.EnvironmentRow{
			Name:       deploy.ProductionEnv,
			WorkingDir: "(caller default)",
			Note:       "always valid",
			Sentinel:   true,
		})
	}

	fmt.Println(ui.RenderEnvironments(rows))
	return nil
}

// workdirDisplay describes where an environment runs.
func workdirDisplay(doc *config.Document, name string) string {
	wd, declared := doc.WorkingDirectory(name)
	if !declared {
		return "(caller default)"
	}
	if normalized := deploy.NormalizeWorkingDir(wd); normalized != "" {
		return normalized
	}
	return "(repository root)"
}
