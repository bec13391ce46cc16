package cli

import (
	"os"

	"github.com/spf13/viper"

	"github.com/tfprep/tfprep/internal/errors"
	"github.com/tfprep/tfprep/internal/ui"
)

// Settings keys bound to the GitHub runner variables.
const (
	settingOutput    = "output"
	settingWorkspace = "workspace"
	settingDebug     = "runner-debug"
	settingNoColor   = "no-color"
)

// Settings is the resolved runner environment for one invocation. Explicit
// flags win over the runner variables, which win over process defaults.
// Everything below the cli package receives these values explicitly and
// never reads the environment itself.
type Settings struct {
	// ConfigPath is the --config flag value; empty means probe the
	// repository root for the default document.
	ConfigPath string

	// RepoRoot is --repo-root, $GITHUB_WORKSPACE, or the current
	// directory, in that order.
	RepoRoot string

	// OutputPath is --output-file or $GITHUB_OUTPUT.
	OutputPath string

	// Debug is true when --debug was passed or the runner was re-run
	// with debug logging ($RUNNER_DEBUG=1).
	Debug bool
}

// newSettingsViper binds the runner-provided variables.
func newSettingsViper() *viper.Viper {
	v := viper.New()
	v.BindEnv(settingOutput, "GITHUB_OUTPUT")
	v.BindEnv(settingWorkspace, "GITHUB_WORKSPACE")
	v.BindEnv(settingDebug, "RUNNER_DEBUG")
	v.BindEnv(settingNoColor, "NO_COLOR")
	return v
}

// loadSettings folds the persistent flags over the runner variables.
func loadSettings() (*Settings, error) {
	v := newSettingsViper()

	root := repoRoot
	if root == "" {
		root = v.GetString(settingWorkspace)
	}
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrEnv,
				"Cannot determine current directory",
				"Pass --repo-root explicitly")
		}
		root = cwd
	}

	output := outputFile
	if output == "" {
		output = v.GetString(settingOutput)
	}

	return &Settings{
		ConfigPath: cfgFile,
		RepoRoot:   root,
		OutputPath: output,
		Debug:      debugFlag || v.GetString(settingDebug) == "1",
	}, nil
}

// effectiveColorMode folds the NO_COLOR convention into the --color flag:
// an explicit always/never wins, auto defers to the variable.
func effectiveColorMode(flag string) string {
	if flag == ui.ColorModeAuto && newSettingsViper().GetString(settingNoColor) != "" {
		return ui.ColorModeNever
	}
	return flag
}
