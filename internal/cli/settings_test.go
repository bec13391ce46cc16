package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfprep/tfprep/internal/ui"
)

// setFlags overrides the persistent flag variables for one test.
func setFlags(t *testing.T, config, root, output string, debug bool) {
	t.Helper()
	origCfg, origRoot, origOutput, origDebug := cfgFile, repoRoot, outputFile, debugFlag
	t.Cleanup(func() {
		cfgFile, repoRoot, outputFile, debugFlag = origCfg, origRoot, origOutput, origDebug
	})
	cfgFile, repoRoot, outputFile, debugFlag = config, root, output, debug
}

// clearRunnerEnv blanks the GitHub runner variables for one test.
func clearRunnerEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GITHUB_OUTPUT", "GITHUB_WORKSPACE", "RUNNER_DEBUG", "NO_COLOR"} {
		t.Setenv(key, "")
	}
}

func TestLoadSettings_FlagsWinOverEnvironment(t *testing.T) {
	clearRunnerEnv(t)
	t.Setenv("GITHUB_WORKSPACE", "/runner/workspace")
	t.Setenv("GITHUB_OUTPUT", "/runner/output")
	setFlags(t, "custom.yaml", "/flag/root", "/flag/output", false)

	settings, err := loadSettings()
	require.NoError(t, err)

	assert.Equal(t, "custom.yaml", settings.ConfigPath)
	assert.Equal(t, "/flag/root", settings.RepoRoot)
	assert.Equal(t, "/flag/output", settings.OutputPath)
}

func TestLoadSettings_RunnerVariables(t *testing.T) {
	clearRunnerEnv(t)
	t.Setenv("GITHUB_WORKSPACE", "/runner/workspace")
	t.Setenv("GITHUB_OUTPUT", filepath.Join(t.TempDir(), "output"))
	setFlags(t, "", "", "", false)

	settings, err := loadSettings()
	require.NoError(t, err)

	assert.Equal(t, "/runner/workspace", settings.RepoRoot)
	assert.NotEmpty(t, settings.OutputPath)
	assert.False(t, settings.Debug)
}

func TestLoadSettings_FallsBackToCurrentDirectory(t *testing.T) {
	clearRunnerEnv(t)
	setFlags(t, "", "", "", false)

	settings, err := loadSettings()
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, cwd, settings.RepoRoot)
	assert.Empty(t, settings.OutputPath, "no output channel outside a runner")
}

func TestLoadSettings_Debug(t *testing.T) {
	tests := []struct {
		name      string
		runnerVal string
		flag      bool
		want      bool
	}{
		{name: "off by default", runnerVal: "", flag: false, want: false},
		{name: "runner re-run with debug", runnerVal: "1", flag: false, want: true},
		{name: "runner explicit zero", runnerVal: "0", flag: false, want: false},
		{name: "flag wins regardless", runnerVal: "", flag: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearRunnerEnv(t)
			t.Setenv("RUNNER_DEBUG", tt.runnerVal)
			setFlags(t, "", "", "", tt.flag)

			settings, err := loadSettings()
			require.NoError(t, err)
			assert.Equal(t, tt.want, settings.Debug)
		})
	}
}

func TestEffectiveColorMode(t *testing.T) {
	clearRunnerEnv(t)
	assert.Equal(t, ui.ColorModeAuto, effectiveColorMode(ui.ColorModeAuto))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.ColorModeNever, effectiveColorMode(ui.ColorModeAuto))
	assert.Equal(t, ui.ColorModeAlways, effectiveColorMode(ui.ColorModeAlways),
		"an explicit --color always beats NO_COLOR")
}
