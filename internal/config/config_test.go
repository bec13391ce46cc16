package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfprep/tfprep/internal/errors"
)

// writeDocument writes src as the named file under dir and returns its path.
func writeDocument(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestLoad_ValidDocument(t *testing.T) {
	path := writeDocument(t, t.TempDir(), ConfigFileName, `
defaults:
  var-files:
    paths:
      - base.tfvars
  init-args:
    args:
      - "-upgrade"
environments:
  staging:
    working-directory: infra/
    var-files:
      paths:
        - staging.tfvars
  production:
    plan-args:
      args:
        - "-compact-warnings"
`)

	doc, err := Load(path)
	require.NoError(t, err)

	assert.True(t, doc.HasEnvironment("staging"))
	assert.True(t, doc.HasEnvironment("production"))
	assert.False(t, doc.HasEnvironment("qa"))

	wd, declared := doc.WorkingDirectory("staging")
	assert.True(t, declared)
	assert.Equal(t, "infra/", wd)

	_, declared = doc.WorkingDirectory("production")
	assert.False(t, declared)
}

func TestLoad_EnvironmentNamesAreCaseSensitive(t *testing.T) {
	path := writeDocument(t, t.TempDir(), ConfigFileName, `
environments:
  Staging:
    working-directory: infra/
`)

	doc, err := Load(path)
	require.NoError(t, err)

	assert.True(t, doc.HasEnvironment("Staging"))
	assert.False(t, doc.HasEnvironment("staging"))
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeDocument(t, t.TempDir(), ConfigFileName, "")

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, doc.EnvironmentNames())
}

func TestLoad_SyntaxError(t *testing.T) {
	path := writeDocument(t, t.TempDir(), ConfigFileName, `
defaults:
  var-files: [unclosed
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "Failed to parse config file")
}

func TestLoad_WrongShape(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "top level is a list",
			src:  "- a\n- b\n",
		},
		{
			name: "defaults is a scalar",
			src:  "defaults: 42\n",
		},
		{
			name: "environment is a scalar",
			src:  "environments:\n  staging: oops\n",
		},
		{
			name: "working-directory is a list",
			src:  "environments:\n  staging:\n    working-directory: [a]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDocument(t, t.TempDir(), ConfigFileName, tt.src)

			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfigType),
				"want CONFIG_TYPE, got: %v", err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrEnv))
}

func TestFind_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeDocument(t, dir, "custom.yaml", "environments: {}\n")

	found, err := Find(dir, path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFind_ExplicitPathMissing(t *testing.T) {
	dir := t.TempDir()

	_, err := Find(dir, filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrEnv))
	assert.Contains(t, err.Error(), "not found")
}

func TestFind_PrefersYamlOverYml(t *testing.T) {
	dir := t.TempDir()
	yamlPath := writeDocument(t, dir, ConfigFileName, "environments: {}\n")
	writeDocument(t, dir, ConfigFileNameAlt, "environments: {}\n")

	found, err := Find(dir, "")
	require.NoError(t, err)
	assert.Equal(t, yamlPath, found)
}

func TestFind_FallsBackToYml(t *testing.T) {
	dir := t.TempDir()
	ymlPath := writeDocument(t, dir, ConfigFileNameAlt, "environments: {}\n")

	found, err := Find(dir, "")
	require.NoError(t, err)
	assert.Equal(t, ymlPath, found)
}

func TestFind_NothingInRoot(t *testing.T) {
	found, err := Find(t.TempDir(), "")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestLoadOrEmpty_AbsentDocument(t *testing.T) {
	doc, path, err := LoadOrEmpty(t.TempDir(), "")
	require.NoError(t, err)
	assert.Empty(t, path)
	require.NotNil(t, doc)

	// An empty document resolves every lookup to nothing.
	args, err := doc.Args("staging", CategoryInitArgs)
	require.NoError(t, err)
	assert.Empty(t, args)
}

func TestLoadOrEmpty_PresentDocument(t *testing.T) {
	dir := t.TempDir()
	want := writeDocument(t, dir, ConfigFileName, `
environments:
  staging: {}
`)

	doc, path, err := LoadOrEmpty(dir, "")
	require.NoError(t, err)
	assert.Equal(t, want, path)
	assert.True(t, doc.HasEnvironment("staging"))
}

func TestLoadOrEmpty_ParseErrorIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, ConfigFileName, "defaults: [unclosed\n")

	_, _, err := LoadOrEmpty(dir, "")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestEnvironmentNames_Sorted(t *testing.T) {
	path := writeDocument(t, t.TempDir(), ConfigFileName, `
environments:
  staging: {}
  dev: {}
  production: {}
`)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"dev", "production", "staging"}, doc.EnvironmentNames())
}

func TestWorkingDirectory_DeclaredBlank(t *testing.T) {
	path := writeDocument(t, t.TempDir(), ConfigFileName, `
environments:
  staging:
    working-directory: ""
`)

	doc, err := Load(path)
	require.NoError(t, err)

	wd, declared := doc.WorkingDirectory("staging")
	assert.True(t, declared, "a declared-but-blank working directory must surface, not fall back")
	assert.Empty(t, wd)
}
