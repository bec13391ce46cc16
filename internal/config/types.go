package config

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// Category keys recognized in the deploy document. backend-configs and
// var-files carry file paths that resolve against the working tree; the
// *-args categories carry verbatim flags.
const (
	CategoryBackendConfigs = "backend-configs"
	CategoryVarFiles       = "var-files"
	CategoryInitArgs       = "init-args"
	CategoryPlanArgs       = "plan-args"
	CategoryApplyArgs      = "apply-args"
)

// PathCategories lists the categories whose entries are file paths.
var PathCategories = []string{CategoryBackendConfigs, CategoryVarFiles}

// ArgCategories lists the categories whose entries are verbatim flags.
var ArgCategories = []string{CategoryInitArgs, CategoryPlanArgs, CategoryApplyArgs}

// Document represents the complete deploy configuration file.
//
// Category blocks decode lazily (yaml.Node) so that stray keys an operator
// left in the document never break a run that does not touch them.
type Document struct {
	// Defaults holds category blocks that apply to every environment
	// unless an environment opts out with inherit: false.
	Defaults map[string]yaml.Node `yaml:"defaults"`

	// Environments maps environment names to their settings. Names are
	// case-sensitive.
	Environments map[string]Environment `yaml:"environments"`
}

// Environment holds one environment's working directory and category blocks.
type Environment struct {
	// WorkingDirectory overrides the caller-supplied default when
	// declared, relative to the repository root. A declared-but-blank
	// value is an error at resolve time; nil means "not declared".
	WorkingDirectory *string `yaml:"working-directory"`

	// Categories captures the per-category blocks (backend-configs,
	// var-files, init-args, plan-args, apply-args). Unknown keys land
	// here too and stay untouched.
	Categories map[string]yaml.Node `yaml:",inline"`
}

// Category is one argument or path list plus its inheritance switch.
// Args, Paths and Inherit stay loosely typed so shape errors can name the
// exact document path instead of surfacing a decoder line number.
type Category struct {
	// Inherit controls whether the defaults list is prepended.
	// Unset means true.
	Inherit any `yaml:"inherit"`

	// Args holds verbatim flag entries (args categories).
	Args any `yaml:"args"`

	// Paths holds file path entries (paths categories).
	Paths any `yaml:"paths"`
}

// Empty returns a document with nothing declared. Every lookup on it yields
// empty lists, so a repository without a deploy document still resolves.
func Empty() *Document {
	return &Document{}
}

// HasEnvironment reports whether name is declared under environments.
func (d *Document) HasEnvironment(name string) bool {
	_, ok := d.Environments[name]
	return ok
}

// EnvironmentNames returns the declared environment names, sorted.
func (d *Document) EnvironmentNames() []string {
	names := make([]string, 0, len(d.Environments))
	for name := range d.Environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WorkingDirectory returns the working directory declared for name and
// whether one was declared at all. Declared-but-blank reports true so the
// caller can reject it instead of silently falling back.
func (d *Document) WorkingDirectory(name string) (string, bool) {
	e, ok := d.Environments[name]
	if !ok || e.WorkingDirectory == nil {
		return "", false
	}
	return *e.WorkingDirectory, true
}
