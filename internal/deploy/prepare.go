// Package deploy runs the resolution pipeline: validate inputs, load the
// deploy document, resolve the environment and its working directory, merge
// argument lists, resolve declared paths, and sanitize dynamic flags. The
// pipeline reads the repository but never writes anywhere; emitting the
// result is the caller's job.
package deploy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tfprep/tfprep/internal/config"
	"github.com/tfprep/tfprep/internal/dynflags"
	"github.com/tfprep/tfprep/internal/errors"
	"github.com/tfprep/tfprep/internal/gha"
	"github.com/tfprep/tfprep/internal/paths"
	"github.com/tfprep/tfprep/internal/util"
)

// ProductionEnv is the sentinel environment. It is always a valid target,
// declared in the deploy document or not.
const ProductionEnv = "production"

// Flag prefixes applied to resolved path entries.
const (
	backendConfigPrefix = "-backend-config="
	varFilePrefix       = "-var-file="
)

// Options carries every external input of a run. The pipeline reads nothing
// from the process environment; the caller resolves all of it up front.
type Options struct {
	// DefaultWorkingDir is the caller-supplied working directory, used
	// when the environment does not declare its own.
	DefaultWorkingDir string

	// Environment is the deploy target name. Case-sensitive.
	Environment string

	// DynamicFlags is the raw extra-flags string supplied by the caller.
	DynamicFlags string

	// RepoRoot is the absolute repository root.
	RepoRoot string

	// ConfigPath optionally names the deploy document explicitly instead
	// of probing the repository root.
	ConfigPath string

	// OutputPath is where results will be appended. The pipeline only
	// validates it; writing happens after Prepare returns.
	OutputPath string

	// SkipWorkdirCheck disables working directory existence validation.
	SkipWorkdirCheck bool

	// NoRepoFallback disables the repository-root path resolution tier.
	NoRepoFallback bool

	// Log receives diagnostics; nil discards them.
	Log gha.Logger
}

// Result is the resolved configuration for one environment.
type Result struct {
	// Environment is the validated target name.
	Environment string

	// WorkingDir is the normalized working directory relative to the
	// repository root; empty means the root itself.
	WorkingDir string

	// ConfigPath is the deploy document the run used, empty when the
	// repository carries none.
	ConfigPath string

	InitArgs  []string
	PlanArgs  []string
	ApplyArgs []string
}

// Prepare resolves the final argument lists for opts.Environment.
func Prepare(opts Options) (*Result, error) {
	log := opts.Log
	if log == nil {
		log = gha.Noop()
	}

	if err := validateInputs(opts); err != nil {
		return nil, err
	}
	if err := validateOutputTarget(opts); err != nil {
		return nil, err
	}
	if err := validateWorkspace(opts); err != nil {
		return nil, err
	}

	doc, cfgPath, err := config.LoadOrEmpty(opts.RepoRoot, opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cfgPath == "" {
		log.Info("No %s found. Using caller defaults only.", config.ConfigFileName)
	} else {
		log.Info("Found %s. Preparing environment '%s'.", filepath.Base(cfgPath), opts.Environment)
	}

	if err := checkEnvironment(doc, opts.Environment); err != nil {
		return nil, err
	}

	workDir, err := resolveWorkingDir(doc, opts)
	if err != nil {
		return nil, err
	}
	log.Debug("working directory resolved to %q", workDir)

	resolver := paths.NewResolver(opts.RepoRoot, workDir, !opts.NoRepoFallback, log)

	initArgs, err := assemblePhase(doc, resolver, opts.Environment,
		config.CategoryBackendConfigs, backendConfigPrefix, config.CategoryInitArgs)
	if err != nil {
		return nil, err
	}

	planArgs, err := assemblePhase(doc, resolver, opts.Environment,
		config.CategoryVarFiles, varFilePrefix, config.CategoryPlanArgs)
	if err != nil {
		return nil, err
	}

	extra, err := dynflags.Sanitize(opts.DynamicFlags, log)
	if err != nil {
		return nil, err
	}
	planArgs = append(planArgs, extra...)

	applyArgs, err := doc.Args(opts.Environment, config.CategoryApplyArgs)
	if err != nil {
		return nil, err
	}

	log.Debug("assembled %d init, %d plan, %d apply arguments",
		len(initArgs), len(planArgs), len(applyArgs))

	return &Result{
		Environment: opts.Environment,
		WorkingDir:  workDir,
		ConfigPath:  cfgPath,
		InitArgs:    initArgs,
		PlanArgs:    planArgs,
		ApplyArgs:   applyArgs,
	}, nil
}

// validateInputs fails fast on malformed invocation before the pipeline
// touches the repository.
func validateInputs(opts Options) error {
	if strings.TrimSpace(opts.DefaultWorkingDir) == "" {
		return errors.New(errors.ErrUsage,
			"Default working directory must not be blank",
			"Pass the directory terraform runs in, or '.' for the repository root")
	}
	if strings.TrimSpace(opts.Environment) == "" {
		return errors.New(errors.ErrUsage,
			"Environment name must not be blank",
			"Pass the target environment, for example staging or production")
	}
	return nil
}

// validateOutputTarget checks the output channel before any work happens,
// so a misconfigured runner never gets a partial argument set.
func validateOutputTarget(opts Options) error {
	if opts.OutputPath == "" {
		return errors.New(errors.ErrEnv,
			"No output file configured",
			"Set $GITHUB_OUTPUT or pass --output-file")
	}
	if parent := filepath.Dir(opts.OutputPath); !dirExists(parent) {
		return errors.New(errors.ErrEnv,
			fmt.Sprintf("Output file directory does not exist: %s", parent),
			"Check that $GITHUB_OUTPUT points into the runner workspace")
	}
	return nil
}

// validateWorkspace checks the repository root.
func validateWorkspace(opts Options) error {
	if opts.RepoRoot == "" || !dirExists(opts.RepoRoot) {
		return errors.New(errors.ErrEnv,
			fmt.Sprintf("Repository root does not exist: %s", opts.RepoRoot),
			"Set $GITHUB_WORKSPACE or pass --repo-root")
	}
	return nil
}

// checkEnvironment enforces that the target is either the production
// sentinel or declared in the document.
func checkEnvironment(doc *config.Document, env string) error {
	if env == ProductionEnv || doc.HasEnvironment(env) {
		return nil
	}
	return errors.New(errors.ErrEnvironment,
		fmt.Sprintf("Environment '%s' is not configured", env),
		fmt.Sprintf("Configured environments: %s. '%s' is always valid; declare others under environments: in %s",
			util.JoinOrNone(doc.EnvironmentNames()), ProductionEnv, config.ConfigFileName))
}

// assemblePhase builds one phase list: the resolved, prefixed entries of the
// paths category first, then the args category verbatim.
func assemblePhase(doc *config.Document, resolver *paths.Resolver, env, pathCategory, prefix, argCategory string) ([]string, error) {
	declared, err := doc.Paths(env, pathCategory)
	if err != nil {
		return nil, err
	}
	resolved, err := resolver.ResolveAll(declared, env)
	if err != nil {
		return nil, err
	}

	phase := make([]string, 0, len(resolved))
	for _, p := range resolved {
		phase = append(phase, prefix+p)
	}

	args, err := doc.Args(env, argCategory)
	if err != nil {
		return nil, err
	}
	return append(phase, args...), nil
}

// dirExists reports whether path names an existing directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
