package deploy

import (
	"github.com/tfprep/tfprep/internal/config"
	"github.com/tfprep/tfprep/internal/gha"
	"github.com/tfprep/tfprep/internal/paths"
)

// Check runs the resolution pipeline for opts.Environment without producing
// outputs: environment membership, the working directory, and every declared
// path must hold up. No output channel is required.
func Check(opts Options) error {
	log := opts.Log
	if log == nil {
		log = gha.Noop()
	}

	if err := validateInputs(opts); err != nil {
		return err
	}
	if err := validateWorkspace(opts); err != nil {
		return err
	}

	doc, _, err := config.LoadOrEmpty(opts.RepoRoot, opts.ConfigPath)
	if err != nil {
		return err
	}

	if err := checkEnvironment(doc, opts.Environment); err != nil {
		return err
	}

	workDir, err := resolveWorkingDir(doc, opts)
	if err != nil {
		return err
	}

	resolver := paths.NewResolver(opts.RepoRoot, workDir, !opts.NoRepoFallback, log)
	for _, category := range config.PathCategories {
		declared, err := doc.Paths(opts.Environment, category)
		if err != nil {
			return err
		}
		if _, err := resolver.ResolveAll(declared, opts.Environment); err != nil {
			return err
		}
	}
	return nil
}
