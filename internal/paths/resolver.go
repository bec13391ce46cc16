// Package paths maps declared file paths to the values the infrastructure
// tool will receive once it runs inside the working directory.
package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tfprep/tfprep/internal/errors"
	"github.com/tfprep/tfprep/internal/gha"
)

// Resolver resolves declared paths against the working tree.
//
// Declared paths are tried in three tiers: absolute, relative to the working
// directory, then relative to the repository root. A repo-root hit is
// re-expressed relative to the working directory so the tool can open it
// after changing into that directory.
type Resolver struct {
	// RepoRoot is the absolute repository root.
	RepoRoot string

	// WorkDir is the normalized working directory relative to RepoRoot;
	// empty means the root itself.
	WorkDir string

	// RepoFallback enables the repository-root tier.
	RepoFallback bool

	log gha.Logger
}

// NewResolver creates a resolver. A nil logger discards diagnostics.
func NewResolver(repoRoot, workDir string, repoFallback bool, log gha.Logger) *Resolver {
	if log == nil {
		log = gha.Noop()
	}
	return &Resolver{
		RepoRoot:     repoRoot,
		WorkDir:      workDir,
		RepoFallback: repoFallback,
		log:          log,
	}
}

// Resolve maps one declared path to its final form, or fails with a PATH
// error when no tier locates it. The environment name only flavors the
// error message.
func (r *Resolver) Resolve(declared, environment string) (string, error) {
	if filepath.IsAbs(declared) {
		if !fileExists(declared) {
			return "", r.missing(declared, environment)
		}
		return declared, nil
	}

	// Relative to the working directory: already the form the tool wants,
	// so the declared value passes through untouched.
	workdirAbs := filepath.Join(r.RepoRoot, r.WorkDir)
	if fileExists(filepath.Join(workdirAbs, declared)) {
		return declared, nil
	}

	if r.RepoFallback {
		rootCandidate := filepath.Join(r.RepoRoot, declared)
		if fileExists(rootCandidate) {
			rel, err := filepath.Rel(workdirAbs, rootCandidate)
			if err != nil {
				// No relative form exists (for example across
				// volumes); the absolute path still works.
				r.log.Warn("cannot express %s relative to %s, using absolute path", declared, r.WorkDir)
				return rootCandidate, nil
			}
			r.log.Debug("resolved %s via repository root as %s", declared, rel)
			return rel, nil
		}
	}

	return "", r.missing(declared, environment)
}

// ResolveAll resolves every declared path in order.
func (r *Resolver) ResolveAll(declared []string, environment string) ([]string, error) {
	resolved := make([]string, 0, len(declared))
	for _, p := range declared {
		rp, err := r.Resolve(p, environment)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, rp)
	}
	return resolved, nil
}

func (r *Resolver) missing(declared, environment string) error {
	tried := r.searchBase()
	if r.RepoFallback && !filepath.IsAbs(declared) && r.WorkDir != "" {
		tried += " and the repository root"
	}
	return errors.New(errors.ErrPath,
		fmt.Sprintf("Declared path '%s' not found for environment '%s'", declared, environment),
		fmt.Sprintf("Looked under %s; check the path in your configuration", tried))
}

func (r *Resolver) searchBase() string {
	if r.WorkDir == "" {
		return "the repository root"
	}
	return fmt.Sprintf("working directory '%s'", r.WorkDir)
}

// fileExists reports whether path names an existing regular file.
// Directories do not satisfy a declared path.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
