package deploy

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tfprep/tfprep/internal/config"
	"github.com/tfprep/tfprep/internal/errors"
)

// resolveWorkingDir picks the working directory for the target environment,
// preferring the document's declaration over the caller default, then
// validates and normalizes it.
func resolveWorkingDir(doc *config.Document, opts Options) (string, error) {
	wd, declared := doc.WorkingDirectory(opts.Environment)
	if !declared {
		wd = opts.DefaultWorkingDir
	}

	if strings.TrimSpace(wd) == "" {
		return "", errors.New(errors.ErrWorkdir,
			fmt.Sprintf("Working directory for environment '%s' is blank", opts.Environment),
			"Set working-directory on the environment, or remove it to use the caller default")
	}

	normalized := NormalizeWorkingDir(wd)

	if !opts.SkipWorkdirCheck {
		abs := normalized
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(opts.RepoRoot, normalized)
		}
		if !dirExists(abs) {
			return "", errors.New(errors.ErrWorkdir,
				fmt.Sprintf("Working directory '%s' does not exist for environment '%s'", displayDir(normalized), opts.Environment),
				"Create the directory, fix working-directory in the configuration, or pass --skip-workdir-check")
		}
	}

	return normalized, nil
}

// NormalizeWorkingDir strips a leading "./" and maps "." to the empty
// string, which means the repository root. Anything else, including a
// trailing slash, stays as declared.
func NormalizeWorkingDir(wd string) string {
	wd = strings.TrimSpace(wd)
	wd = strings.TrimPrefix(wd, "./")
	if wd == "." {
		return ""
	}
	return wd
}

// displayDir renders the normalized form for messages; the repository root
// has no visible name of its own.
func displayDir(normalized string) string {
	if normalized == "" {
		return "."
	}
	return normalized
}
