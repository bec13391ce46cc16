package gha

import (
	"fmt"
	"os"
	"strings"

	nanoid "github.com/matoous/go-nanoid/v2"

	"github.com/tfprep/tfprep/internal/errors"
)

// delimiterAlphabet generates heredoc delimiters for multi-line values.
const delimiterAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// OutputWriter appends key=value lines to a step output file, following the
// runner's file-command format: single-line values as key=value, multi-line
// values heredoc-style with a random delimiter.
type OutputWriter struct {
	path string
}

// NewOutputWriter creates a writer targeting the given output file.
func NewOutputWriter(path string) *OutputWriter {
	return &OutputWriter{path: path}
}

// Path returns the output file path.
func (w *OutputWriter) Path() string {
	return w.path
}

// Set appends one output entry. The file is opened in append mode per entry
// so a failure mid-run leaves earlier entries intact, matching how the
// runner consumes the file.
func (w *OutputWriter) Set(key, value string) error {
	line, err := formatEntry(key, value)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrOutput,
			fmt.Sprintf("Cannot open output file %s", w.path),
			"Check that $GITHUB_OUTPUT points at a writable location")
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return errors.WrapWithCode(err, errors.ErrOutput,
			fmt.Sprintf("Cannot append to output file %s", w.path),
			"Check free space and permissions on the runner workspace")
	}
	return nil
}

// formatEntry renders a single file-command entry, choosing between the
// key=value and heredoc forms.
func formatEntry(key, value string) (string, error) {
	if key == "" || strings.ContainsAny(key, "=\r\n") {
		return "", errors.New(errors.ErrOutput,
			fmt.Sprintf("Invalid output key %q", key),
			"Output keys cannot be empty or contain '=' or newlines")
	}

	if !strings.ContainsAny(value, "\r\n") {
		return fmt.Sprintf("%s=%s\n", key, value), nil
	}

	id, err := nanoid.Generate(delimiterAlphabet, 21)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrOutput,
			"Cannot generate output delimiter", "")
	}
	delimiter := "ghadelimiter_" + id
	if strings.Contains(value, delimiter) {
		return "", errors.New(errors.ErrOutput,
			fmt.Sprintf("Output value for %q collides with delimiter", key), "")
	}
	return fmt.Sprintf("%s<<%s\n%s\n%s\n", key, delimiter, value, delimiter), nil
}
