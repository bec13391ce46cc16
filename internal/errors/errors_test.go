package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	// Verify all expected error codes exist
	codes := []string{
		ErrUsage,
		ErrEnv,
		ErrConfig,
		ErrConfigType,
		ErrEnvironment,
		ErrWorkdir,
		ErrPath,
		ErrOutput,
	}

	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
	}

	// Verify codes are unique
	seen := make(map[string]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "usage error",
			code:       ErrUsage,
			message:    "Expected 3 arguments, got 1",
			suggestion: "Pass <default-working-dir> <environment> <dynamic-flags>",
		},
		{
			name:       "parse error",
			code:       ErrConfig,
			message:    "Failed to parse .tfprep.yaml",
			suggestion: "Check the document for YAML syntax errors",
		},
		{
			name:       "unknown environment",
			code:       ErrEnvironment,
			message:    "Environment 'ghost' is not configured",
			suggestion: "Add it under environments: or use 'production'",
		},
		{
			name:       "missing file",
			code:       ErrPath,
			message:    "Declared path 'missing.tfvars' not found",
			suggestion: "Check the path in your configuration",
		},
		{
			name:       "output error",
			code:       ErrOutput,
			message:    "Cannot append to output file",
			suggestion: "Check that the parent directory exists and is writable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorInterface(t *testing.T) {
	err := New(ErrConfig, "test message", "test suggestion")

	// Should implement error interface
	var _ error = err

	// Error() should return formatted message
	errStr := err.Error()
	assert.NotEmpty(t, errStr)
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name: "basic error formatting",
			err:  New(ErrConfig, "Invalid configuration", "Check .tfprep.yaml syntax"),
			expectedParts: []string{
				"Invalid configuration",
				"Check .tfprep.yaml syntax",
			},
		},
		{
			name: "error with failure symbol",
			err:  New(ErrEnvironment, "Environment 'qa' is not configured", "Add it under environments:"),
			expectedParts: []string{
				"✗",
				"Environment 'qa' is not configured",
			},
		},
		{
			name: "error without suggestion",
			err:  New(ErrOutput, "Write failed", ""),
			expectedParts: []string{
				"Write failed",
			},
			notExpected: []string{
				"suggestion", // Should not include suggestion header if empty
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()

			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part, "output should contain %q", part)
			}

			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part, "output should not contain %q", part)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("yaml: line 3: mapping values are not allowed")
	wrapped := Wrap(cause, "Failed to parse configuration")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrConfig, wrapped.Code, "Wrap should default to ErrConfig code")
	assert.Equal(t, "Failed to parse configuration", wrapped.Message)
	assert.Equal(t, cause, wrapped.Cause)
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("file not found")
	wrapped := WrapWithCode(cause, ErrEnv, "Output file is not writable", "Check $GITHUB_OUTPUT")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrEnv, wrapped.Code)
	assert.Equal(t, "Output file is not writable", wrapped.Message)
	assert.Equal(t, "Check $GITHUB_OUTPUT", wrapped.Suggestion)
	assert.Equal(t, cause, wrapped.Cause)
}

func TestErrorWrappingPreservesCause(t *testing.T) {
	original := errors.New("original error")
	wrapped := WrapWithCode(original, ErrOutput, "Emit failed", "")

	// Should preserve the original cause
	assert.Equal(t, original, wrapped.Cause)

	// Error message should include cause information
	errStr := wrapped.Error()
	assert.Contains(t, errStr, "original error")
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	wrapped := WrapWithCode(cause, ErrWorkdir, "Working directory missing", "")

	// Should implement Unwrap for errors.Is/errors.As
	unwrapped := wrapped.Unwrap()
	assert.Equal(t, cause, unwrapped)
}

func TestErrorsIs(t *testing.T) {
	cause := errors.New("specific error")
	wrapped := WrapWithCode(cause, ErrPath, "Path error", "")

	// errors.Is should work with wrapped errors
	assert.True(t, errors.Is(wrapped, cause))
}

func TestErrorsAs(t *testing.T) {
	wrapped := New(ErrConfig, "Config error", "Fix config")

	var terr *Error
	ok := errors.As(wrapped, &terr)

	assert.True(t, ok)
	assert.Equal(t, ErrConfig, terr.Code)
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "Config error", "")

	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrUsage))
	assert.False(t, IsCode(errors.New("standard error"), ErrConfig))
	assert.False(t, IsCode(nil, ErrConfig))
}

func TestErrorMessageStructure(t *testing.T) {
	// ✗ <What failed>
	//
	//   <Why it failed - technical details>
	//
	//   <How to fix it - actionable steps>

	err := WrapWithCode(
		errors.New("open /missing/dir: no such file or directory"),
		ErrOutput,
		"Cannot open output file",
		"Check $GITHUB_OUTPUT",
	)

	output := err.Error()
	lines := strings.Split(output, "\n")

	// First line should have failure symbol and main message
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[0]), "✗"), "First line should start with failure symbol")
	assert.Contains(t, lines[0], "Cannot open output file")
}

func TestHeadline(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "plain error",
			err:  errors.New("plain failure"),
			want: "plain failure",
		},
		{
			name: "structured error without cause",
			err:  New(ErrEnvironment, "Environment 'qa' is not configured", "Add it"),
			want: "Environment 'qa' is not configured",
		},
		{
			name: "structured error with cause",
			err:  WrapWithCode(errors.New("permission denied"), ErrOutput, "Cannot append to output file", ""),
			want: "Cannot append to output file: permission denied",
		},
		{
			name: "multi-line cause collapses to one line",
			err:  WrapWithCode(errors.New("yaml: line 2:\nbad indent"), ErrConfig, "Failed to parse configuration", ""),
			want: "Failed to parse configuration: yaml: line 2: bad indent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Headline(tt.err)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "\n")
		})
	}
}
