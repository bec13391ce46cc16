// Package gha is the GitHub Actions integration surface: a Logger that speaks
// workflow commands on the job log and a writer for the step output file.
// Nothing in this package reads the process environment; callers decide where
// output goes and whether debug is on.
package gha

import (
	"fmt"
	"io"
	"strings"
)

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
// Group/EndGroup delimit a foldable section on the job log.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	Group(title string)
	EndGroup()
}

// workflowLogger implements Logger using workflow command markers
// (::debug::, ::warning::, ::error::, ::group::). Info lines are plain.
type workflowLogger struct {
	out   io.Writer
	debug bool
}

// NewWorkflowLogger creates a logger that writes workflow commands to out.
// Debug messages are emitted only when debug is true.
func NewWorkflowLogger(out io.Writer, debug bool) Logger {
	return &workflowLogger{out: out, debug: debug}
}

func (l *workflowLogger) Debug(format string, args ...interface{}) {
	if l.debug {
		fmt.Fprintf(l.out, "::debug::%s\n", escapeData(fmt.Sprintf(format, args...)))
	}
}

func (l *workflowLogger) Info(format string, args ...interface{}) {
	fmt.Fprintf(l.out, format+"\n", args...)
}

func (l *workflowLogger) Warn(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "::warning::%s\n", escapeData(fmt.Sprintf(format, args...)))
}

func (l *workflowLogger) Error(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "::error::%s\n", escapeData(fmt.Sprintf(format, args...)))
}

func (l *workflowLogger) Group(title string) {
	fmt.Fprintf(l.out, "::group::%s\n", escapeData(title))
}

func (l *workflowLogger) EndGroup() {
	fmt.Fprint(l.out, "::endgroup::\n")
}

// escapeData escapes message data for workflow commands. The runner decodes
// %25, %0D and %0A, so a multi-line message survives as a single command.
func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}

// noopLogger implements Logger but discards all messages.
// Useful for testing or when logging is not desired.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}
func (l *noopLogger) Group(title string)                       {}
func (l *noopLogger) EndGroup()                                {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for testing.
// Exported for use in test assertions.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
// Useful for testing that code logs expected messages.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "debug", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Info(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "info", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Warn(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "warn", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Error(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "error", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Group(title string) {
	l.Messages = append(l.Messages, LogMessage{Level: "group", Message: title})
}

func (l *BufferLogger) EndGroup() {
	l.Messages = append(l.Messages, LogMessage{Level: "endgroup"})
}

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.Messages = l.Messages[:0]
}
