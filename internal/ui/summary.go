package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RunSummary holds the resolved values for one environment, for terminal
// display. This mirrors deploy.Result to avoid circular imports.
type RunSummary struct {
	Environment string
	WorkingDir  string
	ConfigPath  string
	InitArgs    []string
	PlanArgs    []string
	ApplyArgs   []string
}

// SummaryRenderer formats run summaries for terminal display.
type SummaryRenderer struct {
	headerStyle lipgloss.Style
	labelStyle  lipgloss.Style
	mutedStyle  lipgloss.Style
}

// NewSummaryRenderer creates a new summary renderer with default styles.
func NewSummaryRenderer() *SummaryRenderer {
	return &SummaryRenderer{
		headerStyle: lipgloss.NewStyle().Foreground(ColorSuccess),
		labelStyle:  lipgloss.NewStyle().Foreground(ColorInfo),
		mutedStyle:  lipgloss.NewStyle().Foreground(ColorMuted),
	}
}

// RenderSummary generates a formatted summary of the prepared run.
func RenderSummary(summary *RunSummary) string {
	r := NewSummaryRenderer()
	return r.Render(summary)
}

// Render generates the formatted summary string.
func (r *SummaryRenderer) Render(summary *RunSummary) string {
	if summary == nil {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(r.headerStyle.Render(
		fmt.Sprintf("%s Prepared environment '%s'", SymbolSuccess, summary.Environment)))
	sb.WriteString("\n")

	workDir := summary.WorkingDir
	if workDir == "" {
		workDir = "." // repository root
	}
	r.line(&sb, "working directory", workDir)

	configName := summary.ConfigPath
	if configName == "" {
		configName = "(none)"
	}
	r.line(&sb, "configuration", configName)

	r.argsLine(&sb, "init", summary.InitArgs)
	r.argsLine(&sb, "plan", summary.PlanArgs)
	r.argsLine(&sb, "apply", summary.ApplyArgs)

	return sb.String()
}

// line writes one aligned label/value row.
func (r *SummaryRenderer) line(sb *strings.Builder, label, value string) {
	sb.WriteString("  ")
	sb.WriteString(r.labelStyle.Render(fmt.Sprintf("%-18s", label)))
	sb.WriteString(value)
	sb.WriteString("\n")
}

// argsLine writes one phase's argument list, muted when empty.
func (r *SummaryRenderer) argsLine(sb *strings.Builder, phase string, args []string) {
	if len(args) == 0 {
		sb.WriteString("  ")
		sb.WriteString(r.labelStyle.Render(fmt.Sprintf("%-18s", phase+" args")))
		sb.WriteString(r.mutedStyle.Render("(none)"))
		sb.WriteString("\n")
		return
	}
	r.line(sb, phase+" args", strings.Join(args, " "))
}
