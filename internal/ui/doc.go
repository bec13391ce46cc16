// Package ui provides styled terminal output for tfprep's CLI.
//
// The package renders run summaries and environment listings using the
// Lip Gloss library for consistent styling across all commands.
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (yellow) - Warnings and dropped flags
//	ColorInfo      (cyan)   - Labels and informational text
//	ColorMuted     (gray)   - Secondary text, empty values
//	ColorSecondary (blue)   - Auxiliary highlights
//
// Use ConfigureColors to honor the --color flag: "auto" keeps color only
// for terminal stdout, "always" forces it, "never" strips it.
//
// # Symbols
//
// Unicode symbols provide visual status indicators:
//
//	SymbolSuccess  (checkmark)  - Operation completed successfully
//	SymbolFail     (X)          - Operation failed
//	SymbolWarning  (triangle)   - Non-fatal problem worth reading
//
// # Run Summary
//
// RenderSummary formats the resolved working directory and per-phase
// argument lists after a successful prepare:
//
//	fmt.Print(ui.RenderSummary(&ui.RunSummary{
//		Environment: "staging",
//		WorkingDir:  "infra/",
//		PlanArgs:    []string{"-var-file=staging.tfvars"},
//	}))
package ui
