package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Operation completed successfully
	SymbolFail    = "✗" // Operation failed
	SymbolWarning = "⚠" // Non-fatal problem worth reading
	SymbolPending = "○" // Item not yet processed
	SymbolSkipped = "⊘" // Item skipped
)
