package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color palette using ANSI color codes for terminal compatibility.
// GitHub Actions log viewers and plain terminals both render these.

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// Color modes accepted by ConfigureColors.
const (
	ColorModeAuto   = "auto"
	ColorModeAlways = "always"
	ColorModeNever  = "never"
)

// SuccessStyle returns the style for successful operations.
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorSuccess)
}

// ErrorStyle returns the style for failures.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorError)
}

// WarningStyle returns the style for warnings and skipped items.
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorWarning)
}

// InfoStyle returns the style for informational text.
func InfoStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorInfo)
}

// MutedStyle returns the style for secondary text.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// DisableColors switches all styled output to monochrome.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ConfigureColors applies the requested color mode: "always" forces ANSI
// color, "never" strips it, and "auto" keeps color only when stdout is a
// terminal. CI log files get plain text under "auto".
func ConfigureColors(mode string) error {
	switch mode {
	case ColorModeAlways:
		lipgloss.SetColorProfile(termenv.ANSI)
	case ColorModeNever:
		DisableColors()
	case ColorModeAuto, "":
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			DisableColors()
		}
	default:
		return fmt.Errorf("unknown color mode %q (use auto, always, or never)", mode)
	}
	return nil
}
