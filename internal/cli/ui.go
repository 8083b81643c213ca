package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorSuccess = lipgloss.Color("42")  // green
	colorError   = lipgloss.Color("196") // red
	colorWarning = lipgloss.Color("214") // orange
	colorInfo    = lipgloss.Color("39")  // blue
	colorMuted   = lipgloss.Color("245") // gray
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleSuccess = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	styleWarning = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	styleInfo    = lipgloss.NewStyle().Foreground(colorInfo)
	styleMuted   = lipgloss.NewStyle().Foreground(colorMuted)
	styleLabel   = lipgloss.NewStyle().Bold(true)
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message with a green checkmark.
func printSuccess(msg string, args ...any) {
	fmt.Printf("%s %s\n", styleSuccess.Render("✓"), fmt.Sprintf(msg, args...))
}

// printError prints an error message with a red cross.
func printError(msg string, args ...any) {
	fmt.Printf("%s %s\n", styleError.Render("✗"), fmt.Sprintf(msg, args...))
}

// printWarning prints a warning message with an orange exclamation mark.
func printWarning(msg string, args ...any) {
	fmt.Printf("%s %s\n", styleWarning.Render("!"), fmt.Sprintf(msg, args...))
}

// printInfo prints an informational message with a blue chevron.
func printInfo(msg string, args ...any) {
	fmt.Printf("%s %s\n", styleInfo.Render("›"), fmt.Sprintf(msg, args...))
}

// printDetail prints an indented, muted detail line under a status message.
func printDetail(msg string, args ...any) {
	fmt.Printf("  %s\n", styleMuted.Render(fmt.Sprintf(msg, args...)))
}

// printKeyValue prints an aligned "key: value" pair with a bold key.
func printKeyValue(key, value string) {
	fmt.Printf("  %s %s\n", styleLabel.Render(key+":"), value)
}

// printNewline prints an empty line for visual separation.
func printNewline() {
	fmt.Println()
}
