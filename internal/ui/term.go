package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Success marks: scheduled, created, deleted
	colorOK = color.New(color.FgGreen)

	// Failure marks: not found, unschedulable
	colorFail = color.New(color.FgRed)

	// Placements and time ranges
	colorSlot = color.New(color.FgBlue)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Recurring markers
	colorRecurring = color.New(color.FgCyan)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatOK formats a success mark or message.
func formatOK(s string) string {
	return colorOK.Sprint(s)
}

// formatFail formats a failure mark or message.
func formatFail(s string) string {
	return colorFail.Sprint(s)
}

// formatSlot formats a placement or time range.
func formatSlot(s string) string {
	return colorSlot.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatRecurring formats recurring-task markers.
func formatRecurring(s string) string {
	return colorRecurring.Sprint(s)
}
