// Package output provides terminal output formatting utilities for the chlog CLI.
// This package is designed to have minimal dependencies to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// PrintSuccess prints a colored success message with a checkmark.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), message)
}

// PrintFailure prints a colored failure message with a cross.
func PrintFailure(out io.Writer, message string) {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", red("✗"), message)
}

// PrintWatchEvent prints a timestamped re-validation line for watch mode.
// Uses a dim prefix so consecutive events scan easily.
func PrintWatchEvent(out io.Writer, timestamp, message string) {
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", dim(timestamp), message)
}
