package changelog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// FormatOptions controls the terminal output formatting.
type FormatOptions struct {
	Plain    bool // Disable colors
	MaxWidth int  // Maximum line width (0 = auto-detect)
}

// FormatHeadings writes release headings to the writer, one per line,
// version first and date alongside. Plain mode disables colors for
// script-friendly output.
func FormatHeadings(headings []Heading, w io.Writer, opts FormatOptions) error {
	if opts.Plain {
		for _, h := range headings {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", h.Version, h.Date); err != nil {
				return err
			}
		}
		return nil
	}

	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	for _, h := range headings {
		if _, err := fmt.Fprintf(w, "%s  %s\n", bold("v"+h.Version), dim(h.Date)); err != nil {
			return err
		}
	}
	return nil
}

// FormatNotes writes a release notes body under a version header.
func FormatNotes(version, notes string, w io.Writer, opts FormatOptions) error {
	width := resolveWidth(opts.MaxWidth)

	header := "v" + version
	if !opts.Plain {
		header = color.New(color.Bold).Sprint(header)
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n", header, rule(width, opts)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, notes)
	return err
}

// rule builds a horizontal separator sized to the terminal.
func rule(width int, opts FormatOptions) string {
	if width > 60 {
		width = 60
	}
	line := strings.Repeat("─", width)
	if opts.Plain {
		return line
	}
	return color.New(color.Faint).Sprint(line)
}

// resolveWidth determines the output width, auto-detecting from the
// terminal when unset and falling back to 80 columns.
func resolveWidth(maxWidth int) int {
	if maxWidth > 0 {
		return maxWidth
	}
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}
