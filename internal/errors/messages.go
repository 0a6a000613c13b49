package errors

import "fmt"

// Common error messages for the chlog CLI.
// These templates ensure consistent, actionable error messages.

// MissingNotesOutput creates an error for a missing --release-notes-output argument.
func MissingNotesOutput() *CLIError {
	return NewArgumentErrorWithUsage(
		"--release-notes-output is required with --release-notes-version",
		"chlog --release-notes-version <X.Y.Z> --release-notes-output <path>",
		"Provide the path the extracted notes should be written to",
		"Example: chlog --release-notes-version 1.2.0 --release-notes-output notes.md",
	)
}

// ChangelogNotFound creates an error for a missing changelog file.
func ChangelogNotFound(path string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("changelog file not found: %s", path),
		"Check that you're in the project root",
		"Or point at the file explicitly: chlog --file <path>",
	)
}

// NoRepository creates an error when tag-check runs outside a git repository.
func NoRepository(dir string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("no git repository found at or above %s", dir),
		"Run tag-check from inside the repository that owns the changelog",
	)
}
