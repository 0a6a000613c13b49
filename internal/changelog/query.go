package changelog

import (
	"fmt"
	"regexp"
	"strings"
)

// NotFoundError is returned when release notes are requested for a version
// that has no heading in the document.
type NotFoundError struct {
	Version           string
	AvailableVersions []string
}

func (e *NotFoundError) Error() string {
	if len(e.AvailableVersions) == 0 {
		return fmt.Sprintf("no changelog entry for %s", e.Version)
	}
	return fmt.Sprintf("no changelog entry for %s (available: %s)",
		e.Version, strings.Join(e.AvailableVersions, ", "))
}

// ExtractNotes returns the release notes body for the given version: all text
// strictly between that version's heading line and the next release heading,
// or end of document, trimmed of surrounding whitespace. An empty body is
// replaced with the placeholder "Release v<version>".
//
// The lookup does not re-run full validation; callers are expected to call
// Validate first. Returns NotFoundError if no heading carries the version.
func ExtractNotes(content, version string) (string, error) {
	pattern, err := regexp.Compile(`(?m)^##\s+` + regexp.QuoteMeta(version) + `\s+-\s+\d{4}-\d{2}-\d{2}\s*$`)
	if err != nil {
		return "", fmt.Errorf("compiling heading pattern for %q: %w", version, err)
	}

	loc := pattern.FindStringIndex(content)
	if loc == nil {
		return "", &NotFoundError{
			Version:           version,
			AvailableVersions: Versions(content),
		}
	}

	body := content[loc[1]:]
	if next := headingPattern.FindStringIndex(body); next != nil {
		body = body[:next[0]]
	}

	notes := strings.TrimSpace(body)
	if notes == "" {
		notes = "Release v" + version
	}
	return notes, nil
}
