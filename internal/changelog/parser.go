package changelog

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// headingPattern matches a release heading line: "## X.Y.Z - YYYY-MM-DD".
// Anchored per line; trailing whitespace is tolerated, anything else on the
// line disqualifies it. Pre-release and build metadata are deliberately not
// matched.
var headingPattern = regexp.MustCompile(`(?m)^##\s+(\d+\.\d+\.\d+)\s+-\s+(\d{4}-\d{2}-\d{2})\s*$`)

// titleLine is the required first line of every changelog document.
const titleLine = "# Changelog"

// dateLayout is the ISO-8601 calendar date layout accepted in headings.
const dateLayout = "2006-01-02"

// FormatError reports a structural problem with the document itself:
// a missing title line or a document with no release headings at all.
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}

// DuplicateVersionError reports a version that appears under more than
// one release heading.
type DuplicateVersionError struct {
	Version string
}

func (e *DuplicateVersionError) Error() string {
	return fmt.Sprintf("duplicate changelog version heading found: %s", e.Version)
}

// InvalidDateError reports a heading whose date string is not a valid
// calendar date (e.g. 2024-02-30).
type InvalidDateError struct {
	Version string
	Date    string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid changelog date for %s: %s", e.Version, e.Date)
}

// OrderingError reports a heading whose version is not strictly less than
// the heading above it.
type OrderingError struct {
	Version  string
	Previous string
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf("changelog versions must be strictly descending (newest first): %s appears after %s", e.Version, e.Previous)
}

// Load reads a changelog file from the given path and returns its content.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading changelog file: %w", err)
	}
	return string(data), nil
}

// Headings extracts every release heading from the document, in the order
// they appear. Pure function of the input text; lines that do not match the
// heading pattern exactly are ignored.
func Headings(content string) []Heading {
	matches := headingPattern.FindAllStringSubmatch(content, -1)
	headings := make([]Heading, 0, len(matches))
	for _, m := range matches {
		headings = append(headings, Heading{Version: m[1], Date: m[2]})
	}
	return headings
}

// Validate checks the document against all structural rules and returns the
// latest (topmost) version on success. Checks run in order and stop at the
// first failure: title line, heading presence, then per heading duplicate
// version, date validity, and strict descent relative to the heading above.
//
// A valid document's first heading necessarily carries the maximum version,
// so the returned string is also the newest release.
func Validate(content string) (string, error) {
	if !strings.HasPrefix(content, titleLine) {
		return "", &FormatError{Message: fmt.Sprintf("changelog must start with '%s'", titleLine)}
	}

	headings := Headings(content)
	if len(headings) == 0 {
		return "", &FormatError{Message: "no release headings found; expected '## X.Y.Z - YYYY-MM-DD'"}
	}

	seen := make(map[string]bool, len(headings))
	previous := ""
	for _, h := range headings {
		if seen[h.Version] {
			return "", &DuplicateVersionError{Version: h.Version}
		}
		seen[h.Version] = true

		if _, err := time.Parse(dateLayout, h.Date); err != nil {
			return "", &InvalidDateError{Version: h.Version, Date: h.Date}
		}

		// Comparing only against the immediate predecessor is sufficient:
		// strict descent is transitive.
		if previous != "" && compareVersions(h.Version, previous) >= 0 {
			return "", &OrderingError{Version: h.Version, Previous: previous}
		}
		previous = h.Version
	}

	return headings[0].Version, nil
}

// compareVersions orders two bare X.Y.Z versions by their numeric components.
// Leading zeros carry no weight, so 1.02.0 and 1.2.0 compare equal. Both
// inputs must match the heading pattern, which guarantees three all-digit
// components.
func compareVersions(a, b string) int {
	as := strings.SplitN(a, ".", 3)
	bs := strings.SplitN(b, ".", 3)
	for i := 0; i < 3; i++ {
		ai, _ := strconv.Atoi(as[i])
		bi, _ := strconv.Atoi(bs[i])
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		}
	}
	return 0
}

// Latest validates the document and returns the newest release version.
// It is a convenience wrapper around Validate.
func Latest(content string) (string, error) {
	return Validate(content)
}

// IsValidationError reports whether err is one of the structural validation
// error types produced by Validate.
func IsValidationError(err error) bool {
	var formatErr *FormatError
	var dupErr *DuplicateVersionError
	var dateErr *InvalidDateError
	var orderErr *OrderingError
	return errors.As(err, &formatErr) ||
		errors.As(err, &dupErr) ||
		errors.As(err, &dateErr) ||
		errors.As(err, &orderErr)
}
