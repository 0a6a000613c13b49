package changelog

import "fmt"

// Heading represents one release heading line of the form
// "## X.Y.Z - YYYY-MM-DD". Version is the bare semantic version triple
// and Date the ISO-8601 date string, both exactly as written in the file.
type Heading struct {
	Version string `yaml:"version"`
	Date    string `yaml:"date"`
}

// String returns the heading in its canonical markdown form.
func (h Heading) String() string {
	return fmt.Sprintf("## %s - %s", h.Version, h.Date)
}

// Versions returns the version identifiers of all release headings in the
// document, in the order they appear (newest first for a valid document).
func Versions(content string) []string {
	headings := Headings(content)
	versions := make([]string, len(headings))
	for i, h := range headings {
		versions[i] = h.Version
	}
	return versions
}
