package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractNotes(t *testing.T) {
	tests := map[string]struct {
		content string
		version string
		want    string
	}{
		"notes for topmost version": {
			content: validChangelog,
			version: "2.0.0",
			want:    "Breaking change.",
		},
		"notes for last version run to end of document": {
			content: validChangelog,
			version: "1.0.0",
			want:    "Initial release.",
		},
		"multi-line body preserved verbatim": {
			content: "# Changelog\n\n## 2.0.0 - 2024-06-01\n" +
				"- Added foo\n- Removed bar\n\nSee docs.\n\n## 1.0.0 - 2024-01-01\nInitial.\n",
			version: "2.0.0",
			want:    "- Added foo\n- Removed bar\n\nSee docs.",
		},
		"empty body substitutes placeholder": {
			content: "# Changelog\n\n## 2.0.0 - 2024-06-01\n\n## 1.0.0 - 2024-01-01\nInitial.\n",
			version: "2.0.0",
			want:    "Release v2.0.0",
		},
		"whitespace-only body substitutes placeholder": {
			content: "# Changelog\n\n## 1.0.0 - 2024-01-01\n   \n\t\n",
			version: "1.0.0",
			want:    "Release v1.0.0",
		},
		"body bounded by next heading not by subsections": {
			content: "# Changelog\n\n## 2.0.0 - 2024-06-01\n" +
				"### Fixed\n- a bug\n\n## 1.0.0 - 2024-01-01\nInitial.\n",
			version: "2.0.0",
			want:    "### Fixed\n- a bug",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			notes, err := ExtractNotes(tt.content, tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.want, notes)
		})
	}
}

func TestExtractNotes_NotFound(t *testing.T) {
	_, err := ExtractNotes(validChangelog, "9.9.9")
	require.Error(t, err)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "9.9.9", notFound.Version)
	assert.Equal(t, []string{"2.0.0", "1.0.0"}, notFound.AvailableVersions)
	assert.ErrorContains(t, err, "no changelog entry for 9.9.9")
}

// Lookup quotes the version literally; regex metacharacters in the input
// must not turn into wildcards or break the pattern.
func TestExtractNotes_LiteralVersionMatch(t *testing.T) {
	_, err := ExtractNotes(validChangelog, "2(0)0")
	require.Error(t, err)

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestVersions(t *testing.T) {
	assert.Equal(t, []string{"2.0.0", "1.0.0"}, Versions(validChangelog))
	assert.Empty(t, Versions("# Changelog\n"))
}
