package changelog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatHeadings_Plain(t *testing.T) {
	headings := []Heading{
		{Version: "2.0.0", Date: "2024-06-01"},
		{Version: "1.0.0", Date: "2024-01-01"},
	}

	var sb strings.Builder
	err := FormatHeadings(headings, &sb, FormatOptions{Plain: true})
	require.NoError(t, err)

	assert.Equal(t, "2.0.0\t2024-06-01\n1.0.0\t2024-01-01\n", sb.String())
}

func TestFormatHeadings_Empty(t *testing.T) {
	var sb strings.Builder
	err := FormatHeadings(nil, &sb, FormatOptions{Plain: true})
	require.NoError(t, err)
	assert.Empty(t, sb.String())
}

func TestFormatNotes_Plain(t *testing.T) {
	var sb strings.Builder
	err := FormatNotes("1.0.0", "Initial release.", &sb, FormatOptions{Plain: true, MaxWidth: 20})
	require.NoError(t, err)

	out := sb.String()
	assert.Contains(t, out, "v1.0.0")
	assert.Contains(t, out, "Initial release.")
}
