package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ariel-frischer/chlog/internal/changelog"
)

func TestListCmd_Plain(t *testing.T) {
	path := writeChangelog(t, validChangelog)

	stdout, _, err := runCommand(t, "list", "--file", path, "--plain")
	require.NoError(t, err)

	assert.Equal(t, "2.0.0\t2024-06-01\n1.0.0\t2024-01-01\n", stdout)
}

func TestListCmd_YAML(t *testing.T) {
	path := writeChangelog(t, validChangelog)

	stdout, _, err := runCommand(t, "list", "--file", path, "--format", "yaml")
	require.NoError(t, err)

	var headings []changelog.Heading
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &headings))

	assert.Equal(t, []changelog.Heading{
		{Version: "2.0.0", Date: "2024-06-01"},
		{Version: "1.0.0", Date: "2024-01-01"},
	}, headings)
}

func TestListCmd_UnknownFormat(t *testing.T) {
	path := writeChangelog(t, validChangelog)

	_, _, err := runCommand(t, "list", "--file", path, "--format", "json")
	require.Error(t, err)
	assert.ErrorContains(t, err, `unknown format "json"`)
}

func TestListCmd_InvalidDocument(t *testing.T) {
	path := writeChangelog(t, "# Changelog\n\n## 1.0.0 - 2024-13-01\n")

	_, _, err := runCommand(t, "list", "--file", path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid changelog date")
}
