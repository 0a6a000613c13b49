package cli

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCmd_LocalValid(t *testing.T) {
	path := writeChangelog(t, validChangelog)

	stdout, _, err := runCommand(t, "check", "--file", path, "--plain")
	require.NoError(t, err)

	assert.Contains(t, stdout, "format is valid")
	assert.Contains(t, stdout, "Latest version: 2.0.0")
}

func TestCheckCmd_LocalInvalid(t *testing.T) {
	path := writeChangelog(t, "# Changelog\n\n## 1.0.0 - 2024-02-30\n")

	stdout, _, err := runCommand(t, "check", "--file", path, "--plain")
	require.Error(t, err)

	assert.Contains(t, stdout, "is not a valid changelog")
	assert.ErrorContains(t, err, "invalid changelog date for 1.0.0")
}

func TestCheckCmd_LocalMissing(t *testing.T) {
	_, _, err := runCommand(t, "check", "--file", filepath.Join(t.TempDir(), "absent.md"), "--plain")
	require.Error(t, err)
	assert.ErrorContains(t, err, "changelog file not found")
}

func TestCheckCmd_RemoteValid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(validChangelog))
	}))
	defer server.Close()

	stdout, _, err := runCommand(t, "check", "--url", server.URL, "--plain")
	require.NoError(t, err)

	assert.Contains(t, stdout, server.URL+" format is valid")
	assert.Contains(t, stdout, "Latest version: 2.0.0")
}

func TestCheckCmd_RemoteInvalid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not a changelog at all"))
	}))
	defer server.Close()

	_, _, err := runCommand(t, "check", "--url", server.URL, "--plain")
	require.Error(t, err)
	assert.ErrorContains(t, err, "must start with '# Changelog'")
}

func TestCheckCmd_RemoteFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, _, err := runCommand(t, "check", "--url", server.URL, "--plain")
	require.Error(t, err)
	assert.ErrorContains(t, err, "fetching remote changelog")
}

func TestCheckCmd_RemoteURLFromEnv(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(validChangelog))
	}))
	defer server.Close()

	t.Setenv("CHLOG_REMOTE_URL", server.URL)

	stdout, _, err := runCommand(t, "check", "--plain")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Latest version: 2.0.0")
}
