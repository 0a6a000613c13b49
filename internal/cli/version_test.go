package cli

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Plain(t *testing.T) {
	stdout, _, err := runCommand(t, "version", "--plain")
	require.NoError(t, err)

	assert.Contains(t, stdout, "chlog dev")
	assert.Contains(t, stdout, "go: "+runtime.Version())
	assert.Contains(t, stdout, "platform: "+runtime.GOOS+"/"+runtime.GOARCH)
}

func TestVersionCmd_Alias(t *testing.T) {
	stdout, _, err := runCommand(t, "v", "--plain")
	require.NoError(t, err)
	assert.Contains(t, stdout, "chlog dev")
}

func TestTruncateCommit(t *testing.T) {
	assert.Equal(t, "abcd1234", truncateCommit("abcd1234ef567890"))
	assert.Equal(t, "short", truncateCommit("short"))
}
