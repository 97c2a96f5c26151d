package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledWritesNothing(t *testing.T) {
	require.NoError(t, Close())
	Debugf("dropped %d", 1)
	assert.Nil(t, logFile)
}

func TestDebugfWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	Enable(dir)
	Debugf("commit hue=%.3f", 0.7)
	require.NoError(t, Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "commit hue=0.700")
}
