package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReportsWrites(t *testing.T) {
	dir := t.TempDir()
	viewer := filepath.Join(dir, "viewer.yaml")
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(viewer, []byte("search:\n  min_length: 2\n"), 0644))

	w, err := Watch(viewer, "")
	require.NoError(t, err)
	defer w.Close()

	changed, err := w.Poll()
	require.NoError(t, err)
	assert.Empty(t, changed)

	require.NoError(t, os.WriteFile(other, []byte("x"), 0644))
	require.NoError(t, os.WriteFile(viewer, []byte("search:\n  min_length: 3\n"), 0644))

	var got []string
	require.Eventually(t, func() bool {
		c, _ := w.Poll()
		got = append(got, c...)
		return len(got) > 0
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{viewer}, got)
}

func TestWatchMissingDirectory(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "nope", "viewer.yaml"))
	assert.Error(t, err)
}
