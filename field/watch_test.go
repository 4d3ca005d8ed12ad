package field

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsWatchedFile(t *testing.T) {
	dir := t.TempDir()
	spec := filepath.Join(dir, "field.yaml")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(spec, []byte("name: a\n"), 0o644))

	w, err := NewWatcher(spec, "")
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(spec, []byte("name: b\n"), 0o644))

	want, err := filepath.Abs(spec)
	require.NoError(t, err)

	select {
	case got := <-w.Events:
		assert.Equal(t, want, got)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "field.yaml"))
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, ok := <-w.Events
	assert.False(t, ok)
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "field.yaml"))
	assert.Error(t, err)
}

func TestWatcherReportsAfterLastWrite(t *testing.T) {
	dir := t.TempDir()
	spec := filepath.Join(dir, "field.yaml")
	require.NoError(t, os.WriteFile(spec, []byte("name: a\n"), 0o644))

	w, err := NewWatcher(spec)
	require.NoError(t, err)
	defer w.Close()

	// Truncate, then write the full content inside the debounce window.
	require.NoError(t, os.WriteFile(spec, nil, 0o644))
	time.Sleep(debounce / 2)
	require.NoError(t, os.WriteFile(spec, []byte("name: b\n"), 0o644))
	lastWrite := time.Now()

	select {
	case <-w.Events:
		assert.GreaterOrEqual(t, time.Since(lastWrite), debounce/2)
		data, err := os.ReadFile(spec)
		require.NoError(t, err)
		assert.Equal(t, "name: b\n", string(data))
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
	}

	select {
	case name := <-w.Events:
		t.Fatalf("unexpected second event for %s", name)
	case <-time.After(3 * debounce):
	}
}
