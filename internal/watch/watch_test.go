package watch_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/markdown-directives/internal/watch"
)

func startWatcher(t *testing.T, path string) <-chan struct{} {
	t.Helper()
	w, err := watch.New(watch.Config{
		Path:        path,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")
	t.Cleanup(func() { _ = w.Stop() })

	onChange, err := w.Start()
	require.NoError(t, err, "failed to start watcher")
	return onChange
}

func TestWatcher_DebounceMultipleWrites(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(docPath, []byte("# draft"), 0644))

	onChange := startWatcher(t, docPath)

	// Rapid writes should coalesce into a single notification
	for i := 0; i < 10; i++ {
		require.NoError(t, os.WriteFile(docPath, []byte(fmt.Sprintf(":::hidden\n%d\n:::", i)), 0644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-onChange:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected notification but got timeout")
	}

	select {
	case <-onChange:
		t.Fatal("unexpected second notification")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "notes.md")
	otherPath := filepath.Join(dir, "other.md")
	require.NoError(t, os.WriteFile(docPath, []byte("doc"), 0644))
	require.NoError(t, os.WriteFile(otherPath, []byte("initial"), 0644))

	onChange := startWatcher(t, docPath)

	require.NoError(t, os.WriteFile(otherPath, []byte("other content"), 0644))

	select {
	case <-onChange:
		t.Fatal("should not notify for unrelated files")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcher_RenameReplaceSave(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "notes.md")
	tmpPath := filepath.Join(dir, ".notes.md.swp")
	require.NoError(t, os.WriteFile(docPath, []byte("v1"), 0644))

	onChange := startWatcher(t, docPath)

	require.NoError(t, os.WriteFile(tmpPath, []byte("v2"), 0644))
	require.NoError(t, os.Rename(tmpPath, docPath))

	select {
	case <-onChange:
	case <-time.After(300 * time.Millisecond):
		t.Fatal("expected notification after rename-and-replace save")
	}
}

func TestWatcher_Stop(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(docPath, []byte("test"), 0644))

	w, err := watch.New(watch.DefaultConfig(docPath))
	require.NoError(t, err)
	_, err = w.Start()
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		assert.NoError(t, w.Stop())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Stop() timed out - possible deadlock")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := watch.New(watch.DefaultConfig(filepath.Join(t.TempDir(), "missing", "notes.md")))
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	_, err = w.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watching directory")
}

func TestDefaultConfig(t *testing.T) {
	cfg := watch.DefaultConfig("/docs/notes.md")

	assert.Equal(t, "/docs/notes.md", cfg.Path)
	assert.Equal(t, 200*time.Millisecond, cfg.DebounceDur)
}

func TestWatcher_StopTwice(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(docPath, []byte("doc"), 0644))

	w, err := watch.New(watch.DefaultConfig(docPath))
	require.NoError(t, err)
	_, err = w.Start()
	require.NoError(t, err)

	require.NoError(t, w.Stop())
	assert.NotPanics(t, func() {
		assert.NoError(t, w.Stop())
	})
}
