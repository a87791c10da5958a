package watcher_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/switchboard/internal/watcher"
)

func newTestWatcher(t *testing.T) (string, <-chan struct{}) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: false\n"), 0644))

	cfg := watcher.Config{
		ConfigPath:  path,
		DebounceDur: 50 * time.Millisecond,
	}
	w, err := watcher.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ch, err := w.Start()
	require.NoError(t, err)
	return path, ch
}

func TestWatcher_SignalsOnConfigWrite(t *testing.T) {
	path, ch := newTestWatcher(t)

	require.NoError(t, os.WriteFile(path, []byte("debug: true\n"), 0644))

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		require.Fail(t, "timeout waiting for change signal")
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	path, ch := newTestWatcher(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("debug: true\n"), 0644))
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		require.Fail(t, "timeout waiting for change signal")
	}

	// The burst collapses into a single signal.
	select {
	case <-ch:
		require.Fail(t, "expected burst to be debounced into one signal")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	path, ch := newTestWatcher(t)

	other := filepath.Join(filepath.Dir(path), "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("unrelated"), 0644))

	select {
	case <-ch:
		require.Fail(t, "unrelated file must not trigger a signal")
	case <-time.After(200 * time.Millisecond):
	}
}
