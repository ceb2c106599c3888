package i18n

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatcherRebuildsOnChange(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "landing"), 0o755))

	rebuilt := make(chan struct{}, 10)
	w := NewWatcher(root, 20*time.Millisecond, func(context.Context) error {
		rebuilt <- struct{}{}
		return nil
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register the tree before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(root, "landing", "en.json"), []byte(`{}`), 0o644))

	select {
	case <-rebuilt:
	case <-time.After(5 * time.Second):
		t.Fatal("rebuild was not triggered")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcherMissingRoot(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := NewWatcher(filepath.Join(t.TempDir(), "missing"), 0, func(context.Context) error { return nil }, nil)
	require.Error(t, w.Run(context.Background()))
}
