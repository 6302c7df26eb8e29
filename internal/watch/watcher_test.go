package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDatasetWatcher_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project_data.csv")
	require.NoError(t, os.WriteFile(path, []byte("initial"), 0644))

	changed := make(chan struct{}, 1)
	w, err := NewDatasetWatcher(path, 20*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	// Give the watcher a moment to start before writing
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("updated"), 0644))

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("expected change callback after dataset write")
	}
}

func TestDatasetWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project_data.csv")
	require.NoError(t, os.WriteFile(path, []byte("initial"), 0644))

	changed := make(chan struct{}, 1)
	w, err := NewDatasetWatcher(path, 20*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.csv"), []byte("noise"), 0644))

	select {
	case <-changed:
		t.Fatal("unexpected callback for unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestDatasetWatcher_MissingDirectory(t *testing.T) {
	_, err := NewDatasetWatcher(filepath.Join(t.TempDir(), "nope", "data.csv"), 0, nil)
	require.Error(t, err)
}
