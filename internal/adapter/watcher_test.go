package adapter

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	m "github.com/mouse-blink/svlint/internal/model"
)

func TestFSWatcher_IsInput(t *testing.T) {
	w, err := NewFSWatcher(".svlint.yaml", 0, zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)
	assert.Equal(t, DefaultDebounce, w.debounce)

	tests := []struct {
		path string
		want bool
	}{
		{"rtl/top.sv", true},
		{"rtl/pkg.svh", true},
		{"legacy/core.v", true},
		{"legacy/defs.vh", true},
		{"rtl/top.sv.tree.yaml", true},
		{"rtl/top.sv.tree.yml", true},
		{"rtl/top.sv.tree.json", true},
		{"project/.svlint.yaml", true},
		{"project/other.yaml", false},
		{"notes.txt", false},
		{"rtl/top.sv.bak", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, w.IsInput(tt.path))
		})
	}
}

func TestFSWatcher_WatchReportsInputChanges(t *testing.T) {
	root := tempDir(t)
	w, err := NewFSWatcher(".svlint.yaml", 20*time.Millisecond, zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	batches := make(chan []m.Path, 16)
	done := make(chan error, 1)

	go func() {
		done <- w.Watch(ctx, []m.Path{m.Path(root + "/...")}, func(changed []m.Path) {
			batches <- changed
		})
	}()

	source := filepath.Join(root, "top.sv")
	ignored := filepath.Join(root, "notes.txt")
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)

	defer tick.Stop()

	var got []m.Path

	// the watcher registers asynchronously, so keep touching until it reports
	for got == nil {
		select {
		case batch := <-batches:
			got = batch
		case <-tick.C:
			writeTestFile(t, ignored, "x")
			writeTestFile(t, source, "module top ();\nendmodule\n")
		case <-deadline:
			t.Fatal("no change reported")
		}
	}

	assert.True(t, slices.Contains(got, m.Path(source)), "got %v", got)
	assert.False(t, slices.Contains(got, m.Path(ignored)))

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestFSWatcher_WatchMissingRoot(t *testing.T) {
	w, err := NewFSWatcher("", 0, zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)

	missing := filepath.Join(tempDir(t), "missing")
	_, statErr := os.Stat(missing)
	require.True(t, os.IsNotExist(statErr))

	err = w.Watch(context.Background(), []m.Path{m.Path(missing)}, func([]m.Path) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch")
}
