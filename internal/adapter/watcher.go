package adapter

import (
	"context"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
	"go.uber.org/zap"

	m "github.com/mouse-blink/svlint/internal/model"
)

// DefaultDebounce is the quiet period after the last change before a
// watcher reports a batch.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reports changes to lint inputs below a set of roots.
//
//go:generate mockery --name=Watcher --output=./mocks --outpkg=mocks --with-expecter
type Watcher interface {
	// Watch blocks until ctx is done, calling onChange with the sorted paths
	// changed since the previous call. Roots use the same forms as
	// SourceFSAdapter.Get.
	Watch(ctx context.Context, roots []m.Path, onChange func([]m.Path)) error
}

// FSWatcher implements Watcher with fsnotify. Only sources, tree dumps and
// the configuration file count as changes.
type FSWatcher struct {
	debounce time.Duration
	inputs   glob.Glob
	logger   *zap.SugaredLogger
}

// NewFSWatcher creates a watcher for sources, dumps and configName. A
// non-positive debounce selects DefaultDebounce.
func NewFSWatcher(configName string, debounce time.Duration, logger *zap.SugaredLogger) (*FSWatcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	patterns := make([]string, 0, len(SourceExtensions)+len(TreeSuffixes)+1)
	for _, ext := range SourceExtensions {
		patterns = append(patterns, "*"+ext)
	}

	for _, suffix := range TreeSuffixes {
		patterns = append(patterns, "*"+suffix)
	}

	if configName != "" {
		patterns = append(patterns, glob.QuoteMeta(configName))
	}

	inputs, err := glob.Compile("{" + strings.Join(patterns, ",") + "}")
	if err != nil {
		return nil, fmt.Errorf("compile input pattern: %w", err)
	}

	return &FSWatcher{debounce: debounce, inputs: inputs, logger: logger}, nil
}

// IsInput reports whether a change to path should trigger a lint.
func (w *FSWatcher) IsInput(path string) bool {
	return w.inputs.Match(filepath.Base(path))
}

// Watch implements Watcher.
func (w *FSWatcher) Watch(ctx context.Context, roots []m.Path, onChange func([]m.Path)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	defer func() {
		_ = watcher.Close()
	}()

	recursive, err := w.addRoots(watcher, roots)
	if err != nil {
		return err
	}

	pending := make(map[m.Path]struct{})

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if recursive && event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addTree(watcher, event.Name); err != nil {
						w.logger.Warnw("cannot watch new directory", "path", event.Name, "error", err)
					}

					continue
				}
			}

			if !w.IsInput(event.Name) {
				continue
			}

			pending[m.Path(event.Name)] = struct{}{}
			timer.Reset(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			w.logger.Warnw("watch error", "error", err)

		case <-timer.C:
			changed := slices.Sorted(maps.Keys(pending))
			clear(pending)

			w.logger.Debugw("inputs changed", "files", len(changed))
			onChange(changed)
		}
	}
}

// addRoots registers the directories behind roots. A file root watches its
// directory. It reports whether any root is recursive.
func (w *FSWatcher) addRoots(watcher *fsnotify.Watcher, roots []m.Path) (bool, error) {
	anyRecursive := false

	for _, root := range roots {
		dir, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return false, err
		}

		info, err := os.Stat(dir)
		if err != nil {
			return false, fmt.Errorf("watch %s: %w", dir, err)
		}

		if !info.IsDir() {
			dir = filepath.Dir(dir)
			recursive = false
		}

		if recursive {
			anyRecursive = true
			err = addTree(watcher, dir)
		} else {
			err = watcher.Add(dir)
		}

		if err != nil {
			return false, fmt.Errorf("watch %s: %w", dir, err)
		}

		w.logger.Debugw("watching", "path", dir, "recursive", recursive)
	}

	return anyRecursive, nil
}

func addTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		return watcher.Add(path)
	})
}
