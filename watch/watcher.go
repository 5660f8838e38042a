// Package watch provides a debounced file watcher used by the convert
// command's watch mode.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a single file and emits debounced change
// notifications. Editors replace files through rename/create dances,
// so the parent directory is watched and events are matched by name.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	events  chan struct{}
	errors  chan error
}

// NewWatcher creates a watcher for path. The parent directory must
// exist.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		watcher: fsw,
		path:    path,
		events:  make(chan struct{}, 1),
		errors:  make(chan error, 1),
	}, nil
}

// Events delivers one notification per debounced burst of changes.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Errors delivers watcher errors.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Start processes events until ctx is cancelled. Changes arriving
// within debounce of each other collapse into one notification.
func (w *Watcher) Start(ctx context.Context, debounce time.Duration) {
	go w.run(ctx, debounce)
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) run(ctx context.Context, debounce time.Duration) {
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			// Chmod-only events do not change content.
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounce, func() {
				select {
				case w.events <- struct{}{}:
				default:
					// Notification already pending.
				}
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			case <-ctx.Done():
				return
			}
		}
	}
}
