// Package watch monitors the content tree and triggers debounced
// rebuilds while the preview server runs.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a content directory tree for changes.
type Watcher struct {
	watcher      *fsnotify.Watcher
	rebuild      func(ctx context.Context)
	triggerChan  chan struct{}
	debounceTime time.Duration
}

// New creates a watcher that calls rebuild after changes settle.
func New(rebuild func(ctx context.Context)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	return &Watcher{
		watcher:      fsw,
		rebuild:      rebuild,
		triggerChan:  make(chan struct{}, 1),
		debounceTime: 500 * time.Millisecond,
	}, nil
}

// Add registers a directory and all of its subdirectories.
func (w *Watcher) Add(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// Run processes events until the context is canceled. New
// subdirectories are picked up as they appear.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	go w.rebuildLoop(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Create) {
				// best effort: new directories need their own watch
				_ = w.Add(event.Name)
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) ||
				event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
				slog.Debug("Content change detected", "file", event.Name, "op", event.Op.String())
				w.trigger()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Watcher error", "error", err)
		}
	}
}

func (w *Watcher) trigger() {
	select {
	case w.triggerChan <- struct{}{}:
	default:
		// rebuild already pending
	}
}

func (w *Watcher) rebuildLoop(ctx context.Context) {
	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.triggerChan:
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounceTime, func() {
				w.rebuild(ctx)
			})
		}
	}
}
