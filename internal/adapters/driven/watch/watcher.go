// Package watch reports reference-file changes so the engine can
// rebuild its indices without a restart.
package watch

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/alloytools/matprop-cli/internal/core/ports/driven"
	"github.com/alloytools/matprop-cli/internal/logger"
)

// Ensure DirWatcher implements the interface.
var _ driven.ChangeWatcher = (*DirWatcher)(nil)

// DirWatcher watches the reference data directory and emits the path
// of each rewritten .txt file.
type DirWatcher struct {
	fs     *fsnotify.Watcher
	events chan string
	done   chan struct{}
}

// NewDirWatcher starts watching the given data directory.
func NewDirWatcher(dir string) (*DirWatcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fs.Add(dir); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w := &DirWatcher{
		fs:     fs,
		events: make(chan string),
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// run forwards relevant filesystem events until Close.
func (w *DirWatcher) run() {
	defer close(w.events)

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if strings.ToLower(filepath.Ext(ev.Name)) != ".txt" {
				continue
			}
			logger.Debug("Reference file changed: %s", ev.Name)
			select {
			case w.events <- ev.Name:
			case <-w.done:
				return
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// Events yields the path of each changed reference file.
func (w *DirWatcher) Events() <-chan string {
	return w.events
}

// Close stops watching and closes the events channel.
func (w *DirWatcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
