// Package watch follows the journal tree on disk and reports day-file
// changes, powering the live view.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventCallback receives a batch of coalesced changes. kinds maps the
// root-relative path of each touched .md file to "created", "updated", or
// "deleted".
type EventCallback func(kinds map[string]string)

const settle = 200 * time.Millisecond

// Watch starts an fsnotify watcher on the journal root and processes file
// change events until ctx is cancelled. Events arriving in quick bursts,
// as editors produce on save, are coalesced into one callback.
//
// New directories created at runtime, such as a fresh month directory, are
// automatically added to the watch list.
func Watch(ctx context.Context, root string, logger *slog.Logger, cb EventCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addDirsRecursive(w, root); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("root", root))

	// flushTimer debounces bursts of events into one callback.
	var flushTimer *time.Timer
	var flushCh <-chan time.Time
	pending := make(map[string]string)

	scheduleFlush := func() {
		if flushTimer == nil {
			flushTimer = time.NewTimer(settle)
			flushCh = flushTimer.C
		} else {
			flushTimer.Reset(settle)
		}
	}

	record := func(rel, kind string) {
		// A create followed by writes is still a create.
		if prev, ok := pending[rel]; ok && prev == "created" && kind == "updated" {
			kind = "created"
		}
		pending[rel] = kind
		scheduleFlush()
	}

	for {
		select {
		case <-ctx.Done():
			if flushTimer != nil {
				flushTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-flushCh:
			if len(pending) == 0 {
				continue
			}
			batch := pending
			pending = make(map[string]string)
			logger.Debug("watcher: flushing", slog.Int("changes", len(batch)))
			if cb != nil {
				cb(batch)
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			absPath := ev.Name

			// New directories are added to the watch list.
			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(absPath); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, absPath); addErr != nil {
						logger.Warn("watcher: add new dir failed",
							slog.String("path", absPath),
							slog.String("error", addErr.Error()))
					} else {
						logger.Debug("watcher: watching new dir", slog.String("path", absPath))
					}
					recordNewDir(root, absPath, record)
					continue
				}
			}

			// Only .md files matter from here on. Atomic writes land as a
			// rename from a temp name, so temp files are skipped too.
			if !strings.HasSuffix(absPath, ".md") {
				continue
			}
			rel, relErr := filepath.Rel(root, absPath)
			if relErr != nil {
				continue
			}

			switch {
			case ev.Op&fsnotify.Create != 0:
				record(rel, "created")
			case ev.Op&fsnotify.Write != 0:
				record(rel, "updated")
			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				// Rename fires on the old path only; the new path arrives
				// as its own Create event.
				record(rel, "deleted")
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// recordNewDir reports any .md files already present in a newly created
// directory, since their create events may have been missed.
func recordNewDir(root, dirPath string, record func(rel, kind string)) {
	_ = filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		record(rel, "created")
		return nil
	})
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
