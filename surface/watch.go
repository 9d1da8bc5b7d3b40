// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/gogpu/gldemo"
)

// SourceEvent carries a reloaded source image to the event loop. A View
// created WithSource copies it into the renderer's pixmap.
type SourceEvent struct {
	Path   string
	Pixmap *gldemo.Pixmap
}

// SourceWatcher reloads an image file whenever it changes on disk and
// queues the decoded pixmap on a Sender as a SourceEvent.
//
// The containing directory is watched rather than the file itself, so
// editors that save by renaming a temporary file are picked up too.
type SourceWatcher struct {
	path    string
	sender  Sender
	watcher *fsnotify.Watcher

	wg   sync.WaitGroup
	once sync.Once
	err  error
}

// WatchSource starts watching path. Events are sent from a background
// goroutine, so s must be safe for concurrent use; app.App is.
func WatchSource(path string, s Sender) (*SourceWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("surface: watch %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("surface: watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("surface: watch %s: %w", path, err)
	}

	sw := &SourceWatcher{path: abs, sender: s, watcher: w}
	sw.wg.Add(1)
	go sw.run()
	gldemo.Logger().Debug("surface: watching source", "path", abs)
	return sw, nil
}

func (sw *SourceWatcher) run() {
	defer sw.wg.Done()
	for {
		select {
		case e, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != sw.path || !(e.Has(fsnotify.Write) || e.Has(fsnotify.Create)) {
				continue
			}
			sw.reload()
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			gldemo.Logger().Warn("surface: watch error", "path", sw.path, "err", err)
		}
	}
}

// reload decodes the file and sends it. A file caught mid-write fails to
// decode; the write that completes it triggers another reload.
func (sw *SourceWatcher) reload() {
	pm, err := gldemo.LoadPixmap(sw.path)
	if err != nil {
		gldemo.Logger().Warn("surface: source reload failed", "path", sw.path, "err", err)
		return
	}
	sw.sender.Send(SourceEvent{Path: sw.path, Pixmap: pm})
}

// Path returns the absolute path being watched.
func (sw *SourceWatcher) Path() string {
	return sw.path
}

// Close stops the watcher and waits for its goroutine to exit. It is safe
// to call more than once.
func (sw *SourceWatcher) Close() error {
	sw.once.Do(func() {
		sw.err = sw.watcher.Close()
		sw.wg.Wait()
	})
	return sw.err
}
