/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package watch gives a worker.Loop an advisory early wake-up: a directory
// Create event matching the loop's file-name prefix requests its next tick
// run immediately instead of waiting out the rest of the fixed period. The
// period timer is never removed; a Watcher that never fires, or whose
// events are never delivered, leaves every loop exactly as it already
// behaves on its own schedule.
package watch

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/NoxxGames/ipcfile/errors"
	"github.com/NoxxGames/ipcfile/ipclog"
	"github.com/NoxxGames/ipcfile/worker"
	"github.com/fsnotify/fsnotify"
)

const (
	// ErrWatchFailed is returned by New when the underlying fsnotify
	// watcher cannot be created or the directory cannot be added to it.
	ErrWatchFailed errors.CodeError = iota + errors.MinPkgWatch
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = errors.ExistInMapMessage(ErrWatchFailed)
	errors.RegisterIdFctMessage(ErrWatchFailed, getMessage)
}

func getMessage(code errors.CodeError) (message string) {
	switch code {
	case errors.UnknownError:
		return ""
	case ErrWatchFailed:
		return "watch could not open or arm its directory notifier"
	}

	return ""
}

// Route pairs a file-name prefix (e.g. "GET#", matching fileio's own
// <REQ>#<RID>#<HH-MM-SS>.ipcf naming) with the loop to wake when a file
// whose base name carries that prefix is created in the watched directory.
type Route struct {
	Prefix string
	Loop   *worker.Loop
}

// Watcher arms one fsnotify watch on a single directory and fans a Create
// event out to every Route whose Prefix matches the new file's base name.
type Watcher struct {
	fsw    *fsnotify.Watcher
	dir    string
	routes []Route
	log    ipclog.Logger
}

// New opens an fsnotify watch on dir. The Watcher does not start consuming
// events until Run is called.
func New(dir string, log ipclog.Logger, routes ...Route) (*Watcher, error) {
	if log == nil {
		log = ipclog.Default
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ErrWatchFailed.Error(err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, ErrWatchFailed.Error(err)
	}

	return &Watcher{
		fsw:    fsw,
		dir:    dir,
		routes: routes,
		log:    log.With(ipclog.NewFields().Add("dir", dir)),
	}, nil
}

// Run consumes fsnotify events until ctx is cancelled or the Watcher is
// closed, waking every Route whose Prefix matches a created file's base
// name. It returns ctx.Err() on cancellation and nil if the event channel
// closes first (Close was called).
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create == 0 {
				continue
			}
			w.dispatch(filepath.Base(ev.Name))
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch event stream error", ipclog.NewFields().Add("error", err.Error()))
		}
	}
}

func (w *Watcher) dispatch(name string) {
	for _, r := range w.routes {
		if r.Loop == nil || r.Prefix == "" {
			continue
		}
		if strings.HasPrefix(name, r.Prefix) {
			r.Loop.Wake()
		}
	}
}

// Close releases the underlying fsnotify watcher. Run returns nil shortly
// after Close unblocks its event-channel read.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
