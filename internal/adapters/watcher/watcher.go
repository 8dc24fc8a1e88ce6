package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"sync"
	"unique"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/reqsync/internal/core/domain"
	"go.trai.ch/reqsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher implements per-file watching using fsnotify.
// It watches the parent directory of every registered file so that editors
// replacing a file by rename keep being observed, and drops events for
// files that were not registered.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	events    chan ports.WatchEvent
	onError   func(error)

	mu    sync.RWMutex
	files map[unique.Handle[string]]struct{}
	dirs  map[unique.Handle[string]]struct{}
}

// NewWatcher creates a new file watcher.
// onError receives fsnotify errors; it may be nil.
func NewWatcher(onError func(error)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatcherFailed.Error())
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
		onError:   onError,
		files:     make(map[unique.Handle[string]]struct{}),
		dirs:      make(map[unique.Handle[string]]struct{}),
	}, nil
}

// Add registers a file. Adding a file twice is a no-op.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "path", path)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.files[unique.Make(abs)] = struct{}{}

	dir := unique.Make(filepath.Dir(abs))
	if _, ok := w.dirs[dir]; ok {
		return nil
	}
	if err := w.fsWatcher.Add(dir.Value()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "path", dir.Value())
	}
	w.dirs[dir] = struct{}{}
	return nil
}

// Start begins delivering events until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of file system events.
// The sequence ends once the watcher stops.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent, ok := w.convertEvent(event)
			if !ok {
				continue
			}

			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(zerr.Wrap(err, domain.ErrWatcherFailed.Error()))
			}
		}
	}
}

// convertEvent maps an fsnotify event on a registered file to a ports.WatchEvent.
func (w *Watcher) convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	path := filepath.Clean(event.Name)

	w.mu.RLock()
	_, registered := w.files[unique.Make(path)]
	w.mu.RUnlock()
	if !registered {
		return ports.WatchEvent{}, false
	}

	var op ports.WatchOp
	switch {
	case event.Has(fsnotify.Write):
		op = ports.OpWrite
	case event.Has(fsnotify.Create):
		op = ports.OpCreate
	case event.Has(fsnotify.Remove):
		op = ports.OpRemove
	case event.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}

	return ports.WatchEvent{Path: path, Operation: op}, true
}

// Factory creates fsnotify watchers that report errors to a callback.
type Factory struct {
	onError func(error)
}

// NewFactory creates a Factory. onError may be nil.
func NewFactory(onError func(error)) *Factory {
	return &Factory{onError: onError}
}

// NewWatcher implements ports.WatcherFactory.
func (f *Factory) NewWatcher() (ports.Watcher, error) {
	return NewWatcher(f.onError)
}
