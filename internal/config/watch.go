package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher collects changes to a set of files so the frame loop can reload them.
// It watches the parent directories, so editors that save by rename are seen too.
type Watcher struct {
	fsw  *fsnotify.Watcher
	done chan struct{}

	mu      sync.Mutex
	files   map[string]string // absolute path -> path as passed to Watch
	pending map[string]bool
	err     error
}

// Watch starts watching paths. Empty paths are skipped.
func Watch(paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	w := &Watcher{
		fsw:     fsw,
		done:    make(chan struct{}),
		files:   make(map[string]string),
		pending: make(map[string]bool),
	}
	dirs := map[string]bool{}
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", p, err)
		}
		w.files[abs] = p
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.mu.Lock()
			if p, ok := w.files[filepath.Clean(ev.Name)]; ok {
				w.pending[p] = true
			}
			w.mu.Unlock()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.mu.Lock()
			w.err = err
			w.mu.Unlock()
		}
	}
}

// Poll returns the watched files changed since the last call, sorted, plus the last watch error.
// It never blocks.
func (w *Watcher) Poll() ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var changed []string
	for p := range w.pending {
		changed = append(changed, p)
	}
	slices.Sort(changed)
	clear(w.pending)
	err := w.err
	w.err = nil
	return changed, err
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
