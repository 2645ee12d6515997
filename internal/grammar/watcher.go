package grammar

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Toasterson/akh-medu-sub001/internal/logging"
)

// GrammarWatcher hot-loads custom grammar files. Every *.toml in the
// watched directory is loaded on start and re-loaded when written;
// removing a file unregisters its grammar. Load failures are logged and
// skipped so a half-saved file never takes the registry down.
type GrammarWatcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	registry    *Registry
	grammarDir  string
	loaded      map[string]string // file path -> registered grammar name
	debounceMap map[string]time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
}

// NewGrammarWatcher builds a watcher over dir feeding registry. Call
// Start to begin watching.
func NewGrammarWatcher(registry *Registry, dir string) (*GrammarWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &GrammarWatcher{
		watcher:     watcher,
		registry:    registry,
		grammarDir:  dir,
		loaded:      make(map[string]string),
		debounceMap: make(map[string]time.Time),
		debounceDur: 500 * time.Millisecond, // Debounce rapid saves
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start loads the grammars already present, then begins watching.
// Non-blocking; the event loop runs in its own goroutine.
func (w *GrammarWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	w.loadExisting()

	if err := w.watcher.Add(w.grammarDir); err != nil {
		logging.GrammarWarn("grammar watcher: cannot watch %s: %v", w.grammarDir, err)
	} else {
		logging.Grammar("grammar watcher: watching %s", w.grammarDir)
	}

	go w.run(ctx)
	return nil
}

// Stop shuts the event loop down and closes the underlying watcher.
func (w *GrammarWatcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		logging.GrammarError("grammar watcher: close: %v", err)
	}
}

// loadExisting registers every grammar file already in the directory.
func (w *GrammarWatcher) loadExisting() {
	entries, err := os.ReadDir(w.grammarDir)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.GrammarWarn("grammar watcher: reading %s: %v", w.grammarDir, err)
		}
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		w.reload(filepath.Join(w.grammarDir, entry.Name()))
	}
}

func (w *GrammarWatcher) run(ctx context.Context) {
	defer close(w.doneCh)

	debounceTicker := time.NewTicker(100 * time.Millisecond)
	defer debounceTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.GrammarError("grammar watcher: %v", err)

		case <-debounceTicker.C:
			w.processDebounced()
		}
	}
}

// handleEvent routes one filesystem event. Writes are debounced so a
// rapid save series loads once; removals take effect immediately.
func (w *GrammarWatcher) handleEvent(event fsnotify.Event) {
	if !strings.HasSuffix(event.Name, ".toml") {
		return
	}

	switch {
	case event.Op&(fsnotify.Create|fsnotify.Write) != 0:
		w.mu.Lock()
		w.debounceMap[event.Name] = time.Now()
		w.mu.Unlock()

	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		w.forget(event.Name)
	}
}

// processDebounced reloads files whose last write settled past the
// debounce window.
func (w *GrammarWatcher) processDebounced() {
	w.mu.Lock()
	now := time.Now()
	var toReload []string
	for path, eventTime := range w.debounceMap {
		if now.Sub(eventTime) >= w.debounceDur {
			toReload = append(toReload, path)
			delete(w.debounceMap, path)
		}
	}
	w.mu.Unlock()

	for _, path := range toReload {
		w.reload(path)
	}
}

// reload loads one grammar file and registers the result. A file that
// changes its grammar name drops the old registration first.
func (w *GrammarWatcher) reload(path string) {
	g, err := LoadCustomGrammar(path)
	if err != nil {
		logging.GrammarWarn("grammar watcher: skipping %s: %v", path, err)
		return
	}

	w.mu.Lock()
	previous, hadPrevious := w.loaded[path]
	w.loaded[path] = g.Name()
	w.mu.Unlock()

	if hadPrevious && previous != g.Name() {
		w.registry.Unregister(previous)
	}
	w.registry.Register(g)
}

// forget unregisters the grammar a removed file had contributed.
func (w *GrammarWatcher) forget(path string) {
	w.mu.Lock()
	name, ok := w.loaded[path]
	delete(w.loaded, path)
	delete(w.debounceMap, path)
	w.mu.Unlock()

	if !ok {
		return
	}
	w.registry.Unregister(name)
	logging.Grammar("grammar watcher: %s removed, unregistered %q", path, name)
}
