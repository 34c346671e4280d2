// Package watch rebuilds Lumen sources when they change on disk.
package watch

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/lumen-lang/lumen/internal/config"
	"github.com/lumen-lang/lumen/internal/project"
)

// Event reports the outcome of one triggered rebuild.
type Event struct {
	Source string
	Output string
	Err    error
}

// Watcher observes a project's source directory and recompiles any .lm file
// after its edits settle for the configured debounce window. Editors emit
// bursts of write events per save; the per-path timer map collapses each
// burst into a single rebuild.
type Watcher struct {
	root     string
	cfg      *config.Config
	logger   *zap.Logger
	fsw      *fsnotify.Watcher
	debounce time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer

	events chan Event
	stopCh chan struct{}
	doneCh chan struct{}
}

// New builds a watcher over root's configured source directory.
func New(root string, cfg *config.Config, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	srcDir := filepath.Join(root, cfg.SourceDir)
	if err := fsw.Add(srcDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", srcDir, err)
	}

	debounce := time.Duration(cfg.Watch.DebounceMillis) * time.Millisecond
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}

	return &Watcher{
		root:     root,
		cfg:      cfg,
		logger:   logger,
		fsw:      fsw,
		debounce: debounce,
		timers:   make(map[string]*time.Timer),
		events:   make(chan Event, 16),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Events delivers one Event per completed rebuild.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start runs the watch loop in a background goroutine.
func (w *Watcher) Start() {
	go w.loop()
	w.logger.Info("watching for changes",
		zap.String("dir", filepath.Join(w.root, w.cfg.SourceDir)),
		zap.Duration("debounce", w.debounce))
}

// Stop terminates the watch loop and waits for it to exit.
func (w *Watcher) Stop() {
	close(w.stopCh)
	<-w.doneCh
}

func (w *Watcher) loop() {
	defer close(w.doneCh)
	defer w.fsw.Close()

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(ev.Name, project.SourceExt) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.schedule(ev.Name)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))

		case <-w.stopCh:
			return
		}
	}
}

// schedule arms (or re-arms) the debounce timer for one path.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.timers[path]; ok {
		timer.Reset(w.debounce)
		return
	}

	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()
		w.rebuild(path)
	})
}

func (w *Watcher) rebuild(path string) {
	outDir := filepath.Join(w.root, w.cfg.OutputDir)
	output, err := project.CompileFile(path, outDir)

	if err != nil {
		w.logger.Warn("rebuild failed",
			zap.String("source", path),
			zap.Error(err))
	} else {
		w.logger.Info("rebuilt",
			zap.String("source", path),
			zap.String("output", output))
	}

	select {
	case w.events <- Event{Source: path, Output: output, Err: err}:
	default:
		w.logger.Debug("event dropped, no listener", zap.String("source", path))
	}
}
