// Package watcher provides live reload of the motion configuration.
//
// The watcher polls the config file's modification time and, after a
// debounce period, reloads it through the loader and hands the new
// configuration to registered handlers. Polling keeps the behavior
// identical across platforms and network filesystems.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dshills/subword/internal/config"
	"github.com/dshills/subword/internal/config/loader"
)

// Handler receives the reloaded configuration. When the reload failed,
// cfg holds the previous configuration and err describes the failure.
type Handler func(cfg config.Config, err error)

// Watcher monitors a single configuration file for changes.
type Watcher struct {
	mu sync.Mutex

	path     string
	modTime  time.Time
	current  config.Config
	handlers []Handler

	interval time.Duration
	debounce time.Duration

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool

	// pendingSince is the time of the first unflushed change, zero when
	// no change is pending.
	pendingSince time.Time
}

// New creates a watcher for the given config file. The initial
// configuration is loaded immediately so Current is valid before Start.
func New(path string, cfg config.Config) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     absPath,
		current:  cfg,
		interval: time.Duration(cfg.Watch.IntervalMS) * time.Millisecond,
		debounce: time.Duration(cfg.Watch.DebounceMS) * time.Millisecond,
	}
	if w.interval <= 0 {
		w.interval = 500 * time.Millisecond
	}

	// A missing file is watched for creation.
	if info, err := os.Stat(absPath); err == nil {
		w.modTime = info.ModTime()
	}
	return w, nil
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// Current returns the most recently loaded configuration.
func (w *Watcher) Current() config.Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// OnChange registers a handler for configuration reloads.
func (w *Watcher) OnChange(handler Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Start begins polling for changes. Calling Start on a running watcher
// is a no-op.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.running = true
	w.mu.Unlock()

	w.wg.Add(1)
	go w.pollLoop()
}

// Stop stops polling and waits for the poll loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.cancel()
	w.running = false
	w.mu.Unlock()

	w.wg.Wait()
}

// IsRunning returns whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// pollLoop checks the file at regular intervals and flushes debounced
// changes.
func (w *Watcher) pollLoop() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.check()
		}
	}
}

// check detects modification time changes and reloads once the
// debounce window has passed without further changes.
func (w *Watcher) check() {
	w.mu.Lock()
	lastMod := w.modTime
	w.mu.Unlock()

	info, err := os.Stat(w.path)
	now := time.Now()

	changed := false
	switch {
	case os.IsNotExist(err):
		// Removal does not trigger a reload; the current config stays
		// in effect until the file reappears.
		if !lastMod.IsZero() {
			w.mu.Lock()
			w.modTime = time.Time{}
			w.pendingSince = time.Time{}
			w.mu.Unlock()
		}
		return
	case err != nil:
		return
	case !info.ModTime().Equal(lastMod):
		changed = true
	}

	w.mu.Lock()
	if changed {
		w.modTime = info.ModTime()
		if w.pendingSince.IsZero() {
			w.pendingSince = now
		}
	}
	flush := !w.pendingSince.IsZero() && now.Sub(w.pendingSince) >= w.debounce
	if flush {
		w.pendingSince = time.Time{}
	}
	w.mu.Unlock()

	if flush {
		w.reload()
	}
}

// reload loads the file and notifies handlers.
func (w *Watcher) reload() {
	cfg, err := loader.Load(w.path)

	w.mu.Lock()
	if err != nil {
		cfg = w.current
	} else {
		w.current = cfg
	}
	handlers := make([]Handler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	for _, h := range handlers {
		h(cfg, err)
	}
}
