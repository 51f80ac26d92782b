// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package content

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// =============================================================================
// CONTENT FILE WATCHER
// =============================================================================

// DefaultDebounce is how long the file must be quiet before it is reloaded.
const DefaultDebounce = 250 * time.Millisecond

// Update is the result of a reload.
type Update struct {
	Content *Content
	Err     error
}

// Watcher reloads an override file when it changes on disk.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	limiter  *rate.Limiter
	updates  chan Update
	log      zerolog.Logger

	mu         sync.Mutex
	changedAt  time.Time
	hasPending bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher for path. Editors often replace files rather
// than write them, so the parent directory is watched and events are filtered
// by name.
func NewWatcher(path string, debounce time.Duration, logger *zerolog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     abs,
		watcher:  fsw,
		debounce: debounce,
		// At most one reload per debounce window, however noisy the editor.
		limiter: rate.NewLimiter(rate.Every(debounce), 1),
		updates: make(chan Update, 1),
		log:     zerolog.Nop(),
		ctx:     ctx,
		cancel:  cancel,
	}
	if logger != nil {
		w.log = logger.With().Str("component", "content-watcher").Logger()
	}
	return w, nil
}

// Path returns the watched file.
func (w *Watcher) Path() string { return w.path }

// Updates delivers reload results. It is closed by Close.
func (w *Watcher) Updates() <-chan Update { return w.updates }

// Watch starts the event and debounce goroutines.
func (w *Watcher) Watch() {
	w.wg.Add(2)
	go w.processEvents()
	go w.processPending()
}

// Close stops watching and closes Updates.
func (w *Watcher) Close() error {
	w.cancel()
	err := w.watcher.Close()
	w.wg.Wait()
	close(w.updates)
	return err
}

func (w *Watcher) processEvents() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.mu.Lock()
				w.changedAt = time.Now()
				w.hasPending = true
				w.mu.Unlock()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watch error")
		}
	}
}

func (w *Watcher) processPending() {
	defer w.wg.Done()
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case <-ticker.C:
			w.mu.Lock()
			due := w.hasPending && time.Since(w.changedAt) >= w.debounce
			if due && w.limiter.Allow() {
				w.hasPending = false
			} else {
				due = false
			}
			w.mu.Unlock()

			if due {
				w.reload()
			}
		}
	}
}

func (w *Watcher) reload() {
	c, err := Load(w.path)
	if err != nil {
		w.log.Warn().Err(err).Msg("content reload rejected")
	} else {
		w.log.Debug().Str("path", w.path).Msg("content reloaded")
	}

	u := Update{Content: c, Err: err}
	// Keep only the newest result if the consumer is behind.
	select {
	case w.updates <- u:
	default:
		select {
		case <-w.updates:
		default:
		}
		select {
		case w.updates <- u:
		case <-w.ctx.Done():
		}
	}
}
