// SPDX-License-Identifier: MIT

// Package watch re-runs an action whenever an input file changes.
//
// The file's directory is watched rather than the file itself, so editors
// that save by writing a temporary file and renaming it over the original
// still trigger a run. Bursts of events are coalesced by a debounce delay.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces the several events a single save produces.
const DefaultDebounce = 100 * time.Millisecond

// ErrWatch wraps failures to set up the underlying watcher.
var ErrWatch = errors.New("watch: cannot watch file")

// Action is run once at start and after every change.
type Action func(ctx context.Context) error

// Option configures Watch.
type Option func(*options)

type options struct {
	debounce time.Duration
	initial  bool
	logger   *zap.Logger
	onError  func(error)
}

// WithDebounce sets the quiet period after the last event before running.
// Panics when d is negative.
func WithDebounce(d time.Duration) Option {
	if d < 0 {
		panic("watch: WithDebounce: d must be >= 0")
	}

	return func(o *options) { o.debounce = d }
}

// WithoutInitialRun skips the run at start.
func WithoutInitialRun() Option {
	return func(o *options) { o.initial = false }
}

// WithLogger attaches a logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithErrorHandler receives action errors. Watching continues either way.
func WithErrorHandler(fn func(error)) Option {
	return func(o *options) { o.onError = fn }
}

// Watch runs action, then runs it again each time path is written or
// (re)created, until ctx is done. It returns nil on cancellation.
//
// Errors:
//   - ErrWatch when the watcher cannot be created or the directory added.
//   - errors from the watcher's error channel.
func Watch(ctx context.Context, path string, action Action, opts ...Option) error {
	o := options{debounce: DefaultDebounce, initial: true, logger: zap.NewNop()}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", path, ErrWatch, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%s: %w: %w", path, ErrWatch, err)
	}
	defer w.Close()
	if err = w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("%s: %w: %w", path, ErrWatch, err)
	}
	log := o.logger.With(zap.String("file", target))
	log.Debug("watching")

	run := func() {
		if err := action(ctx); err != nil {
			log.Debug("action failed", zap.Error(err))
			if o.onError != nil {
				o.onError(err)
			}
		}
	}
	if o.initial {
		run()
	}

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("watch stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			log.Debug("file changed", zap.Stringer("op", ev.Op))
			timer.Reset(o.debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %s: %w", target, err)

		case <-timer.C:
			run()
		}
	}
}
