package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// debounce groups the burst of events an editor save produces.
const debounce = 100 * time.Millisecond

// watcher reruns a function when any of a set of files changes.
type watcher struct {
	fs     *fsnotify.Watcher
	files  map[string]bool
	logger *zap.Logger
}

// newWatcher starts watching the directories of paths. Directories are
// watched instead of files so rename-on-save editors keep triggering.
func newWatcher(logger *zap.Logger, paths ...string) (*watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	w := &watcher{fs: fs, files: make(map[string]bool), logger: logger}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fs.Close()
			return nil, err
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Run calls rerun after each debounced change until ctx is done. Reruns are
// serialized; a failing rerun is logged and watching continues. The
// underlying watcher is closed on return.
func (w *watcher) Run(ctx context.Context, rerun func(context.Context) error) error {
	defer w.fs.Close()

	g, ctx := errgroup.WithContext(ctx)
	changed := make(chan struct{}, 1)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-w.fs.Events:
				if !ok {
					return nil
				}
				if !w.files[filepath.Clean(ev.Name)] || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
					continue
				}
				select {
				case changed <- struct{}{}:
				default:
				}
			case err, ok := <-w.fs.Errors:
				if !ok {
					return nil
				}
				w.logger.Warn("watch error", zap.Error(err))
			}
		}
	})

	g.Go(func() error {
		timer := time.NewTimer(debounce)
		timer.Stop()
		defer timer.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-changed:
				timer.Reset(debounce)
			case <-timer.C:
				if err := rerun(ctx); err != nil {
					w.logger.Warn("rerun failed", zap.Error(err))
				}
			}
		}
	})

	return g.Wait()
}

// runWatch runs the session once, then again on every change to the solution
// or the input file, until the context is canceled.
func runWatch(ctx context.Context, a *app, path string) error {
	w, err := newWatcher(a.logger, path, a.cfg.Input.Path)
	if err != nil {
		return err
	}
	rerun := func(ctx context.Context) error {
		a.logger.Info("running", zap.String("solution", path))
		return runSession(ctx, a, path)
	}
	if err := rerun(ctx); err != nil {
		a.logger.Warn("run failed", zap.Error(err))
	}
	return w.Run(ctx, rerun)
}
