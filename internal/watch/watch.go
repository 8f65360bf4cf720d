// Package watch re-runs a callback whenever the configuration file or the
// content tree changes.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/stakater/developer-handbook/internal/logfields"
)

// DefaultDebounce collapses editor save bursts into one run.
const DefaultDebounce = 500 * time.Millisecond

// RunFunc is invoked once at start and after every debounced change.
type RunFunc func(ctx context.Context, runID string) error

// Watcher monitors the configuration file and content directories.
type Watcher struct {
	configPath string
	dirs       []string
	exts       []string
	debounce   time.Duration
	run        RunFunc
	watcher    *fsnotify.Watcher
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithExtensions limits content events to files with these extensions.
func WithExtensions(exts ...string) Option {
	return func(w *Watcher) { w.exts = exts }
}

// New creates a watcher for configPath and the content dirs.
func New(configPath string, dirs []string, run RunFunc, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w := &Watcher{
		configPath: absPath,
		dirs:       dirs,
		exts:       []string{".md"},
		debounce:   DefaultDebounce,
		run:        run,
		watcher:    fw,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run performs an initial run, then re-runs after each burst of changes
// until ctx is canceled. It closes the underlying watcher before returning.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	// Watch the directory: editors replace files on save.
	if err := w.watcher.Add(filepath.Dir(w.configPath)); err != nil {
		return fmt.Errorf("failed to watch config directory: %w", err)
	}
	for _, dir := range w.dirs {
		if err := w.addTree(dir); err != nil {
			return err
		}
	}
	slog.Info("Watching for changes", logfields.Config(w.configPath), slog.Int("dirs", len(w.dirs)))

	w.runOnce(ctx)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.handle(event) {
				continue
			}
			timer.Reset(w.debounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Watcher error", logfields.Error(err))
		case <-timer.C:
			w.runOnce(ctx)
		}
	}
}

// handle reports whether event should trigger a run. New directories are
// added to the watch set.
func (w *Watcher) handle(event fsnotify.Event) bool {
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return false
	}
	if event.Name == w.configPath || filepath.Base(event.Name) == ".env" {
		slog.Debug("Config change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
		return true
	}
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if skipDir(filepath.Base(event.Name)) {
				return false
			}
			if err := w.addTree(event.Name); err != nil {
				slog.Warn("Failed to watch new directory", logfields.Path(event.Name), logfields.Error(err))
			}
			return true
		}
	}
	if !w.inContent(event.Name) || !slices.Contains(w.exts, strings.ToLower(filepath.Ext(event.Name))) {
		return false
	}
	slog.Debug("Content change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
	return true
}

func (w *Watcher) inContent(name string) bool {
	for _, dir := range w.dirs {
		rel, err := filepath.Rel(dir, name)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && skipDir(d.Name()) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		return nil
	})
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "node_modules"
}

func (w *Watcher) runOnce(ctx context.Context) {
	runID := uuid.NewString()
	start := time.Now()
	err := w.run(ctx, runID)
	attrs := []any{logfields.RunID(runID), logfields.DurationMS(float64(time.Since(start).Microseconds()) / 1000)}
	if err != nil {
		slog.Error("Run failed", append(attrs, logfields.Error(err))...)
		return
	}
	slog.Debug("Run finished", attrs...)
}
