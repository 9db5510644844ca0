// Package fsnotify summarizes text files as they appear in a watched
// directory.
package fsnotify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/fwojciec/skim"
)

// DefaultDebounce is how long a file must stay unchanged before it is
// summarized.
const DefaultDebounce = 500 * time.Millisecond

// DefaultExtensions are the file extensions summarized by default.
var DefaultExtensions = []string{".txt", ".md"}

// WatchResult is the outcome of summarizing one file.
type WatchResult struct {
	Path   string
	Result *skim.Result
	Err    error
}

// Watcher summarizes files written to a directory.
type Watcher struct {
	Summaries  skim.SummaryService
	TopN       int
	TargetLang string
	Extensions []string
	Debounce   time.Duration
	Logger     *slog.Logger

	watcher *fsnotify.Watcher
	dir     string
}

// NewWatcher creates a watcher with default extensions and debounce.
func NewWatcher(summaries skim.SummaryService) *Watcher {
	return &Watcher{
		Summaries:  summaries,
		Extensions: DefaultExtensions,
		Debounce:   DefaultDebounce,
		Logger:     slog.New(slog.DiscardHandler),
	}
}

// Open starts watching dir.
func (w *Watcher) Open(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return skim.Errorf(skim.EINVALID, "cannot watch %s: %v", dir, err)
	}
	if !info.IsDir() {
		return skim.Errorf(skim.EINVALID, "cannot watch %s: not a directory", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	w.watcher = watcher
	w.dir = dir
	return nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	if w.watcher == nil {
		return nil
	}
	return w.watcher.Close()
}

// Run summarizes each accepted file once it has been quiet for the
// debounce interval and passes the outcome to handle. It returns when ctx
// is canceled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context, handle func(WatchResult)) error {
	if w.watcher == nil {
		return skim.Errorf(skim.EINVALID, "watcher is not open")
	}

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	ticker := time.NewTicker(max(debounce/2, time.Millisecond))
	defer ticker.Stop()

	pending := make(map[string]time.Time)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if w.accept(event) {
				pending[event.Name] = time.Now()
			} else if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				delete(pending, event.Name)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.Logger.Warn("watch error", "dir", w.dir, "error", err)

		case now := <-ticker.C:
			for path, changed := range pending {
				if now.Sub(changed) < debounce {
					continue
				}
				delete(pending, path)
				handle(w.summarize(ctx, path))
			}
		}
	}
}

// accept reports whether event is a write to a file that should be
// summarized.
func (w *Watcher) accept(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}
	if isHidden(event.Name) {
		return false
	}
	if !slices.Contains(w.Extensions, strings.ToLower(filepath.Ext(event.Name))) {
		return false
	}
	info, err := os.Stat(event.Name)
	return err == nil && info.Mode().IsRegular()
}

func (w *Watcher) summarize(ctx context.Context, path string) WatchResult {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = skim.Errorf(skim.ENOTFOUND, "%s was removed", filepath.Base(path))
		}
		return WatchResult{Path: path, Err: err}
	}

	result, err := w.Summaries.Summarize(ctx, skim.Request{
		Text:       string(data),
		TopN:       w.TopN,
		TargetLang: w.TargetLang,
	})
	if err != nil {
		return WatchResult{Path: path, Err: err}
	}
	if result.Title == "" {
		result.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return WatchResult{Path: path, Result: result}
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
