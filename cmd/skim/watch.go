package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/fsnotify"
)

// Run executes the watch command. It blocks until the context is canceled.
func (c *WatchCmd) Run(deps *Dependencies) error {
	watcher := fsnotify.NewWatcher(deps.Summaries)
	watcher.TopN = c.TopN
	watcher.TargetLang = c.Lang
	watcher.Extensions = normalizeExtensions(c.Ext)
	watcher.Debounce = c.Debounce
	watcher.Logger = deps.Logger

	if err := watcher.Open(c.Dir); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skim.ErrorMessage(err))
		return err
	}
	defer watcher.Close()

	fmt.Fprintf(deps.Stderr, "Watching %s (Ctrl+C to stop)\n", c.Dir)

	err := watcher.Run(deps.Ctx, func(r fsnotify.WatchResult) {
		if r.Err != nil {
			fmt.Fprintf(deps.Stderr, "✗ %s: %s\n", r.Path, skim.ErrorMessage(r.Err))
			return
		}
		fmt.Fprintf(deps.Stdout, "✓ %s\n", r.Path)
		printResult(deps.Stdout, r.Result)
		if r.Result.ID != "" {
			fmt.Fprintf(deps.Stderr, "Saved as %s\n", r.Result.ID)
		}
		fmt.Fprintln(deps.Stdout)
	})
	if errors.Is(err, deps.Ctx.Err()) {
		return nil
	}
	return err
}

// normalizeExtensions lower-cases extensions and adds a missing leading dot.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		if ext == "" {
			continue
		}
		if ext[0] != '.' {
			ext = "." + ext
		}
		out = append(out, strings.ToLower(ext))
	}
	return out
}
