package main

import (
	"fmt"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/digest"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	filter, err := skim.NewURLFilter(c.Include, c.Exclude)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skim.ErrorMessage(err))
		return err
	}

	var urls []string
	for _, u := range c.URLs {
		if filter.Match(u) {
			urls = append(urls, u)
		}
	}

	if c.From != "" {
		discovered, err := deps.Sources.DiscoverURLs(deps.Ctx, c.From, filter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", skim.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Found %d URLs in %s\n", len(discovered), c.From)
		urls = append(urls, discovered...)
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no URLs to summarize. Pass URLs or use --from")
		return skim.Errorf(skim.EINVALID, "no URLs to summarize")
	}

	if c.Preview {
		for _, u := range urls {
			fmt.Fprintln(deps.Stdout, u)
		}
		return nil
	}

	progress := func(event digest.ProgressEvent) {
		switch event.Type {
		case digest.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] %s\n", event.Completed, event.Total, truncate(event.URL, 60))
		case digest.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] skip %s: %s\n", event.Completed, event.Total, truncate(event.URL, 60), skim.ErrorMessage(event.Error))
		case digest.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] duplicate %s\n", event.Completed, event.Total, truncate(event.URL, 60))
		}
	}

	items, err := deps.Batch.SummarizeURLs(deps.Ctx, urls, digest.BatchOptions{
		TopN:        c.TopN,
		TargetLang:  c.Lang,
		Concurrency: c.Concurrency,
	}, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	var ok, failed, skipped int
	for _, item := range items {
		switch {
		case item.Skipped:
			skipped++
		case item.Err != nil:
			failed++
		default:
			ok++
			fmt.Fprintln(deps.Stdout, "---")
			printResult(deps.Stdout, item.Result)
		}
	}

	fmt.Fprintf(deps.Stderr, "Summarized %d of %d URLs (%d failed, %d duplicates)\n", ok, len(items), failed, skipped)
	if ok == 0 && failed > 0 {
		return fmt.Errorf("all %d URLs failed", failed)
	}
	return nil
}
