package digest

import (
	"context"
	"sync/atomic"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/bloom"
	"golang.org/x/sync/errgroup"
)

// Deduplication filter sizing for batch runs.
const (
	batchExpectedURLs       = 10000
	batchFalsePositiveRate  = 0.0001
	defaultBatchConcurrency = 4
)

// BatchOptions configures a batch summarization run.
type BatchOptions struct {
	TopN        int
	TargetLang  string
	Concurrency int
}

// BatchItem holds the outcome for one URL of a batch.
// Exactly one of Result or Err is set unless the URL was skipped.
type BatchItem struct {
	URL     string
	Result  *skim.Result
	Err     error
	Skipped bool
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// urlSet tracks the URLs of a batch. The bloom filter answers most lookups
// and its positives are confirmed against the exact set of normalized URLs,
// so a distinct URL is never reported as a duplicate.
type urlSet struct {
	filter interface{ TestAndAdd(rawURL string) bool }
	exact  map[string]struct{}
}

func newURLSet() *urlSet {
	return &urlSet{
		filter: bloom.NewFilter(batchExpectedURLs, batchFalsePositiveRate),
		exact:  make(map[string]struct{}),
	}
}

// add records rawURL and reports whether it was already present.
func (s *urlSet) add(rawURL string) bool {
	key := bloom.NormalizeURL(rawURL)
	if s.filter.TestAndAdd(rawURL) {
		if _, ok := s.exact[key]; ok {
			return true
		}
	}
	s.exact[key] = struct{}{}
	return false
}

type batchResult struct {
	position int
	result   *skim.Result
	err      error
}

// SummarizeURLs summarizes each URL concurrently. URLs repeating an earlier
// entry after normalization are skipped. A failing URL is reported in its
// item and does not stop the batch. Items are returned in input order.
// The progress callback, if provided, is called from the calling goroutine.
func (s *Service) SummarizeURLs(ctx context.Context, urls []string, opts BatchOptions, progress ProgressFunc) ([]BatchItem, error) {
	items := make([]BatchItem, len(urls))
	seen := newURLSet()

	var pending []int
	for i, u := range urls {
		items[i].URL = u
		if seen.add(u) {
			items[i].Skipped = true
			continue
		}
		pending = append(pending, i)
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	var completed atomic.Int64
	for i := range items {
		if !items[i].Skipped {
			continue
		}
		n := int(completed.Add(1))
		if progress != nil {
			progress(ProgressEvent{Type: ProgressSkipped, Completed: n, Total: total, URL: items[i].URL})
		}
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}

	resultCh := make(chan batchResult, len(pending))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, i := range pending {
			g.Go(func() error {
				res, err := s.Summarize(gctx, skim.Request{
					URL:        urls[i],
					TopN:       opts.TopN,
					TargetLang: opts.TargetLang,
				})
				resultCh <- batchResult{position: i, result: res, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	for r := range resultCh {
		item := &items[r.position]
		item.Result = r.result
		item.Err = r.err
		n := int(completed.Add(1))
		if progress == nil {
			continue
		}
		event := ProgressEvent{Type: ProgressCompleted, Completed: n, Total: total, URL: item.URL}
		if r.err != nil {
			event.Type = ProgressFailed
			event.Error = r.err
		}
		progress(event)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	if err := ctx.Err(); err != nil {
		return items, err
	}
	return items, nil
}
