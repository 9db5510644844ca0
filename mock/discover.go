package mock

import (
	"context"

	"github.com/fwojciec/skim"
)

var _ skim.URLSource = (*URLSource)(nil)

// URLSource is a mock implementation of skim.URLSource.
type URLSource struct {
	DiscoverURLsFn func(ctx context.Context, sourceURL string, filter *skim.URLFilter) ([]string, error)
}

func (s *URLSource) DiscoverURLs(ctx context.Context, sourceURL string, filter *skim.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, sourceURL, filter)
}
