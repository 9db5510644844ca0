package mock

import (
	"context"

	"github.com/fwojciec/skim"
)

var _ skim.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of skim.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (*skim.Article, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*skim.Article, error) {
	return s.ScrapeFn(ctx, url)
}

var _ skim.SummaryService = (*SummaryService)(nil)

// SummaryService is a mock implementation of skim.SummaryService.
type SummaryService struct {
	SummarizeFn func(ctx context.Context, req skim.Request) (*skim.Result, error)
}

func (s *SummaryService) Summarize(ctx context.Context, req skim.Request) (*skim.Result, error) {
	return s.SummarizeFn(ctx, req)
}
