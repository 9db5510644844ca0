package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/skim"
)

// Ensure LoggingScraper implements skim.Scraper.
var _ skim.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging.
type LoggingScraper struct {
	next   skim.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next skim.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the amount of text found.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) (article *skim.Article, err error) {
	defer func(begin time.Time) {
		chars := 0
		if article != nil {
			chars = len([]rune(article.Text))
		}
		s.logger.Info("scrape",
			"url", url,
			"chars", chars,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scrape(ctx, url)
}
