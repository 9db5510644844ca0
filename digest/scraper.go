package digest

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/goquery"
)

var _ skim.Scraper = (*Scraper)(nil)

// Scraper turns article URLs into paragraph text. It rate-limits requests
// per host, retries failed fetches with backoff, optionally isolates the
// main content with an Extractor and collects qualifying paragraphs.
type Scraper struct {
	Fetcher     skim.Fetcher
	Extractor   skim.Extractor     // Optional; the raw page is used without one
	RateLimiter skim.DomainLimiter // Optional

	// RetryDelays are the waits between fetch attempts.
	// Nil selects DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration

	// MinParagraphLength is the shortest paragraph kept, in characters.
	MinParagraphLength int

	Logger *slog.Logger // Optional; receives retry notices
}

// Scrape fetches url and returns its paragraph text.
// Returns EINVALID if the URL is malformed or cannot be retrieved.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*skim.Article, error) {
	if err := skim.ValidateURL(rawURL); err != nil {
		return nil, err
	}
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, skim.Errorf(skim.EINVALID, "invalid url: %v", err)
	}

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := fetchWithRetry(ctx, s.Fetcher, u.String(), delays, func(attempt int, err error) {
		if s.Logger != nil {
			s.Logger.Warn("retrying fetch", "url", u.String(), "attempt", attempt, "err", err)
		}
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, skim.Errorf(skim.EINVALID, "could not retrieve %s: %v", u.String(), err)
	}

	article := &skim.Article{
		URL:   u.String(),
		Title: goquery.Title(html),
	}

	content := html
	if s.Extractor != nil {
		// Extraction failures are not fatal; the raw page still has paragraphs.
		if res, err := s.Extractor.Extract(html); err == nil && res != nil && strings.TrimSpace(res.ContentHTML) != "" {
			content = res.ContentHTML
			if res.Title != "" {
				article.Title = res.Title
			}
			article.Byline = res.Byline
			article.SiteName = res.SiteName
		}
	}

	text, err := goquery.Paragraphs(content, s.MinParagraphLength)
	if err != nil {
		return nil, err
	}
	if text == "" && content != html {
		if text, err = goquery.Paragraphs(html, s.MinParagraphLength); err != nil {
			return nil, err
		}
	}
	article.Text = text

	return article, nil
}
