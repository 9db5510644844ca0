package skim

import "context"

// Article is the plain text obtained from a web page.
type Article struct {
	URL      string `json:"url"`
	Title    string `json:"title,omitempty"`
	Byline   string `json:"byline,omitempty"`
	SiteName string `json:"siteName,omitempty"`

	// Text is the page's qualifying paragraph text joined by single spaces.
	Text string `json:"text"`
}

// Scraper turns a URL into article text suitable for summarization.
// Implementations hide fetching, retries, rate limiting and HTML parsing.
type Scraper interface {
	// Scrape retrieves the page at url and returns its paragraph text.
	// Returns EINVALID if the URL cannot be retrieved.
	Scrape(ctx context.Context, url string) (*Article, error)
}
