// Package readability isolates news article bodies using go-readability.
package readability

import (
	"html"
	"strings"

	"github.com/fwojciec/skim"
	"github.com/go-shiori/go-readability"
)

var _ skim.Extractor = (*Extractor)(nil)

// Extractor implements skim.Extractor with go-readability.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article body and metadata of rawHTML. Returns
// ENOTFOUND when readability finds no article text at all.
func (e *Extractor) Extract(rawHTML string) (*skim.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, skim.Errorf(skim.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	content := article.Content
	if strings.TrimSpace(content) == "" {
		text := strings.TrimSpace(article.TextContent)
		if text == "" {
			return nil, skim.Errorf(skim.ENOTFOUND, "no article content found")
		}
		content = "<p>" + html.EscapeString(text) + "</p>"
	}

	return &skim.ExtractResult{
		Title:       skim.CleanTitle(article.Title, article.SiteName),
		Byline:      strings.TrimSpace(article.Byline),
		SiteName:    strings.TrimSpace(article.SiteName),
		ContentHTML: content,
	}, nil
}
