package mock

import "github.com/fwojciec/skim"

var _ skim.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of skim.Extractor. With no ExtractFn
// it passes the page through as the article content.
type Extractor struct {
	ExtractFn func(html string) (*skim.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*skim.ExtractResult, error) {
	if e.ExtractFn == nil {
		return &skim.ExtractResult{ContentHTML: html}, nil
	}
	return e.ExtractFn(html)
}
