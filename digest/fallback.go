package digest

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/goquery"
)

var _ skim.Fetcher = (*FallbackFetcher)(nil)

// FallbackFetcher fetches pages with a plain HTTP fetcher and only renders
// them in a browser when the static page carries too little paragraph text,
// as happens with articles assembled by JavaScript.
type FallbackFetcher struct {
	Static   skim.Fetcher
	Rendered skim.Fetcher

	// MinChars is the paragraph text, in characters, a static page needs to
	// be used as is. Zero selects skim.DefaultPolicy's MinInputLength.
	MinChars int

	// MinParagraphLength is passed to goquery.Paragraphs when measuring.
	MinParagraphLength int
}

// Fetch returns the static page when it has enough text. Otherwise it
// renders the page and returns whichever version has more paragraph text.
// A rendering failure falls back to the static page when there is one.
func (f *FallbackFetcher) Fetch(ctx context.Context, url string) (string, error) {
	minChars := f.MinChars
	if minChars <= 0 {
		minChars = skim.DefaultPolicy().MinInputLength
	}

	static, staticErr := f.Static.Fetch(ctx, url)
	staticLen := 0
	if staticErr == nil {
		staticLen = f.textLength(static)
		if staticLen >= minChars {
			return static, nil
		}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rendered, err := f.Rendered.Fetch(ctx, url)
	if err != nil {
		if staticErr == nil {
			return static, nil
		}
		return "", err
	}

	if staticErr == nil && staticLen >= f.textLength(rendered) {
		return static, nil
	}
	return rendered, nil
}

// Close closes both fetchers.
func (f *FallbackFetcher) Close() error {
	return errors.Join(f.Static.Close(), f.Rendered.Close())
}

func (f *FallbackFetcher) textLength(html string) int {
	text, err := goquery.Paragraphs(html, f.MinParagraphLength)
	if err != nil {
		return 0
	}
	return utf8.RuneCountInString(text)
}
