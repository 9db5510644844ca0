package skim

import (
	"strings"
	"unicode/utf8"
)

// Policy holds the length thresholds enforced around the summarization core.
// These are service-level rules rather than properties of the algorithm.
type Policy struct {
	// MinInputLength is the minimum number of characters of source text.
	MinInputLength int `json:"minInputLength"`

	// MinSummaryLength is the minimum number of characters a summary must
	// have; shorter summaries indicate a degenerate source document.
	MinSummaryLength int `json:"minSummaryLength"`

	// MinParagraphLength is the minimum length of a scraped paragraph.
	MinParagraphLength int `json:"minParagraphLength"`

	// DefaultTopN is used when a request does not specify a sentence count.
	DefaultTopN int `json:"defaultTopN"`

	// MaxTopN caps the sentence count a request may ask for.
	MaxTopN int `json:"maxTopN"`
}

// DefaultPolicy returns the standard thresholds.
func DefaultPolicy() Policy {
	return Policy{
		MinInputLength:     100,
		MinSummaryLength:   50,
		MinParagraphLength: 40,
		DefaultTopN:        DefaultTopN,
		MaxTopN:            20,
	}
}

// CheckInput returns ETOOSHORT if text is shorter than MinInputLength.
// Surrounding whitespace is not counted.
func (p Policy) CheckInput(text string) error {
	if n := utf8.RuneCountInString(strings.TrimSpace(text)); n < p.MinInputLength {
		return Errorf(ETOOSHORT, "text must be at least %d characters long (got %d)", p.MinInputLength, n)
	}
	return nil
}

// CheckSummary returns EDEGENERATE if summary is shorter than MinSummaryLength.
func (p Policy) CheckSummary(summary string) error {
	if n := utf8.RuneCountInString(summary); n < p.MinSummaryLength {
		return Errorf(EDEGENERATE, "generated summary is too short (%d characters); the source text may not contain enough content", n)
	}
	return nil
}

// ResolveTopN returns the sentence count to use for a request.
// Non-positive values select DefaultTopN; values above MaxTopN are rejected.
func (p Policy) ResolveTopN(n int) (int, error) {
	if n <= 0 {
		if p.DefaultTopN > 0 {
			return p.DefaultTopN, nil
		}
		return DefaultTopN, nil
	}
	if p.MaxTopN > 0 && n > p.MaxTopN {
		return 0, Errorf(EINVALID, "topN must be at most %d", p.MaxTopN)
	}
	return n, nil
}
