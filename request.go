package skim

import (
	"context"
	"net/url"
	"strings"
)

// Request describes a summarization request at the service boundary.
// Exactly one of Text or URL must be set.
type Request struct {
	Text       string `json:"text,omitempty"`
	URL        string `json:"url,omitempty"`
	TopN       int    `json:"topN,omitempty"`
	TargetLang string `json:"targetLang,omitempty"`
}

// Validate returns an error if the request contains invalid fields.
func (r *Request) Validate() error {
	hasText := strings.TrimSpace(r.Text) != ""
	hasURL := strings.TrimSpace(r.URL) != ""

	if r.TopN < 0 {
		return Errorf(EINVALID, "topN must not be negative")
	}

	switch {
	case hasText && hasURL:
		return Errorf(EINVALID, "provide either text or url, not both")
	case !hasText && !hasURL:
		return Errorf(EINVALID, "text or url required")
	case hasURL:
		return ValidateURL(r.URL)
	}
	return nil
}

// ValidateURL returns EINVALID unless rawURL is an absolute http(s) URL.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return Errorf(EINVALID, "invalid url: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "url must use http or https")
	}
	if u.Host == "" {
		return Errorf(EINVALID, "url host required")
	}
	return nil
}

// Result is the outcome of a successful summarization request.
type Result struct {
	ID                string           `json:"id,omitempty"`
	SourceURL         string           `json:"sourceUrl,omitempty"`
	Title             string           `json:"title,omitempty"`
	Summary           string           `json:"summary"`
	TranslatedSummary string           `json:"translatedSummary"`
	TargetLang        string           `json:"targetLang,omitempty"`
	Sentences         []ScoredSentence `json:"sentences,omitempty"`
	OriginalLength    int              `json:"originalLength"`
	SummaryLength     int              `json:"summaryLength"`
}

// SummaryService handles summarization requests at the service boundary:
// it applies the length policy around the summarization core and
// coordinates scraping, translation and storage.
type SummaryService interface {
	// Summarize returns the summary for req.
	// Returns EINVALID, ETOOSHORT or EDEGENERATE for rejected input and
	// EUPSTREAM if translation fails.
	Summarize(ctx context.Context, req Request) (*Result, error)
}
