// Package digest orchestrates summarization requests. It coordinates
// scraping, length policy checks, the summarization core, translation and
// storage of results.
package digest

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/fwojciec/skim"
)

var _ skim.SummaryService = (*Service)(nil)

// Service handles summarization requests at the service boundary.
type Service struct {
	Summarizer *skim.Summarizer
	Scraper    skim.Scraper       // Optional; required for URL requests
	Translator skim.Translator    // Optional
	Records    skim.RecordService // Optional
	Policy     skim.Policy

	// TargetLang is the translation language used when a request names none.
	// Empty disables translation for such requests.
	TargetLang string
}

// NewService returns a Service with the given core and policy.
// Collaborators are assigned through the exported fields.
func NewService(summarizer *skim.Summarizer, policy skim.Policy) *Service {
	return &Service{
		Summarizer: summarizer,
		Policy:     policy,
	}
}

// Summarize validates req, obtains its text, enforces the length policy,
// runs the summarization core and then translates and stores the result
// when those collaborators are configured. No result is returned on failure.
func (s *Service) Summarize(ctx context.Context, req skim.Request) (*skim.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	topN, err := s.Policy.ResolveTopN(req.TopN)
	if err != nil {
		return nil, err
	}
	lang := req.TargetLang
	if lang == "" {
		lang = s.TargetLang
	}
	if lang != "" && s.Translator == nil {
		return nil, skim.Errorf(skim.EINVALID, "translation to %q is not available: no translator is configured", lang)
	}

	result := &skim.Result{}
	text := req.Text
	if req.URL != "" {
		if s.Scraper == nil {
			return nil, skim.Errorf(skim.EINVALID, "url summarization is not available")
		}
		article, err := s.Scraper.Scrape(ctx, req.URL)
		if err != nil {
			return nil, err
		}
		text = article.Text
		result.SourceURL = article.URL
		result.Title = article.Title
	}

	if err := s.Policy.CheckInput(text); err != nil {
		return nil, err
	}

	sentences, err := s.Summarizer.Extract(text, topN)
	if err != nil {
		return nil, err
	}
	summary := skim.JoinSentences(sentences)
	if err := s.Policy.CheckSummary(summary); err != nil {
		return nil, err
	}

	result.Summary = summary
	result.Sentences = sentences
	result.OriginalLength = utf8.RuneCountInString(text)
	result.SummaryLength = utf8.RuneCountInString(summary)

	if lang != "" {
		translated, err := s.Translator.Translate(ctx, summary, lang)
		if err != nil {
			return nil, translationError(err)
		}
		result.TranslatedSummary = translated
		result.TargetLang = lang
	}

	if s.Records != nil {
		record := &skim.Record{
			SourceURL:         result.SourceURL,
			Title:             result.Title,
			OriginalText:      text,
			Summary:           result.Summary,
			TranslatedSummary: result.TranslatedSummary,
			TargetLang:        result.TargetLang,
			TopN:              topN,
			OriginalLength:    result.OriginalLength,
			SummaryLength:     result.SummaryLength,
		}
		if err := s.Records.CreateRecord(ctx, record); err != nil {
			return nil, fmt.Errorf("save record: %w", err)
		}
		result.ID = record.ID
	}

	return result, nil
}

func translationError(err error) error {
	msg := err.Error()
	if code := skim.ErrorCode(err); code != skim.EINTERNAL {
		msg = skim.ErrorMessage(err)
	}
	return skim.Errorf(skim.EUPSTREAM, "translation failed: %s", msg)
}
