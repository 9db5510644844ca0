package digest_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/digest"
	"github.com/fwojciec/skim/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const parksText = "The city council approved a new budget for public parks on Monday. " +
	"Parks will receive funding for new trees and playgrounds. " +
	"Residents said the parks budget was long overdue. " +
	"The vote passed with a large majority."

func newService() *digest.Service {
	return digest.NewService(skim.NewSummarizer(), skim.DefaultPolicy())
}

func TestService_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("summarizes text", func(t *testing.T) {
		t.Parallel()

		svc := newService()

		result, err := svc.Summarize(context.Background(), skim.Request{Text: parksText})

		require.NoError(t, err)
		assert.Len(t, result.Sentences, 3)
		assert.Equal(t, skim.JoinSentences(result.Sentences), result.Summary)
		assert.Equal(t, len(parksText), result.OriginalLength)
		assert.Equal(t, len(result.Summary), result.SummaryLength)
		assert.Empty(t, result.TranslatedSummary)
		assert.Empty(t, result.ID)
	})

	t.Run("matches the summarization core", func(t *testing.T) {
		t.Parallel()

		svc := newService()

		result, err := svc.Summarize(context.Background(), skim.Request{Text: parksText, TopN: 2})
		require.NoError(t, err)

		want, err := skim.NewSummarizer().Summarize(parksText, 2)
		require.NoError(t, err)
		assert.Equal(t, want, result.Summary)
	})

	t.Run("rejects short input with ETOOSHORT", func(t *testing.T) {
		t.Parallel()

		svc := newService()

		result, err := svc.Summarize(context.Background(), skim.Request{Text: "Too short to summarize."})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, skim.ETOOSHORT, skim.ErrorCode(err))
	})

	t.Run("accepts input at exactly the minimum length", func(t *testing.T) {
		t.Parallel()

		svc := newService()
		atLimit := "The city council approved the new budget for public parks on Monday, after a long and lively debate."
		belowLimit := strings.Replace(atLimit, ",", "", 1)
		require.Len(t, atLimit, 100)
		require.Len(t, belowLimit, 99)

		_, err := svc.Summarize(context.Background(), skim.Request{Text: belowLimit})
		assert.Equal(t, skim.ETOOSHORT, skim.ErrorCode(err))

		result, err := svc.Summarize(context.Background(), skim.Request{Text: atLimit})
		require.NoError(t, err)
		assert.Equal(t, atLimit, result.Summary)
	})

	t.Run("rejects degenerate summaries with EDEGENERATE", func(t *testing.T) {
		t.Parallel()

		svc := newService()

		_, err := svc.Summarize(context.Background(), skim.Request{Text: strings.Repeat("Go go go! ", 12)})

		require.Error(t, err)
		assert.Equal(t, skim.EDEGENERATE, skim.ErrorCode(err))
	})

	t.Run("rejects requests with both text and url", func(t *testing.T) {
		t.Parallel()

		svc := newService()

		_, err := svc.Summarize(context.Background(), skim.Request{Text: parksText, URL: "https://example.com"})

		require.Error(t, err)
		assert.Equal(t, skim.EINVALID, skim.ErrorCode(err))
	})

	t.Run("rejects topN above the policy maximum", func(t *testing.T) {
		t.Parallel()

		svc := newService()

		_, err := svc.Summarize(context.Background(), skim.Request{Text: parksText, TopN: 21})

		require.Error(t, err)
		assert.Equal(t, skim.EINVALID, skim.ErrorCode(err))
	})

	t.Run("summarizes scraped article text", func(t *testing.T) {
		t.Parallel()

		svc := newService()
		svc.Scraper = &mock.Scraper{
			ScrapeFn: func(_ context.Context, url string) (*skim.Article, error) {
				return &skim.Article{URL: url, Title: "Parks", Text: parksText}, nil
			},
		}

		result, err := svc.Summarize(context.Background(), skim.Request{URL: "https://news.example.com/parks"})

		require.NoError(t, err)
		assert.Equal(t, "https://news.example.com/parks", result.SourceURL)
		assert.Equal(t, "Parks", result.Title)
		assert.NotEmpty(t, result.Summary)
	})

	t.Run("propagates scrape failures", func(t *testing.T) {
		t.Parallel()

		svc := newService()
		svc.Scraper = &mock.Scraper{
			ScrapeFn: func(_ context.Context, _ string) (*skim.Article, error) {
				return nil, skim.Errorf(skim.EINVALID, "could not retrieve page")
			},
		}

		_, err := svc.Summarize(context.Background(), skim.Request{URL: "https://news.example.com/parks"})

		require.Error(t, err)
		assert.Equal(t, skim.EINVALID, skim.ErrorCode(err))
	})

	t.Run("rejects url requests without a scraper", func(t *testing.T) {
		t.Parallel()

		svc := newService()

		_, err := svc.Summarize(context.Background(), skim.Request{URL: "https://news.example.com/parks"})

		require.Error(t, err)
		assert.Equal(t, skim.EINVALID, skim.ErrorCode(err))
	})

	t.Run("scraped pages with too little text are ETOOSHORT", func(t *testing.T) {
		t.Parallel()

		svc := newService()
		svc.Scraper = &mock.Scraper{
			ScrapeFn: func(_ context.Context, url string) (*skim.Article, error) {
				return &skim.Article{URL: url}, nil
			},
		}

		_, err := svc.Summarize(context.Background(), skim.Request{URL: "https://news.example.com/empty"})

		require.Error(t, err)
		assert.Equal(t, skim.ETOOSHORT, skim.ErrorCode(err))
	})

	t.Run("translates the summary when a language is requested", func(t *testing.T) {
		t.Parallel()

		svc := newService()
		var gotText, gotLang string
		svc.Translator = &mock.Translator{
			TranslateFn: func(_ context.Context, text, lang string) (string, error) {
				gotText, gotLang = text, lang
				return "resumen traducido", nil
			},
		}

		result, err := svc.Summarize(context.Background(), skim.Request{Text: parksText, TargetLang: "es"})

		require.NoError(t, err)
		assert.Equal(t, result.Summary, gotText)
		assert.Equal(t, "es", gotLang)
		assert.Equal(t, "resumen traducido", result.TranslatedSummary)
		assert.Equal(t, "es", result.TargetLang)
	})

	t.Run("falls back to the service target language", func(t *testing.T) {
		t.Parallel()

		svc := newService()
		svc.TargetLang = "de"
		svc.Translator = &mock.Translator{
			TranslateFn: func(_ context.Context, _, lang string) (string, error) {
				return "übersetzt " + lang, nil
			},
		}

		result, err := svc.Summarize(context.Background(), skim.Request{Text: parksText})

		require.NoError(t, err)
		assert.Equal(t, "übersetzt de", result.TranslatedSummary)
	})

	t.Run("skips translation without a target language", func(t *testing.T) {
		t.Parallel()

		svc := newService()
		svc.Translator = &mock.Translator{
			TranslateFn: func(_ context.Context, _, _ string) (string, error) {
				t.Fatal("translate should not be called")
				return "", nil
			},
		}

		result, err := svc.Summarize(context.Background(), skim.Request{Text: parksText})

		require.NoError(t, err)
		assert.Empty(t, result.TranslatedSummary)
	})

	t.Run("rejects a target language without a translator", func(t *testing.T) {
		t.Parallel()

		svc := newService()

		result, err := svc.Summarize(context.Background(), skim.Request{Text: parksText, TargetLang: "ur"})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, skim.EINVALID, skim.ErrorCode(err))
		assert.Contains(t, skim.ErrorMessage(err), "ur")
	})

	t.Run("rejects a default target language without a translator", func(t *testing.T) {
		t.Parallel()

		svc := newService()
		svc.TargetLang = "de"
		svc.Scraper = &mock.Scraper{
			ScrapeFn: func(context.Context, string) (*skim.Article, error) {
				t.Fatal("scrape should not be called")
				return nil, nil
			},
		}

		_, err := svc.Summarize(context.Background(), skim.Request{URL: "https://news.example.com/parks"})

		require.Error(t, err)
		assert.Equal(t, skim.EINVALID, skim.ErrorCode(err))
	})

	t.Run("translation failure is EUPSTREAM", func(t *testing.T) {
		t.Parallel()

		svc := newService()
		svc.Translator = &mock.Translator{
			TranslateFn: func(_ context.Context, _, _ string) (string, error) {
				return "", errors.New("quota exceeded")
			},
		}

		result, err := svc.Summarize(context.Background(), skim.Request{Text: parksText, TargetLang: "es"})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, skim.EUPSTREAM, skim.ErrorCode(err))
		assert.Contains(t, skim.ErrorMessage(err), "quota exceeded")
	})

	t.Run("stores the result and returns its ID", func(t *testing.T) {
		t.Parallel()

		svc := newService()
		var saved *skim.Record
		svc.Records = &mock.RecordService{
			CreateRecordFn: func(_ context.Context, r *skim.Record) error {
				r.ID = "rec-1"
				saved = r
				return nil
			},
		}

		result, err := svc.Summarize(context.Background(), skim.Request{Text: parksText, TopN: 2})

		require.NoError(t, err)
		assert.Equal(t, "rec-1", result.ID)
		require.NotNil(t, saved)
		assert.Equal(t, parksText, saved.OriginalText)
		assert.Equal(t, result.Summary, saved.Summary)
		assert.Equal(t, 2, saved.TopN)
	})

	t.Run("storage failure is EINTERNAL", func(t *testing.T) {
		t.Parallel()

		svc := newService()
		svc.Records = &mock.RecordService{
			CreateRecordFn: func(_ context.Context, _ *skim.Record) error {
				return errors.New("disk full")
			},
		}

		result, err := svc.Summarize(context.Background(), skim.Request{Text: parksText})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, skim.EINTERNAL, skim.ErrorCode(err))
	})
}
