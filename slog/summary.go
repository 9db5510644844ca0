package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/skim"
)

// Ensure LoggingSummaryService implements skim.SummaryService.
var _ skim.SummaryService = (*LoggingSummaryService)(nil)

// LoggingSummaryService wraps a SummaryService with logging. Rejected
// input is logged at warn level and unexpected failures at error level.
type LoggingSummaryService struct {
	next   skim.SummaryService
	logger *slog.Logger
}

// NewLoggingSummaryService creates a new LoggingSummaryService.
func NewLoggingSummaryService(next skim.SummaryService, logger *slog.Logger) *LoggingSummaryService {
	return &LoggingSummaryService{next: next, logger: logger}
}

// Summarize delegates to the wrapped service and logs the outcome.
func (s *LoggingSummaryService) Summarize(ctx context.Context, req skim.Request) (result *skim.Result, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", req.URL,
			"top_n", req.TopN,
			"duration", time.Since(begin),
		}
		switch {
		case err == nil:
			attrs = append(attrs,
				"original_length", result.OriginalLength,
				"summary_length", result.SummaryLength,
			)
			s.logger.Info("summarize", attrs...)
		case skim.ErrorCode(err) == skim.EINTERNAL:
			s.logger.Error("summarize", append(attrs, "err", err)...)
		default:
			s.logger.Warn("summarize", append(attrs, "code", skim.ErrorCode(err), "err", skim.ErrorMessage(err))...)
		}
	}(time.Now())
	return s.next.Summarize(ctx, req)
}
