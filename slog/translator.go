package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/skim"
)

// Ensure LoggingTranslator implements skim.Translator.
var _ skim.Translator = (*LoggingTranslator)(nil)

// LoggingTranslator wraps a Translator with logging.
type LoggingTranslator struct {
	next   skim.Translator
	logger *slog.Logger
}

// NewLoggingTranslator creates a new LoggingTranslator.
func NewLoggingTranslator(next skim.Translator, logger *slog.Logger) *LoggingTranslator {
	return &LoggingTranslator{next: next, logger: logger}
}

// Translate delegates to the wrapped translator and logs the call.
func (t *LoggingTranslator) Translate(ctx context.Context, text, targetLang string) (translated string, err error) {
	defer func(begin time.Time) {
		t.logger.Info("translate",
			"lang", targetLang,
			"chars", len([]rune(text)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return t.next.Translate(ctx, text, targetLang)
}
