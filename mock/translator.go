package mock

import (
	"context"

	"github.com/fwojciec/skim"
)

var _ skim.Translator = (*Translator)(nil)

// Translator is a mock implementation of skim.Translator.
type Translator struct {
	TranslateFn func(ctx context.Context, text, targetLang string) (string, error)
}

func (t *Translator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	return t.TranslateFn(ctx, text, targetLang)
}
