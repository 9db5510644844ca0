package skim

import "context"

// Translator translates summaries into another language.
type Translator interface {
	// Translate returns text translated into targetLang, given as a language
	// name or code (e.g., "es", "German").
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// TokenCounter counts model tokens in text, used to report how much a
// summary shortens its source.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
