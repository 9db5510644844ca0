package skim

import (
	"strings"
	"unicode"
)

// Stemmer reduces a normalized word to its stem so that inflected forms
// such as "council" and "councils" count as one term.
type Stemmer interface {
	Stem(word string) string
}

// Tokenizer turns free text into normalized scoring tokens.
// A Tokenizer is immutable and safe for concurrent use.
type Tokenizer struct {
	stopwords StopwordSet
	stemmer   Stemmer
}

// NewTokenizer returns a Tokenizer that drops the given stopwords.
// A nil set selects DefaultStopwords.
func NewTokenizer(stopwords StopwordSet) *Tokenizer {
	if stopwords == nil {
		stopwords = DefaultStopwords()
	}
	return &Tokenizer{stopwords: stopwords}
}

// WithStemmer returns a copy of t that stems every token kept after
// stopword removal. A nil stemmer disables stemming.
func (t *Tokenizer) WithStemmer(stemmer Stemmer) *Tokenizer {
	return &Tokenizer{stopwords: t.stopwords, stemmer: stemmer}
}

// Normalize lower-cases text, deletes every rune that is neither a Latin
// letter nor whitespace, splits on whitespace and drops stopwords.
//
// Deleted runes do not introduce word boundaries, so "well-known" becomes
// the single token "wellknown" and "3 cats" becomes "cats". Stemming, when
// configured, applies after stopword removal.
func (t *Tokenizer) Normalize(text string) []string {
	if text == "" {
		return nil
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || unicode.IsSpace(r) {
			sb.WriteRune(r)
		}
	}

	var tokens []string
	for _, word := range strings.Fields(sb.String()) {
		if word == "" || t.stopwords.Contains(word) {
			continue
		}
		if t.stemmer != nil {
			word = t.stemmer.Stem(word)
		}
		tokens = append(tokens, word)
	}
	return tokens
}
