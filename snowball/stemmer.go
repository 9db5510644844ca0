// Package snowball stems scoring tokens with the Snowball algorithms.
package snowball

import (
	"github.com/fwojciec/skim"
	"github.com/kljensen/snowball"
)

// DefaultLanguage is the stemming language used when none is given.
const DefaultLanguage = "english"

var _ skim.Stemmer = (*Stemmer)(nil)

// Stemmer implements skim.Stemmer for one language.
type Stemmer struct {
	language string
}

// NewStemmer returns a Stemmer for language, such as "english" or "french".
// Returns EINVALID for languages the Snowball package does not support.
func NewStemmer(language string) (*Stemmer, error) {
	if language == "" {
		language = DefaultLanguage
	}
	if _, err := snowball.Stem("test", language, true); err != nil {
		return nil, skim.Errorf(skim.EINVALID, "unsupported stemming language %q", language)
	}
	return &Stemmer{language: language}, nil
}

// Stem returns the stem of word. Words the algorithm rejects are returned
// unchanged.
func (s *Stemmer) Stem(word string) string {
	stemmed, err := snowball.Stem(word, s.language, true)
	if err != nil || stemmed == "" {
		return word
	}
	return stemmed
}
