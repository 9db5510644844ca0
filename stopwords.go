package skim

import "strings"

// StopwordSet is a set of function words excluded from scoring.
// Entries are stored lower-cased; lookups expect lower-cased tokens.
type StopwordSet map[string]struct{}

// NewStopwordSet builds a set from the given words.
// Words are lower-cased and trimmed; empty entries are ignored.
func NewStopwordSet(words ...string) StopwordSet {
	set := make(StopwordSet, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether token is a stopword.
func (s StopwordSet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Len returns the number of words in the set.
func (s StopwordSet) Len() int {
	return len(s)
}

// DefaultStopwords returns a new copy of the built-in English stopword list.
// Contractions are listed in their apostrophe-free form because the
// tokenizer deletes apostrophes before stopword lookup.
func DefaultStopwords() StopwordSet {
	return NewStopwordSet(englishStopwords...)
}

var englishStopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
	"you", "your", "yours", "yourself", "yourselves",
	"he", "him", "his", "himself", "she", "her", "hers", "herself",
	"it", "its", "itself", "they", "them", "their", "theirs", "themselves",
	"what", "which", "who", "whom", "this", "that", "these", "those",
	"am", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as", "until", "while",
	"of", "at", "by", "for", "with", "about", "against", "between", "into",
	"through", "during", "before", "after", "above", "below", "to", "from",
	"up", "down", "in", "out", "on", "off", "over", "under",
	"again", "further", "then", "once", "here", "there", "when", "where", "why", "how",
	"all", "any", "both", "each", "few", "more", "most", "other", "some", "such",
	"no", "nor", "not", "only", "own", "same", "so", "than", "too", "very",
	"s", "t", "can", "will", "just", "don", "should", "now",
	"d", "ll", "m", "o", "re", "ve", "y",
	"ain", "aren", "couldn", "didn", "doesn", "hadn", "hasn", "haven", "isn",
	"ma", "mightn", "mustn", "needn", "shan", "shouldn", "wasn", "weren", "won", "wouldn",
}
