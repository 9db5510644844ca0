package skim

import "strings"

// Summarizer produces extractive summaries of single documents.
// It holds only immutable configuration and is safe for concurrent use;
// every call builds its own frequency table.
type Summarizer struct {
	tokenizer *Tokenizer
	segmenter *Segmenter
}

// SummarizerOption configures a Summarizer.
type SummarizerOption func(*summarizerConfig)

type summarizerConfig struct {
	stopwords   StopwordSet
	terminators string
	stemmer     Stemmer
}

// WithStopwords replaces the default stopword set.
func WithStopwords(stopwords StopwordSet) SummarizerOption {
	return func(c *summarizerConfig) {
		c.stopwords = stopwords
	}
}

// WithTerminators replaces the default sentence terminators.
func WithTerminators(terminators string) SummarizerOption {
	return func(c *summarizerConfig) {
		c.terminators = terminators
	}
}

// WithStemmer stems scoring tokens so inflected forms share a count.
// Summaries are unstemmed by default.
func WithStemmer(stemmer Stemmer) SummarizerOption {
	return func(c *summarizerConfig) {
		c.stemmer = stemmer
	}
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(opts ...SummarizerOption) *Summarizer {
	var cfg summarizerConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Summarizer{
		tokenizer: NewTokenizer(cfg.stopwords).WithStemmer(cfg.stemmer),
		segmenter: NewSegmenter(cfg.terminators),
	}
}

// Tokenizer returns the tokenizer used for scoring.
func (s *Summarizer) Tokenizer() *Tokenizer {
	return s.tokenizer
}

// Segmenter returns the segmenter used for sentence splitting.
func (s *Summarizer) Segmenter() *Segmenter {
	return s.segmenter
}

// Extract returns the topN highest scoring sentences of document, highest
// score first. Returns EINVALID if the document is blank.
func (s *Summarizer) Extract(document string, topN int) ([]ScoredSentence, error) {
	if strings.TrimSpace(document) == "" {
		return nil, Errorf(EINVALID, "summarization error: document is empty")
	}

	sentences := s.segmenter.Segment(document)
	if len(sentences) == 0 {
		return nil, Errorf(EINVALID, "summarization error: no sentences found")
	}

	table := BuildFrequencyTable(s.tokenizer, document)
	return SelectTop(ScoreSentences(s.tokenizer, sentences, table), topN), nil
}

// Summarize returns the topN most salient sentences of document joined by
// single spaces, highest score first.
func (s *Summarizer) Summarize(document string, topN int) (string, error) {
	top, err := s.Extract(document, topN)
	if err != nil {
		return "", err
	}
	return JoinSentences(top), nil
}

// JoinSentences joins the sentence texts with single spaces.
func JoinSentences(sentences []ScoredSentence) string {
	texts := make([]string, len(sentences))
	for i, s := range sentences {
		texts[i] = s.Text
	}
	return strings.Join(texts, " ")
}
