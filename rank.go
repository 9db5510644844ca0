package skim

import (
	"sort"
	"strings"
)

// DefaultTopN is the number of sentences selected when none is requested.
const DefaultTopN = 3

// ScoredSentence pairs a sentence with its relevance score.
type ScoredSentence struct {
	Text     string `json:"text"`
	Score    int    `json:"score"`
	Position int    `json:"position"` // Index in segmentation order
}

// ScoreSentences scores each sentence as the sum of the table counts of its
// normalized tokens. Text is trimmed; Position records the input index.
func ScoreSentences(tok *Tokenizer, sentences []string, table FrequencyTable) []ScoredSentence {
	scored := make([]ScoredSentence, len(sentences))
	for i, sentence := range sentences {
		score := 0
		for _, token := range tok.Normalize(sentence) {
			score += table.Count(token)
		}
		scored[i] = ScoredSentence{
			Text:     strings.TrimSpace(sentence),
			Score:    score,
			Position: i,
		}
	}
	return scored
}

// SelectTop orders scored sentences by descending score and returns the
// first topN. The sort is stable: equal scores keep their original order.
// A non-positive topN selects DefaultTopN. The input slice is not modified.
func SelectTop(scored []ScoredSentence, topN int) []ScoredSentence {
	if topN <= 0 {
		topN = DefaultTopN
	}

	ranked := make([]ScoredSentence, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if topN < len(ranked) {
		ranked = ranked[:topN]
	}
	return ranked
}

// Rank returns the trimmed text of the topN highest scoring sentences,
// highest score first. The result is not restored to document order.
func Rank(tok *Tokenizer, sentences []string, table FrequencyTable, topN int) []string {
	top := SelectTop(ScoreSentences(tok, sentences, table), topN)

	texts := make([]string, len(top))
	for i, s := range top {
		texts[i] = s.Text
	}
	return texts
}
