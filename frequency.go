package skim

// FrequencyTable maps a token to its number of occurrences across a whole
// document. Every stored count is positive; absent tokens count as zero.
type FrequencyTable map[string]int

// Count returns the frequency of token, or 0 when it never occurs.
func (f FrequencyTable) Count(token string) int {
	return f[token]
}

// BuildFrequencyTable normalizes the entire document once and counts each
// token. Counts ignore sentence boundaries, so terms that recur throughout
// the document dominate sentence scores.
func BuildFrequencyTable(tok *Tokenizer, document string) FrequencyTable {
	table := make(FrequencyTable)
	for _, token := range tok.Normalize(document) {
		table[token]++
	}
	return table
}
