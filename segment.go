package skim

import "strings"

// DefaultTerminators are the runes that end a sentence.
const DefaultTerminators = ".!?\n"

// Segmenter splits documents into sentence-like units.
// A Segmenter is immutable and safe for concurrent use.
type Segmenter struct {
	terminators string
}

// NewSegmenter returns a Segmenter that ends units at any rune in
// terminators. An empty string selects DefaultTerminators.
func NewSegmenter(terminators string) *Segmenter {
	if terminators == "" {
		terminators = DefaultTerminators
	}
	return &Segmenter{terminators: terminators}
}

// Segment splits document into units in order of appearance. A unit ends
// with a run of one or more terminators, and the run stays attached to the
// unit. Trailing text without a terminator forms the last unit. Blank units
// are skipped but units are otherwise returned untrimmed.
//
// A non-empty document always yields at least one unit: when nothing else
// qualifies, the whole document is returned as the only unit.
func (s *Segmenter) Segment(document string) []string {
	var units []string
	start := 0
	inRun := false

	for i, r := range document {
		if strings.ContainsRune(s.terminators, r) {
			inRun = true
			continue
		}
		if inRun {
			units = appendUnit(units, document[start:i])
			start = i
			inRun = false
		}
	}
	if start < len(document) {
		units = appendUnit(units, document[start:])
	}

	if len(units) == 0 && document != "" {
		return []string{document}
	}
	return units
}

func appendUnit(units []string, unit string) []string {
	if strings.TrimSpace(unit) == "" {
		return units
	}
	return append(units, unit)
}
