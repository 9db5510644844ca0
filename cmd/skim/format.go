package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/skim"
)

// truncate shortens s for display, keeping its end, which for URLs is the
// most informative part.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 4 {
		return string(runes[:maxLen])
	}
	return "..." + string(runes[len(runes)-maxLen+3:])
}

// formatTokens formats a token count in human-readable form.
func formatTokens(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("~%d tokens", tokens)
	}
	return fmt.Sprintf("~%dk tokens", (tokens+500)/1000)
}

// formatReduction describes how much shorter the summary is than its source.
func formatReduction(original, summary int) string {
	if original <= 0 {
		return fmt.Sprintf("%d chars", summary)
	}
	pct := 100 - (summary*100)/original
	return fmt.Sprintf("%d → %d chars (%d%% shorter)", original, summary, pct)
}

// printResult writes a summary for humans: an optional heading, the summary
// and its translation.
func printResult(w io.Writer, result *skim.Result) {
	if result.Title != "" {
		fmt.Fprintf(w, "%s\n", result.Title)
	}
	if result.SourceURL != "" {
		fmt.Fprintf(w, "%s\n", result.SourceURL)
	}
	if result.Title != "" || result.SourceURL != "" {
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, result.Summary)
	if result.TranslatedSummary != "" {
		fmt.Fprintf(w, "\n[%s] %s\n", result.TargetLang, result.TranslatedSummary)
	}
}

// printScores lists the selected sentences with their scores in ranked order.
func printScores(w io.Writer, sentences []skim.ScoredSentence) {
	for i, s := range sentences {
		fmt.Fprintf(w, "%2d. score %-4d #%-3d %s\n", i+1, s.Score, s.Position, s.Text)
	}
}

// displayTitle returns the record's title, falling back to its URL and then
// to the start of its summary.
func displayTitle(r *skim.Record, maxLen int) string {
	switch {
	case r.Title != "":
		return truncate(r.Title, maxLen)
	case r.SourceURL != "":
		return truncate(r.SourceURL, maxLen)
	}
	summary := strings.Join(strings.Fields(r.Summary), " ")
	if utf8.RuneCountInString(summary) <= maxLen {
		return summary
	}
	return string([]rune(summary)[:maxLen-3]) + "..."
}
