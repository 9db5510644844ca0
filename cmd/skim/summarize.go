package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/skim"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	req := skim.Request{
		Text:       c.Text,
		URL:        c.URL,
		TopN:       c.TopN,
		TargetLang: c.Lang,
	}

	switch {
	case c.File != "":
		if c.Text != "" || c.URL != "" {
			fmt.Fprintln(deps.Stderr, "error: use only one of TEXT, --url and --file")
			return skim.Errorf(skim.EINVALID, "use only one of TEXT, --url and --file")
		}
		data, err := os.ReadFile(c.File)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		req.Text = string(data)
	case c.Text == "" && c.URL == "" && deps.Stdin != nil:
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: reading stdin: %v\n", err)
			return err
		}
		req.Text = string(data)
	}

	result, err := deps.Summaries.Summarize(deps.Ctx, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skim.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printResult(deps.Stdout, result)

	if c.Scores {
		fmt.Fprintln(deps.Stdout)
		printScores(deps.Stdout, result.Sentences)
	}

	stats := formatReduction(result.OriginalLength, result.SummaryLength)
	if c.Tokens && deps.Tokens != nil {
		tokens, err := deps.Tokens.CountTokens(deps.Ctx, result.Summary)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: counting tokens: %v\n", err)
		} else {
			stats += ", " + formatTokens(tokens)
		}
	}
	fmt.Fprintf(deps.Stderr, "\n%s\n", stats)

	if result.ID != "" {
		fmt.Fprintf(deps.Stderr, "Saved as %s\n", result.ID)
	}

	return nil
}
