package main

import (
	"fmt"

	"github.com/fwojciec/skim"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := skim.RecordFilter{Limit: c.Limit, Offset: c.Offset}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skim.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No summaries found. Use 'skim summarize' to create one.")
		return nil
	}

	for _, r := range records {
		lang := ""
		if r.TargetLang != "" {
			lang = " [" + r.TargetLang + "]"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s%s\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), displayTitle(r, 60), lang)
	}

	return nil
}
