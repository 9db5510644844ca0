package main

import (
	"fmt"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/fs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	record, err := deps.Records.FindRecordByID(deps.Ctx, c.ID)
	if err != nil {
		if skim.ErrorCode(err) == skim.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: summary %q not found. Use 'skim history' to see stored summaries.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", skim.ErrorMessage(err))
		}
		return err
	}

	content, err := fs.FormatRecord(record)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	fmt.Fprint(deps.Stdout, content)

	if c.Full {
		fmt.Fprintf(deps.Stdout, "\n## Original\n\n%s\n", record.OriginalText)
	}

	return nil
}
