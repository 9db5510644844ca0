package main

import (
	"fmt"

	"github.com/fwojciec/skim"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return skim.Errorf(skim.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Records.DeleteRecord(deps.Ctx, c.ID); err != nil {
		if skim.ErrorCode(err) == skim.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: summary %q not found. Use 'skim history' to see stored summaries.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", skim.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted summary %s\n", c.ID)
	return nil
}
