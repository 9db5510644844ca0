package main

import (
	"fmt"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/digest"
)

// Run executes the prune command.
func (c *PruneCmd) Run(deps *Dependencies) error {
	if c.OlderThan <= 0 {
		fmt.Fprintln(deps.Stderr, "error: --older-than must be positive")
		return skim.Errorf(skim.EINVALID, "--older-than must be positive")
	}

	pruner := &digest.Pruner{Records: deps.Records, Retention: c.OlderThan}
	n, err := pruner.Prune(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skim.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %d summaries older than %s\n", n, c.OlderThan)
	return nil
}
