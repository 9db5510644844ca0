package main

import (
	"fmt"

	"github.com/fwojciec/skim/digest"
	skimhttp "github.com/fwojciec/skim/http"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := skimhttp.NewServer()
	server.Addr = c.Addr
	server.SummaryService = deps.Summaries
	server.RecordService = deps.Records
	server.Logger = deps.Logger

	if err := server.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	defer server.Close()

	if deps.Records != nil && c.Retention > 0 {
		pruner := &digest.Pruner{
			Records:   deps.Records,
			Retention: c.Retention,
			Logger:    deps.Logger,
		}
		if err := pruner.Start(deps.Ctx, c.PruneSchedule); err != nil {
			fmt.Fprintf(deps.Stderr, "error: invalid prune schedule %q: %v\n", c.PruneSchedule, err)
			return err
		}
		defer pruner.Stop()
	}

	fmt.Fprintf(deps.Stdout, "Listening on http://localhost:%d\n", server.Port())

	<-deps.Ctx.Done()
	return nil
}
