package main

import (
	"errors"

	skimmcp "github.com/fwojciec/skim/mcp"
)

// Run executes the mcp command, serving over stdin and stdout until the
// client disconnects or the context is canceled.
func (c *MCPCmd) Run(deps *Dependencies) error {
	server, err := skimmcp.NewServer(deps.Summaries, deps.Records)
	if err != nil {
		return err
	}

	err = server.Run(deps.Ctx)
	if deps.Ctx.Err() != nil && errors.Is(err, deps.Ctx.Err()) {
		return nil
	}
	return err
}
