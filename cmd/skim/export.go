package main

import (
	"fmt"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	filter := skim.RecordFilter{}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skim.ErrorMessage(err))
		return err
	}

	exporter := fs.NewExporter(c.Dir)
	for _, r := range records {
		if err := exporter.Save(deps.Ctx, r); err != nil {
			_ = exporter.Abort()
			fmt.Fprintf(deps.Stderr, "error: exporting %s: %v\n", r.ID, err)
			return err
		}
	}

	if err := exporter.Commit(); err != nil {
		_ = exporter.Abort()
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d summaries to %s\n", exporter.Count(), c.Dir)
	return nil
}
