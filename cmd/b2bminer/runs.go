package main

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	miner "github.com/Raavan18/b2b-data-miner"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	filter := miner.RunFilter{Offset: c.Offset, Limit: c.Limit}
	if c.Domain != "" {
		filter.Domain = &c.Domain
	}

	runs, err := deps.Reports.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", miner.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'b2bminer mine' to create one.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Domain", "Company", "Contacts", "Created"})
	for _, run := range runs {
		t.AppendRow(table.Row{
			run.ID,
			run.Domain,
			run.CompanyName,
			run.ContactsAccepted,
			run.CreatedAt.Format(time.RFC3339),
		})
	}
	t.Render()

	return nil
}
