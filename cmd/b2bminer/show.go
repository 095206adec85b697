package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	miner "github.com/Raavan18/b2b-data-miner"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	run, err := deps.Reports.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		if miner.ErrorCode(err) == miner.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'b2bminer runs' to see saved runs.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", miner.ErrorMessage(err))
		return err
	}

	report := run.Report

	if c.JSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(data))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%s (%s) mined %s\n",
		report.CompanyName, report.CompanyDomain, run.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(deps.Stdout, "Discovered %d candidates, fetched %d pages, accepted %d of %d contacts\n",
		report.Meta.CandidatesDiscovered, report.Meta.URLsFetched,
		report.Meta.ContactsAccepted, report.Meta.ContactsExtracted)

	if len(report.Contacts) == 0 {
		fmt.Fprintln(deps.Stdout, "No contacts accepted.")
	} else {
		t := table.NewWriter()
		t.SetOutputMirror(deps.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Email", "Phone", "Role", "Confidence", "Evidence"})
		for _, contact := range report.Contacts {
			t.AppendRow(table.Row{
				contact.Email,
				contact.Phone,
				contact.Role,
				contact.Confidence,
				len(contact.EvidenceURLs),
			})
		}
		t.Render()
	}

	if len(report.People) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(deps.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Name", "Title", "Persona", "Confidence"})
		for _, person := range report.People {
			t.AppendRow(table.Row{person.Name, person.Title, person.Persona, person.Confidence})
		}
		t.Render()
	}

	return nil
}
