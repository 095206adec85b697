package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	miner "github.com/Raavan18/b2b-data-miner"
	"github.com/Raavan18/b2b-data-miner/fs"
	"github.com/Raavan18/b2b-data-miner/pipeline"
)

// progressURLWidth bounds URLs in progress lines so long tracking URLs
// don't wrap the terminal.
const progressURLWidth = 60

// Run executes the mine command. Progress goes to stderr so stdout stays
// clean JSON.
func (c *MineCmd) Run(deps *Dependencies) error {
	deps.Miner.Progress = func(event pipeline.ProgressEvent) {
		switch event.Type {
		case pipeline.ProgressDiscovering:
			fmt.Fprintf(deps.Stderr, "Searching %s...\n", event.URL)
		case pipeline.ProgressFetching:
			fmt.Fprintf(deps.Stderr, "Fetching %d pages\n", event.Total)
		case pipeline.ProgressFetched:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] %s\n",
				event.Completed, event.Total, pipeline.TruncateURL(event.URL, progressURLWidth))
		case pipeline.ProgressFetchFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] skip %s: %v\n",
				event.Completed, event.Total, pipeline.TruncateURL(event.URL, progressURLWidth), event.Error)
		case pipeline.ProgressScoring, pipeline.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	report, err := deps.Miner.Mine(deps.Ctx, c.Domain, c.CompanyName)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", miner.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stderr, "Accepted %d of %d extracted contacts\n",
		report.Meta.ContactsAccepted, report.Meta.ContactsExtracted)

	if c.Out != "" {
		writer := fs.NewWriter(c.Out)
		if err := writer.WriteReport(deps.Ctx, report); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", miner.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Report written to %s\n",
			filepath.Join(c.Out, fs.Filename(report.CompanyDomain)))
		return nil
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(data))

	return nil
}
