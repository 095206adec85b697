package miner

import (
	"context"
	"time"
)

// Meta holds the counters and URL lists collected during one pipeline run.
// URLsFetched counts fetch attempts, including those that failed.
type Meta struct {
	CandidatesDiscovered int      `json:"candidates_discovered"`
	URLsFetched          int      `json:"urls_fetched"`
	ContactsExtracted    int      `json:"contacts_extracted"`
	ContactsAccepted     int      `json:"contacts_accepted"`
	DiscoveryURLs        []string `json:"discovery_urls"`
	FetchURLs            []string `json:"fetch_urls"`
}

// Report is the final result of one pipeline run. It is created once and
// not mutated after return.
type Report struct {
	CompanyName   string           `json:"company_name"`
	CompanyDomain string           `json:"company_domain"`
	Contacts      []*MergedContact `json:"contacts"`
	People        []*Person        `json:"people,omitempty"`
	Meta          Meta             `json:"meta"`
}

// Validate returns an error if the report contains invalid fields.
func (r *Report) Validate() error {
	if r.CompanyDomain == "" {
		return Errorf(EINVALID, "report company domain required")
	}
	return nil
}

// Run represents one persisted pipeline invocation.
type Run struct {
	ID               string    `json:"id"`
	Domain           string    `json:"domain"`
	CompanyName      string    `json:"company_name"`
	ContactsAccepted int       `json:"contacts_accepted"`
	CreatedAt        time.Time `json:"created_at"`
	Report           *Report   `json:"report,omitempty"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Domain == "" {
		return Errorf(EINVALID, "run domain required")
	}
	if r.Report == nil {
		return Errorf(EINVALID, "run report required")
	}
	return nil
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID     *string `json:"id"`
	Domain *string `json:"domain"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// MiningService runs the full mining pipeline for one company and
// produces its report. The domain may be given with or without a scheme.
type MiningService interface {
	Mine(ctx context.Context, domain, companyName string) (*Report, error)
}

// ReportWriter exports a completed report outside the run store, such as
// to a JSON file.
type ReportWriter interface {
	WriteReport(ctx context.Context, report *Report) error
}

// ReportService represents a service for managing persisted runs.
type ReportService interface {
	// CreateRun persists a completed run. The run's ID, CreatedAt and
	// ContactsAccepted are assigned during creation.
	CreateRun(ctx context.Context, run *Run) error

	// FindRunByID retrieves a run with its full report.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first.
	// Reports are not populated; use FindRunByID for the full report.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// DeleteRun permanently removes a run.
	// Returns ENOTFOUND if the run does not exist.
	DeleteRun(ctx context.Context, id string) error
}
