package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	miner "github.com/Raavan18/b2b-data-miner"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ miner.ReportService = (*ReportService)(nil)

// ReportService implements miner.ReportService using SQLite. The full
// report is stored as a JSON column; the list columns exist so runs can
// be browsed without decoding every report.
type ReportService struct {
	db *DB
}

// NewReportService creates a new ReportService.
func NewReportService(db *DB) *ReportService {
	return &ReportService{db: db}
}

// CreateRun persists a completed run. The run's ID, CreatedAt and
// ContactsAccepted are assigned here.
func (s *ReportService) CreateRun(ctx context.Context, run *miner.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC()
	run.ContactsAccepted = run.Report.Meta.ContactsAccepted

	report, err := json.Marshal(run.Report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, domain, company_name, contacts_accepted, report, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.Domain, run.CompanyName, run.ContactsAccepted, string(report),
		run.CreatedAt.Format(time.RFC3339))

	return err
}

// FindRunByID retrieves a run with its full report.
func (s *ReportService) FindRunByID(ctx context.Context, id string) (*miner.Run, error) {
	var run miner.Run
	var report, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, domain, company_name, contacts_accepted, report, created_at
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.Domain, &run.CompanyName, &run.ContactsAccepted,
		&report, &createdAt)

	if err == sql.ErrNoRows {
		return nil, miner.Errorf(miner.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(report), &run.Report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}

	run.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &run, nil
}

// FindRuns retrieves runs matching the filter, newest first. Reports are
// not populated; use FindRunByID for the full report.
func (s *ReportService) FindRuns(ctx context.Context, filter miner.RunFilter) ([]*miner.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, domain, company_name, contacts_accepted, created_at FROM runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Domain != nil {
		query.WriteString(" AND domain = ?")
		args = append(args, *filter.Domain)
	}

	query.WriteString(" ORDER BY created_at DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*miner.Run
	for rows.Next() {
		var run miner.Run
		var createdAt string

		if err := rows.Scan(&run.ID, &run.Domain, &run.CompanyName,
			&run.ContactsAccepted, &createdAt); err != nil {
			return nil, err
		}

		run.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// DeleteRun permanently removes a run.
func (s *ReportService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return miner.Errorf(miner.ENOTFOUND, "run not found")
	}

	return nil
}
