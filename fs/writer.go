// Package fs provides file-based export of mining reports.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	miner "github.com/Raavan18/b2b-data-miner"
)

// Filename converts a company domain to a report file name.
// Example: acmecorp.com → acmecorp.com.json
func Filename(domain string) string {
	return strings.ReplaceAll(domain, "/", "_") + ".json"
}

// Ensure Writer implements miner.ReportWriter at compile time.
var _ miner.ReportWriter = (*Writer)(nil)

// Writer writes reports as indented JSON files to a directory.
// Writes are atomic: the report is written to a temporary file and
// renamed into place, so an interrupted run never leaves a truncated
// report behind.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteReport writes a report to <baseDir>/<domain>.json.
func (w *Writer) WriteReport(ctx context.Context, report *miner.Report) error {
	if err := report.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	finalPath := filepath.Join(w.baseDir, Filename(report.CompanyDomain))
	tmpPath := finalPath + ".tmp"

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	return os.Rename(tmpPath, finalPath)
}
