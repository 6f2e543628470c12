// Package adapter contains the infrastructure adapters of covmap: reading
// coverage reports from disk and storing attribution documents.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	m "covmap.dev/pkg/covmap/internal/model"
)

// DefaultContextPrefixes are the context prefixes that mark a report as
// carrying test-function contexts.
var DefaultContextPrefixes = []string{"test", "tests"}

// ReportReader loads and validates coverage.py JSON reports.
type ReportReader interface {
	// Read parses the report at path and checks that at least one context
	// starts with one of contextPrefixes (DefaultContextPrefixes when empty).
	// It fails with ErrMalformedReport, ErrContextDisabled or
	// ErrWrongContextFormat, or with the wrapped I/O error.
	Read(ctx context.Context, path m.Path, contextPrefixes []string) (*m.Report, error)
}

// LocalReportReader reads reports from the local filesystem.
type LocalReportReader struct{}

// NewLocalReportReader constructs a LocalReportReader.
func NewLocalReportReader() *LocalReportReader {
	return &LocalReportReader{}
}

// Read implements ReportReader.
func (r *LocalReportReader) Read(ctx context.Context, path m.Path, contextPrefixes []string) (*m.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(string(path))
	if err != nil {
		slog.Error("Failed to open coverage report", "path", path, "error", err)
		return nil, fmt.Errorf("failed to open report: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("Failed to close coverage report", "path", path, "error", err)
		}
	}()

	var report m.Report
	if err := json.NewDecoder(file).Decode(&report); err != nil {
		slog.Error("Failed to decode coverage report", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedReport, path, err)
	}

	if len(contextPrefixes) == 0 {
		contextPrefixes = DefaultContextPrefixes
	}

	if err := validateReport(&report, contextPrefixes); err != nil {
		slog.Error("Invalid coverage report", "path", path, "error", err)
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("Read coverage report", "path", path, "files", len(report.Files))

	return &report, nil
}

func validateReport(report *m.Report, contextPrefixes []string) error {
	if report.Meta == nil {
		return fmt.Errorf("%w: missing meta section", ErrMalformedReport)
	}

	if report.Files == nil {
		return fmt.Errorf("%w: missing files section", ErrMalformedReport)
	}

	if !report.Meta.ShowContexts {
		return ErrContextDisabled
	}

	for _, file := range report.Files {
		if hasTestContext(file, contextPrefixes) {
			return nil
		}
	}

	return ErrWrongContextFormat
}

func hasTestContext(coverage m.FileCoverage, contextPrefixes []string) bool {
	for _, labels := range coverage.Contexts {
		for _, label := range labels {
			if isTestContext(label, contextPrefixes) {
				return true
			}
		}
	}

	for _, function := range coverage.Functions {
		if hasTestContext(function, contextPrefixes) {
			return true
		}
	}

	for _, class := range coverage.Classes {
		if hasTestContext(class, contextPrefixes) {
			return true
		}
	}

	return false
}

func isTestContext(label string, contextPrefixes []string) bool {
	if label == "" {
		return false
	}

	for _, prefix := range contextPrefixes {
		if strings.HasPrefix(label, prefix) {
			return true
		}
	}

	return false
}
