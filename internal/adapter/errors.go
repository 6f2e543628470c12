package adapter

import "errors"

var (
	// ErrMalformedReport is returned when a report is not valid coverage.py JSON
	// or lacks its meta or files sections.
	ErrMalformedReport = errors.New("malformed coverage report")
	// ErrContextDisabled is returned when the report was collected without
	// per-line contexts (coverage json --show-contexts).
	ErrContextDisabled = errors.New("coverage contexts are disabled in report")
	// ErrWrongContextFormat is returned when contexts exist but none looks
	// like a test function context.
	ErrWrongContextFormat = errors.New("no test contexts found in report")
	// ErrUnsupportedFormat is returned for attribution files that are neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported attribution format")
)
