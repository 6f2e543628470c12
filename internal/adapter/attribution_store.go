package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	m "covmap.dev/pkg/covmap/internal/model"
	"gopkg.in/yaml.v3"
)

// Supported attribution file formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// AttributionInfix separates the report name from the format extension in
// stored attribution file names.
const AttributionInfix = ".attribution."

// AttributionStore persists rendered attribution documents.
type AttributionStore interface {
	Save(ctx context.Context, path m.Path, doc m.AttributionReport) error
	Load(ctx context.Context, path m.Path) (m.AttributionReport, error)
	// List returns the attribution files stored directly under dir, sorted.
	// Only names containing AttributionInfix are attribution files.
	List(ctx context.Context, dir m.Path) ([]m.Path, error)
}

// LocalAttributionStore keeps attribution documents as JSON or YAML files,
// chosen by file extension.
type LocalAttributionStore struct{}

// NewAttributionStore constructs a LocalAttributionStore.
func NewAttributionStore() *LocalAttributionStore {
	return &LocalAttributionStore{}
}

// FormatOf returns the attribution format implied by the extension of path.
func FormatOf(path m.Path) (string, error) {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Encode serializes doc in the given format.
func Encode(doc m.AttributionReport, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}

		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer

		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)

		if err := encoder.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}

		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}

		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Save implements AttributionStore.
func (s *LocalAttributionStore) Save(ctx context.Context, path m.Path, doc m.AttributionReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	data, err := Encode(doc, format)
	if err != nil {
		slog.Error("Failed to encode attribution", "path", path, "error", err)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		slog.Error("Failed to create attribution directory", "path", path, "error", err)
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		slog.Error("Failed to write attribution", "path", path, "error", err)
		return fmt.Errorf("failed to write attribution: %w", err)
	}

	slog.Debug("Saved attribution", "path", path, "elements", len(doc.Elements))

	return nil
}

// Load implements AttributionStore.
func (s *LocalAttributionStore) Load(ctx context.Context, path m.Path) (m.AttributionReport, error) {
	var doc m.AttributionReport

	if err := ctx.Err(); err != nil {
		return doc, err
	}

	format, err := FormatOf(path)
	if err != nil {
		return doc, err
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		slog.Error("Failed to read attribution", "path", path, "error", err)
		return doc, fmt.Errorf("failed to read attribution: %w", err)
	}

	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	}

	if err != nil {
		slog.Error("Failed to decode attribution", "path", path, "error", err)
		return doc, fmt.Errorf("failed to decode attribution %s: %w", path, err)
	}

	return doc, nil
}

// List implements AttributionStore.
func (s *LocalAttributionStore) List(ctx context.Context, dir m.Path) ([]m.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(string(dir))
	if err != nil {
		slog.Error("Failed to list attribution directory", "dir", dir, "error", err)
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var paths []m.Path

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !strings.Contains(entry.Name(), AttributionInfix) {
			continue
		}

		path := m.Path(filepath.Join(string(dir), entry.Name()))
		if _, err := FormatOf(path); err != nil {
			continue
		}

		paths = append(paths, path)
	}

	return paths, nil
}
