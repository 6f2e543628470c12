package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "covmap.dev/pkg/covmap/internal/model"
)

func sampleAttribution() m.AttributionReport {
	return m.AttributionReport{
		Source: "coverage.json",
		Meta:   m.Meta{Format: 3, Version: "7.6.1", ShowContexts: true},
		Totals: m.CoverageSummary{CoveredLines: 8, NumStatements: 9, PercentCovered: 88.5, PercentCoveredDisplay: "89"},
		Elements: []m.ElementReport{
			{
				File:    "app/service.py",
				Element: "Service",
				Path:    "app/service.py::Service",
				Type:    m.Class,
				Tests: []m.TestLines{
					{Test: "tests/test_service.py::test_total", Original: "tests.test_service.test_total", Mark: m.Explicit, Lines: []int{4, 7}},
					{Mark: m.Uncovered, Lines: []int{3}},
				},
			},
		},
	}
}

func TestLocalAttributionStore_RoundTrip(t *testing.T) {
	store := NewAttributionStore()
	ctx := context.Background()

	for _, name := range []string{"a.attribution.json", "a.attribution.yaml", "a.attribution.yml"} {
		t.Run(name, func(t *testing.T) {
			path := m.Path(filepath.Join(t.TempDir(), "nested", name))

			require.NoError(t, store.Save(ctx, path, sampleAttribution()))

			loaded, err := store.Load(ctx, path)
			require.NoError(t, err)
			assert.Equal(t, sampleAttribution(), loaded)
		})
	}
}

func TestEncode(t *testing.T) {
	t.Run("json uses names for enums", func(t *testing.T) {
		data, err := Encode(sampleAttribution(), FormatJSON)
		require.NoError(t, err)

		assert.Contains(t, string(data), `"type": "class"`)
		assert.Contains(t, string(data), `"mark": "explicit"`)
		assert.Equal(t, byte('\n'), data[len(data)-1])
	})

	t.Run("yaml writes lines in flow style", func(t *testing.T) {
		data, err := Encode(sampleAttribution(), FormatYAML)
		require.NoError(t, err)

		assert.Contains(t, string(data), "lines: [4, 7]")
		assert.Contains(t, string(data), "mark: uncovered")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := Encode(sampleAttribution(), "toml")
		require.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path    m.Path
		want    string
		wantErr bool
	}{
		{"a.json", FormatJSON, false},
		{"a.JSON", FormatJSON, false},
		{"a.yaml", FormatYAML, false},
		{"a.yml", FormatYAML, false},
		{"a.txt", "", true},
		{"a", "", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.path), func(t *testing.T) {
			got, err := FormatOf(tt.path)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocalAttributionStore_Errors(t *testing.T) {
	store := NewAttributionStore()
	ctx := context.Background()
	dir := t.TempDir()

	err := store.Save(ctx, m.Path(filepath.Join(dir, "a.txt")), sampleAttribution())
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = store.Load(ctx, m.Path(filepath.Join(dir, "missing.json")))
	require.ErrorIs(t, err, os.ErrNotExist)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0o600))

	_, err = store.Load(ctx, m.Path(broken))
	require.Error(t, err)

	_, err = store.List(ctx, m.Path(filepath.Join(dir, "nope")))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalAttributionStore_List(t *testing.T) {
	store := NewAttributionStore()
	dir := t.TempDir()

	for _, name := range []string{"b.attribution.yaml", "a.attribution.json", "notes.txt", "package.json", "coverage.yml"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o600))
	}

	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0o750))

	paths, err := store.List(context.Background(), m.Path(dir))
	require.NoError(t, err)

	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(dir, "a.attribution.json")),
		m.Path(filepath.Join(dir, "b.attribution.yaml")),
	}, paths)
}
