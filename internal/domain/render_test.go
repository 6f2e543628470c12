package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "covmap.dev/pkg/covmap/internal/model"
)

func TestRenderAttribution(t *testing.T) {
	raw := scenarioMappings()
	raw.Function[m.ElementKey{File: "file.py", Element: "Foo.bar"}]["13"] = []string{"", "tests.test_foo.test_x", "src.app.main"}

	report := &m.Report{
		Meta:   &m.Meta{Format: 3, Version: "7.6.1", ShowContexts: true},
		Totals: m.CoverageSummary{CoveredLines: 4, NumStatements: 5},
	}

	doc := RenderAttribution("coverage.json", report, NewAttributionEngine().Build(raw, "tests"))

	assert.Equal(t, "coverage.json", doc.Source)
	assert.Equal(t, "7.6.1", doc.Meta.Version)
	assert.Equal(t, 4, doc.Totals.CoveredLines)

	paths := make([]string, 0, len(doc.Elements))
	for _, element := range doc.Elements {
		paths = append(paths, element.Path)
	}

	assert.Equal(t, []string{"file.py::Foo", "file.py::Foo.bar", "file.py::__module__"}, paths)

	bar := doc.Elements[1]
	assert.Equal(t, "file.py", bar.File)
	assert.Equal(t, "Foo.bar", bar.Element)
	require.Len(t, bar.Tests, 5)

	marks := make([]m.CoverageMark, 0, len(bar.Tests))
	for _, test := range bar.Tests {
		marks = append(marks, test.Mark)
	}

	assert.Equal(t, []m.CoverageMark{m.Explicit, m.Implicit, m.Implicit, m.Implicit, m.Uncovered}, marks)
	assert.Equal(t, "tests/test_foo.py::test_x", bar.Tests[0].Test)
	assert.Equal(t, "src/app.py::main", bar.Tests[1].Test)
	assert.Equal(t, []int{13}, bar.Tests[4].Lines)
}

func TestRenderAttribution_NilReport(t *testing.T) {
	doc := RenderAttribution("x.json", nil, m.Attribution{})

	assert.Equal(t, "x.json", doc.Source)
	assert.NotNil(t, doc.Elements)
	assert.Empty(t, doc.Elements)
}
