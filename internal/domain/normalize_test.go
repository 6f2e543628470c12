package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "covmap.dev/pkg/covmap/internal/model"
)

func TestNormalizeTestPath(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"dotted module test", "tests.test_main.test_analytics_processing", "tests/test_main.py::test_analytics_processing"},
		{"single segment unchanged", "standalone_test", "standalone_test"},
		{"empty unchanged", "", ""},
		{"two segments", "tests.test_helper", "tests.py::test_helper"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTestPath(tt.raw))
		})
	}
}

func TestNormalizeSourcePath(t *testing.T) {
	assert.Equal(t, "file.py::__module__", NormalizeSourcePath("file.py", ""))
	assert.Equal(t, "file.py::Foo.bar", NormalizeSourcePath("file.py", "Foo.bar"))
	assert.Equal(t, "pkg/a.py::Outer::Inner", NormalizeSourcePath("pkg/a.py", "Outer::Inner"))
}

func TestNewSourceElement(t *testing.T) {
	t.Run("heuristic without override", func(t *testing.T) {
		element := NewSourceElement("file.py", "Foo", nil)

		assert.Equal(t, m.SourceElement{
			OriginalFilePath:    "file.py",
			OriginalElementPath: "Foo",
			NormalizedFullPath:  "file.py::Foo",
			Type:                m.Class,
		}, element)
	})

	t.Run("override wins over naming", func(t *testing.T) {
		functionLike := m.FunctionLike
		element := NewSourceElement("file.py", "MakeThing", &functionLike)

		assert.Equal(t, m.FunctionLike, element.Type)
	})
}

func TestClassifyTest(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		prefix string
		want   m.CoverageMark
	}{
		{"empty context is uncovered", "", "tests", m.Uncovered},
		{"empty context without prefix is uncovered", "", "", m.Uncovered},
		{"disabled classification", "tests.test_a.test_b", "", m.Unclassified},
		{"test directory is explicit", "tests.test_a.test_b", "tests", m.Explicit},
		{"other context is implicit", "src.helpers.run", "tests", m.Implicit},
		{"prefix must end on a segment", "testsupport.fixtures.load", "tests", m.Implicit},
		{"nested test directory", "tests.unit.test_a.test_b", "tests.unit", m.Explicit},
		{"prefix with trailing dot", "tests.test_a.test_b", "tests.", m.Explicit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyTest(tt.raw, tt.prefix))
		})
	}
}

func TestNewTestKey(t *testing.T) {
	t.Run("uncovered has no test", func(t *testing.T) {
		assert.Equal(t, m.TestKey{Mark: m.Uncovered}, NewTestKey("", "tests"))
	})

	t.Run("same context gives equal keys", func(t *testing.T) {
		a := NewTestKey("tests.test_a.test_b", "tests")
		b := NewTestKey("tests.test_a.test_b", "tests")

		assert.Equal(t, a, b)
		assert.Equal(t, "tests/test_a.py::test_b", a.Test.NormalizedFullPath)
		assert.Equal(t, "tests.test_a.test_b", a.Test.OriginalFullPath)
	})
}
