package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "covmap.dev/pkg/covmap/internal/model"
)

func scenarioMappings() m.RawMappings {
	return m.RawMappings{
		Module: m.RawMapping{
			{File: "file.py"}: {"5": {"t1"}},
		},
		Class: m.RawMapping{
			{File: "file.py", Element: "Foo"}: {"10": {"t2"}},
		},
		Function: m.RawMapping{
			{File: "file.py", Element: "Foo.bar"}: {"12": {"t2", "t3"}},
		},
	}
}

func TestAttributionEngine_Build(t *testing.T) {
	engine := NewAttributionEngine()

	t.Run("accumulates functions into classes and modules", func(t *testing.T) {
		result := engine.Build(scenarioMappings(), "")
		require.Len(t, result, 3)

		key := func(test string) m.TestKey { return NewTestKey(test, "") }

		foo := result["file.py::Foo"]
		require.NotNil(t, foo)
		assert.Equal(t, map[m.TestKey]m.Lines{
			key("t2"): {10, 12},
			key("t3"): {12},
		}, foo.Tests)

		module := result["file.py::__module__"]
		require.NotNil(t, module)
		assert.Equal(t, m.Module, module.Element.Type)
		assert.Equal(t, map[m.TestKey]m.Lines{
			key("t1"): {5},
			key("t2"): {10, 12},
			key("t3"): {12},
		}, module.Tests)

		bar := result["file.py::Foo.bar"]
		require.NotNil(t, bar)
		assert.Equal(t, m.FunctionLike, bar.Element.Type)
		assert.Equal(t, map[m.TestKey]m.Lines{
			key("t2"): {12},
			key("t3"): {12},
		}, bar.Tests)
	})

	t.Run("top-level function is not folded into the module", func(t *testing.T) {
		key := NewTestKey("tests.test_util.test_helper", "tests")
		raw := m.RawMappings{
			Module:   m.RawMapping{{File: "util.py"}: {}},
			Function: m.RawMapping{{File: "util.py", Element: "helper_fn"}: {"3": {"tests.test_util.test_helper"}}},
		}

		result := engine.Build(raw, "tests")

		module := result["util.py::__module__"]
		require.NotNil(t, module)
		assert.NotContains(t, module.Tests, key)
		assert.Equal(t, m.Lines{3}, result["util.py::helper_fn"].Tests[key])
	})

	t.Run("module lines come from its own contexts", func(t *testing.T) {
		key := NewTestKey("tests.test_util.test_helper", "tests")
		raw := m.RawMappings{
			Module:   m.RawMapping{{File: "util.py"}: {"3": {"tests.test_util.test_helper"}}},
			Function: m.RawMapping{{File: "util.py", Element: "helper_fn"}: {"3": {"tests.test_util.test_helper"}}},
		}

		result := engine.Build(raw, "tests")

		assert.Equal(t, m.Lines{3}, result["util.py::__module__"].Tests[key])
	})

	t.Run("every line sequence is strictly ascending", func(t *testing.T) {
		raw := m.RawMappings{
			Module: m.RawMapping{{File: "a.py"}: {"20": {"t"}, "4": {"t"}}},
			Class:  m.RawMapping{{File: "a.py", Element: "A"}: {"4": {"t"}, "8": {"t"}}},
			Function: m.RawMapping{
				{File: "a.py", Element: "A.x"}: {"8": {"t"}, "9": {"t"}},
				{File: "a.py", Element: "A.y"}: {"9": {"t"}, "4": {"t"}},
			},
		}

		for _, coverage := range engine.Build(raw, "") {
			for _, lines := range coverage.Tests {
				for i := 1; i < len(lines); i++ {
					assert.Less(t, lines[i-1], lines[i], coverage.Element.NormalizedFullPath)
				}
			}
		}
	})

	t.Run("empty input gives empty attribution", func(t *testing.T) {
		assert.Empty(t, engine.Build(m.RawMappings{}, "tests"))
	})
}
