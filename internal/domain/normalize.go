package domain

import (
	"strings"

	m "covmap.dev/pkg/covmap/internal/model"
)

// ModuleToken stands in for the empty element path of module-level entries.
const ModuleToken = "__module__"

const pathSeparator = "::"

// NormalizeSourcePath returns the canonical identity of a source element,
// "<file>::<element>", substituting ModuleToken for an empty element path.
func NormalizeSourcePath(filePath, elementPath string) string {
	if elementPath == "" {
		elementPath = ModuleToken
	}

	return filePath + pathSeparator + elementPath
}

// NormalizeTestPath converts a dotted context such as
// "tests.test_main.test_analytics_processing" into the pytest node id
// "tests/test_main.py::test_analytics_processing".
// Empty and single-segment inputs are returned unchanged.
func NormalizeTestPath(raw string) string {
	if raw == "" {
		return raw
	}

	parts := strings.Split(raw, ".")
	if len(parts) < 2 {
		return raw
	}

	modulePath := strings.Join(parts[:len(parts)-1], "/")

	return modulePath + ".py" + pathSeparator + parts[len(parts)-1]
}

// NewSourceElement builds the element for a raw (file, element path) pair.
// A non-nil override replaces the naming heuristic of Classify.
func NewSourceElement(filePath, elementPath string, override *m.ElementType) m.SourceElement {
	elementType := Classify(elementPath)
	if override != nil {
		elementType = *override
	}

	return m.SourceElement{
		OriginalFilePath:    filePath,
		OriginalElementPath: elementPath,
		NormalizedFullPath:  NormalizeSourcePath(filePath, elementPath),
		Type:                elementType,
	}
}

// NewTestElement builds the test identity for a raw context string.
func NewTestElement(raw string) m.TestElement {
	return m.TestElement{
		OriginalFullPath:   raw,
		NormalizedFullPath: NormalizeTestPath(raw),
	}
}

// ClassifyTest returns the coverage mark of a raw context. An empty context
// is Uncovered. With an empty testDirPrefix classification is disabled and
// every test is Unclassified.
func ClassifyTest(raw, testDirPrefix string) m.CoverageMark {
	switch {
	case raw == "":
		return m.Uncovered
	case testDirPrefix == "":
		return m.Unclassified
	case hasPathPrefix(raw, testDirPrefix):
		return m.Explicit
	default:
		return m.Implicit
	}
}

// hasPathPrefix reports whether raw starts with prefix as whole dotted
// segments: "tests" matches "tests" and "tests.a" but not "testsupport.a".
func hasPathPrefix(raw, prefix string) bool {
	rest, ok := strings.CutPrefix(raw, prefix)
	if !ok {
		return false
	}

	return rest == "" || strings.HasSuffix(prefix, ".") || rest[0] == '.'
}

// NewTestKey builds the coverage key for a raw context.
func NewTestKey(raw, testDirPrefix string) m.TestKey {
	mark := ClassifyTest(raw, testDirPrefix)
	if mark == m.Uncovered {
		return m.TestKey{Mark: m.Uncovered}
	}

	return m.TestKey{Mark: mark, Test: NewTestElement(raw)}
}
