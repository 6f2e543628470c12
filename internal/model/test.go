package model

import "fmt"

// TestElement identifies one test invocation.
type TestElement struct {
	// "tests.test_main.test_analytics_processing"
	OriginalFullPath string
	// "tests/test_main.py::test_analytics_processing"
	NormalizedFullPath string
}

// CoverageMark classifies why (or whether) a line is attributed to a test.
type CoverageMark int

const (
	// Unclassified is plain test identity, used when no test directory is configured.
	Unclassified CoverageMark = iota
	// Explicit coverage comes from a test inside the test directory.
	Explicit
	// Implicit coverage comes from a context outside the test directory.
	Implicit
	// Uncovered lines ran under an empty context.
	Uncovered
)

var coverageMarkNames = map[CoverageMark]string{
	Unclassified: "unclassified",
	Explicit:     "explicit",
	Implicit:     "implicit",
	Uncovered:    "uncovered",
}

func (c CoverageMark) String() string {
	if name, ok := coverageMarkNames[c]; ok {
		return name
	}

	return fmt.Sprintf("CoverageMark(%d)", int(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c CoverageMark) MarshalText() ([]byte, error) {
	if _, ok := coverageMarkNames[c]; !ok {
		return nil, fmt.Errorf("unknown coverage mark %d", int(c))
	}

	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CoverageMark) UnmarshalText(text []byte) error {
	for value, name := range coverageMarkNames {
		if name == string(text) {
			*c = value
			return nil
		}
	}

	return fmt.Errorf("unknown coverage mark %q", string(text))
}

// TestKey is the inner key of an element's coverage. Uncovered keys carry a
// zero Test so every uncovered line of an element lands under the same key.
type TestKey struct {
	Mark CoverageMark
	Test TestElement
}
