package model

// Lines is a sequence of line numbers. After deduplication it is strictly ascending.
type Lines []int

// ElementCoverage holds the per-test lines of a single source element.
type ElementCoverage struct {
	Element SourceElement
	Tests   map[TestKey]Lines
}

// NewElementCoverage creates an empty coverage entry for element.
func NewElementCoverage(element SourceElement) *ElementCoverage {
	return &ElementCoverage{
		Element: element,
		Tests:   make(map[TestKey]Lines),
	}
}

// Attribution maps SourceElement.NormalizedFullPath to that element's coverage.
type Attribution map[string]*ElementCoverage

// AttributionReport is the rendered, storable form of an Attribution built from
// one coverage report. Elements and their tests are sorted.
type AttributionReport struct {
	Source   string          `json:"source" yaml:"source"`
	Meta     Meta            `json:"meta" yaml:"meta"`
	Totals   CoverageSummary `json:"totals" yaml:"totals"`
	Elements []ElementReport `json:"elements" yaml:"elements"`
}

// ElementReport is one source element of an AttributionReport.
type ElementReport struct {
	File    string      `json:"file" yaml:"file"`
	Element string      `json:"element" yaml:"element"`
	Path    string      `json:"path" yaml:"path"`
	Type    ElementType `json:"type" yaml:"type"`
	Tests   []TestLines `json:"tests" yaml:"tests"`
}

// TestLines lists the lines of an element covered under one test key.
type TestLines struct {
	Test     string       `json:"test" yaml:"test"`
	Original string       `json:"original" yaml:"original"`
	Mark     CoverageMark `json:"mark" yaml:"mark"`
	Lines    []int        `json:"lines" yaml:"lines,flow"`
}
