package model

// Report is a coverage.py JSON report ("coverage json --show-contexts").
type Report struct {
	Meta   *Meta                   `json:"meta"`
	Files  map[string]FileCoverage `json:"files"`
	Totals CoverageSummary         `json:"totals"`
}

// Meta describes how the report was collected.
type Meta struct {
	Format         int    `json:"format" yaml:"format"`
	Version        string `json:"version" yaml:"version"`
	Timestamp      string `json:"timestamp" yaml:"timestamp"`
	BranchCoverage bool   `json:"branch_coverage" yaml:"branch_coverage"`
	ShowContexts   bool   `json:"show_contexts" yaml:"show_contexts"`
}

// BranchExit is a (from, to) line pair.
type BranchExit [2]int

// FileCoverage is the coverage of a file, class or function. Classes and
// functions nest the same shape.
type FileCoverage struct {
	ExecutedLines    []int                   `json:"executed_lines"`
	MissingLines     []int                   `json:"missing_lines"`
	ExcludedLines    []int                   `json:"excluded_lines"`
	Summary          CoverageSummary         `json:"summary"`
	Contexts         map[string][]string     `json:"contexts"`
	ExecutedBranches []BranchExit            `json:"executed_branches,omitempty"`
	MissingBranches  []BranchExit            `json:"missing_branches,omitempty"`
	Functions        map[string]FileCoverage `json:"functions,omitempty"`
	Classes          map[string]FileCoverage `json:"classes,omitempty"`
}

// CoverageSummary is passed through from the report untouched.
type CoverageSummary struct {
	CoveredLines          int     `json:"covered_lines" yaml:"covered_lines"`
	NumStatements         int     `json:"num_statements" yaml:"num_statements"`
	PercentCovered        float64 `json:"percent_covered" yaml:"percent_covered"`
	PercentCoveredDisplay string  `json:"percent_covered_display" yaml:"percent_covered_display"`
	MissingLines          int     `json:"missing_lines" yaml:"missing_lines"`
	ExcludedLines         int     `json:"excluded_lines" yaml:"excluded_lines"`
	NumBranches           int     `json:"num_branches,omitempty" yaml:"num_branches,omitempty"`
	NumPartialBranches    int     `json:"num_partial_branches,omitempty" yaml:"num_partial_branches,omitempty"`
	CoveredBranches       int     `json:"covered_branches,omitempty" yaml:"covered_branches,omitempty"`
	MissingBranches       int     `json:"missing_branches,omitempty" yaml:"missing_branches,omitempty"`
}
