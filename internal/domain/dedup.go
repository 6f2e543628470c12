package domain

import (
	"slices"

	m "covmap.dev/pkg/covmap/internal/model"
)

// Dedup replaces every line sequence in mapping with its distinct values in
// ascending order. Running it more than once has no further effect.
func Dedup(mapping m.Attribution) {
	for _, coverage := range mapping {
		for key, lines := range coverage.Tests {
			coverage.Tests[key] = uniqueSorted(lines)
		}
	}
}

func uniqueSorted(lines m.Lines) m.Lines {
	sorted := slices.Clone(lines)
	slices.Sort(sorted)

	return slices.Compact(sorted)
}
