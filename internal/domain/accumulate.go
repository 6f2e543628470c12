package domain

import (
	m "covmap.dev/pkg/covmap/internal/model"
)

// Accumulate merges the per-test lines of every donor element into each
// element of accumulating that structurally encloses it. Lines are appended,
// so the result must go through Dedup before it is read.
func Accumulate(accumulating, donor m.Attribution) {
	for _, ancestor := range accumulating {
		for _, descendant := range donor {
			if !IsAncestor(ancestor.Element, descendant.Element) {
				continue
			}

			for key, lines := range descendant.Tests {
				ancestor.Tests[key] = append(ancestor.Tests[key], lines...)
			}
		}
	}
}

// IsAncestor reports whether ancestor encloses (or is) descendant. Both must
// live in the same file; a module encloses everything in its file, otherwise
// the ancestor's path segments must lead the descendant's.
// "Foo" encloses "Foo.bar" and "Foo::Inner" but not "FooBar.baz".
func IsAncestor(ancestor, descendant m.SourceElement) bool {
	if ancestor.OriginalFilePath != descendant.OriginalFilePath {
		return false
	}

	outer := elementSegments(ancestor.OriginalElementPath)
	inner := elementSegments(descendant.OriginalElementPath)

	if len(outer) > len(inner) {
		return false
	}

	for i := range outer {
		if outer[i] != inner[i] {
			return false
		}
	}

	return true
}
