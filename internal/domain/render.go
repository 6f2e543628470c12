package domain

import (
	"cmp"
	"slices"

	m "covmap.dev/pkg/covmap/internal/model"
)

// RenderAttribution converts an Attribution into its storable document.
// Elements are ordered by normalized path and tests by mark, then test id.
// Meta and totals of report are passed through untouched.
func RenderAttribution(source string, report *m.Report, attribution m.Attribution) m.AttributionReport {
	doc := m.AttributionReport{
		Source:   source,
		Elements: make([]m.ElementReport, 0, len(attribution)),
	}

	if report != nil {
		if report.Meta != nil {
			doc.Meta = *report.Meta
		}

		doc.Totals = report.Totals
	}

	for _, coverage := range attribution {
		doc.Elements = append(doc.Elements, renderElement(coverage))
	}

	slices.SortFunc(doc.Elements, func(a, b m.ElementReport) int {
		return cmp.Compare(a.Path, b.Path)
	})

	return doc
}

func renderElement(coverage *m.ElementCoverage) m.ElementReport {
	element := m.ElementReport{
		File:    coverage.Element.OriginalFilePath,
		Element: coverage.Element.OriginalElementPath,
		Path:    coverage.Element.NormalizedFullPath,
		Type:    coverage.Element.Type,
		Tests:   make([]m.TestLines, 0, len(coverage.Tests)),
	}

	for key, lines := range coverage.Tests {
		element.Tests = append(element.Tests, m.TestLines{
			Test:     key.Test.NormalizedFullPath,
			Original: key.Test.OriginalFullPath,
			Mark:     key.Mark,
			Lines:    slices.Clone(lines),
		})
	}

	slices.SortFunc(element.Tests, func(a, b m.TestLines) int {
		return cmp.Or(
			cmp.Compare(a.Mark, b.Mark),
			cmp.Compare(a.Test, b.Test),
			cmp.Compare(a.Original, b.Original),
		)
	})

	return element
}
