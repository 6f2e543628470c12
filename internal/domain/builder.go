package domain

import (
	"log/slog"
	"strconv"

	m "covmap.dev/pkg/covmap/internal/model"
)

// BuildMapping converts one raw per-granularity mapping into an Attribution.
// Every element gets elementType. Line keys that are not unsigned integers
// are skipped. Lines are appended as found; duplicates are removed by Dedup.
func BuildMapping(raw m.RawMapping, elementType m.ElementType, testDirPrefix string) m.Attribution {
	mapping := make(m.Attribution, len(raw))

	for key, contexts := range raw {
		element := NewSourceElement(key.File, key.Element, &elementType)

		coverage, ok := mapping[element.NormalizedFullPath]
		if !ok {
			coverage = m.NewElementCoverage(element)
			mapping[element.NormalizedFullPath] = coverage
		}

		for lineKey, tests := range contexts {
			line, err := parseLine(lineKey)
			if err != nil {
				slog.Debug("Skipping malformed line key", "element", element.NormalizedFullPath, "line", lineKey)
				continue
			}

			for _, rawTest := range tests {
				testKey := NewTestKey(rawTest, testDirPrefix)
				coverage.Tests[testKey] = append(coverage.Tests[testKey], line)
			}
		}
	}

	return mapping
}

func parseLine(lineKey string) (int, error) {
	line, err := strconv.ParseUint(lineKey, 10, 32)
	if err != nil {
		return 0, err
	}

	return int(line), nil
}
