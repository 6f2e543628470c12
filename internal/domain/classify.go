package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	m "covmap.dev/pkg/covmap/internal/model"
)

// Classify guesses the element type from the last segment of a qualified
// element path: empty is a Module, a leading upper-case letter is a Class and
// anything else is FunctionLike.
//
// This only follows Python naming conventions. A function whose name starts
// with an upper-case letter is reported as a Class, so the engine always passes
// an explicit type instead of relying on it.
func Classify(elementPath string) m.ElementType {
	segments := elementSegments(elementPath)
	if len(segments) == 0 {
		return m.Module
	}

	first, _ := utf8.DecodeRuneInString(segments[len(segments)-1])
	if first == utf8.RuneError {
		return m.Module
	}

	if unicode.IsUpper(first) {
		return m.Class
	}

	return m.FunctionLike
}

// elementSegments splits a qualified element path on both "::" (nested
// classes) and "." (coverage.py qualified names).
func elementSegments(elementPath string) []string {
	if elementPath == "" {
		return nil
	}

	var segments []string

	for _, part := range strings.Split(elementPath, pathSeparator) {
		segments = append(segments, strings.Split(part, ".")...)
	}

	return segments
}
