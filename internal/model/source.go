// Package model defines the data structures for coverage attribution.
package model

import "fmt"

// Path represents a file system path.
type Path string

// ElementType is the kind of source element a coverage entry belongs to.
type ElementType int

const (
	// Module is the file-level element (code outside any class or function).
	Module ElementType = iota
	// Class is a class body, including nested classes.
	Class
	// FunctionLike is a function, method or other callable.
	FunctionLike
)

var elementTypeNames = map[ElementType]string{
	Module:       "module",
	Class:        "class",
	FunctionLike: "function",
}

func (t ElementType) String() string {
	if name, ok := elementTypeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("ElementType(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t ElementType) MarshalText() ([]byte, error) {
	if _, ok := elementTypeNames[t]; !ok {
		return nil, fmt.Errorf("unknown element type %d", int(t))
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ElementType) UnmarshalText(text []byte) error {
	for value, name := range elementTypeNames {
		if name == string(text) {
			*t = value
			return nil
		}
	}

	return fmt.Errorf("unknown element type %q", string(text))
}

// SourceElement identifies one unit of source code.
// NormalizedFullPath is the identity: two elements with equal normalized paths
// are the same element.
type SourceElement struct {
	OriginalFilePath    string
	OriginalElementPath string // "" for module, "Foo", "Foo.bar", "helper"
	NormalizedFullPath  string // "<file>::<element>" or "<file>::__module__"
	Type                ElementType
}

// ElementKey is the composite key of the raw per-granularity mappings.
type ElementKey struct {
	File    string
	Element string
}

// RawMapping maps a source element to its contexts: line number (as reported,
// a string) to the raw test identifiers that executed that line.
type RawMapping map[ElementKey]map[string][]string

// RawMappings groups the three per-granularity raw mappings of one report.
type RawMappings struct {
	Module   RawMapping
	Class    RawMapping
	Function RawMapping
}
