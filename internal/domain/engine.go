package domain

import (
	"log/slog"
	"maps"

	m "covmap.dev/pkg/covmap/internal/model"
)

// AttributionEngine turns the three raw per-granularity mappings of a report
// into one hierarchical attribution index.
type AttributionEngine interface {
	Build(raw m.RawMappings, testDirPrefix string) m.Attribution
}

type attributionEngine struct{}

// NewAttributionEngine constructs an AttributionEngine. Each Build call works
// on fresh maps, so one engine can serve concurrent builds.
func NewAttributionEngine() AttributionEngine {
	return &attributionEngine{}
}

// Build runs the fixed pipeline: build the module, class and function
// mappings, fold functions into classes, fold the enriched classes into
// modules, dedup all three and merge them.
//
// Module keys always end in ModuleToken and class or function keys never do,
// so the final merge cannot overwrite an entry.
func (e *attributionEngine) Build(raw m.RawMappings, testDirPrefix string) m.Attribution {
	modules := BuildMapping(raw.Module, m.Module, testDirPrefix)
	classes := BuildMapping(raw.Class, m.Class, testDirPrefix)
	functions := BuildMapping(raw.Function, m.FunctionLike, testDirPrefix)

	// Order matters: modules must see the function lines already folded into classes.
	Accumulate(classes, functions)
	Accumulate(modules, classes)

	Dedup(modules)
	Dedup(classes)
	Dedup(functions)

	result := make(m.Attribution, len(modules)+len(classes)+len(functions))
	maps.Copy(result, modules)
	maps.Copy(result, classes)
	maps.Copy(result, functions)

	slog.Debug("Built attribution",
		"modules", len(modules),
		"classes", len(classes),
		"functions", len(functions),
	)

	return result
}
