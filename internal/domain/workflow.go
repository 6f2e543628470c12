// Package domain implements coverage attribution: the attribution engine and
// the workflows that read reports, build, store, view and diff attributions.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"covmap.dev/pkg/covmap/internal/adapter"
	"covmap.dev/pkg/covmap/internal/controller"
	m "covmap.dev/pkg/covmap/internal/model"
)

// ErrNoReports is returned by Build when no coverage report is given.
var ErrNoReports = errors.New("no coverage reports given")

// BuildArgs contains the arguments for building attributions.
type BuildArgs struct {
	Reports         []m.Path
	Output          m.Path
	Format          string
	TestDirPrefix   string
	ContextPrefixes []string
	Threads         int
	Show            bool
}

// ViewArgs contains the arguments for viewing stored attributions.
type ViewArgs struct {
	Paths   []m.Path
	Output  m.Path
	Element string
	Test    string
}

// DiffArgs contains the arguments for comparing two stored attributions.
type DiffArgs struct {
	Old m.Path
	New m.Path
}

// Workflow defines the covmap use cases.
type Workflow interface {
	Build(ctx context.Context, args BuildArgs) error
	View(ctx context.Context, args ViewArgs) error
	Diff(ctx context.Context, args DiffArgs) error
}

type workflow struct {
	reader adapter.ReportReader
	store  adapter.AttributionStore
	ui     controller.UI
	engine AttributionEngine
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	reader adapter.ReportReader,
	store adapter.AttributionStore,
	ui controller.UI,
	engine AttributionEngine,
) Workflow {
	return &workflow{
		reader: reader,
		store:  store,
		ui:     ui,
		engine: engine,
	}
}

type buildResult struct {
	source      m.Path
	destination m.Path
	doc         m.AttributionReport
}

// Build reads every report, builds its attribution and stores it under
// args.Output. Reports are processed concurrently, at most args.Threads at a
// time; the first failure cancels the remaining builds.
func (w *workflow) Build(ctx context.Context, args BuildArgs) error {
	if len(args.Reports) == 0 {
		return ErrNoReports
	}

	format := args.Format
	if format == "" {
		format = adapter.FormatJSON
	}

	if format != adapter.FormatJSON && format != adapter.FormatYAML {
		return fmt.Errorf("%w: %q", adapter.ErrUnsupportedFormat, format)
	}

	destinations, err := attributionPaths(args.Output, args.Reports, format)
	if err != nil {
		return err
	}

	results := make([]buildResult, len(args.Reports))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(normalizeThreads(args.Threads))

	for i, source := range args.Reports {
		group.Go(func() error {
			doc, err := w.buildOne(groupCtx, source, args)
			if err != nil {
				return err
			}

			if err := w.store.Save(groupCtx, destinations[i], doc); err != nil {
				return fmt.Errorf("save attribution for %s: %w", source, err)
			}

			results[i] = buildResult{source: source, destination: destinations[i], doc: doc}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("Failed to build attribution", "error", err)
		return err
	}

	docs := make([]m.AttributionReport, 0, len(results))
	for _, result := range results {
		w.ui.DisplayBuildResult(ctx, result.source, result.destination)
		docs = append(docs, result.doc)
	}

	if !args.Show {
		return nil
	}

	return w.ui.DisplayAttribution(ctx, docs)
}

func (w *workflow) buildOne(ctx context.Context, source m.Path, args BuildArgs) (m.AttributionReport, error) {
	report, err := w.reader.Read(ctx, source, args.ContextPrefixes)
	if err != nil {
		return m.AttributionReport{}, fmt.Errorf("read report: %w", err)
	}

	raw := adapter.ExtractRawMappings(report)
	attribution := w.engine.Build(raw, args.TestDirPrefix)

	slog.Debug("Built attribution for report", "source", source, "elements", len(attribution))

	return RenderAttribution(string(source), report, attribution), nil
}

// View loads stored attributions (every file in args.Output when no paths
// are given), applies the element and test filters and displays them.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	paths := args.Paths
	if len(paths) == 0 {
		listed, err := w.store.List(ctx, args.Output)
		if err != nil {
			return fmt.Errorf("list attributions: %w", err)
		}

		paths = listed
	}

	docs := make([]m.AttributionReport, 0, len(paths))

	for _, path := range paths {
		doc, err := w.store.Load(ctx, path)
		if err != nil {
			return fmt.Errorf("load attribution: %w", err)
		}

		docs = append(docs, FilterAttribution(doc, args.Element, args.Test))
	}

	return w.ui.DisplayAttribution(ctx, docs)
}

// Diff compares two stored attributions as unified diff of their YAML form.
func (w *workflow) Diff(ctx context.Context, args DiffArgs) error {
	oldText, err := w.loadComparable(ctx, args.Old)
	if err != nil {
		return err
	}

	newText, err := w.loadComparable(ctx, args.New)
	if err != nil {
		return err
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(oldText),
		B:        difflib.SplitLines(newText),
		FromFile: string(args.Old),
		ToFile:   string(args.New),
		Context:  3,
	})
	if err != nil {
		slog.Error("Failed to diff attributions", "old", args.Old, "new", args.New, "error", err)
		return fmt.Errorf("diff attributions: %w", err)
	}

	return w.ui.DisplayDiff(ctx, args.Old, args.New, diff)
}

// loadComparable renders a stored attribution as YAML without its source
// path, so two builds of the same report compare equal.
func (w *workflow) loadComparable(ctx context.Context, path m.Path) (string, error) {
	doc, err := w.store.Load(ctx, path)
	if err != nil {
		return "", fmt.Errorf("load attribution: %w", err)
	}

	doc.Source = ""

	data, err := adapter.Encode(doc, adapter.FormatYAML)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// FilterAttribution keeps elements whose normalized path contains element
// and tests whose id contains test. Empty filters match everything; with a
// test filter, elements left without tests are dropped.
func FilterAttribution(doc m.AttributionReport, element, test string) m.AttributionReport {
	if element == "" && test == "" {
		return doc
	}

	filtered := doc
	filtered.Elements = make([]m.ElementReport, 0, len(doc.Elements))

	for _, candidate := range doc.Elements {
		if element != "" && !strings.Contains(candidate.Path, element) {
			continue
		}

		if test != "" {
			candidate.Tests = filterTests(candidate.Tests, test)
			if len(candidate.Tests) == 0 {
				continue
			}
		}

		filtered.Elements = append(filtered.Elements, candidate)
	}

	return filtered
}

func filterTests(tests []m.TestLines, test string) []m.TestLines {
	var kept []m.TestLines

	for _, candidate := range tests {
		if strings.Contains(candidate.Test, test) || strings.Contains(candidate.Original, test) {
			kept = append(kept, candidate)
		}
	}

	return kept
}

// AttributionPath returns where the attribution of source is stored:
// the cleaned source path with separators replaced by "_", its extension
// replaced by ".attribution.<format>", under output.
func AttributionPath(output, source m.Path, format string) m.Path {
	name := filepath.ToSlash(filepath.Clean(string(source)))
	name = strings.TrimLeft(name, "./")
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ReplaceAll(name, "/", "_")

	if name == "" {
		name = "report"
	}

	return m.Path(filepath.Join(string(output), name+adapter.AttributionInfix+format))
}

func attributionPaths(output m.Path, sources []m.Path, format string) ([]m.Path, error) {
	destinations := make([]m.Path, len(sources))
	seen := make(map[m.Path]m.Path, len(sources))

	for i, source := range sources {
		destination := AttributionPath(output, source, format)
		if previous, ok := seen[destination]; ok {
			return nil, fmt.Errorf("reports %s and %s would both be written to %s", previous, source, destination)
		}

		seen[destination] = source
		destinations[i] = destination
	}

	return destinations, nil
}

// normalizeThreads ensures at least one worker.
func normalizeThreads(threads int) int {
	if threads <= 0 {
		return 1
	}

	return threads
}
