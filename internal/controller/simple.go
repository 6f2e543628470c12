package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "covmap.dev/pkg/covmap/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayBuildResult reports where an attribution was written.
func (s *SimpleUI) DisplayBuildResult(ctx context.Context, source m.Path, destination m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s -> %s\n", source, destination)
}

// DisplayAttribution prints one table per attribution report.
func (s *SimpleUI) DisplayAttribution(ctx context.Context, reports []m.AttributionReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderReports(reports))

	return nil
}

// DisplayDiff prints a unified diff between two attribution files.
func (s *SimpleUI) DisplayDiff(ctx context.Context, oldPath, newPath m.Path, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff == "" {
		s.printf("No attribution differences between %s and %s\n", oldPath, newPath)
		return nil
	}

	s.printf("%s", diff)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderReports(reports []m.AttributionReport) string {
	if len(reports) == 0 {
		return "No attribution reports found.\n"
	}

	var b bytes.Buffer

	for i, report := range reports {
		if i > 0 {
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "%s\n", report.Source)
		b.WriteString(renderAttributionTable(report))
	}

	return b.String()
}

func renderAttributionTable(report m.AttributionReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Element", "Type", "Test", "Mark", "Lines"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	testCount := 0

	for _, element := range report.Elements {
		if len(element.Tests) == 0 {
			table.Append([]string{element.Path, element.Type.String(), "-", "-", "-"})
			continue
		}

		for _, test := range element.Tests {
			table.Append([]string{
				element.Path,
				element.Type.String(),
				testLabel(test),
				test.Mark.String(),
				FormatLines(test.Lines),
			})

			testCount++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Elements %d", len(report.Elements)),
		"",
		fmt.Sprintf("Entries %d", testCount),
		"",
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func testLabel(test m.TestLines) string {
	if test.Mark == m.Uncovered {
		return "(no context)"
	}

	return test.Test
}
