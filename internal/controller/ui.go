// Package controller provides output adapters for displaying attribution results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "covmap.dev/pkg/covmap/internal/model"
)

// UI defines the interface for displaying attribution results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayBuildResult(ctx context.Context, source m.Path, destination m.Path)
	DisplayAttribution(ctx context.Context, reports []m.AttributionReport) error
	DisplayDiff(ctx context.Context, oldPath, newPath m.Path, diff string) error
}

// NewUI returns a TUI when output goes to a terminal and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
