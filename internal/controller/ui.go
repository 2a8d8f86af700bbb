// Package controller provides output controllers for displaying include
// resolution results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// FuseSummary holds the outcome of fusing one entry shader.
type FuseSummary struct {
	Entry  string
	Output string
	Lines  int
	Files  int
}

// ProvenanceRow maps one line of a merged document back to its origin.
type ProvenanceRow struct {
	Line      int
	File      string
	LocalLine int
	Text      string
}

// UI defines the interface for displaying resolution results. Implementations
// can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayFuseSummary(ctx context.Context, results []FuseSummary) error
	DisplayUsedFiles(ctx context.Context, entry string, files []string) error
	DisplayProvenance(ctx context.Context, entry string, rows []ProvenanceRow) error
	DisplayCheckResult(ctx context.Context, entry string, ok bool, log string) error
	DisplayDiff(ctx context.Context, entry string, diff string) error
}

// NewUI picks a UI implementation: the interactive TUI on a terminal, plain
// output otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
