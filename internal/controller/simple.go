package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayFuseSummary prints one row per fused entry shader.
func (s *SimpleUI) DisplayFuseSummary(ctx context.Context, results []FuseSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Entry", "Output", "Lines", "Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	totalLines := 0

	for _, result := range results {
		table.Append([]string{
			result.Entry, result.Output,
			fmt.Sprintf("%d", result.Lines), fmt.Sprintf("%d", result.Files),
		})

		totalLines += result.Lines
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Entries %d", len(results)), "",
		fmt.Sprintf("%d", totalLines), "",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayUsedFiles lists every file an entry shader pulls in, in inclusion
// order.
func (s *SimpleUI) DisplayUsedFiles(ctx context.Context, entry string, files []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "File"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for i, file := range files {
		table.Append([]string{fmt.Sprintf("%d", i), file})
	}

	table.Render()
	s.printf("%s depends on %d file(s):\n%s", entry, len(files), tableBuffer.String())

	return nil
}

// DisplayProvenance prints the per-line origin table for a merged document.
func (s *SimpleUI) DisplayProvenance(ctx context.Context, entry string, rows []ProvenanceRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Line", "File", "Local", "Text"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
	})

	for _, row := range rows {
		table.Append([]string{
			fmt.Sprintf("%d", row.Line), row.File,
			fmt.Sprintf("%d", row.LocalLine), row.Text,
		})
	}

	table.Render()
	s.printf("%s\n%s", entry, tableBuffer.String())

	return nil
}

// DisplayCheckResult prints the compiler verdict for one entry shader. The
// log is expected to be already remapped for failed compilations.
func (s *SimpleUI) DisplayCheckResult(ctx context.Context, entry string, ok bool, log string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if ok {
		s.printf("%s: OK\n", entry)

		return nil
	}

	s.printf("%s: FAILED\n%s\n", entry, log)

	return nil
}

// DisplayDiff prints a unified diff between an entry shader and its fused
// output.
func (s *SimpleUI) DisplayDiff(ctx context.Context, entry string, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff == "" {
		s.printf("%s: no includes expanded\n", entry)

		return nil
	}

	s.printf("%s", diff)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
