package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	tuiHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	tuiFooterStyle = lipgloss.NewStyle().Faint(true)
	tuiFileStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// TUI implements UI using Bubble Tea for interactive display. Long provenance
// listings get a scrollable pager; everything else prints directly.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayFuseSummary prints one line per fused entry shader.
func (t *TUI) DisplayFuseSummary(ctx context.Context, results []FuseSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, result := range results {
		fmt.Fprintf(t.output, "%s -> %s (%d lines, %d files)\n",
			tuiFileStyle.Render(result.Entry), result.Output, result.Lines, result.Files)
	}

	return nil
}

// DisplayUsedFiles lists the files an entry shader pulls in.
func (t *TUI) DisplayUsedFiles(ctx context.Context, entry string, files []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fmt.Fprintf(t.output, "%s depends on %d file(s):\n", tuiFileStyle.Render(entry), len(files))

	for _, file := range files {
		fmt.Fprintf(t.output, "  %s\n", file)
	}

	return nil
}

// DisplayProvenance shows the per-line origin listing, paginated when it does
// not fit the terminal.
func (t *TUI) DisplayProvenance(ctx context.Context, entry string, rows []ProvenanceRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newProvenanceModel(entry, rows)

	// Get initial terminal size.
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	// If the listing is small, just print and exit.
	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.plainView())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayCheckResult prints the compiler verdict.
func (t *TUI) DisplayCheckResult(ctx context.Context, entry string, ok bool, log string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if ok {
		fmt.Fprintf(t.output, "%s: OK\n", tuiFileStyle.Render(entry))

		return nil
	}

	fmt.Fprintf(t.output, "%s: FAILED\n%s\n", tuiFileStyle.Render(entry), log)

	return nil
}

// DisplayDiff prints a unified diff between an entry and its fused output.
func (t *TUI) DisplayDiff(ctx context.Context, entry string, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff == "" {
		fmt.Fprintf(t.output, "%s: no includes expanded\n", tuiFileStyle.Render(entry))

		return nil
	}

	_, err := fmt.Fprint(t.output, diff)

	return err
}

type provenanceModel struct {
	title    string
	lines    []string
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

func newProvenanceModel(entry string, rows []ProvenanceRow) provenanceModel {
	lines := make([]string, 0, len(rows))

	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%4d  %-32s %4d  %s",
			row.Line, row.File, row.LocalLine, row.Text))
	}

	return provenanceModel{
		title:  entry,
		lines:  lines,
		width:  80,
		height: 24,
	}
}

func (pm provenanceModel) needsPagination() bool {
	// Header, footer and a trailing prompt line surround the listing.
	return len(pm.lines)+3 > pm.height
}

func (pm provenanceModel) plainView() string {
	var b strings.Builder

	b.WriteString(tuiHeaderStyle.Render(pm.title))
	b.WriteString("\n")

	for _, line := range pm.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (pm provenanceModel) Init() tea.Cmd {
	return nil
}

func (pm provenanceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return pm, tea.Quit
		}
	case tea.WindowSizeMsg:
		pm.width = msg.Width
		pm.height = msg.Height

		if !pm.ready {
			pm.viewport = viewport.New(msg.Width, msg.Height-2)
			pm.viewport.SetContent(strings.Join(pm.lines, "\n"))
			pm.ready = true
		} else {
			pm.viewport.Width = msg.Width
			pm.viewport.Height = msg.Height - 2
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm provenanceModel) View() string {
	if !pm.ready {
		return "loading..."
	}

	footer := tuiFooterStyle.Render(
		fmt.Sprintf("%d lines | up/down to scroll, q to quit", len(pm.lines)))

	return tuiHeaderStyle.Render(pm.title) + "\n" + pm.viewport.View() + "\n" + footer
}
