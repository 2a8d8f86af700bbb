package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"fuze.dev/pkg/fuze/internal/adapter"
	"fuze.dev/pkg/fuze/internal/controller"
	m "fuze.dev/pkg/fuze/internal/model"
)

// FuseArgs contains the arguments for fusing entry shaders.
type FuseArgs struct {
	Paths     []string
	OutputDir string
	Manifest  bool
	ShowDiff  bool
	Threads   int
}

// DepsArgs contains the arguments for listing include dependencies.
type DepsArgs struct {
	Paths []string
}

// CheckArgs contains the arguments for compiling fused shaders.
type CheckArgs struct {
	Paths []string
	Stage string
}

// ViewArgs contains the arguments for the per-line provenance view.
type ViewArgs struct {
	Path string
}

// Workflow defines the operations the CLI drives.
type Workflow interface {
	Fuse(ctx context.Context, args FuseArgs) error
	Deps(ctx context.Context, args DepsArgs) error
	Check(ctx context.Context, args CheckArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ManifestStore
	adapter.CompilerAdapter

	resolver *Resolver
	ui       controller.UI
}

// NewWorkflow creates a Workflow instance with the provided dependencies.
func NewWorkflow(
	resolver *Resolver,
	fsAdapter adapter.SourceFSAdapter,
	manifestStore adapter.ManifestStore,
	compiler adapter.CompilerAdapter,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ManifestStore:   manifestStore,
		CompilerAdapter: compiler,
		resolver:        resolver,
		ui:              ui,
	}
}

type fuseResult struct {
	summary controller.FuseSummary
	diff    string
}

// Fuse resolves each entry shader into a single merged file. Entries are
// independent top-level resolves, so they run in parallel; each one owns its
// used-files set.
func (w *workflow) Fuse(ctx context.Context, args FuseArgs) error {
	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	results := make([]fuseResult, len(args.Paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, path := range args.Paths {
		g.Go(func() error {
			result, err := w.fuseOne(path, args)
			if err != nil {
				return err
			}

			results[i] = result

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if args.ShowDiff {
		for _, result := range results {
			if err := w.ui.DisplayDiff(ctx, result.summary.Entry, result.diff); err != nil {
				return err
			}
		}
	}

	summaries := make([]controller.FuseSummary, 0, len(results))
	for _, result := range results {
		summaries = append(summaries, result.summary)
	}

	return w.ui.DisplayFuseSummary(ctx, summaries)
}

func (w *workflow) fuseOne(path string, args FuseArgs) (fuseResult, error) {
	source, err := w.resolver.Resolve(path)
	if err != nil {
		return fuseResult{}, fmt.Errorf("resolve %s: %w", path, err)
	}

	output := outputPathFor(path, args.OutputDir)

	if err := w.WriteFile(output, []byte(source.Text()), 0o644); err != nil {
		return fuseResult{}, fmt.Errorf("write %s: %w", output, err)
	}

	if args.Manifest {
		manifest := buildManifest(path, output, source)
		if err := w.SaveManifest(manifestPathFor(output), manifest); err != nil {
			return fuseResult{}, err
		}
	}

	result := fuseResult{
		summary: controller.FuseSummary{
			Entry:  path,
			Output: output,
			Lines:  source.LineCount(),
			Files:  len(source.AllUsedFiles()),
		},
	}

	if args.ShowDiff {
		raw, err := w.resolver.BasicLoad(path)
		if err != nil {
			return fuseResult{}, err
		}

		result.diff, err = difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(raw),
			B:        difflib.SplitLines(source.Text()),
			FromFile: path,
			ToFile:   output,
			Context:  3,
		})
		if err != nil {
			return fuseResult{}, fmt.Errorf("diff %s: %w", path, err)
		}
	}

	slog.Info("fused entry", "entry", path, "output", output, "lines", source.LineCount())

	return result, nil
}

// Deps resolves each entry and lists every file it pulls in.
func (w *workflow) Deps(ctx context.Context, args DepsArgs) error {
	for _, path := range args.Paths {
		source, err := w.resolver.Resolve(path)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", path, err)
		}

		if err := w.ui.DisplayUsedFiles(ctx, path, source.AllUsedFiles()); err != nil {
			return err
		}
	}

	return nil
}

// Check resolves each entry, submits the merged text to the external
// compiler, and remaps failed diagnostics back to the original files.
func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	for _, path := range args.Paths {
		stage, err := stageFor(path, args.Stage)
		if err != nil {
			return err
		}

		source, err := w.resolver.Resolve(path)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", path, err)
		}

		result, err := w.Compile(ctx, source.Text(), stage)
		if err != nil {
			return fmt.Errorf("compile %s: %w", path, err)
		}

		log := result.Log
		if !result.OK {
			log = RemapDiagnostics(result.Log, source)
		}

		if err := w.ui.DisplayCheckResult(ctx, path, result.OK, log); err != nil {
			return err
		}
	}

	return nil
}

// View shows the per-line provenance of a fully resolved entry.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	source, err := w.resolver.Resolve(args.Path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", args.Path, err)
	}

	rows := make([]controller.ProvenanceRow, 0, source.LineCount())

	for i := 0; i < source.LineCount(); i++ {
		file, local, ok := source.FileAndLineAt(i)
		if !ok {
			continue
		}

		text, _ := source.Line(i)
		rows = append(rows, controller.ProvenanceRow{
			Line:      i,
			File:      file,
			LocalLine: local,
			Text:      text,
		})
	}

	return w.ui.DisplayProvenance(ctx, args.Path, rows)
}

func stageFor(path, override string) (m.ShaderStage, error) {
	if override != "" {
		stage, ok := m.ParseStage(override)
		if !ok {
			return "", fmt.Errorf("unknown shader stage: %s", override)
		}

		return stage, nil
	}

	stage, ok := m.StageFromPath(path)
	if !ok {
		return "", fmt.Errorf("cannot infer shader stage from %s (use --stage)", path)
	}

	return stage, nil
}

// outputPathFor places the merged file for entry under dir, inserting a
// ".fused" marker before the extension so the stage stays inferable.
func outputPathFor(entry, dir string) string {
	components := m.NewPath(entry).Components()

	base := entry
	if len(components) > 0 {
		base = components[len(components)-1]
	}

	ext := filepath.Ext(base)

	return filepath.Join(dir, strings.TrimSuffix(base, ext)+".fused"+ext)
}

func manifestPathFor(output string) string {
	return output + ".provenance.yaml"
}

func buildManifest(entry, output string, source *SourceMap) m.Manifest {
	segments := source.Segments()
	manifestSegments := make([]m.ManifestSegment, 0, len(segments))

	for _, segment := range segments {
		manifestSegments = append(manifestSegments, m.ManifestSegment{
			File:      segment.File,
			StartLine: segment.StartLine,
			EndLine:   segment.EndLine,
		})
	}

	return m.Manifest{
		Entry:    entry,
		Output:   output,
		Lines:    source.LineCount(),
		Files:    source.AllUsedFiles(),
		Segments: manifestSegments,
	}
}
