package domain

import (
	"fmt"
	"log/slog"
	"regexp"

	"fuze.dev/pkg/fuze/internal/adapter"
	m "fuze.dev/pkg/fuze/internal/model"
	fuzepkg "fuze.dev/pkg/fuze/pkg"
)

// includeRe matches a single-line include directive: optional leading
// whitespace, "#", optional "pragma", "include_once", then a filename
// delimited by a space, '<' or '"'.
var includeRe = regexp.MustCompile(`^\s*#(?:pragma)? ?include_once *[ <"]([^"<>]*)[>"]?`)

// maxIncludeDepth bounds include nesting. Duplicate-file suppression already
// prevents cycles; the cap stops runaway acyclic chains.
const maxIncludeDepth = 64

// LoaderFunc loads raw content for a path with its scheme stripped.
type LoaderFunc func(path string) (string, error)

type protocolEntry struct {
	scheme string
	load   LoaderFunc
}

// Resolver expands include_once directives into a single SourceMap. Content
// is obtained through named protocol backends; the "file" scheme, reading
// from the local filesystem, is registered by default and used for paths
// without a protocol prefix.
//
// Additional schemes can be registered once each:
//
//	resolver.Register("res", loadFromResources)
//	merged, err := resolver.Resolve("res://shaders/main.frag")
type Resolver struct {
	protocols []protocolEntry
}

// NewResolver creates a Resolver with the default "file" protocol backed by
// the given filesystem adapter.
func NewResolver(fs adapter.SourceFSAdapter) *Resolver {
	return &Resolver{
		protocols: []protocolEntry{{scheme: "file", load: fs.LoadFile}},
	}
}

// Register adds a protocol backend for scheme. Registering a scheme twice is
// an error.
func (r *Resolver) Register(scheme string, load LoaderFunc) error {
	for _, p := range r.protocols {
		if p.scheme == scheme {
			return fmt.Errorf("%w: %s", ErrDuplicateProtocol, scheme)
		}
	}

	r.protocols = append(r.protocols, protocolEntry{scheme: scheme, load: load})

	return nil
}

// Resolve loads path and recursively expands every include_once directive,
// returning the fully merged SourceMap. A file already included anywhere in
// the tree is elided on re-inclusion, not reprocessed. The used-files set is
// scoped to this call; independent Resolve calls never share suppression
// state.
func (r *Resolver) Resolve(path string) (*SourceMap, error) {
	used := fuzepkg.NewOrderedSet[string]()
	return r.resolveInner(path, used, 0)
}

type includeJob struct {
	line   int
	target string
}

func (r *Resolver) resolveInner(path string, used *fuzepkg.OrderedSet[string], depth int) (*SourceMap, error) {
	if depth > maxIncludeDepth {
		return nil, fmt.Errorf("%w: %s", ErrIncludeDepth, path)
	}

	dirname := m.NewPath(path).Dirname()
	used.Add(path)

	raw, err := r.BasicLoad(path)
	if err != nil {
		return nil, err
	}

	source := NewSourceMap(raw, path)

	var jobs []includeJob

	for i, line := range source.lines {
		match := includeRe.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		target := match[1]
		if scheme, _ := m.SplitProtocol(target); scheme == "" {
			// Relative include: resolve against the including file's directory.
			joined, err := dirname.Join(m.NewPath(target))
			if err != nil {
				return nil, err
			}

			target = joined.String()
		}

		jobs = append(jobs, includeJob{line: i, target: target})
	}

	// Splices shift later directive lines; offset tracks the accumulated
	// delta within this pass.
	offset := 0

	for _, job := range jobs {
		if used.Has(job.target) {
			slog.Debug("skipping already included file", "file", job.target, "includer", path)
			source.ReplaceLine(job.line+offset, "", path)

			continue
		}

		used.Add(job.target)

		nested, err := r.resolveInner(job.target, used, depth+1)
		if err != nil {
			return nil, err
		}

		slog.Debug("expanded include", "file", job.target, "includer", path, "lines", nested.LineCount())

		delta := nested.LineCount() - 1
		source.Splice(job.line+offset, nested)
		offset += delta
	}

	return source, nil
}

// BasicLoad loads a file as is through its protocol backend, with no
// directive processing.
func (r *Resolver) BasicLoad(path string) (string, error) {
	scheme, rest := m.SplitProtocol(path)
	if scheme == "" {
		scheme = "file"
	}

	load := r.lookup(scheme)
	if load == nil {
		return "", fmt.Errorf("%w: %s (%s)", ErrUnsupportedProtocol, scheme, path)
	}

	text, err := load(rest)
	if err != nil {
		return "", err
	}

	if text == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	return text, nil
}

func (r *Resolver) lookup(scheme string) LoaderFunc {
	for _, p := range r.protocols {
		if p.scheme == scheme {
			return p.load
		}
	}

	return nil
}
