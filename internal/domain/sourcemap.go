// Package domain contains the core include resolution and provenance logic.
package domain

import (
	"strings"

	m "fuze.dev/pkg/fuze/internal/model"
	fuzepkg "fuze.dev/pkg/fuze/pkg"
)

// SourceMap is an editable line buffer paired with provenance segments. It is
// produced when the resolver loads a file and records which original file
// every line of the merged text came from, so diagnostics against the merged
// blob can be converted back into per-file positions.
//
// Segments are appended parent-before-child: a segment's parent is recovered
// by scanning earlier entries for the closest one that encloses it.
type SourceMap struct {
	lines    []string
	segments []m.Segment
}

// NewSourceMap splits text on newline and covers all lines with a single
// segment tagged with originalFile.
func NewSourceMap(text, originalFile string) *SourceMap {
	lines := strings.Split(text, "\n")

	return &SourceMap{
		lines: lines,
		segments: []m.Segment{{
			StartLine: 0,
			EndLine:   len(lines),
			File:      originalFile,
		}},
	}
}

// Text joins the lines back with newline. This is the exact inverse of the
// split performed by NewSourceMap.
func (s *SourceMap) Text() string {
	return strings.Join(s.lines, "\n")
}

// LineCount returns the number of lines in the buffer.
func (s *SourceMap) LineCount() int {
	return len(s.lines)
}

// Line returns the content of one line. The second return value is false when
// line is out of range.
func (s *SourceMap) Line(line int) (string, bool) {
	if line < 0 || line >= len(s.lines) {
		return "", false
	}

	return s.lines[line], true
}

// Lines returns a copy of all lines.
func (s *SourceMap) Lines() []string {
	lines := make([]string, len(s.lines))
	copy(lines, s.lines)

	return lines
}

// Segments returns a copy of all segments in insertion order.
func (s *SourceMap) Segments() []m.Segment {
	segments := make([]m.Segment, len(s.segments))
	copy(segments, s.segments)

	return segments
}

// SegmentAt returns the segment owning line. Later entries represent more
// deeply nested provenance, so the last-added containing segment wins.
func (s *SourceMap) SegmentAt(line int) (m.Segment, bool) {
	i := s.segmentIndexAt(line)
	if i < 0 {
		return m.Segment{}, false
	}

	return s.segments[i], true
}

func (s *SourceMap) segmentIndexAt(line int) int {
	for i := len(s.segments) - 1; i >= 0; i-- {
		if s.segments[i].Contains(line) {
			return i
		}
	}

	return -1
}

// Parent returns the index of the closest-preceding segment enclosing the
// segment at index i, or -1 for top-level segments.
func (s *SourceMap) Parent(i int) int {
	if i < 0 || i >= len(s.segments) {
		return -1
	}

	for j := i - 1; j >= 0; j-- {
		if s.segments[i].Inside(s.segments[j]) {
			return j
		}
	}

	return -1
}

// FileAndLineAt maps a line of the merged text to the original file and the
// local line number inside it. Each nested inclusion collapsed one directive
// line into several lines, so every direct child segment located entirely
// before line shrinks the owner's local numbering by its span minus one.
func (s *SourceMap) FileAndLineAt(line int) (string, int, bool) {
	owner := s.segmentIndexAt(line)
	if owner < 0 {
		return "", 0, false
	}

	segment := s.segments[owner]
	local := line - segment.StartLine

	for i, child := range s.segments {
		if i == owner || s.Parent(i) != owner {
			continue
		}

		if child.EndLine <= line {
			local -= child.Len() - 1
		}
	}

	return segment.File, local, true
}

// AllSegmentsAt returns every segment containing line, in insertion order:
// outermost first, innermost last.
func (s *SourceMap) AllSegmentsAt(line int) []m.Segment {
	var segments []m.Segment

	for _, segment := range s.segments {
		if segment.Contains(line) {
			segments = append(segments, segment)
		}
	}

	return segments
}

// AllUsedFiles returns the distinct original files across all segments, in
// first-appearance order.
func (s *SourceMap) AllUsedFiles() []string {
	files := fuzepkg.NewOrderedSet[string]()

	for _, segment := range s.segments {
		files.Add(segment.File)
	}

	return files.Items()
}

// ReplaceLine removes line and splices in text split on newline. Existing
// segments past the edit point shift by the net line-count delta, then a new
// segment covering the inserted range is appended, tagged with originalFile.
func (s *SourceMap) ReplaceLine(line int, text, originalFile string) {
	insert := strings.Split(text, "\n")
	s.spliceLines(line, insert)

	s.segments = append(s.segments, m.Segment{
		StartLine: line,
		EndLine:   line + len(insert),
		File:      originalFile,
	})
}

// Splice replaces line with the contents of a fully resolved nested
// SourceMap. The nested segments are shifted by line and appended after the
// existing ones, preserving the parent-before-child order.
func (s *SourceMap) Splice(line int, nested *SourceMap) {
	s.spliceLines(line, nested.lines)

	for _, segment := range nested.segments {
		segment.StartLine += line
		segment.EndLine += line
		s.segments = append(s.segments, segment)
	}
}

// spliceLines swaps the single line at the edit point for the insert block
// and adjusts existing segment ranges by the net delta. The minus one
// accounts for the removed line.
func (s *SourceMap) spliceLines(line int, insert []string) {
	lines := make([]string, 0, len(s.lines)+len(insert)-1)
	lines = append(lines, s.lines[:line]...)
	lines = append(lines, insert...)
	lines = append(lines, s.lines[line+1:]...)
	s.lines = lines

	delta := len(insert) - 1

	for i := range s.segments {
		if s.segments[i].StartLine > line {
			s.segments[i].StartLine += delta
		}

		if s.segments[i].EndLine > line {
			s.segments[i].EndLine += delta
		}
	}
}
