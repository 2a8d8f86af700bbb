package model

// Segment records which original file produced a half-open range of lines
// [StartLine, EndLine) in a merged document. Many segments may carry the same
// file name when one file contributed to several places of an include tree.
type Segment struct {
	StartLine int
	EndLine   int
	File      string
}

// Inside reports whether s lies fully within of. Combined with append order
// this defines the implicit segment tree: a segment's parent is the
// closest-preceding segment that encloses it.
func (s Segment) Inside(of Segment) bool {
	return s.StartLine >= of.StartLine && s.EndLine <= of.EndLine
}

// Contains reports whether line falls inside the segment's range.
func (s Segment) Contains(line int) bool {
	return line >= s.StartLine && line < s.EndLine
}

// Len returns the number of lines the segment spans.
func (s Segment) Len() int {
	return s.EndLine - s.StartLine
}
