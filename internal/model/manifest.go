package model

// Manifest is the provenance sidecar written next to a fused shader. It keeps
// enough information to map any line of the merged text back to the original
// file that produced it without re-running the resolver.
type Manifest struct {
	Entry    string            `yaml:"entry"`
	Output   string            `yaml:"output"`
	Lines    int               `yaml:"lines"`
	Files    []string          `yaml:"files"`
	Segments []ManifestSegment `yaml:"segments"`
}

// ManifestSegment mirrors Segment with serialization tags. Line ranges are
// half-open, matching the in-memory representation.
type ManifestSegment struct {
	File      string `yaml:"file"`
	StartLine int    `yaml:"start_line"`
	EndLine   int    `yaml:"end_line"`
}
