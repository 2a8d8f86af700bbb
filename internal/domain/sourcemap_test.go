package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceMapTextRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"single line", "void main() {}"},
		{"multi line", "a\nb\nc"},
		{"trailing newline", "a\nb\n"},
		{"blank lines", "a\n\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := NewSourceMap(tt.text, "main.frag")
			assert.Equal(t, tt.text, source.Text())

			// Re-splitting the reconstructed text yields the same lines.
			assert.Equal(t, strings.Split(tt.text, "\n"), source.Lines())
		})
	}
}

func TestSourceMapIdentityProvenance(t *testing.T) {
	source := NewSourceMap("a\nb\nc", "main.frag")

	for i := 0; i < source.LineCount(); i++ {
		file, local, ok := source.FileAndLineAt(i)
		require.True(t, ok)
		assert.Equal(t, "main.frag", file)
		assert.Equal(t, i, local)
	}

	_, _, ok := source.FileAndLineAt(3)
	assert.False(t, ok)
	_, _, ok = source.FileAndLineAt(-1)
	assert.False(t, ok)
}

func TestSourceMapSegmentAtPrefersLastAdded(t *testing.T) {
	source := NewSourceMap("void main() {\nINCLUDE\n}", "main.frag")
	source.Splice(1, NewSourceMap("float a;\nfloat b;", "util.glsl"))

	seg, ok := source.SegmentAt(1)
	require.True(t, ok)
	assert.Equal(t, "util.glsl", seg.File)

	seg, ok = source.SegmentAt(0)
	require.True(t, ok)
	assert.Equal(t, "main.frag", seg.File)

	_, ok = source.SegmentAt(99)
	assert.False(t, ok)
}

func TestSourceMapSpliceProvenance(t *testing.T) {
	// 3-line main including 2-line util at line 1 merges into 4 lines.
	source := NewSourceMap("void main() {\nINCLUDE\n}", "main.frag")
	source.Splice(1, NewSourceMap("float a;\nfloat b;", "util.glsl"))

	require.Equal(t, 4, source.LineCount())
	assert.Equal(t, "void main() {\nfloat a;\nfloat b;\n}", source.Text())

	wantOrigins := []struct {
		file  string
		local int
	}{
		{"main.frag", 0},
		{"util.glsl", 0},
		{"util.glsl", 1},
		{"main.frag", 2},
	}

	for line, want := range wantOrigins {
		file, local, ok := source.FileAndLineAt(line)
		require.True(t, ok, "line %d", line)
		assert.Equal(t, want.file, file, "line %d", line)
		assert.Equal(t, want.local, local, "line %d", line)
	}

	assert.ElementsMatch(t, []string{"main.frag", "util.glsl"}, source.AllUsedFiles())
}

func TestSourceMapNestedSplice(t *testing.T) {
	// util itself includes const.glsl before being spliced into main.
	util := NewSourceMap("INCLUDE\nfloat b;", "util.glsl")
	util.Splice(0, NewSourceMap("const int N = 4;", "const.glsl"))

	source := NewSourceMap("void main() {\nINCLUDE\n}", "main.frag")
	source.Splice(1, util)

	require.Equal(t, 4, source.LineCount())

	wantOrigins := []struct {
		file  string
		local int
	}{
		{"main.frag", 0},
		{"const.glsl", 0},
		{"util.glsl", 1},
		{"main.frag", 2},
	}

	for line, want := range wantOrigins {
		file, local, ok := source.FileAndLineAt(line)
		require.True(t, ok, "line %d", line)
		assert.Equal(t, want.file, file, "line %d", line)
		assert.Equal(t, want.local, local, "line %d", line)
	}

	assert.ElementsMatch(t,
		[]string{"main.frag", "util.glsl", "const.glsl"},
		source.AllUsedFiles())
}

func TestSourceMapParent(t *testing.T) {
	source := NewSourceMap("void main() {\nINCLUDE\n}", "main.frag")
	source.Splice(1, NewSourceMap("float a;\nfloat b;", "util.glsl"))

	// Segment 0 is main, segment 1 is util.
	assert.Equal(t, -1, source.Parent(0))
	assert.Equal(t, 0, source.Parent(1))
	assert.Equal(t, -1, source.Parent(99))
}

func TestSourceMapAllSegmentsAt(t *testing.T) {
	source := NewSourceMap("void main() {\nINCLUDE\n}", "main.frag")
	source.Splice(1, NewSourceMap("float a;\nfloat b;", "util.glsl"))

	segments := source.AllSegmentsAt(1)
	require.Len(t, segments, 2)
	assert.Equal(t, "main.frag", segments[0].File, "outermost first")
	assert.Equal(t, "util.glsl", segments[1].File, "innermost last")

	segments = source.AllSegmentsAt(0)
	require.Len(t, segments, 1)
	assert.Equal(t, "main.frag", segments[0].File)
}

func TestSourceMapReplaceLine(t *testing.T) {
	t.Run("multi-line insert shifts later segments", func(t *testing.T) {
		source := NewSourceMap("a\nREPLACE\nb", "main.frag")
		source.ReplaceLine(1, "x\ny\nz", "gen.glsl")

		assert.Equal(t, "a\nx\ny\nz\nb", source.Text())

		file, local, ok := source.FileAndLineAt(4)
		require.True(t, ok)
		assert.Equal(t, "main.frag", file)
		assert.Equal(t, 2, local)

		file, _, ok = source.FileAndLineAt(2)
		require.True(t, ok)
		assert.Equal(t, "gen.glsl", file)
	})

	t.Run("blanking keeps line count", func(t *testing.T) {
		source := NewSourceMap("a\nDUPLICATE\nb", "main.frag")
		source.ReplaceLine(1, "", "main.frag")

		assert.Equal(t, "a\n\nb", source.Text())
		assert.Equal(t, 3, source.LineCount())
	})
}

func TestSourceMapSegmentsAreCopies(t *testing.T) {
	source := NewSourceMap("a\nb", "main.frag")

	segments := source.Segments()
	segments[0].File = "tampered"

	fresh := source.Segments()
	assert.Equal(t, "main.frag", fresh[0].File)
}

func TestSourceMapLine(t *testing.T) {
	source := NewSourceMap("a\nb", "main.frag")

	line, ok := source.Line(1)
	require.True(t, ok)
	assert.Equal(t, "b", line)

	_, ok = source.Line(2)
	assert.False(t, ok)
}
