package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPath(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		wantProtocol   string
		wantComponents []string
	}{
		{"plain", "a/b/c", "", []string{"a", "b", "c"}},
		{"protocol", "file://a/b/c", "file", []string{"a", "b", "c"}},
		{"custom protocol", "res://shaders/main.frag", "res", []string{"shaders", "main.frag"}},
		{"backslashes", `a\b/c`, "", []string{"a", "b", "c"}},
		{"dot components dropped", "a/./b/./c", "", []string{"a", "b", "c"}},
		{"empty components dropped", "a//b///c", "", []string{"a", "b", "c"}},
		{"dotdot pops", "a/./b/../c", "", []string{"a", "c"}},
		{"dotdot past start kept", "../z", "", []string{"..", "z"}},
		{"dotdot chain", "a/b/../../c", "", []string{"c"}},
		{"empty", "", "", []string{}},
		{"protocol only", "mem://", "mem", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath(tt.raw)
			assert.Equal(t, tt.wantProtocol, p.Protocol())
			assert.Equal(t, tt.wantComponents, p.Components())
		})
	}
}

func TestSplitProtocol(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantScheme string
		wantRest   string
	}{
		{"no protocol", "a/b", "", "a/b"},
		{"file", "file://a/b", "file", "a/b"},
		{"https", "https://www.github.com", "https", "www.github.com"},
		{"scheme mid-path ignored", "a/file://b", "", "a/file://b"},
		{"single slash is not a protocol", "file:/a", "", "file:/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheme, rest := SplitProtocol(tt.raw)
			assert.Equal(t, tt.wantScheme, scheme)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestPathJoin(t *testing.T) {
	t.Run("appends relative components", func(t *testing.T) {
		joined, err := NewPath("file://x/y").Join(NewPath("a/b"))
		require.NoError(t, err)
		assert.Equal(t, "file://x/y/a/b", joined.String())
	})

	t.Run("resolves dotdot against base", func(t *testing.T) {
		joined, err := NewPath("x/y").Join(NewPath("../z"))
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "z"}, joined.Components())
	})

	t.Run("absolute path replaces base components", func(t *testing.T) {
		joined, err := NewPath("file://x/y").Join(NewPath("/a/b"))
		require.NoError(t, err)
		assert.Equal(t, "file://a/b", joined.String())
	})

	t.Run("rejects protocol-qualified path", func(t *testing.T) {
		_, err := NewPath("x/y").Join(NewPath("res://z"))
		require.Error(t, err)
	})

	t.Run("does not mutate receiver", func(t *testing.T) {
		base := NewPath("x/y")
		_, err := base.Join(NewPath("z"))
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, base.Components())
	})
}

func TestPathPop(t *testing.T) {
	p := NewPath("a/b")

	last, ok := p.Pop()
	require.True(t, ok)
	assert.Equal(t, "b", last)

	last, ok = p.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", last)

	_, ok = p.Pop()
	assert.False(t, ok)
}

func TestPathDirname(t *testing.T) {
	p := NewPath("file://a/b/c.frag")
	assert.Equal(t, "file://a/b", p.Dirname().String())

	// Receiver keeps its components.
	assert.Equal(t, []string{"a", "b", "c.frag"}, p.Components())
}

func TestPathString(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "a/b/c", "a/b/c"},
		{"absolute", "/etc/shaders/main.frag", "/etc/shaders/main.frag"},
		{"protocol", "mem://a/b", "mem://a/b"},
		{"normalized", "a/./b/../c", "a/c"},
		{"protocol without components", "mem://", "mem://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPath(tt.raw).String())
		})
	}
}
