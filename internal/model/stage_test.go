package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageFromPath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		want   ShaderStage
		wantOK bool
	}{
		{"vertex", "shaders/main.vert", StageVertex, true},
		{"geometry", "main.geom", StageGeometry, true},
		{"fragment", "main.frag", StageFragment, true},
		{"compute", "main.comp", StageCompute, true},
		{"uppercase extension", "MAIN.FRAG", StageFragment, true},
		{"fused output keeps its stage", "out/main.fused.frag", StageFragment, true},
		{"unknown extension", "main.glsl", "", false},
		{"no extension", "main", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage, ok := StageFromPath(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, stage)
		})
	}
}

func TestParseStage(t *testing.T) {
	stage, ok := ParseStage("FRAG")
	assert.True(t, ok)
	assert.Equal(t, StageFragment, stage)

	_, ok = ParseStage("tess")
	assert.False(t, ok)
}
