package model

import (
	"path/filepath"
	"strings"
)

// ShaderStage identifies the pipeline stage a shader source targets. The
// values double as the stage flag understood by glslangValidator.
type ShaderStage string

// Supported shader stages.
const (
	StageVertex   ShaderStage = "vert"
	StageGeometry ShaderStage = "geom"
	StageFragment ShaderStage = "frag"
	StageCompute  ShaderStage = "comp"
)

var stageByExt = map[string]ShaderStage{
	".vert": StageVertex,
	".geom": StageGeometry,
	".frag": StageFragment,
	".comp": StageCompute,
}

// StageFromPath infers the shader stage from the file extension of path.
func StageFromPath(path string) (ShaderStage, bool) {
	stage, ok := stageByExt[strings.ToLower(filepath.Ext(path))]
	return stage, ok
}

// ParseStage validates a user-provided stage name.
func ParseStage(name string) (ShaderStage, bool) {
	switch stage := ShaderStage(strings.ToLower(name)); stage {
	case StageVertex, StageGeometry, StageFragment, StageCompute:
		return stage, true
	}

	return "", false
}

// Flag returns the value passed to the external compiler's -S option.
func (s ShaderStage) Flag() string {
	return string(s)
}
