package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	m "fuze.dev/pkg/fuze/internal/model"
)

// CompileResult carries the outcome of one external compile attempt. A failed
// compilation is data, not an error: Log holds the raw multi-line diagnostic
// whose lines optionally contain an OpenGL-style "N(line) :" marker.
type CompileResult struct {
	OK  bool
	Log string
}

// CompilerAdapter abstracts the external shader compiler. Fuze only submits
// the merged source text and reads back a pass/fail status plus the raw
// diagnostic string; everything else is the compiler's concern.
type CompilerAdapter interface {
	Compile(ctx context.Context, source string, stage m.ShaderStage) (CompileResult, error)
}

// DefaultCompileTimeout bounds a single external compile invocation.
const DefaultCompileTimeout = 30 * time.Second

const defaultCompilerBinary = "glslangValidator"

// LocalGlslangAdapter provides a concrete CompilerAdapter using os/exec.
type LocalGlslangAdapter struct {
	binary  string
	timeout time.Duration
}

// NewLocalGlslangAdapter constructs a LocalGlslangAdapter. Empty binary and
// non-positive timeout fall back to defaults.
func NewLocalGlslangAdapter(binary string, timeout time.Duration) *LocalGlslangAdapter {
	if binary == "" {
		binary = defaultCompilerBinary
	}

	if timeout <= 0 {
		timeout = DefaultCompileTimeout
	}

	return &LocalGlslangAdapter{binary: binary, timeout: timeout}
}

// Compile feeds source to the compiler on stdin and returns its verdict. A
// non-zero exit is reported as a failed CompileResult; only a missing or
// unrunnable binary is an error.
func (a *LocalGlslangAdapter) Compile(ctx context.Context, source string, stage m.ShaderStage) (CompileResult, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, a.binary, "--stdin", "-S", stage.Flag())
	cmd.Stdin = strings.NewReader(source)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	log := stdout.String() + stderr.String()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return CompileResult{OK: false, Log: log}, nil
	}

	if err != nil {
		return CompileResult{}, fmt.Errorf("run %s: %w", a.binary, err)
	}

	return CompileResult{OK: true, Log: log}, nil
}
