// Package adapter contains filesystem and compiler adapters for the Fuze CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
)

// SourceFSAdapter abstracts the filesystem operations the domain layer relies
// on. It hides direct `os` access so resolution logic can be tested with
// in-memory protocol backends instead of the disk.
type SourceFSAdapter interface {
	// LoadFile canonicalizes path against the filesystem and reads it as
	// text. It backs the default "file" protocol of the resolver.
	LoadFile(path string) (string, error)

	// WriteFile writes content to a file, creating parent directories.
	WriteFile(path string, content []byte, perm os.FileMode) error

	// DirLoader returns a loader that reads paths relative to base. Used to
	// mount extra protocol schemes onto directories.
	DirLoader(base string) func(path string) (string, error)
}

// LocalSourceFSAdapter is the concrete implementation backed by the local
// filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter ready to be wired
// into the resolver and workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// LoadFile resolves path to its canonical form and reads it. Failures embed
// the offending path for traceability.
func (a *LocalSourceFSAdapter) LoadFile(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("path error %s: %w", path, err)
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("path error %s: %w", path, err)
	}

	content, err := os.ReadFile(canonical)
	if err != nil {
		return "", fmt.Errorf("file loading error (file %s): %w", path, err)
	}

	return string(content), nil
}

// WriteFile writes content to path, creating parent directories as needed.
func (a *LocalSourceFSAdapter) WriteFile(path string, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create output directory for %s: %w", path, err)
	}

	return os.WriteFile(path, content, perm)
}

// DirLoader returns a loader rooted at base.
func (a *LocalSourceFSAdapter) DirLoader(base string) func(path string) (string, error) {
	return func(path string) (string, error) {
		return a.LoadFile(filepath.Join(base, filepath.FromSlash(path)))
	}
}
