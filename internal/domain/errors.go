package domain

import "errors"

// Resolution errors. All of them are terminal for the enclosing Resolve call:
// the first failure anywhere in the recursive expansion aborts the whole
// operation with the offending path embedded in the message.
var (
	// ErrUnsupportedProtocol reports a path scheme with no registered loader.
	ErrUnsupportedProtocol = errors.New("unsupported protocol")

	// ErrEmptyFile reports a loaded file with empty content. Empty files would
	// produce a zero-span segment, which breaks range invariants.
	ErrEmptyFile = errors.New("empty file")

	// ErrDuplicateProtocol reports an attempt to register a scheme twice.
	ErrDuplicateProtocol = errors.New("protocol is already registered")

	// ErrIncludeDepth reports include nesting beyond maxIncludeDepth.
	ErrIncludeDepth = errors.New("maximum include depth exceeded")
)
