// Package model defines the data structures for include resolution.
package model

import (
	"fmt"
	"regexp"
	"strings"
)

// protocolRe matches a protocol prefix such as "file://" or "res://".
var protocolRe = regexp.MustCompile(`^(\w+)://`)

// SplitProtocol splits the protocol prefix off a raw path string. The scheme
// is empty when the path carries no protocol.
func SplitProtocol(raw string) (scheme, rest string) {
	m := protocolRe.FindStringSubmatch(raw)
	if m == nil {
		return "", raw
	}

	return m[1], raw[len(m[0]):]
}

// Path is a normalized, optionally protocol-qualified slash path. Components
// never contain empty strings or ".", and ".." is resolved at construction
// time by popping the previous component. A leading ".." with nothing left to
// pop is kept until a Join provides the base path.
type Path struct {
	protocol   string
	rooted     bool
	components []string
}

// NewPath parses a raw path string. Both "/" and "\" act as separators.
func NewPath(raw string) Path {
	scheme, rest := SplitProtocol(raw)

	rooted := strings.HasPrefix(rest, "/") || strings.HasPrefix(rest, `\`)

	split := strings.FieldsFunc(rest, func(r rune) bool {
		return r == '/' || r == '\\'
	})

	components := make([]string, 0, len(split))

	for _, component := range split {
		components = appendComponent(components, component)
	}

	return Path{protocol: scheme, rooted: rooted, components: components}
}

// appendComponent accumulates one path component: "." is dropped and ".."
// pops the previous component. A ".." that cannot pop is kept so a later Join
// can resolve it against the base path.
func appendComponent(components []string, component string) []string {
	switch component {
	case ".":
		return components
	case "..":
		if n := len(components); n > 0 && components[n-1] != ".." {
			return components[:n-1]
		}
	}

	return append(components, component)
}

// Join appends the components of other to a clone of p, resolving any leading
// ".." of other against p's components. An absolute other replaces p's
// components entirely. Joining a protocol-qualified path is an error.
func (p Path) Join(other Path) (Path, error) {
	if other.protocol != "" {
		return Path{}, fmt.Errorf("cannot join protocol-qualified path %q", other.String())
	}

	if other.rooted {
		replaced := other.clone()
		replaced.protocol = p.protocol

		return replaced, nil
	}

	joined := p.clone()
	for _, component := range other.components {
		joined.components = appendComponent(joined.components, component)
	}

	return joined, nil
}

// Pop removes and returns the last component. The second return value is
// false when the path has no components.
func (p *Path) Pop() (string, bool) {
	if len(p.components) == 0 {
		return "", false
	}

	last := p.components[len(p.components)-1]
	p.components = p.components[:len(p.components)-1]

	return last, true
}

// Dirname returns a clone of p with the last component removed.
func (p Path) Dirname() Path {
	dir := p.clone()
	dir.Pop()

	return dir
}

// Protocol returns the scheme of the path, or "" for relative paths.
func (p Path) Protocol() string {
	return p.protocol
}

// Components returns a copy of the path components in order.
func (p Path) Components() []string {
	components := make([]string, len(p.components))
	copy(components, p.components)

	return components
}

// String renders the path as "scheme://a/b/c", or "a/b/c" without a protocol.
// Absolute local paths keep their leading slash.
func (p Path) String() string {
	joined := strings.Join(p.components, "/")

	if p.protocol != "" {
		return p.protocol + "://" + joined
	}

	if p.rooted {
		return "/" + joined
	}

	return joined
}

func (p Path) clone() Path {
	components := make([]string, len(p.components))
	copy(components, p.components)

	return Path{protocol: p.protocol, rooted: p.rooted, components: components}
}
