package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// diagRe matches OpenGL-style "source(line) :" markers in compiler output.
var diagRe = regexp.MustCompile(`(\d+)\((\d+)\) :`)

// RemapDiagnostics rewrites a raw compiler diagnostic produced against the
// merged text so each matched line names the original file, the include
// chain, and the local line number. Lines without a marker, or whose line
// number is not covered by the source map, pass through unchanged: this is a
// best-effort enrichment, never a failure.
func RemapDiagnostics(raw string, source *SourceMap) string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		match := diagRe.FindStringSubmatch(line)
		if match == nil {
			out = append(out, line)
			continue
		}

		merged, err := strconv.Atoi(match[2])
		if err != nil {
			out = append(out, line)
			continue
		}

		_, local, ok := source.FileAndLineAt(merged)
		if !ok {
			out = append(out, line)
			continue
		}

		// Innermost file first, then the chain of includers outward.
		chain := source.AllSegmentsAt(merged)
		names := make([]string, 0, len(chain))

		for i := len(chain) - 1; i >= 0; i-- {
			names = append(names, chain[i].File)
		}

		out = append(out, fmt.Sprintf("File %s | Line %d | %s",
			strings.Join(names, " included from "), local, line))
	}

	return strings.Join(out, "\n")
}
