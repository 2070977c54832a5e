// Package parser reconstructs concept records from raw Turtle document text.
// It recognizes a practical line-oriented subset of the statement language:
// one subject per block, quoted single-line literals, and `;`/`.` separated
// properties. Multi-line quoted literals, blank-node subjects and collection
// syntax are out of scope.
package parser

import (
	"regexp"
	"strings"
)

// conceptStart recognizes the line that opens a concept block: an
// identifier token (bracketed URI or bare/prefixed name) typed as a
// skos:Concept.
var conceptStart = regexp.MustCompile(`^(<[^>]+>|[a-zA-Z0-9_:/.-]+)\s+a\s+skos:Concept`)

// segmenter states.
type segState int

const (
	outsideBlock segState = iota
	inBlock
)

// SegmentBlocks splits document text into one raw statement block per
// concept. Blank lines and full-line comments are dropped. A block closes on
// a lone "." line; trailing content without a terminator is still flushed as
// a final block.
func SegmentBlocks(content string) []string {
	var blocks []string
	var current []string
	state := outsideBlock

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
		state = outsideBlock
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case conceptStart.MatchString(line):
			// A new subject declaration closes any open block.
			flush()
			current = []string{line}
			state = inBlock
		case line == "." && state == inBlock:
			current = append(current, line)
			flush()
		case state == inBlock:
			current = append(current, line)
		}
	}
	flush()

	return blocks
}
