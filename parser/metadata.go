package parser

import (
	"regexp"
	"strings"

	"github.com/janschachtschabel/skohub-ttl-cleaner/model"
	"github.com/janschachtschabel/skohub-ttl-cleaner/vocabulary/skos"
)

var baseDecl = regexp.MustCompile(`@base\s+<([^>]+)>\s*\.`)

// ExtractMetadata captures the document-level @base declaration and the
// single ConceptScheme block onto the run state. Both are optional and
// scoped to one run.
func ExtractMetadata(content string, state *model.RunState) {
	if m := baseDecl.FindStringSubmatch(content); m != nil {
		state.BaseDeclaration = m[0]
		state.BaseURI = m[1]
	}

	var block []string
	inScheme := false
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.Contains(line, "a "+skos.TypeConceptScheme) {
			inScheme = true
			block = []string{line}
			continue
		}
		if inScheme {
			block = append(block, line)
			if strings.HasSuffix(line, " .") {
				state.ConceptScheme = strings.Join(block, "\n    ")
				inScheme = false
				block = nil
			}
		}
	}
}
