package parser

import (
	"strings"

	"github.com/janschachtschabel/skohub-ttl-cleaner/vocabulary/skos"
)

// parseOpaqueProperties collects every statement of a block that is not the
// subject declaration, the terminator, or one of the modeled text
// predicates. Statements spanning multiple lines are joined into one logical
// entry; trailing punctuation is stripped so entries round-trip cleanly.
func parseOpaqueProperties(block string) []string {
	var properties []string
	lines := strings.Split(block, "\n")

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		if line == "" || strings.HasPrefix(line, "#") ||
			strings.HasSuffix(line, "a "+skos.TypeConcept+" ;") || line == "." ||
			strings.HasPrefix(line, "http://") || strings.HasPrefix(line, "<") {
			i++
			continue
		}

		if isTextPredicateLine(line) {
			i++
			continue
		}

		if strings.Contains(line, ":") {
			var propLines []string
			for i < len(lines) {
				cur := strings.TrimSpace(lines[i])
				if cur == "" {
					i++
					continue
				}
				propLines = append(propLines, cur)
				if strings.HasSuffix(cur, ";") || strings.HasSuffix(cur, ".") {
					break
				}
				i++
			}
			complete := strings.TrimSpace(strings.TrimRight(strings.Join(propLines, " "), " ;.,"))
			if complete != "" && strings.Contains(complete, ":") {
				properties = append(properties, complete)
			}
		}
		i++
	}

	return properties
}

func isTextPredicateLine(line string) bool {
	for _, pred := range skos.TextPredicates {
		if strings.Contains(line, pred) {
			return true
		}
	}
	return false
}
