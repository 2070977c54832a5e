package validate

import (
	"fmt"
	"strings"

	"github.com/janschachtschabel/skohub-ttl-cleaner/model"
	"github.com/janschachtschabel/skohub-ttl-cleaner/vocabulary/skos"
)

type relationPair struct {
	source string
	target string
}

// SemanticRelations flags concept pairs linked both hierarchically and
// associatively (S27), and mutual broader links. The cycle check is a
// deliberate 2-node check only; deeper cycles are left to consumers, keeping
// this family cheap and deterministic.
func SemanticRelations(concepts []*model.Concept) []model.Finding {
	var broaderPairs, relatedPairs []relationPair

	for _, c := range concepts {
		for _, prop := range c.OtherProperties {
			switch {
			case strings.Contains(prop, skos.Broader+" "):
				for _, target := range model.PropertyURIs(prop) {
					broaderPairs = append(broaderPairs, relationPair{c.URI, target})
				}
			case strings.Contains(prop, skos.Related+" "):
				for _, target := range model.PropertyURIs(prop) {
					relatedPairs = append(relatedPairs, relationPair{c.URI, target})
				}
			}
		}
	}

	broaderSet := make(map[relationPair]bool, len(broaderPairs))
	for _, p := range broaderPairs {
		broaderSet[p] = true
	}
	relatedSet := make(map[relationPair]bool, len(relatedPairs))
	for _, p := range relatedPairs {
		relatedSet[p] = true
	}

	var findings []model.Finding

	emitted := make(map[relationPair]bool)
	for _, p := range broaderPairs {
		if relatedSet[p] && !emitted[p] {
			emitted[p] = true
			findings = append(findings, model.Violation(model.CategoryBroaderRelatedConflict, fmt.Sprintf(
				"S27 Violation: <%s> has both skos:broader and skos:related to <%s>. "+
					"Suggestion: Use either broader or related, but not both for the same concept pair.",
				p.source, strings.Trim(p.target, "<>"))))
		}
	}

	cycleSeen := make(map[relationPair]bool)
	for _, p := range broaderPairs {
		// The target token carries brackets; the reverse pair's source is a
		// bare URI, so compare against the unbracketed form.
		reverse := relationPair{strings.Trim(p.target, "<>"), "<" + p.source + ">"}
		if broaderSet[reverse] && !cycleSeen[p] {
			cycleSeen[p] = true
			findings = append(findings, model.Warning(model.CategorySimpleCycle, fmt.Sprintf(
				"Simple cycle detected: <%s> and <%s> are mutually broader. "+
					"Suggestion: Remove one of the broader relations to create a proper hierarchy.",
				p.source, strings.Trim(p.target, "<>"))))
		}
	}

	return findings
}
