package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/janschachtschabel/skohub-ttl-cleaner/clean"
	"github.com/janschachtschabel/skohub-ttl-cleaner/model"
	"github.com/janschachtschabel/skohub-ttl-cleaner/vocabulary/skos"
)

var (
	schemeSubject = regexp.MustCompile(`^(<[^>]+>|[a-zA-Z0-9_:/.-]+)\s+a\s+skos:ConceptScheme`)
	topConceptRef = regexp.MustCompile(`skos:hasTopConcept\s+<([^>]+)>`)
)

// SchemeConsistency checks scheme membership coherence: topConceptOf implies
// inScheme for the same scheme, and every hasTopConcept target of the
// document's ConceptScheme must be a known concept declaring membership in
// that scheme. Scheme URIs are compared in both their raw and canonicalized
// forms, tolerating either representation in concept statements.
func SchemeConsistency(concepts []*model.Concept, state *model.RunState, canon *clean.Canonicalizer) []model.Finding {
	var findings []model.Finding

	conceptURIs := make(map[string]bool, len(concepts))
	inScheme := make(map[string]map[string]bool)
	topOf := make(map[string]map[string]bool)

	addRelation := func(m map[string]map[string]bool, uri, scheme string) {
		if m[uri] == nil {
			m[uri] = make(map[string]bool)
		}
		m[uri][scheme] = true
	}

	for _, c := range concepts {
		if c.URI == "" {
			continue
		}
		conceptURIs[c.URI] = true
		for _, prop := range c.OtherProperties {
			if strings.Contains(prop, skos.InScheme+" ") {
				for _, scheme := range model.PropertyURIs(prop) {
					addRelation(inScheme, c.URI, scheme)
				}
			}
			if strings.Contains(prop, skos.TopConceptOf+" ") {
				for _, scheme := range model.PropertyURIs(prop) {
					addRelation(topOf, c.URI, scheme)
				}
			}
		}
	}

	// topConceptOf implies inScheme for the same scheme. Iterate concepts
	// in graph order so findings are deterministic.
	for _, c := range concepts {
		for _, scheme := range sortedKeys(topOf[c.URI]) {
			if !inScheme[c.URI][scheme] {
				findings = append(findings, model.Violation(model.CategoryTopConceptWithoutInScheme, fmt.Sprintf(
					"Concept <%s> has topConceptOf %s but is missing inScheme %s",
					c.URI, scheme, scheme)))
			}
		}
	}

	if state.ConceptScheme == "" {
		return findings
	}

	// Extract the scheme's own subject URI; keep raw and canonicalized
	// tokens so either spelling in concept statements counts.
	var rawToken, normToken string
	firstLine := strings.TrimSpace(strings.SplitN(state.ConceptScheme, "\n", 2)[0])
	if m := schemeSubject.FindStringSubmatch(firstLine); m != nil {
		inner := strings.Trim(m[1], "<>")
		rawToken = "<" + inner + ">"
		normToken = "<" + canon.Clean(inner) + ">"
	}

	for _, m := range topConceptRef.FindAllStringSubmatch(state.ConceptScheme, -1) {
		target := canon.Clean(strings.TrimSpace(m[1]))
		if !conceptURIs[target] {
			findings = append(findings, model.Violation(model.CategoryTopConceptNotAConcept,
				fmt.Sprintf("hasTopConcept points to non-Concept: <%s>", target)))
			continue
		}
		if rawToken == "" {
			continue
		}
		if !inScheme[target][rawToken] && !inScheme[target][normToken] {
			findings = append(findings, model.Violation(model.CategoryTopConceptMissingInScheme, fmt.Sprintf(
				"Concept <%s> is hasTopConcept of %s but missing inScheme %s",
				target, rawToken, rawToken)))
		}
	}
	return findings
}
