package validate

import (
	"fmt"
	"strings"

	"github.com/janschachtschabel/skohub-ttl-cleaner/model"
	"github.com/janschachtschabel/skohub-ttl-cleaner/vocabulary/skos"
)

var xlLabelPredicates = []string{skos.XLPrefLabel, skos.XLAltLabel, skos.XLHiddenLabel}

// SKOSXLLabels scans opaque properties for extended-label statements. A
// label resource sharing a URI with a concept is flagged, as is a
// literalForm statement on a subject no concept references as a label.
func SKOSXLLabels(concepts []*model.Concept) []model.Finding {
	var findings []model.Finding

	conceptURIs := make(map[string]bool, len(concepts))
	for _, c := range concepts {
		conceptURIs[c.URI] = true
	}

	xlLabelURIs := make(map[string]bool)
	for _, c := range concepts {
		for _, prop := range c.OtherProperties {
			switch {
			case containsAny(prop, xlLabelPredicates):
				xlURI := model.FirstPropertyURI(prop)
				if xlURI == "" {
					continue
				}
				xlLabelURIs[xlURI] = true
				if conceptURIs[strings.Trim(xlURI, "<>")] {
					findings = append(findings, model.Warning(model.CategoryXLURIConflict, fmt.Sprintf(
						"SKOS-XL label URI %s conflicts with concept URI in <%s>. "+
							"Suggestion: Use different namespace for XL labels.",
						xlURI, c.URI)))
				}
			case strings.Contains(prop, skos.XLLiteralForm):
				if !xlLabelURIs["<"+c.URI+">"] {
					findings = append(findings, model.Warning(model.CategoryXLOrphanedLabel, fmt.Sprintf(
						"Orphaned SKOS-XL label <%s> not referenced by any concept. "+
							"Suggestion: Link to concept via skosxl:prefLabel/altLabel/hiddenLabel.",
						c.URI)))
				}
			}
		}
	}
	return findings
}
