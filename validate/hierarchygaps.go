package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/janschachtschabel/skohub-ttl-cleaner/hierarchy"
	"github.com/janschachtschabel/skohub-ttl-cleaner/model"
	"github.com/janschachtschabel/skohub-ttl-cleaner/vocabulary/skos"
)

// HierarchyGaps detects missing intermediate levels implied by code tokens
// and checks broader/narrower consistency against the code-derived parents.
// It reuses the autofixer's code extraction and prefix logic, read-only.
//
// For each coded concept: every candidate prefix without an existing concept
// is a gap warning; when at least one prefix exists as a concept but none is
// referenced by a declared broader link, that is a violation. With
// warnNarrower set, a linked prefix parent lacking the reverse narrower
// statement yields an info-level finding.
func HierarchyGaps(concepts []*model.Concept, warnNarrower bool) []model.Finding {
	idx := hierarchy.BuildCodeIndex(concepts)
	if len(idx.CodeToURI) == 0 {
		return nil
	}

	broaderMap := hierarchy.BroaderCodes(concepts, idx)
	narrowerMap := narrowerCodes(concepts, idx)

	var findings []model.Finding
	for _, c := range concepts {
		code := idx.URIToCode[c.URI]
		if code == "" {
			continue
		}
		prefixes := hierarchy.CodePrefixes(code)
		if len(prefixes) == 0 {
			continue
		}

		candidates := make(map[string]bool)
		for _, prefix := range prefixes {
			if _, ok := idx.CodeToURI[prefix]; ok {
				candidates[prefix] = true
			} else {
				findings = append(findings, model.Warning(model.CategoryHierarchyGap, fmt.Sprintf(
					"Hierarchy gap: <%s> (code %s) is missing intermediate level concept '%s'. "+
						"Suggestion: Add concept '%s' or adjust codes to reflect intended hierarchy.",
					c.URI, code, prefix, prefix)))
			}
		}

		broaderCodes := broaderMap[code]
		if len(candidates) > 0 && !intersects(broaderCodes, candidates) {
			candidateURIs := codeURIs(sortedKeys(candidates), idx)
			broaderURIs := codeURIs(sortedKeys(broaderCodes), idx)
			if len(broaderURIs) == 0 {
				broaderURIs = []string{"—"}
			}
			findings = append(findings, model.Violation(model.CategoryMissingBroaderToPrefix, fmt.Sprintf(
				"Inconsistent hierarchy: <%s> (code %s) has no skos:broader to any prefix among [%s]. "+
					"Found broader targets: %s. "+
					"Suggestion: Add a skos:broader to one of its prefix concepts (e.g., %s).",
				c.URI, code, strings.Join(candidateURIs, ", "),
				strings.Join(broaderURIs, ", "), candidateURIs[0])))
		}

		if warnNarrower {
			for _, parentCode := range sortedKeys(broaderCodes) {
				if !candidates[parentCode] {
					continue
				}
				if narrowerMap[parentCode][code] {
					continue
				}
				parentURI := idx.CodeToURI[parentCode]
				findings = append(findings, model.Info(model.CategoryParentMissingNarrower, fmt.Sprintf(
					"Parent missing skos:narrower: %s should include <%s> (code %s) as narrower. "+
						"Suggestion: Add 'skos:narrower <%s>' to parent.",
					parentURI, c.URI, code, c.URI)))
			}
		}
	}
	return findings
}

// narrowerCodes collects, per source code, the code tokens of every declared
// narrower target.
func narrowerCodes(concepts []*model.Concept, idx *hierarchy.CodeIndex) map[string]map[string]bool {
	out := make(map[string]map[string]bool)
	for _, c := range concepts {
		srcCode := idx.URIToCode[c.URI]
		if srcCode == "" {
			continue
		}
		for _, prop := range c.OtherProperties {
			if !strings.Contains(prop, skos.Narrower+" ") {
				continue
			}
			for _, target := range model.PropertyURIs(prop) {
				if tgtCode := hierarchy.ExtractCode(target); tgtCode != "" {
					if out[srcCode] == nil {
						out[srcCode] = make(map[string]bool)
					}
					out[srcCode][tgtCode] = true
				}
			}
		}
	}
	return out
}

func intersects(a, b map[string]bool) bool {
	for k := range a {
		if b[k] {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func codeURIs(codes []string, idx *hierarchy.CodeIndex) []string {
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		if uri, ok := idx.CodeToURI[code]; ok {
			out = append(out, uri)
		} else {
			out = append(out, "<"+code+">")
		}
	}
	return out
}
