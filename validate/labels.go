package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/janschachtschabel/skohub-ttl-cleaner/model"
)

// encodingProbes are mis-decoded sequences that should never survive
// cleaning; their presence in a label points at a source-encoding problem.
var encodingProbes = []string{"Ã¤", "Ã¶", "Ã¼", "ÃŸ"}

// maxLabelLength is the quality threshold beyond which a label is flagged.
const maxLabelLength = 500

// LabelIntegrity checks the SKOS label conditions per concept: at most one
// prefLabel per language tag (S14), disjoint prefLabel/altLabel sets (S13),
// plus quality warnings for overlong, empty, mis-encoded, and URI-shaped
// labels.
func LabelIntegrity(concepts []*model.Concept) []model.Finding {
	var findings []model.Finding

	for _, c := range concepts {
		findings = append(findings, prefLabelCardinality(c)...)
		findings = append(findings, labelDisjointness(c)...)
		findings = append(findings, labelQuality(c)...)
	}
	return findings
}

// prefLabelCardinality flags more than one preferred label for the same
// language tag (S14).
func prefLabelCardinality(c *model.Concept) []model.Finding {
	byLang := make(map[string][]string)
	var langOrder []string
	for _, l := range c.PrefLabels {
		if _, seen := byLang[l.Lang]; !seen {
			langOrder = append(langOrder, l.Lang)
		}
		byLang[l.Lang] = append(byLang[l.Lang], l.Text)
	}

	var findings []model.Finding
	for _, lang := range langOrder {
		texts := byLang[lang]
		if len(texts) <= 1 {
			continue
		}
		quoted := make([]string, len(texts))
		for i, t := range texts {
			quoted[i] = `"` + t + `"`
		}
		findings = append(findings, model.Violation(model.CategoryPrefLabelDuplicates, fmt.Sprintf(
			"S14 Violation: <%s> has %d prefLabels for language '%s': %s. "+
				"Suggestion: Keep only one prefLabel per language, move others to altLabel.",
			c.URI, len(texts), lang, strings.Join(quoted, ", "))))
	}
	return findings
}

// labelDisjointness flags any text+language pair present in both the
// preferred and the alternative label set (S13).
func labelDisjointness(c *model.Concept) []model.Finding {
	prefSet := make(map[model.Literal]bool, len(c.PrefLabels))
	for _, l := range c.PrefLabels {
		prefSet[l] = true
	}

	var overlap []string
	seen := make(map[model.Literal]bool)
	for _, l := range c.AltLabels {
		if prefSet[l] && !seen[l] {
			seen[l] = true
			overlap = append(overlap, fmt.Sprintf("%q@%s", l.Text, l.Lang))
		}
	}
	if len(overlap) == 0 {
		return nil
	}
	return []model.Finding{model.Violation(model.CategoryLabelOverlap, fmt.Sprintf(
		"S13 Violation: <%s> has overlapping prefLabel/altLabel: %s. "+
			"Suggestion: Remove duplicate from altLabel or use different preferred term.",
		c.URI, strings.Join(overlap, ", ")))}
}

// labelQuality emits warnings for labels that are formally valid but
// suspicious.
func labelQuality(c *model.Concept) []model.Finding {
	var findings []model.Finding
	for _, l := range c.Labels() {
		text := l.Text

		if length := utf8.RuneCountInString(text); length > maxLabelLength {
			findings = append(findings, model.Warning(model.CategoryLabelTooLong, fmt.Sprintf(
				"Very long label (%d chars) in <%s>: '%s...'. "+
					"Suggestion: Consider shortening or using skos:definition for detailed descriptions.",
				length, c.URI, head(text, 50))))
		}

		if text == "" {
			findings = append(findings, model.Warning(model.CategoryLabelEmpty, fmt.Sprintf(
				"Empty label in <%s>. Suggestion: Remove empty label or provide meaningful text.", c.URI)))
		}

		if containsAny(text, encodingProbes) {
			findings = append(findings, model.Warning(model.CategoryLabelEncodingIssue, fmt.Sprintf(
				"Potential encoding issue in <%s>: '%s'. Suggestion: Check UTF-8 encoding of source data.",
				c.URI, text)))
		}

		lower := strings.ToLower(text)
		if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
			findings = append(findings, model.Warning(model.CategoryLabelLooksLikeURI, fmt.Sprintf(
				"Label looks like URI in <%s>: '%s'. Suggestion: Use skos:exactMatch for URI mappings instead.",
				c.URI, text)))
		}
	}
	return findings
}

func head(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}

func containsAny(s string, probes []string) bool {
	for _, p := range probes {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
