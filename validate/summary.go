package validate

import "github.com/janschachtschabel/skohub-ttl-cleaner/model"

// Summarize counts findings per fixed summary category. Every one of the
// sixteen categories is present in the result, zero included; this is the
// stable by-check reporting contract. Findings outside the fixed categories
// (the SKOS-XL family) are reported individually but not summarized.
func Summarize(findings []model.Finding) map[model.Category]int {
	summary := make(map[model.Category]int, len(model.SummaryCategories))
	for _, cat := range model.SummaryCategories {
		summary[cat] = 0
	}
	for _, f := range findings {
		if _, tracked := summary[f.Category]; tracked {
			summary[f.Category]++
		}
	}
	return summary
}
