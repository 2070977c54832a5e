package model

// Severity classifies how serious a validation finding is.
type Severity int

const (
	// SeverityViolation marks a SKOS-integrity-breaking condition.
	SeverityViolation Severity = iota

	// SeverityWarning marks a quality concern that does not break
	// integrity.
	SeverityWarning

	// SeverityInfo marks a non-mandatory, inferable gap (e.g. a missing
	// reverse narrower link).
	SeverityInfo
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityViolation:
		return "violation"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	}
	return "unknown"
}

// Category identifies the validation rule that produced a finding. Findings
// carry their category from creation so the summary never depends on message
// wording.
type Category int

const (
	CategoryPrefLabelDuplicates Category = iota
	CategoryLabelOverlap
	CategoryInvalidURI
	CategoryInvalidLanguageTag
	CategoryBroaderRelatedConflict
	CategorySimpleCycle
	CategoryHierarchyGap
	CategoryMissingBroaderToPrefix
	CategoryParentMissingNarrower
	CategoryTopConceptWithoutInScheme
	CategoryTopConceptNotAConcept
	CategoryTopConceptMissingInScheme
	CategoryLabelTooLong
	CategoryLabelEmpty
	CategoryLabelEncodingIssue
	CategoryLabelLooksLikeURI

	// SKOS-XL findings are reported individually but are not part of the
	// fixed summary contract.
	CategoryXLURIConflict
	CategoryXLOrphanedLabel
)

// categoryNames are the stable display names of the summary categories.
// Consumers of the by-check report depend on these strings.
var categoryNames = map[Category]string{
	CategoryPrefLabelDuplicates:       "S14 prefLabel duplicates",
	CategoryLabelOverlap:              "S13 pref/alt overlap",
	CategoryInvalidURI:                "URI format invalid",
	CategoryInvalidLanguageTag:        "Language tag possibly invalid",
	CategoryBroaderRelatedConflict:    "S27 broader+related conflict",
	CategorySimpleCycle:               "Simple hierarchy cycles",
	CategoryHierarchyGap:              "Hierarchy gap (missing intermediate level)",
	CategoryMissingBroaderToPrefix:    "Hierarchy: missing broader to prefix",
	CategoryParentMissingNarrower:     "Hierarchy: parent missing narrower",
	CategoryTopConceptWithoutInScheme: "Scheme: topConceptOf without inScheme",
	CategoryTopConceptNotAConcept:     "Scheme: hasTopConcept -> non-Concept",
	CategoryTopConceptMissingInScheme: "Scheme: hasTopConcept target missing inScheme",
	CategoryLabelTooLong:              "Label warning: very long",
	CategoryLabelEmpty:                "Label warning: empty",
	CategoryLabelEncodingIssue:        "Label warning: encoding issue",
	CategoryLabelLooksLikeURI:         "Label warning: looks like URI",
	CategoryXLURIConflict:             "SKOS-XL: label URI conflicts with concept",
	CategoryXLOrphanedLabel:           "SKOS-XL: orphaned label",
}

// String returns the stable display name of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// SummaryCategories is the ordered list of the sixteen categories the
// by-check summary always reports, zeros included.
var SummaryCategories = []Category{
	CategoryPrefLabelDuplicates,
	CategoryLabelOverlap,
	CategoryInvalidURI,
	CategoryInvalidLanguageTag,
	CategoryBroaderRelatedConflict,
	CategorySimpleCycle,
	CategoryHierarchyGap,
	CategoryMissingBroaderToPrefix,
	CategoryParentMissingNarrower,
	CategoryTopConceptWithoutInScheme,
	CategoryTopConceptNotAConcept,
	CategoryTopConceptMissingInScheme,
	CategoryLabelTooLong,
	CategoryLabelEmpty,
	CategoryLabelEncodingIssue,
	CategoryLabelLooksLikeURI,
}

// Finding is one immutable validation result.
type Finding struct {
	Severity Severity
	Category Category
	Message  string
}

// Violation constructs a violation-level finding.
func Violation(cat Category, msg string) Finding {
	return Finding{Severity: SeverityViolation, Category: cat, Message: msg}
}

// Warning constructs a warning-level finding.
func Warning(cat Category, msg string) Finding {
	return Finding{Severity: SeverityWarning, Category: cat, Message: msg}
}

// Info constructs an info-level finding.
func Info(cat Category, msg string) Finding {
	return Finding{Severity: SeverityInfo, Category: cat, Message: msg}
}
