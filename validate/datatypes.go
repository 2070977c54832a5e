package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/janschachtschabel/skohub-ttl-cleaner/model"
)

// languageTag is the simplified BCP-47 shape accepted without warning: a
// 2-3 letter lowercase primary subtag, optional alphanumeric subtags of up
// to 8 characters each.
var languageTag = regexp.MustCompile(`^[a-z]{2,3}(-[A-Za-z0-9]{1,8})*$`)

// DatatypesAndURIs validates concept identifiers and label language tags.
// Broken URIs are violations; questionable language tags only warnings,
// since regional subtag conventions vary.
func DatatypesAndURIs(concepts []*model.Concept) []model.Finding {
	var findings []model.Finding

	for _, c := range concepts {
		if !IsValidURI(c.URI) {
			findings = append(findings, model.Violation(model.CategoryInvalidURI,
				fmt.Sprintf("Invalid URI format: %s", c.URI)))
		}

		for _, l := range c.Labels() {
			if l.Lang != "" && !IsValidLanguageTag(l.Lang) {
				findings = append(findings, model.Warning(model.CategoryInvalidLanguageTag,
					fmt.Sprintf("Potentially invalid language tag '%s' in %s", l.Lang, c.URI)))
			}
		}
	}
	return findings
}

// IsValidURI reports whether a URI parses as absolute with both a scheme
// and an authority component.
func IsValidURI(uri string) bool {
	parsed, err := url.Parse(strings.Trim(uri, "<>"))
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}

// IsValidLanguageTag reports whether a tag matches the simplified BCP-47
// shape.
func IsValidLanguageTag(tag string) bool {
	return tag != "" && languageTag.MatchString(tag)
}
