package model

import "regexp"

var bracketedURI = regexp.MustCompile(`<([^>]+)>`)

// PropertyURIs extracts every bracketed identifier from an opaque property
// statement like "skos:narrower <a>, <b>". Tokens are returned with their
// angle brackets so they compare directly against statement text.
func PropertyURIs(prop string) []string {
	if prop == "" {
		return nil
	}
	var out []string
	for _, m := range bracketedURI.FindAllStringSubmatch(prop, -1) {
		out = append(out, "<"+m[1]+">")
	}
	return out
}

// FirstPropertyURI returns the first bracketed identifier of a property
// statement, or the empty string when it has none.
func FirstPropertyURI(prop string) string {
	if m := bracketedURI.FindStringSubmatch(prop); m != nil {
		return "<" + m[1] + ">"
	}
	return ""
}
