// Package hierarchy infers implied broader/narrower structure from the code
// tokens embedded in concept identifiers. Vocabularies in the target dialect
// encode their taxonomy in trailing digit groups ("42-10" is a child of
// "42"), which lets the cleaner both repair missing parent links and detect
// gaps in the declared hierarchy.
package hierarchy

import (
	"regexp"
	"strings"
)

var trailingCode = regexp.MustCompile(`(\d+(?:-\d+)*)$`)

// ExtractCode returns the trailing code token of a URI or identifier token:
// the longest suffix of hyphen-separated digit groups at the end of the last
// path segment. Returns the empty string when there is none.
//
//	<http://x/42-10> -> "42-10"
//	http://x/skill/311 -> "311"
func ExtractCode(uriOrToken string) string {
	s := strings.TrimSpace(uriOrToken)
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">") {
		s = s[1 : len(s)-1]
	}
	if strings.Contains(s, "/") {
		s = strings.TrimRight(s, "/")
		s = s[strings.LastIndex(s, "/")+1:]
	}
	return trailingCode.FindString(s)
}

// CodePrefixes returns the valid parent-code candidates for a code token,
// longest first, de-duplicated, excluding the code itself.
//
// For hyphenated codes every strict left-truncation by segment is a
// candidate, plus every strict digit-prefix of the leading segment:
//
//	"44-1-2" -> ["44-1", "44", "4"]
//
// For plain digit codes every strict digit-prefix is a candidate:
//
//	"311" -> ["31", "3"]
func CodePrefixes(code string) []string {
	if code == "" {
		return nil
	}

	var prefixes []string
	if strings.Contains(code, "-") {
		parts := strings.Split(code, "-")
		for i := len(parts) - 1; i >= 1; i-- {
			prefixes = append(prefixes, strings.Join(parts[:i], "-"))
		}
		first := parts[0]
		if isDigits(first) && len(first) > 1 {
			for k := len(first) - 1; k >= 1; k-- {
				prefixes = append(prefixes, first[:k])
			}
		}
	} else if isDigits(code) && len(code) > 1 {
		for k := len(code) - 1; k >= 1; k-- {
			prefixes = append(prefixes, code[:k])
		}
	}

	seen := make(map[string]bool, len(prefixes))
	result := prefixes[:0]
	for _, p := range prefixes {
		if !seen[p] {
			seen[p] = true
			result = append(result, p)
		}
	}
	return result
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
