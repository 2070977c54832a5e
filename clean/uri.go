package clean

import (
	"strings"

	"github.com/janschachtschabel/skohub-ttl-cleaner/model"
	"github.com/janschachtschabel/skohub-ttl-cleaner/vocabulary/skos"
)

// Canonicalizer resolves raw identifier tokens to absolute URIs and
// classifies each change as a genuine fix or a cosmetic normalization.
type Canonicalizer struct {
	state *model.RunState
}

// NewCanonicalizer returns a Canonicalizer resolving against the base URI
// held on state, recording repairs onto it.
func NewCanonicalizer(state *model.RunState) *Canonicalizer {
	return &Canonicalizer{state: state}
}

// Clean resolves a raw identifier token to an absolute URI. It never logs;
// use Resolve for the recording variant.
//
// Resolution order: strip angle brackets; absolute URIs pass through; a
// relative token resolves against the document @base; a prefixed name
// expands against the known prefix table; a bare token falls back to the
// default concept namespace.
func (c *Canonicalizer) Clean(raw string) string {
	uri := strings.TrimSpace(raw)
	if strings.HasPrefix(uri, "<") && strings.HasSuffix(uri, ">") {
		uri = uri[1 : len(uri)-1]
	}

	if strings.HasPrefix(uri, "http") {
		return uri
	}

	base := strings.TrimRight(c.state.BaseURI, "/")
	switch {
	case base != "" && !strings.Contains(uri, ":"):
		return base + "/" + uri
	case strings.Contains(uri, ":"):
		prefix, local, _ := strings.Cut(uri, ":")
		if prefix == "esco" {
			return skos.DefaultConceptNamespace + local
		}
		return skos.FallbackNamespace + prefix + "/" + local
	case base != "":
		return base + "/" + uri
	default:
		return skos.DefaultConceptNamespace + uri
	}
}

// Resolve cleans a raw token and, when the value changed, classifies and
// records the change. The returned issue is "URI fixed", "URI normalized",
// or empty for untouched and suppressed no-op cases.
func (c *Canonicalizer) Resolve(raw string) (cleaned, issue string) {
	cleaned = c.Clean(raw)
	if cleaned == raw {
		return cleaned, ""
	}

	isFix, msg := c.Classify(raw, cleaned)
	if msg == "" {
		return cleaned, ""
	}
	c.state.Record("%s", msg)
	if isFix {
		c.state.Stats.MalformedURIsFixed++
		return cleaned, "URI fixed"
	}
	c.state.Stats.URINormalizations++
	return cleaned, "URI normalized"
}

// Classify decides whether a (raw, cleaned) change is a real fix or a
// normalization, and renders the change-log message. An empty message means
// the change is a no-op not worth logging: resolving a relative token
// against @base that the serializer will re-emit identically. That
// suppression is deliberately permissive; it can hide a cross-base
// discrepancy, but keeps the log free of round-trip noise.
func (c *Canonicalizer) Classify(rawURI, cleaned string) (isFix bool, msg string) {
	raw := strings.TrimSpace(rawURI)
	inner := raw
	bracketed := strings.HasPrefix(raw, "<") && strings.HasSuffix(raw, ">")
	if bracketed {
		inner = raw[1 : len(raw)-1]
	}

	// Brackets around an already-absolute URI: cosmetic only.
	if bracketed && strings.HasPrefix(inner, "http") {
		return false, "URI normalized (angle brackets removed): " + raw
	}

	// Relative token with @base set.
	if c.state.BaseURI != "" && !strings.HasPrefix(inner, "http") && !strings.Contains(inner, ":") {
		expected := strings.TrimRight(c.state.BaseURI, "/") + "/" + strings.Trim(inner, "<>")
		if expected == cleaned {
			return false, ""
		}
		return false, "URI normalized using @base: " + raw + " -> <" + cleaned + ">"
	}

	// Prefixed name expanded: the source token was not a URI at all.
	if strings.Contains(inner, ":") && !strings.HasPrefix(inner, "http") {
		return true, "URI fixed: expanded prefix '" + inner + "' -> <" + cleaned + ">"
	}

	// Bare token without @base: defaulted namespace is a repair.
	if !strings.HasPrefix(inner, "http") && c.state.BaseURI == "" {
		return true, "URI fixed: added default namespace -> <" + cleaned + "> from '" + raw + "'"
	}

	if raw != rawURI {
		return false, "URI normalized (whitespace trimmed): '" + rawURI + "' -> '" + raw + "'"
	}

	if raw != cleaned {
		return false, "URI normalized: " + raw + " -> <" + cleaned + ">"
	}
	return false, ""
}
