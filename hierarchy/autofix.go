package hierarchy

import (
	"strings"

	"github.com/janschachtschabel/skohub-ttl-cleaner/model"
	"github.com/janschachtschabel/skohub-ttl-cleaner/vocabulary/skos"
)

// CodeIndex maps code tokens to concept URIs and back for every concept
// whose identifier carries a code.
type CodeIndex struct {
	CodeToURI map[string]string
	URIToCode map[string]string
}

// BuildCodeIndex indexes the coded concepts of a graph. When two concepts
// share a code the later one wins, matching first-seen URI dedup upstream.
func BuildCodeIndex(concepts []*model.Concept) *CodeIndex {
	idx := &CodeIndex{
		CodeToURI: make(map[string]string),
		URIToCode: make(map[string]string),
	}
	for _, c := range concepts {
		if code := ExtractCode(c.URI); code != "" {
			idx.CodeToURI[code] = c.URI
			idx.URIToCode[c.URI] = code
		}
	}
	return idx
}

// BroaderCodes collects, per source code, the code tokens of every declared
// broader target.
func BroaderCodes(concepts []*model.Concept, idx *CodeIndex) map[string]map[string]bool {
	out := make(map[string]map[string]bool)
	for _, c := range concepts {
		srcCode := idx.URIToCode[c.URI]
		if srcCode == "" {
			continue
		}
		for _, prop := range c.OtherProperties {
			if !strings.Contains(prop, skos.Broader+" ") {
				continue
			}
			for _, target := range model.PropertyURIs(prop) {
				if tgtCode := ExtractCode(target); tgtCode != "" {
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

// Autofix inserts a broader link for every coded concept that declares none
// toward any existing prefix parent. The longest existing prefix is chosen
// as the immediate parent. Returns the number of links added; each addition
// is logged on the run state.
func Autofix(concepts []*model.Concept, state *model.RunState) int {
	idx := BuildCodeIndex(concepts)
	if len(idx.CodeToURI) == 0 {
		return 0
	}
	broader := BroaderCodes(concepts, idx)

	added := 0
	for _, c := range concepts {
		code := idx.URIToCode[c.URI]
		if code == "" {
			continue
		}

		var candidates []string
		for _, p := range CodePrefixes(code) {
			if _, ok := idx.CodeToURI[p]; ok {
				candidates = append(candidates, p)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		if anyDeclared(broader[code], candidates) {
			continue
		}

		// Candidates are ordered longest-first, so the first one with the
		// maximum length is the nearest parent.
		parent := candidates[0]
		for _, p := range candidates[1:] {
			if len(p) > len(parent) {
				parent = p
			}
		}
		parentURI := strings.Trim(idx.CodeToURI[parent], "<>")
		triple := skos.Broader + " <" + parentURI + ">"

		if hasProperty(c.OtherProperties, triple) {
			continue
		}
		c.OtherProperties = append(c.OtherProperties, triple)
		added++
		state.Record("Autofix: added %s <%s> to <%s> based on code %s",
			skos.Broader, parentURI, c.URI, code)
	}
	return added
}

func anyDeclared(declared map[string]bool, candidates []string) bool {
	for _, cand := range candidates {
		if declared[cand] {
			return true
		}
	}
	return false
}

func hasProperty(props []string, triple string) bool {
	for _, p := range props {
		if p == triple {
			return true
		}
	}
	return false
}
