// Package serialize re-emits a cleaned concept graph in the source Turtle
// dialect: prefix declarations, the captured @base and ConceptScheme block,
// then one statement block per concept with `;`-separated properties and a
// terminating `.`.
package serialize

import (
	"strings"

	"github.com/janschachtschabel/skohub-ttl-cleaner/clean"
	"github.com/janschachtschabel/skohub-ttl-cleaner/model"
	"github.com/janschachtschabel/skohub-ttl-cleaner/vocabulary/skos"
)

// Serializer writes Turtle output for a cleaned graph. Literal values pass
// through the punctuation-spacing fixer on the way out, so emission both
// repairs stragglers and feeds the processed-label counters.
type Serializer struct {
	state *model.RunState
	norm  *clean.Normalizer
}

// New returns a Serializer recording onto state.
func New(state *model.RunState) *Serializer {
	return &Serializer{state: state, norm: clean.NewNormalizer(state)}
}

// Document renders the full cleaned document. Prefix declarations are
// carried over from the original content; when it has none, the default
// skos/esco prefixes are emitted.
func (s *Serializer) Document(concepts []*model.Concept, originalContent string) string {
	var lines []string

	if s.state.BaseDeclaration != "" {
		lines = append(lines, s.state.BaseDeclaration)
	}

	prefixes := collectPrefixes(originalContent)
	if len(prefixes) > 0 {
		lines = append(lines, prefixes...)
	} else {
		lines = append(lines, skos.DefaultPrefixes...)
	}
	lines = append(lines, "")

	if s.state.ConceptScheme != "" {
		lines = append(lines, s.state.ConceptScheme, "")
	}

	for _, c := range concepts {
		lines = append(lines, s.Concept(c), "")
	}

	return strings.Join(lines, "\n")
}

// Concept renders one concept statement block. A subject under the document
// base URI is re-relativized to a bracketed relative token.
func (s *Serializer) Concept(c *model.Concept) string {
	var lines []string

	subject := "<" + c.URI + ">"
	if s.state.BaseURI != "" && strings.HasPrefix(c.URI, s.state.BaseURI) {
		subject = "<" + c.URI[len(s.state.BaseURI):] + ">"
	}
	lines = append(lines, subject+" a "+skos.TypeConcept+" ;")

	var properties []string
	addLiterals := func(pred string, values []model.Literal, counter *int) {
		for _, l := range values {
			text := s.norm.FixCommaSpacing(l.Text)
			entry := pred + ` "` + text + `"`
			if l.Lang != "" {
				entry += "@" + l.Lang
			}
			properties = append(properties, entry)
			if counter != nil {
				*counter++
			}
		}
	}

	stats := &s.state.Stats
	addLiterals(skos.PrefLabel, c.PrefLabels, &stats.LabelsProcessed)
	addLiterals(skos.AltLabel, c.AltLabels, &stats.LabelsProcessed)
	addLiterals(skos.Definition, c.Definitions, &stats.DefinitionsProcessed)
	addLiterals(skos.Note, c.Notes, &stats.NotesProcessed)
	addLiterals(skos.ScopeNote, c.ScopeNotes, &stats.NotesProcessed)
	addLiterals(skos.EditorialNote, c.EditorialNotes, &stats.NotesProcessed)
	addLiterals(skos.HistoryNote, c.HistoryNotes, &stats.NotesProcessed)
	addLiterals(skos.ChangeNote, c.ChangeNotes, &stats.NotesProcessed)
	addLiterals(skos.Example, c.Examples, nil)

	for _, prop := range c.OtherProperties {
		if p := strings.TrimSpace(strings.TrimRight(prop, " ;.,")); p != "" {
			properties = append(properties, p)
		}
	}

	for i, prop := range properties {
		separator := " ;"
		if i == len(properties)-1 {
			separator = " ."
		}
		lines = append(lines, "    "+prop+separator)
	}

	return strings.Join(lines, "\n")
}

func collectPrefixes(content string) []string {
	var prefixes []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "@prefix") {
			prefixes = append(prefixes, line)
		}
	}
	return prefixes
}
