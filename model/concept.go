// Package model defines the core data types of the cleaning pipeline: the
// Concept record, validation findings, and the run-scoped state that carries
// counters and the change log through the pipeline stages.
package model

// Literal is one language-tagged text value.
type Literal struct {
	Text string
	Lang string
}

// String renders the literal in Turtle object form, e.g. `"Foo"@en`.
func (l Literal) String() string {
	if l.Lang == "" {
		return `"` + l.Text + `"`
	}
	return `"` + l.Text + `"@` + l.Lang
}

// Concept is one vocabulary entry reconstructed from a statement block.
//
// A Concept only enters the final graph when it carries at least one
// preferred label; the parser rejects blocks that end up without one.
// After deduplication the URI is unique across the graph.
type Concept struct {
	// URI is the canonicalized absolute identifier.
	URI string

	PrefLabels     []Literal
	AltLabels      []Literal
	Definitions    []Literal
	Notes          []Literal
	ScopeNotes     []Literal
	EditorialNotes []Literal
	HistoryNotes   []Literal
	ChangeNotes    []Literal
	Examples       []Literal

	// OtherProperties preserves every statement whose predicate is not one
	// of the modeled text predicates, verbatim minus trailing punctuation.
	// Entries are opaque; validators only ever extract bracketed URIs from
	// them, never re-parse literal content.
	OtherProperties []string

	// Issues records human-readable annotations from parsing, e.g.
	// "URI fixed".
	Issues []string
}

// AddPrefLabel appends a preferred label unless the same text+lang pair is
// already present.
func (c *Concept) AddPrefLabel(l Literal) {
	c.PrefLabels = appendUnique(c.PrefLabels, l)
}

// AddAltLabel appends an alternative label unless already present.
func (c *Concept) AddAltLabel(l Literal) {
	c.AltLabels = appendUnique(c.AltLabels, l)
}

func appendUnique(list []Literal, l Literal) []Literal {
	for _, have := range list {
		if have == l {
			return list
		}
	}
	return append(list, l)
}

// Labels returns preferred and alternative labels in one slice, preferred
// first. Used by the label quality checks.
func (c *Concept) Labels() []Literal {
	out := make([]Literal, 0, len(c.PrefLabels)+len(c.AltLabels))
	out = append(out, c.PrefLabels...)
	out = append(out, c.AltLabels...)
	return out
}
