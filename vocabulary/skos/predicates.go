package skos

// Core SKOS predicates in the prefixed statement form recognized by the
// parser and validators.
const (
	// PrefLabel is the preferred lexical label of a concept.
	PrefLabel = "skos:prefLabel"

	// AltLabel is an alternative lexical label.
	AltLabel = "skos:altLabel"

	// HiddenLabel is a label for matching that is not displayed.
	HiddenLabel = "skos:hiddenLabel"

	// Definition is a complete explanation of the concept meaning.
	Definition = "skos:definition"

	// Note is a general documentation note.
	Note = "skos:note"

	// ScopeNote clarifies the intended usage boundaries of a concept.
	ScopeNote = "skos:scopeNote"

	// EditorialNote carries administrative information for maintainers.
	EditorialNote = "skos:editorialNote"

	// HistoryNote records significant changes to the concept meaning.
	HistoryNote = "skos:historyNote"

	// ChangeNote records fine-grained modifications.
	ChangeNote = "skos:changeNote"

	// Example illustrates concept usage.
	Example = "skos:example"

	// Broader links a concept to its hierarchical parent.
	Broader = "skos:broader"

	// Narrower links a concept to a hierarchical child.
	Narrower = "skos:narrower"

	// Related links two concepts associatively.
	Related = "skos:related"

	// InScheme asserts membership of a concept in a scheme.
	InScheme = "skos:inScheme"

	// TopConceptOf marks a concept as a root of a scheme.
	TopConceptOf = "skos:topConceptOf"

	// HasTopConcept is the inverse link from a scheme to its roots.
	HasTopConcept = "skos:hasTopConcept"
)

// Type markers used by the statement segmenter to recognize subjects.
const (
	// TypeConcept is the object of the rdf:type ("a") declaration that
	// opens a concept block.
	TypeConcept = "skos:Concept"

	// TypeConceptScheme marks the document-level scheme block.
	TypeConceptScheme = "skos:ConceptScheme"
)

// SKOS-XL predicates, only consulted when extended label checking is enabled.
const (
	// XLPrefLabel links a concept to a reified preferred label resource.
	XLPrefLabel = "skosxl:prefLabel"

	// XLAltLabel links a concept to a reified alternative label resource.
	XLAltLabel = "skosxl:altLabel"

	// XLHiddenLabel links a concept to a reified hidden label resource.
	XLHiddenLabel = "skosxl:hiddenLabel"

	// XLLiteralForm carries the literal text of a reified label.
	XLLiteralForm = "skosxl:literalForm"
)

// TextPredicates lists the predicates whose objects are language-tagged
// literals parsed into dedicated concept fields. Statements with any other
// predicate are preserved verbatim as opaque properties.
var TextPredicates = []string{
	PrefLabel,
	AltLabel,
	Definition,
	Note,
	ScopeNote,
	EditorialNote,
	HistoryNote,
	ChangeNote,
	Example,
}
