package skos

// Namespace is the SKOS core namespace IRI.
const Namespace = "http://www.w3.org/2004/02/skos/core#"

// XLNamespace is the SKOS-XL namespace IRI.
const XLNamespace = "http://www.w3.org/2008/05/skos-xl#"

// ESCONamespace is the namespace of the European Skills, Competences,
// Qualifications and Occupations vocabulary family this cleaner targets.
const ESCONamespace = "http://data.europa.eu/esco/"

// DefaultConceptNamespace is the fallback namespace for bare identifier
// tokens and esco-prefixed names when the document declares no @base.
const DefaultConceptNamespace = "http://data.europa.eu/esco/skill/"

// FallbackNamespace is the generic expansion target for unknown prefixes.
// A prefixed name pre:local resolves to FallbackNamespace + "pre/local".
const FallbackNamespace = "http://example.org/"

// DefaultPrefixes are the prefix declarations emitted when the source
// document carries none of its own.
var DefaultPrefixes = []string{
	"@prefix skos: <" + Namespace + "> .",
	"@prefix esco: <" + ESCONamespace + "> .",
}
