// Package skos provides the SKOS and SKOS-XL vocabulary terms used by the
// cleaner.
//
// Predicates are the literal statement tokens as they appear in the Turtle
// dialect this tool processes (prefixed form, e.g. "skos:prefLabel"), not
// expanded IRIs. The namespace constants hold the expansion targets the URI
// canonicalizer resolves prefixed and bare identifiers against.
//
// # Usage
//
//	import "github.com/janschachtschabel/skohub-ttl-cleaner/vocabulary/skos"
//
//	if strings.Contains(prop, skos.Broader+" ") {
//	    // hierarchical relation statement
//	}
package skos
