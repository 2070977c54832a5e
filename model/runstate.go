package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Stats holds the counters accumulated over one cleaning run.
type Stats struct {
	TotalConcepts           int
	DuplicatesRemoved       int
	MalformedURIsFixed      int
	URINormalizations       int
	EncodingIssuesFixed     int
	TextFieldsCleaned       int
	LabelsProcessed         int
	FinalConcepts           int
	DefinitionsProcessed    int
	NotesProcessed          int
	EmptyLabelsRemoved      int
	InvalidConceptsRemoved  int
	CommaFixes              int
	ConceptsWithoutPrefLabel int
}

// Map returns the counters as a string-keyed map, the form the reporting
// boundary consumes.
func (s *Stats) Map() map[string]int {
	return map[string]int{
		"total_concepts":             s.TotalConcepts,
		"duplicates_removed":         s.DuplicatesRemoved,
		"malformed_uris_fixed":       s.MalformedURIsFixed,
		"uri_normalizations":         s.URINormalizations,
		"encoding_issues_fixed":      s.EncodingIssuesFixed,
		"text_fields_cleaned":        s.TextFieldsCleaned,
		"labels_processed":           s.LabelsProcessed,
		"final_concepts":             s.FinalConcepts,
		"definitions_processed":      s.DefinitionsProcessed,
		"notes_processed":            s.NotesProcessed,
		"empty_labels_removed":       s.EmptyLabelsRemoved,
		"invalid_concepts_removed":   s.InvalidConceptsRemoved,
		"comma_fixes":                s.CommaFixes,
		"concepts_without_preflabel": s.ConceptsWithoutPrefLabel,
	}
}

// RunState is the mutable context of one document-processing run. It is
// created fresh per run and passed by reference through the pipeline stages,
// so nothing leaks between runs.
type RunState struct {
	// RunID identifies this run in logs and report headers.
	RunID string

	Stats Stats

	// ChangeLog collects human-readable descriptions of every repair and
	// normalization, in the order they happened.
	ChangeLog []string

	// BaseDeclaration is the verbatim @base statement, if the document has
	// one; BaseURI is the extracted IRI used for relative resolution.
	BaseDeclaration string
	BaseURI         string

	// ConceptScheme is the document's single ConceptScheme block captured
	// as an opaque statement sequence, empty when absent.
	ConceptScheme string

	// ProcessedChunks counts chunk iterations in memory-bounded mode.
	ProcessedChunks int
}

// NewRunState returns a fresh run context with a new run identifier.
func NewRunState() *RunState {
	return &RunState{RunID: uuid.New().String()}
}

// Record appends one change-log entry.
func (r *RunState) Record(format string, args ...any) {
	r.ChangeLog = append(r.ChangeLog, fmt.Sprintf(format, args...))
}
