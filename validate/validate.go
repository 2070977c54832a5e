// Package validate runs the structural-integrity rule families over a
// cleaned concept graph. Every finding is advisory: the validator never
// blocks production of a cleaned document. An unexpected failure inside a
// rule family is not swallowed; it aborts the run so a partial report is
// never mistaken for a clean one.
package validate

import (
	"fmt"
	"log/slog"

	"github.com/janschachtschabel/skohub-ttl-cleaner/clean"
	"github.com/janschachtschabel/skohub-ttl-cleaner/model"
)

// Engine orchestrates the rule families and accumulates their findings.
type Engine struct {
	state  *model.RunState
	canon  *clean.Canonicalizer
	logger *slog.Logger

	// EnableSKOSXL turns on the extended-label rule family.
	EnableSKOSXL bool

	// WarnMissingNarrower reports info-level findings for parents lacking
	// an explicit reverse narrower link. Off by default: the inverse is
	// inferable, its absence is missing redundancy, not a defect.
	WarnMissingNarrower bool
}

// NewEngine returns a validation engine recording onto state.
func NewEngine(state *model.RunState, canon *clean.Canonicalizer, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{state: state, canon: canon, logger: logger}
}

// Result holds the three ordered finding sequences of a validation run.
type Result struct {
	Violations []model.Finding
	Warnings   []model.Finding
	Infos      []model.Finding
}

func (r *Result) add(findings []model.Finding) {
	for _, f := range findings {
		switch f.Severity {
		case model.SeverityViolation:
			r.Violations = append(r.Violations, f)
		case model.SeverityWarning:
			r.Warnings = append(r.Warnings, f)
		case model.SeverityInfo:
			r.Infos = append(r.Infos, f)
		}
	}
}

// All returns every finding in violation, warning, info order.
func (r *Result) All() []model.Finding {
	out := make([]model.Finding, 0, len(r.Violations)+len(r.Warnings)+len(r.Infos))
	out = append(out, r.Violations...)
	out = append(out, r.Warnings...)
	out = append(out, r.Infos...)
	return out
}

// Run executes every enabled rule family over the full concept list.
func (e *Engine) Run(concepts []*model.Concept) (*Result, error) {
	result := &Result{}

	families := []struct {
		name    string
		enabled bool
		fn      func([]*model.Concept) []model.Finding
	}{
		{"skos integrity", true, LabelIntegrity},
		{"semantic relations", true, SemanticRelations},
		{"datatypes and URIs", true, DatatypesAndURIs},
		{"SKOS-XL labels", e.EnableSKOSXL, e.skosXL},
		{"hierarchy gaps", true, e.hierarchyGaps},
		{"scheme consistency", true, e.schemeConsistency},
	}

	for _, family := range families {
		if !family.enabled {
			continue
		}
		findings, err := e.runFamily(family.name, concepts, family.fn)
		if err != nil {
			return nil, err
		}
		result.add(findings)
	}
	return result, nil
}

// PerConcept executes only the rule families that inspect concepts in
// isolation (label integrity, semantic relations, datatypes). Chunked mode
// applies these per chunk; the chunk-crossing families need global
// visibility and run separately via Global.
func (e *Engine) PerConcept(concepts []*model.Concept) (*Result, error) {
	result := &Result{}
	for _, family := range []struct {
		name string
		fn   func([]*model.Concept) []model.Finding
	}{
		{"skos integrity", LabelIntegrity},
		{"semantic relations", SemanticRelations},
		{"datatypes and URIs", DatatypesAndURIs},
	} {
		findings, err := e.runFamily(family.name, concepts, family.fn)
		if err != nil {
			return nil, err
		}
		result.add(findings)
	}
	return result, nil
}

// Global executes the chunk-crossing rule families over the full assembled
// concept list. Partitioning these would produce false gap and missing
// parent findings at chunk boundaries.
func (e *Engine) Global(concepts []*model.Concept) (*Result, error) {
	result := &Result{}
	for _, family := range []struct {
		name string
		fn   func([]*model.Concept) []model.Finding
	}{
		{"hierarchy gaps", e.hierarchyGaps},
		{"scheme consistency", e.schemeConsistency},
	} {
		findings, err := e.runFamily(family.name, concepts, family.fn)
		if err != nil {
			return nil, err
		}
		result.add(findings)
	}
	return result, nil
}

// runFamily executes one rule family, converting a panic inside it into a
// returned error so the run fails loudly instead of producing a silently
// partial report.
func (e *Engine) runFamily(name string, concepts []*model.Concept, fn func([]*model.Concept) []model.Finding) (findings []model.Finding, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s validation: %v", name, r)
		}
	}()

	e.logger.Debug("starting validation family", "family", name)
	findings = fn(concepts)
	e.logger.Debug("validation family completed", "family", name, "findings", len(findings))
	return findings, nil
}

func (e *Engine) skosXL(concepts []*model.Concept) []model.Finding {
	return SKOSXLLabels(concepts)
}

func (e *Engine) hierarchyGaps(concepts []*model.Concept) []model.Finding {
	return HierarchyGaps(concepts, e.WarnMissingNarrower)
}

func (e *Engine) schemeConsistency(concepts []*model.Concept) []model.Finding {
	return SchemeConsistency(concepts, e.state, e.canon)
}
