// Package pipeline wires the cleaning stages together: segment, parse,
// deduplicate, optionally autofix the hierarchy, validate, and serialize.
// Every phase runs to completion before the next begins; the only concession
// to scale is a sequential chunked mode that bounds the working set of the
// per-concept stages.
package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/janschachtschabel/skohub-ttl-cleaner/hierarchy"
	"github.com/janschachtschabel/skohub-ttl-cleaner/model"
	"github.com/janschachtschabel/skohub-ttl-cleaner/parser"
	"github.com/janschachtschabel/skohub-ttl-cleaner/serialize"
	"github.com/janschachtschabel/skohub-ttl-cleaner/validate"
)

// Options configure one cleaning run.
type Options struct {
	// ChunkSize is the number of concepts per chunk in memory-bounded
	// mode.
	ChunkSize int

	// EnableValidation runs the structural-integrity checks after
	// cleaning.
	EnableValidation bool

	// MemoryEfficient processes concepts chunk-by-chunk when the graph
	// exceeds ChunkSize. Chunking is sequential, not parallel; it bounds
	// peak memory, not wall-clock time.
	MemoryEfficient bool

	// EnableSKOSXL turns on extended-label validation.
	EnableSKOSXL bool

	// AutofixBroader inserts missing broader links toward the nearest
	// code-prefix parent.
	AutofixBroader bool

	// WarnMissingNarrower reports info-level findings for parents lacking
	// the reverse narrower link.
	WarnMissingNarrower bool
}

// DefaultOptions returns the defaults of the command-line tool.
func DefaultOptions() Options {
	return Options{
		ChunkSize:        1000,
		EnableValidation: true,
	}
}

// Validate checks the options for errors.
func (o Options) Validate() error {
	if o.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", o.ChunkSize)
	}
	return nil
}

// Result is the outcome of one cleaning run.
type Result struct {
	// Concepts is the deduplicated final graph.
	Concepts []*model.Concept

	// Cleaned is the re-serialized document.
	Cleaned string

	// Validation holds the three ordered finding lists; nil when
	// validation was disabled.
	Validation *validate.Result

	// Summary counts findings per fixed category; nil when validation was
	// disabled.
	Summary map[model.Category]int

	// BroaderLinksAdded is the number of hierarchy-autofix insertions.
	BroaderLinksAdded int

	// State exposes the run counters, change log and document metadata.
	State *model.RunState
}

// Pipeline runs the cleaning stages over one document.
type Pipeline struct {
	opts   Options
	logger *slog.Logger
}

// New creates a Pipeline. Returns an error when the options are invalid.
func New(opts Options, logger *slog.Logger) (*Pipeline, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{opts: opts, logger: logger}, nil
}

// Run processes one document. Parse-level defects are recovered and
// surfaced through the statistics and change log; a failure inside a
// validation family or the autofix pass aborts the run.
func (p *Pipeline) Run(content string) (*Result, error) {
	state := model.NewRunState()
	prs := parser.New(state)

	p.logger.Info("parsing document", "run_id", state.RunID, "size", len(content))
	concepts := prs.ParseDocument(content)
	p.logger.Info("concepts extracted",
		"blocks", state.Stats.TotalConcepts,
		"parsed", len(concepts),
		"rejected_no_preflabel", state.Stats.ConceptsWithoutPrefLabel)

	cleaned := p.dedupe(state, concepts)
	state.Stats.FinalConcepts = len(cleaned)

	result := &Result{Concepts: cleaned, State: state}

	if p.opts.AutofixBroader {
		p.logger.Info("applying hierarchy autofix for missing broader links")
		result.BroaderLinksAdded = hierarchy.Autofix(cleaned, state)
		p.logger.Info("autofix complete", "broader_links_added", result.BroaderLinksAdded)
	}

	if p.opts.EnableValidation {
		validation, err := p.validate(state, prs, cleaned)
		if err != nil {
			return nil, err
		}
		result.Validation = validation
		result.Summary = validate.Summarize(validation.All())
		p.logger.Info("validation complete",
			"violations", len(validation.Violations),
			"warnings", len(validation.Warnings),
			"infos", len(validation.Infos))
	} else {
		p.logger.Info("validation disabled")
	}

	result.Cleaned = serialize.New(state).Document(cleaned, content)
	return result, nil
}

// dedupe applies first-seen-wins URI deduplication, chunk-by-chunk in
// memory-bounded mode.
func (p *Pipeline) dedupe(state *model.RunState, concepts []*model.Concept) []*model.Concept {
	d := newDeduper(state)

	if !p.chunked(concepts) {
		return d.keep(concepts)
	}

	total := (len(concepts) + p.opts.ChunkSize - 1) / p.opts.ChunkSize
	p.logger.Info("processing concepts in chunks",
		"concepts", len(concepts), "chunks", total, "chunk_size", p.opts.ChunkSize)

	cleaned := make([]*model.Concept, 0, len(concepts))
	for _, chunk := range chunks(concepts, p.opts.ChunkSize) {
		state.ProcessedChunks++
		p.logger.Debug("processing chunk", "chunk", state.ProcessedChunks, "of", total)
		cleaned = append(cleaned, d.keep(chunk)...)
	}
	return cleaned
}

// validate runs the rule families, partitioning the per-concept families in
// memory-bounded mode while the chunk-crossing families always see the full
// graph.
func (p *Pipeline) validate(state *model.RunState, prs *parser.Parser, concepts []*model.Concept) (*validate.Result, error) {
	engine := validate.NewEngine(state, prs.Canonicalizer(), p.logger)
	engine.EnableSKOSXL = p.opts.EnableSKOSXL
	engine.WarnMissingNarrower = p.opts.WarnMissingNarrower

	if !p.chunked(concepts) {
		return engine.Run(concepts)
	}

	combined := &validate.Result{}
	for _, chunk := range chunks(concepts, p.opts.ChunkSize) {
		partial, err := engine.PerConcept(chunk)
		if err != nil {
			return nil, err
		}
		merge(combined, partial)
	}

	p.logger.Info("running global validation across all chunks")
	global, err := engine.Global(concepts)
	if err != nil {
		return nil, err
	}
	merge(combined, global)
	return combined, nil
}

func (p *Pipeline) chunked(concepts []*model.Concept) bool {
	return p.opts.MemoryEfficient && len(concepts) > p.opts.ChunkSize
}

func chunks(concepts []*model.Concept, size int) [][]*model.Concept {
	var out [][]*model.Concept
	for start := 0; start < len(concepts); start += size {
		end := start + size
		if end > len(concepts) {
			end = len(concepts)
		}
		out = append(out, concepts[start:end])
	}
	return out
}

func merge(dst, src *validate.Result) {
	dst.Violations = append(dst.Violations, src.Violations...)
	dst.Warnings = append(dst.Warnings, src.Warnings...)
	dst.Infos = append(dst.Infos, src.Infos...)
}
