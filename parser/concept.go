package parser

import (
	"regexp"
	"strings"

	"github.com/janschachtschabel/skohub-ttl-cleaner/clean"
	"github.com/janschachtschabel/skohub-ttl-cleaner/model"
	"github.com/janschachtschabel/skohub-ttl-cleaner/vocabulary/skos"
)

var (
	conceptSubject = regexp.MustCompile(`(?m)^(<[^>]+>|[a-zA-Z0-9_:/.-]+)\s+a\s+skos:Concept`)
	literal        = regexp.MustCompile(`"([^"]+)"(?:@([A-Za-z0-9-]+))?`)
	leadingLiteral = regexp.MustCompile(`^"([^"]+)"(?:@([A-Za-z0-9-]+))?`)
	statementEnd   = regexp.MustCompile(`[;.]`)
)

// predicateStart locates predicate occurrences for literal extraction.
var predicateStart = map[string]*regexp.Regexp{}

func init() {
	for _, pred := range skos.TextPredicates {
		predicateStart[pred] = regexp.MustCompile(regexp.QuoteMeta(pred) + `\s+`)
	}
}

// Parser turns raw statement blocks into concept records, delegating
// identifier and literal repair to the clean package.
type Parser struct {
	state *model.RunState
	canon *clean.Canonicalizer
	norm  *clean.Normalizer
}

// New returns a Parser recording onto state.
func New(state *model.RunState) *Parser {
	return &Parser{
		state: state,
		canon: clean.NewCanonicalizer(state),
		norm:  clean.NewNormalizer(state),
	}
}

// Canonicalizer exposes the parser's URI canonicalizer for validators that
// need scheme-URI comparison against both raw and resolved forms.
func (p *Parser) Canonicalizer() *clean.Canonicalizer { return p.canon }

// ParseDocument extracts metadata, segments the document, and parses every
// block. Blocks without a subject declaration or without any surviving
// preferred label are dropped and counted, never fatal.
func (p *Parser) ParseDocument(content string) []*model.Concept {
	ExtractMetadata(content, p.state)

	blocks := SegmentBlocks(content)
	p.state.Stats.TotalConcepts = len(blocks)

	concepts := make([]*model.Concept, 0, len(blocks))
	for _, block := range blocks {
		if c := p.ParseBlock(block); c != nil {
			concepts = append(concepts, c)
		}
	}
	return concepts
}

// ParseBlock parses one statement block into a Concept. It returns nil for
// the two hard rejection cases: no recognizable subject declaration, and no
// preferred label surviving normalization.
func (p *Parser) ParseBlock(block string) *model.Concept {
	c := &model.Concept{}

	m := conceptSubject.FindStringSubmatch(block)
	if m == nil {
		p.state.Stats.InvalidConceptsRemoved++
		return nil
	}
	rawURI := strings.TrimSpace(m[1])
	cleaned, issue := p.canon.Resolve(rawURI)
	c.URI = cleaned
	if issue != "" {
		c.Issues = append(c.Issues, issue)
	}

	p.extractLiterals(block, skos.PrefLabel, p.norm.CleanLabel, c.AddPrefLabel)
	p.extractLiterals(block, skos.AltLabel, p.norm.CleanLabel, c.AddAltLabel)
	p.extractLiterals(block, skos.Definition, p.norm.CleanText, appendTo(&c.Definitions))
	p.extractLiterals(block, skos.Note, p.norm.CleanText, appendTo(&c.Notes))
	p.extractLiterals(block, skos.ScopeNote, p.norm.CleanText, appendTo(&c.ScopeNotes))
	p.extractLiterals(block, skos.EditorialNote, p.norm.CleanText, appendTo(&c.EditorialNotes))
	p.extractLiterals(block, skos.HistoryNote, p.norm.CleanText, appendTo(&c.HistoryNotes))
	p.extractLiterals(block, skos.ChangeNote, p.norm.CleanText, appendTo(&c.ChangeNotes))
	p.extractLiterals(block, skos.Example, p.norm.CleanText, appendTo(&c.Examples))

	c.OtherProperties = parseOpaqueProperties(block)

	if len(c.PrefLabels) == 0 {
		c.Issues = append(c.Issues, "No prefLabel found")
		p.state.Stats.ConceptsWithoutPrefLabel++
		return nil
	}
	return c
}

// extractLiterals collects every literal object of one text predicate. The
// object directly attached to the predicate is taken whole, tolerating
// terminator characters inside its text; the remainder of the statement is
// then scanned up to the first terminator for comma-joined additional
// objects. Each value runs through cleanFn exactly once, so repairs are
// counted and logged once per occurrence. add is expected to skip duplicates.
func (p *Parser) extractLiterals(block, pred string, cleanFn func(string) string, add func(model.Literal)) {
	for _, loc := range predicateStart[pred].FindAllStringIndex(block, -1) {
		tail := block[loc[1]:]

		if m := leadingLiteral.FindStringSubmatch(tail); m != nil {
			if text := cleanFn(m[1]); text != "" {
				add(model.Literal{Text: text, Lang: langOrDefault(m[2])})
			}
			tail = tail[len(m[0]):]
		}

		if end := statementEnd.FindStringIndex(tail); end != nil {
			tail = tail[:end[0]]
		}
		for _, m := range literal.FindAllStringSubmatch(tail, -1) {
			if text := cleanFn(m[1]); text != "" {
				add(model.Literal{Text: text, Lang: langOrDefault(m[2])})
			}
		}
	}
}

// appendTo adapts a literal slice into a duplicate-skipping add function.
func appendTo(list *[]model.Literal) func(model.Literal) {
	return func(l model.Literal) {
		for _, have := range *list {
			if have == l {
				return
			}
		}
		*list = append(*list, l)
	}
}

func langOrDefault(lang string) string {
	if lang == "" {
		return "en"
	}
	return lang
}
