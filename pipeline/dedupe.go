package pipeline

import "github.com/janschachtschabel/skohub-ttl-cleaner/model"

// deduper drops later records sharing an already-seen URI. It persists
// across chunks so the uniqueness invariant holds even in memory-bounded
// mode.
type deduper struct {
	state *model.RunState
	seen  map[string]bool
}

func newDeduper(state *model.RunState) *deduper {
	return &deduper{state: state, seen: make(map[string]bool)}
}

// keep filters a batch of concepts first-seen-wins, counting and logging
// every dropped duplicate.
func (d *deduper) keep(concepts []*model.Concept) []*model.Concept {
	unique := make([]*model.Concept, 0, len(concepts))
	for _, c := range concepts {
		if d.seen[c.URI] {
			d.state.Stats.DuplicatesRemoved++
			d.state.Record("Duplicate removed: %s", c.URI)
			continue
		}
		d.seen[c.URI] = true
		unique = append(unique, c)
	}
	return unique
}

// MergeDuplicates collapses records sharing one URI into a single concept
// with the union of their label sets and issues. It is an available
// alternative to first-seen-wins dedup, not the default path.
func MergeDuplicates(concepts []*model.Concept) *model.Concept {
	if len(concepts) == 0 {
		return nil
	}

	merged := *concepts[0]
	merged.PrefLabels = nil
	merged.AltLabels = nil
	merged.Issues = nil

	seenIssues := make(map[string]bool)
	for _, c := range concepts {
		for _, l := range c.PrefLabels {
			merged.AddPrefLabel(l)
		}
		for _, l := range c.AltLabels {
			merged.AddAltLabel(l)
		}
		for _, issue := range c.Issues {
			if !seenIssues[issue] {
				seenIssues[issue] = true
				merged.Issues = append(merged.Issues, issue)
			}
		}
	}
	return &merged
}
