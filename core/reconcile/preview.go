package reconcile

import (
	"fmt"

	"catalog-manager/core/fuzzy"
	"catalog-manager/core/tabular"
)

// QueryMatch is the resolution of one free-text query.
type QueryMatch struct {
	Query      string            `json:"query"`
	Candidates []fuzzy.Candidate `json:"candidates"`
	// Selected is the chosen id, empty when the query was ignored.
	Selected string `json:"selected,omitempty"`
}

// Preview is the diff shown before an import is applied.
type Preview struct {
	Source string `json:"source"`
	// Imported are the accepted ids in import order.
	Imported []string `json:"imported"`
	// AlreadyMarked are imported ids found in the marked set.
	AlreadyMarked []string `json:"already_marked"`
	// New are imported ids not yet marked.
	New []string `json:"new"`
	// Existing is the size of the marked set when the preview was built.
	Existing int `json:"existing"`
	// Validation is set for tabular imports. Operations expose it on their own,
	// also when rejected.
	Validation *tabular.ValidationResult `json:"-"`
	// Matches is set for free-text imports.
	Matches []QueryMatch `json:"matches,omitempty"`
}

func newPreview(source string, existing, imported []string) *Preview {
	already, added := Diff(existing, imported)
	return &Preview{
		Source:        source,
		Imported:      imported,
		AlreadyMarked: already,
		New:           added,
		Existing:      len(existing),
	}
}

// NeedsStrategy reports whether applying requires choosing merge or overwrite.
func (p *Preview) NeedsStrategy() bool {
	return p.Existing > 0
}

// Summary returns a one-line description of the diff.
func (p *Preview) Summary() string {
	s := fmt.Sprintf("%d to import: %d new, %d already marked", len(p.Imported), len(p.New), len(p.AlreadyMarked))
	if p.Validation != nil && p.Validation.InvalidCount() > 0 {
		s += fmt.Sprintf(", %d rows skipped", p.Validation.InvalidCount())
	}
	return s
}

// Outcome is the result of an applied operation.
type Outcome struct {
	Strategy Strategy `json:"strategy"`
	Previous []string `json:"previous"`
	Marked   []string `json:"marked"`
	Added    int      `json:"added"`
	Removed  int      `json:"removed"`
}

func newOutcome(strategy Strategy, previous, marked []string) *Outcome {
	kept := make(map[string]struct{}, len(marked))
	for _, id := range marked {
		kept[id] = struct{}{}
	}
	had := make(map[string]struct{}, len(previous))
	removed := 0
	for _, id := range previous {
		if _, dup := had[id]; dup {
			continue
		}
		had[id] = struct{}{}
		if _, ok := kept[id]; !ok {
			removed++
		}
	}
	added := 0
	for id := range kept {
		if _, ok := had[id]; !ok {
			added++
		}
	}
	return &Outcome{
		Strategy: strategy,
		Previous: previous,
		Marked:   marked,
		Added:    added,
		Removed:  removed,
	}
}
