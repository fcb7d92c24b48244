package reconcile

import (
	"context"

	"catalog-manager/core/fuzzy"
)

// Prompt collects the decisions a person makes during an import.
type Prompt interface {
	// SelectCandidate resolves query to a record id. Returning ok=false ignores the
	// query. It is called even when candidates is empty.
	SelectCandidate(ctx context.Context, query string, candidates []fuzzy.Candidate) (id string, ok bool, err error)
	// ConfirmPreview answers DecisionProceed or DecisionCancel.
	ConfirmPreview(ctx context.Context, preview *Preview) (Decision, error)
	// ChooseStrategy answers DecisionMerge, DecisionOverwrite or DecisionCancel.
	// It is only asked when ids are already marked.
	ChooseStrategy(ctx context.Context, preview *Preview) (Decision, error)
}

// FixedPrompt answers every question from preset values.
type FixedPrompt struct {
	// Selections maps a query to the chosen id. An empty id ignores the query.
	Selections map[string]string
	// AcceptBest picks the best candidate for queries missing from Selections.
	AcceptBest bool
	// Confirm proceeds past the preview when true.
	Confirm bool
	// Strategy answers the strategy question.
	Strategy Strategy
}

func (p FixedPrompt) SelectCandidate(_ context.Context, query string, candidates []fuzzy.Candidate) (string, bool, error) {
	if id, ok := p.Selections[query]; ok {
		return id, id != "", nil
	}
	if p.AcceptBest {
		if best, ok := fuzzy.Best(candidates); ok {
			return best.Record.ID, true, nil
		}
	}
	return "", false, nil
}

func (p FixedPrompt) ConfirmPreview(_ context.Context, _ *Preview) (Decision, error) {
	if p.Confirm {
		return DecisionProceed, nil
	}
	return DecisionCancel, nil
}

func (p FixedPrompt) ChooseStrategy(_ context.Context, _ *Preview) (Decision, error) {
	if p.Strategy == "" {
		return DecisionMerge, nil
	}
	return p.Strategy.Decision(), nil
}
