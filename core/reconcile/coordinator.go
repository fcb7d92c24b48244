package reconcile

import (
	"context"
	"errors"
	"fmt"

	"catalog-manager/core/catalog"
	"catalog-manager/core/fuzzy"
	"catalog-manager/core/tabular"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Coordinator starts import operations against one marked set.
type Coordinator struct {
	records RecordProvider
	codec   *tabular.Codec
	store   IdentifierStore
	logger  *zap.Logger
}

// NewCoordinator creates a coordinator.
func NewCoordinator(records RecordProvider, codec *tabular.Codec, store IdentifierStore, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		records: records,
		codec:   codec,
		store:   store,
		logger:  logger,
	}
}

// Begin creates an idle operation for source.
func (c *Coordinator) Begin(source string) *Operation {
	return &Operation{
		id:     uuid.NewString(),
		source: source,
		state:  StateIdle,
		coord:  c,
	}
}

// ImportTabular validates text and, once the prompt confirms, applies it.
// The returned operation is always non-nil and reports where the flow stopped.
func (c *Coordinator) ImportTabular(ctx context.Context, source, text string, prompt Prompt) (*Operation, error) {
	op := c.Begin(source)
	if err := op.ValidateTabular(ctx, text); err != nil {
		return op, err
	}
	_, err := op.Decide(ctx, prompt)
	return op, err
}

// ImportQueries resolves free-text queries through the prompt and, once confirmed, applies them.
func (c *Coordinator) ImportQueries(ctx context.Context, source, text string, prompt Prompt) (*Operation, error) {
	op := c.Begin(source)
	if err := op.MatchQueries(ctx, tabular.ParseQueries(text), prompt); err != nil {
		return op, err
	}
	_, err := op.Decide(ctx, prompt)
	return op, err
}

// Suggest returns match candidates for a single query.
func (c *Coordinator) Suggest(ctx context.Context, source, query string) ([]fuzzy.Candidate, error) {
	set, err := c.recordSet(ctx, source)
	if err != nil {
		return nil, err
	}
	return fuzzy.FindMatches(query, set.Records()), nil
}

func (c *Coordinator) recordSet(ctx context.Context, source string) (*catalog.RecordSet, error) {
	set, err := c.records.Get(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	return set, nil
}

// Operation is one import attempt. It is not safe for concurrent use.
type Operation struct {
	id     string
	source string
	state  State
	coord  *Coordinator

	validation *tabular.ValidationResult
	preview    *Preview
	outcome    *Outcome
	err        error
}

// ID returns the operation id.
func (op *Operation) ID() string { return op.id }

// Source returns the source the operation imports against.
func (op *Operation) Source() string { return op.source }

// State returns the current state.
func (op *Operation) State() State { return op.state }

// Preview returns the diff once the operation reached PreviewReady.
func (op *Operation) Preview() *Preview { return op.preview }

// Validation returns the tabular validation result, also when every row was rejected.
func (op *Operation) Validation() *tabular.ValidationResult { return op.validation }

// Outcome returns the applied result.
func (op *Operation) Outcome() *Outcome { return op.outcome }

// Err returns the error that rejected the operation.
func (op *Operation) Err() error { return op.err }

// ValidateTabular validates an import file and prepares the preview.
func (op *Operation) ValidateTabular(ctx context.Context, text string) error {
	set, err := op.enterValidating(ctx)
	if err != nil {
		return err
	}

	result, err := op.coord.codec.Validate(text, set)
	op.validation = result
	if err != nil {
		return op.reject(err)
	}

	preview, err := op.buildPreview(ctx, result.IDs())
	if err != nil {
		return op.reject(err)
	}
	preview.Validation = result
	return op.ready(preview, zap.Int("valid", result.ValidCount()), zap.Int("invalid", result.InvalidCount()))
}

// MatchQueries resolves each query to at most one record through prompt and
// prepares the preview. A query without candidates is still offered to the prompt.
func (op *Operation) MatchQueries(ctx context.Context, queries []string, prompt Prompt) error {
	set, err := op.enterValidating(ctx)
	if err != nil {
		return err
	}

	records := set.Records()
	matches := make([]QueryMatch, 0, len(queries))
	ids := make([]string, 0, len(queries))
	seen := make(map[string]struct{})
	for _, q := range queries {
		m := QueryMatch{Query: q, Candidates: fuzzy.FindMatches(q, records)}
		id, ok, err := prompt.SelectCandidate(ctx, q, m.Candidates)
		if err != nil {
			return op.reject(fmt.Errorf("failed to select candidate for %q: %w", q, err))
		}
		if ok {
			if !set.Has(id) {
				return op.reject(fmt.Errorf("selected id %s is not in source %s", id, op.source))
			}
			m.Selected = id
			if _, dup := seen[id]; !dup {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
		matches = append(matches, m)
	}

	if len(ids) == 0 {
		return op.reject(ErrNothingSelected)
	}

	preview, err := op.buildPreview(ctx, ids)
	if err != nil {
		return op.reject(err)
	}
	preview.Matches = matches
	return op.ready(preview, zap.Int("queries", len(queries)), zap.Int("selected", len(ids)))
}

// Decide asks prompt to confirm the preview and, when needed, to pick a strategy,
// then applies or cancels. A nil outcome with a nil error means the import was cancelled.
func (op *Operation) Decide(ctx context.Context, prompt Prompt) (*Outcome, error) {
	if op.state != StatePreviewReady {
		return nil, op.invalid(StateApplied)
	}

	decision, err := prompt.ConfirmPreview(ctx, op.preview)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm preview: %w", err)
	}
	if decision != DecisionProceed {
		return nil, op.Cancel()
	}

	strategy := StrategyOverwrite
	if op.preview.NeedsStrategy() {
		decision, err := prompt.ChooseStrategy(ctx, op.preview)
		if err != nil {
			return nil, fmt.Errorf("failed to choose strategy: %w", err)
		}
		switch decision {
		case DecisionMerge:
			strategy = StrategyMerge
		case DecisionOverwrite:
			strategy = StrategyOverwrite
		default:
			return nil, op.Cancel()
		}
	}
	return op.Apply(ctx, strategy)
}

// Apply writes the imported ids combined with the marked set using strategy.
// The marked set is read again first; if it is empty by then, overwrite is used.
func (op *Operation) Apply(ctx context.Context, strategy Strategy) (*Outcome, error) {
	if op.state != StatePreviewReady {
		return nil, op.invalid(StateApplied)
	}

	existing, err := op.coord.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read marked ids: %w", err)
	}
	if len(existing) == 0 {
		strategy = StrategyOverwrite
	}

	marked := Combine(strategy, existing, op.preview.Imported)
	if err := op.coord.store.Write(ctx, marked); err != nil {
		return nil, fmt.Errorf("failed to write marked ids: %w", err)
	}

	op.outcome = newOutcome(strategy, existing, marked)
	op.move(StateApplied, zap.String("strategy", string(strategy)), zap.Int("marked", len(marked)))
	return op.outcome, nil
}

// Cancel abandons a previewed operation without touching the marked set.
func (op *Operation) Cancel() error {
	if op.state != StatePreviewReady {
		return op.invalid(StateCancelled)
	}
	op.move(StateCancelled)
	return nil
}

func (op *Operation) enterValidating(ctx context.Context) (*catalog.RecordSet, error) {
	if op.state != StateIdle {
		return nil, op.invalid(StateValidating)
	}
	set, err := op.coord.recordSet(ctx, op.source)
	if err != nil {
		// Validating is never entered without a record set
		return nil, op.reject(err)
	}
	op.move(StateValidating)
	return set, nil
}

func (op *Operation) buildPreview(ctx context.Context, imported []string) (*Preview, error) {
	existing, err := op.coord.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read marked ids: %w", err)
	}
	return newPreview(op.source, existing, imported), nil
}

func (op *Operation) ready(preview *Preview, fields ...zap.Field) error {
	op.preview = preview
	fields = append(fields,
		zap.Int("new", len(preview.New)),
		zap.Int("already_marked", len(preview.AlreadyMarked)),
	)
	op.move(StatePreviewReady, fields...)
	return nil
}

func (op *Operation) reject(err error) error {
	op.err = err
	op.move(StateRejected, zap.Error(err))
	return err
}

func (op *Operation) move(next State, fields ...zap.Field) {
	if !op.state.canMoveTo(next) {
		// Internal misuse; callers check the state before moving
		panic(fmt.Sprintf("reconcile: illegal move %s -> %s", op.state, next))
	}
	op.state = next

	fields = append([]zap.Field{
		zap.String("operation_id", op.id),
		zap.String("source", op.source),
		zap.String("state", string(next)),
	}, fields...)
	if next == StateRejected {
		op.coord.logger.Warn("Import operation rejected", fields...)
		return
	}
	op.coord.logger.Info("Import operation transition", fields...)
}

func (op *Operation) invalid(next State) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, op.state, next)
}

// IsRejection reports whether err ended an operation in the Rejected state
// because of its input rather than an infrastructure failure.
func IsRejection(err error) bool {
	var verr *tabular.ValidationError
	return errors.As(err, &verr) || errors.Is(err, ErrNothingSelected)
}
