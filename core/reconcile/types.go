package reconcile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCatalogUnavailable is returned when the source's record set cannot be obtained.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrInvalidTransition is returned when an operation is driven out of order.
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrNothingSelected is returned when no query was resolved to a record.
	ErrNothingSelected = errors.New("no record selected")
)

// State is the lifecycle position of an Operation.
type State string

const (
	StateIdle         State = "idle"
	StateValidating   State = "validating"
	StateRejected     State = "rejected"
	StatePreviewReady State = "previewReady"
	StateApplied      State = "applied"
	StateCancelled    State = "cancelled"
)

// transitions lists the states reachable from each state.
var transitions = map[State][]State{
	StateIdle:         {StateValidating, StateRejected},
	StateValidating:   {StateRejected, StatePreviewReady},
	StatePreviewReady: {StateApplied, StateCancelled},
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateRejected || s == StateApplied || s == StateCancelled
}

func (s State) canMoveTo(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Decision is an answer returned by a Prompt.
type Decision string

const (
	DecisionProceed   Decision = "proceed"
	DecisionCancel    Decision = "cancel"
	DecisionMerge     Decision = "merge"
	DecisionOverwrite Decision = "overwrite"
)

// Strategy selects how imported ids combine with the marked set.
type Strategy string

const (
	StrategyMerge     Strategy = "merge"
	StrategyOverwrite Strategy = "overwrite"
)

// ParseStrategy parses a strategy name. An empty name yields merge.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyMerge:
		return StrategyMerge, nil
	case StrategyOverwrite:
		return StrategyOverwrite, nil
	default:
		return "", fmt.Errorf("unknown strategy %q (expected merge or overwrite)", s)
	}
}

// Decision returns the prompt answer selecting this strategy.
func (s Strategy) Decision() Decision {
	if s == StrategyOverwrite {
		return DecisionOverwrite
	}
	return DecisionMerge
}
