package tabular

import "fmt"

// ValidationKind classifies a structural import failure.
type ValidationKind string

const (
	KindTooFewLines    ValidationKind = "tooFewLines"
	KindHeaderMismatch ValidationKind = "headerMismatch"
	KindNoValidRows    ValidationKind = "noValidRows"
)

// ValidationError rejects a whole import attempt.
type ValidationError struct {
	Kind   ValidationKind
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invalid import file: %s", e.Kind)
	}
	return fmt.Sprintf("invalid import file: %s: %s", e.Kind, e.Detail)
}

// RowReason classifies why a single row was excluded.
type RowReason string

const (
	ReasonFieldCountMismatch RowReason = "fieldCountMismatch"
	ReasonInvalidYear        RowReason = "invalidYear"
	ReasonUnknownID          RowReason = "unknownId"
	ReasonDuplicateID        RowReason = "duplicateId"
)

// RowError reports one excluded row. It is advisory and never aborts a batch.
type RowError struct {
	Row    int       `json:"row"`
	Reason RowReason `json:"reason"`
	Detail string    `json:"detail,omitempty"`
}

func (e RowError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
	}
	return fmt.Sprintf("row %d: %s (%s)", e.Row, e.Reason, e.Detail)
}
