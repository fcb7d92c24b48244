package textproto

import "fmt"

// ErrorKind classifies a ParseError.
type ErrorKind string

const (
	// KindUnrecognizedLine is reported for a line matching none of the grammar's forms.
	KindUnrecognizedLine ErrorKind = "unrecognizedLine"
	// KindUnbalancedBraces is reported when '}' closes past the root or a message is never closed.
	KindUnbalancedBraces ErrorKind = "unbalancedBraces"
)

// ParseError reports malformed input. Line is 1-based; it is 0 when the
// problem is only detectable at end of input.
type ParseError struct {
	Kind ErrorKind
	Line int
	Text string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parse error: %s at end of input", e.Kind)
	}
	return fmt.Sprintf("parse error: %s at line %d: %q", e.Kind, e.Line, e.Text)
}
