package checks

// Verifier is a marks store that can check its own schema.
type Verifier interface {
	Verify() error
}

// SchemaReport is the result of the marks schema check.
type SchemaReport struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// CheckSchema verifies the marks store schema when store supports it.
func CheckSchema(store any) SchemaReport {
	v, ok := store.(Verifier)
	if !ok {
		return SchemaReport{Status: StatusSkipped}
	}
	if err := v.Verify(); err != nil {
		return SchemaReport{Status: StatusError, Error: err.Error()}
	}
	return SchemaReport{Status: StatusOK}
}
