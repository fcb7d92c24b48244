package tabular

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"catalog-manager/core/catalog"
)

// ImportRow is one accepted data row.
type ImportRow struct {
	Row            int    `json:"row"`
	Year           int    `json:"year"`
	PrimaryTitle   string `json:"primary_title"`
	SecondaryTitle string `json:"secondary_title"`
	Cast           string `json:"cast"`
	ID             string `json:"id"`
}

// ValidationResult is the outcome of validating an import file.
type ValidationResult struct {
	// Valid is true when at least one row was accepted.
	Valid bool `json:"valid"`
	// Rows are the accepted rows in file order.
	Rows []ImportRow `json:"rows"`
	// Errors holds every excluded row.
	Errors []RowError `json:"errors"`
	// MaxDisplayed caps how many errors are shown.
	MaxDisplayed int `json:"max_displayed"`
}

// ValidationReport is the form of a ValidationResult shown to users: true counts
// and at most MaxDisplayed row errors.
type ValidationReport struct {
	Valid        bool       `json:"valid"`
	ValidCount   int        `json:"valid_count"`
	InvalidCount int        `json:"invalid_count"`
	Errors       []RowError `json:"errors"`
}

// Report returns the displayable form of r.
func (r *ValidationResult) Report() *ValidationReport {
	return &ValidationReport{
		Valid:        r.Valid,
		ValidCount:   r.ValidCount(),
		InvalidCount: r.InvalidCount(),
		Errors:       r.DisplayErrors(),
	}
}

// MarshalJSON encodes r as its Report so that row errors stay bounded.
func (r *ValidationResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Report())
}

// ValidCount returns the number of accepted rows.
func (r *ValidationResult) ValidCount() int {
	return len(r.Rows)
}

// InvalidCount returns the number of excluded rows.
func (r *ValidationResult) InvalidCount() int {
	return len(r.Errors)
}

// DisplayErrors returns the errors to show, at most MaxDisplayed of them.
func (r *ValidationResult) DisplayErrors() []RowError {
	if r.MaxDisplayed > 0 && len(r.Errors) > r.MaxDisplayed {
		return r.Errors[:r.MaxDisplayed]
	}
	return r.Errors
}

// IDs returns the ids of accepted rows in file order.
func (r *ValidationResult) IDs() []string {
	ids := make([]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		ids = append(ids, row.ID)
	}
	return ids
}

// Validate checks an import file against set.
//
// A structural problem (fewer than two non-blank rows or a header that differs from
// the configured one) returns a *ValidationError and a nil result. Otherwise every data
// row is checked on its own and excluded rows are collected as RowErrors. When no row
// survives, the result is returned together with a *ValidationError of kind noValidRows.
func (c *Codec) Validate(text string, set *catalog.RecordSet) (*ValidationResult, error) {
	rows := splitRows(text)
	if len(rows) < 2 {
		return nil, &ValidationError{
			Kind:   KindTooFewLines,
			Detail: fmt.Sprintf("expected a header and at least one row, got %d non-blank lines", len(rows)),
		}
	}

	header := c.cfg.Header()
	got := ParseRow(rows[0].text)
	if !slices.Equal(got, header) {
		return nil, &ValidationError{
			Kind:   KindHeaderMismatch,
			Detail: fmt.Sprintf("expected %q, got %q", strings.Join(header, ","), strings.Join(got, ",")),
		}
	}

	result := &ValidationResult{
		Rows:         make([]ImportRow, 0, len(rows)-1),
		Errors:       make([]RowError, 0),
		MaxDisplayed: c.cfg.MaxDisplayedErrors,
	}
	minYear, maxYear := c.yearRange()
	seen := make(map[string]int)

	for _, raw := range rows[1:] {
		fields := ParseRow(raw.text)
		if len(fields) != len(header) {
			result.Errors = append(result.Errors, RowError{
				Row:    raw.line,
				Reason: ReasonFieldCountMismatch,
				Detail: fmt.Sprintf("expected %d fields, got %d", len(header), len(fields)),
			})
			continue
		}

		year, err := strconv.Atoi(fields[0])
		if err != nil || year < minYear || year > maxYear {
			result.Errors = append(result.Errors, RowError{
				Row:    raw.line,
				Reason: ReasonInvalidYear,
				Detail: fmt.Sprintf("%q is not a year in [%d, %d]", fields[0], minYear, maxYear),
			})
			continue
		}

		id := fields[4]
		if !set.Has(id) {
			result.Errors = append(result.Errors, RowError{Row: raw.line, Reason: ReasonUnknownID, Detail: id})
			continue
		}
		if first, dup := seen[id]; dup {
			result.Errors = append(result.Errors, RowError{
				Row:    raw.line,
				Reason: ReasonDuplicateID,
				Detail: fmt.Sprintf("%s already on row %d", id, first),
			})
			continue
		}
		seen[id] = raw.line

		result.Rows = append(result.Rows, ImportRow{
			Row:            raw.line,
			Year:           year,
			PrimaryTitle:   fields[1],
			SecondaryTitle: fields[2],
			Cast:           fields[3],
			ID:             id,
		})
	}

	result.Valid = len(result.Rows) > 0
	if !result.Valid {
		return result, &ValidationError{
			Kind:   KindNoValidRows,
			Detail: fmt.Sprintf("all %d rows were rejected", len(result.Errors)),
		}
	}
	return result, nil
}

func (c *Codec) yearRange() (int, int) {
	minYear := c.cfg.MinYear
	if minYear == 0 {
		minYear = 1900
	}
	horizon := c.cfg.YearHorizon
	if horizon == 0 {
		horizon = 10
	}
	return minYear, c.now().Year() + horizon
}
