package fuzzy

import (
	"slices"
	"strings"

	"catalog-manager/core/catalog"

	"golang.org/x/text/cases"
)

const (
	// Threshold is the minimum score for a record to be suggested.
	Threshold = 0.6
	// MaxCandidates caps the suggestions returned for one query.
	MaxCandidates = 5
)

// Candidate is a provisional match of a query against a record.
type Candidate struct {
	Record catalog.Record `json:"record"`
	Score  float64        `json:"score"`
}

// Fold case-folds s for comparison.
func Fold(s string) string {
	// A cases.Caser keeps state and must not be shared between goroutines
	return cases.Fold().String(s)
}

// FindMatches returns up to MaxCandidates records scoring at least Threshold
// against query, best first. Equal scores keep the order of records.
// A record scores the better of its two titles. No match, and a blank query,
// yield an empty slice.
func FindMatches(query string, records []catalog.Record) []Candidate {
	matches := make([]Candidate, 0)

	// A blank query would score 1 against every empty secondary title
	q := Fold(strings.TrimSpace(query))
	if q == "" {
		return matches
	}

	for _, r := range records {
		score := max(
			Similarity(q, Fold(r.PrimaryTitle)),
			Similarity(q, Fold(r.SecondaryTitle)),
		)
		if score >= Threshold {
			matches = append(matches, Candidate{Record: r, Score: score})
		}
	}

	slices.SortStableFunc(matches, func(a, b Candidate) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	if len(matches) > MaxCandidates {
		matches = matches[:MaxCandidates]
	}
	return matches
}

// Best returns the highest scoring candidate, if any.
func Best(candidates []Candidate) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	return candidates[0], true
}
