package catalog

import (
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Filter narrows a record set. Zero values disable a criterion; all criteria combine with AND.
type Filter struct {
	// StartYear is the inclusive lower year bound.
	StartYear int
	// EndYear is the inclusive upper year bound.
	EndYear int
	// Search matches case-insensitively against titles and cast members.
	Search string
	// Actor keeps only records whose cast contains this exact name.
	Actor string
}

// Match reports whether r satisfies the filter.
func (f Filter) Match(r Record) bool {
	if f.StartYear != 0 && r.Year < f.StartYear {
		return false
	}
	if f.EndYear != 0 && r.Year > f.EndYear {
		return false
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		fold := cases.Fold()
		term := fold.String(search)
		found := strings.Contains(fold.String(r.PrimaryTitle), term) ||
			strings.Contains(fold.String(r.SecondaryTitle), term) ||
			slices.ContainsFunc(r.Cast, func(member string) bool {
				return strings.Contains(fold.String(member), term)
			})
		if !found {
			return false
		}
	}
	if f.Actor != "" && !slices.Contains(r.Cast, f.Actor) {
		return false
	}
	return true
}

// Filter returns the records matching f, in source order.
func (s *RecordSet) Filter(f Filter) []Record {
	out := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Years returns the distinct years of the set in ascending order.
func (s *RecordSet) Years() []int {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, r := range s.records {
		if _, ok := seen[r.Year]; ok {
			continue
		}
		seen[r.Year] = struct{}{}
		years = append(years, r.Year)
	}
	sort.Ints(years)
	return years
}

// YearGroup is the records of one year.
type YearGroup struct {
	Year    int      `json:"year"`
	Records []Record `json:"records"`
}

// GroupByYear groups records by year, latest year first, keeping each year's relative order.
func GroupByYear(records []Record) []YearGroup {
	byYear := make(map[int][]Record)
	years := make([]int, 0)
	for _, r := range records {
		if _, ok := byYear[r.Year]; !ok {
			years = append(years, r.Year)
		}
		byYear[r.Year] = append(byYear[r.Year], r)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	groups := make([]YearGroup, 0, len(years))
	for _, y := range years {
		groups = append(groups, YearGroup{Year: y, Records: byYear[y]})
	}
	return groups
}

// TopPerYear keeps the first n records of every year, latest year first.
func TopPerYear(records []Record, n int) []YearGroup {
	groups := GroupByYear(records)
	for i := range groups {
		if len(groups[i].Records) > n {
			groups[i].Records = groups[i].Records[:n]
		}
	}
	return groups
}

// Flatten concatenates groups back into one list.
func Flatten(groups []YearGroup) []Record {
	out := make([]Record, 0)
	for _, g := range groups {
		out = append(out, g.Records...)
	}
	return out
}
