package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidRecordSet is returned when records are missing ids or repeat one.
var ErrInvalidRecordSet = errors.New("invalid record set")

// RecordSet is the immutable, fully loaded record list of one source.
// Reloading a source replaces its RecordSet wholesale.
type RecordSet struct {
	source  string
	records []Record
	index   map[string]int
}

// NewRecordSet freezes records into a RecordSet. Every record needs a unique, non-empty id.
func NewRecordSet(source string, records []Record) (*RecordSet, error) {
	index := make(map[string]int, len(records))
	for i, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("%w: record %d has no id", ErrInvalidRecordSet, i)
		}
		if prev, dup := index[r.ID]; dup {
			return nil, fmt.Errorf("%w: id %s used by records %d and %d", ErrInvalidRecordSet, r.ID, prev, i)
		}
		index[r.ID] = i
	}
	return &RecordSet{
		source:  source,
		records: slices.Clone(records),
		index:   index,
	}, nil
}

// Source returns the source id the set was loaded from.
func (s *RecordSet) Source() string {
	return s.source
}

// Len returns the number of records.
func (s *RecordSet) Len() int {
	return len(s.records)
}

// Records returns the records in source order.
func (s *RecordSet) Records() []Record {
	return slices.Clone(s.records)
}

// Get returns the record with the given id.
func (s *RecordSet) Get(id string) (Record, bool) {
	i, ok := s.index[id]
	if !ok {
		return Record{}, false
	}
	return s.records[i], true
}

// Has reports whether id belongs to the set.
func (s *RecordSet) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Select returns the records whose ids are in ids, in source order.
func (s *RecordSet) Select(ids []string) []Record {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	out := make([]Record, 0, len(wanted))
	for _, r := range s.records {
		if _, ok := wanted[r.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Count returns how many of ids belong to the set, counting each id once.
func (s *RecordSet) Count(ids []string) int {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if s.Has(id) {
			seen[id] = struct{}{}
		}
	}
	return len(seen)
}
