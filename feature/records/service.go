package records

import (
	"context"
	"fmt"

	"catalog-manager/core/catalog"
	"catalog-manager/core/fuzzy"
	"catalog-manager/core/reconcile"
	"catalog-manager/core/tabular"

	"go.uber.org/zap"
)

// UnknownSourceError is returned for a source not listed in the configuration.
type UnknownSourceError struct {
	Source string
}

func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("unknown source %q", e.Source)
}

// Query selects and shapes the records of a source.
type Query struct {
	catalog.Filter
	// Top keeps the first Top records of every year when positive.
	Top int
}

// Service answers read-only questions about catalog sources.
type Service struct {
	records reconcile.RecordProvider
	store   reconcile.IdentifierStore
	codec   *tabular.Codec
	sources []string
	logger  *zap.Logger
}

// NewService creates a records service. An empty sources list accepts any source.
func NewService(records reconcile.RecordProvider, store reconcile.IdentifierStore, codec *tabular.Codec, sources []string, logger *zap.Logger) *Service {
	return &Service{
		records: records,
		store:   store,
		codec:   codec,
		sources: sources,
		logger:  logger,
	}
}

// Sources returns the configured source ids.
func (s *Service) Sources() []string {
	return s.sources
}

func (s *Service) set(ctx context.Context, source string) (*catalog.RecordSet, error) {
	if len(s.sources) > 0 {
		known := false
		for _, src := range s.sources {
			if src == source {
				known = true
				break
			}
		}
		if !known {
			return nil, &UnknownSourceError{Source: source}
		}
	}
	return s.records.Get(ctx, source)
}

// Groups returns the records of source matching q, grouped by year, latest first.
func (s *Service) Groups(ctx context.Context, source string, q Query) ([]catalog.YearGroup, error) {
	set, err := s.set(ctx, source)
	if err != nil {
		return nil, err
	}
	matched := set.Filter(q.Filter)
	if q.Top > 0 {
		return catalog.TopPerYear(matched, q.Top), nil
	}
	return catalog.GroupByYear(matched), nil
}

// Years returns the distinct years of source, ascending.
func (s *Service) Years(ctx context.Context, source string) ([]int, error) {
	set, err := s.set(ctx, source)
	if err != nil {
		return nil, err
	}
	return set.Years(), nil
}

// Export serializes the marked records of source, or all of them when all is true.
// It returns the file content and the number of exported records.
func (s *Service) Export(ctx context.Context, source string, all bool) (string, int, error) {
	set, err := s.set(ctx, source)
	if err != nil {
		return "", 0, err
	}

	records := set.Records()
	if !all {
		ids, err := s.store.Read(ctx)
		if err != nil {
			return "", 0, err
		}
		records = set.Select(ids)
	}
	return s.codec.Serialize(records), len(records), nil
}

// Match returns fuzzy suggestions for query within source.
func (s *Service) Match(ctx context.Context, source, query string) ([]fuzzy.Candidate, error) {
	set, err := s.set(ctx, source)
	if err != nil {
		return nil, err
	}
	return fuzzy.FindMatches(query, set.Records()), nil
}
