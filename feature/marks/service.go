package marks

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"catalog-manager/core/catalog"
	"catalog-manager/core/reconcile"

	"go.uber.org/zap"
)

// ErrInvalidShare is returned for a link without a share fragment.
var ErrInvalidShare = errors.New("link has no share fragment")

// Progress is how much of a source has been marked.
type Progress struct {
	Source  string  `json:"source"`
	Marked  int     `json:"marked"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

// Service manages the marked record set.
type Service struct {
	store   reconcile.IdentifierStore
	records reconcile.RecordProvider
	logger  *zap.Logger
}

// NewService creates a marks service.
func NewService(store reconcile.IdentifierStore, records reconcile.RecordProvider, logger *zap.Logger) *Service {
	return &Service{
		store:   store,
		records: records,
		logger:  logger,
	}
}

// Store returns the underlying identifier store.
func (s *Service) Store() reconcile.IdentifierStore {
	return s.store
}

// List returns the marked ids.
func (s *Service) List(ctx context.Context) ([]string, error) {
	return s.store.Read(ctx)
}

// Toggle marks id when unmarked and unmarks it otherwise. It reports the new state.
func (s *Service) Toggle(ctx context.Context, id string) (bool, error) {
	ids, err := s.store.Read(ctx)
	if err != nil {
		return false, err
	}

	marked := !slices.Contains(ids, id)
	if marked {
		ids = append(ids, id)
	} else {
		ids = slices.DeleteFunc(ids, func(v string) bool { return v == id })
	}

	if err := s.store.Write(ctx, ids); err != nil {
		return false, err
	}
	s.logger.Debug("Mark toggled", zap.String("id", id), zap.Bool("marked", marked))
	return marked, nil
}

// Set marks or unmarks id explicitly.
func (s *Service) Set(ctx context.Context, id string, marked bool) error {
	ids, err := s.store.Read(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(ids, id) == marked {
		return nil
	}
	_, err = s.Toggle(ctx, id)
	return err
}

// Clear removes every mark.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.store.Write(ctx, []string{}); err != nil {
		return err
	}
	s.logger.Info("Marks cleared")
	return nil
}

// ShareLink returns the share fragment for the marked set.
func (s *Service) ShareLink(ctx context.Context) (string, error) {
	ids, err := s.store.Read(ctx)
	if err != nil {
		return "", err
	}
	return EncodeShare(ids), nil
}

// LoadShare replaces the marked set with the ids of a share link.
func (s *Service) LoadShare(ctx context.Context, link string) ([]string, error) {
	ids, ok := DecodeShare(link)
	if !ok {
		return nil, ErrInvalidShare
	}
	if err := s.store.Write(ctx, ids); err != nil {
		return nil, err
	}
	s.logger.Info("Share link loaded", zap.Int("marked", len(ids)))
	return ids, nil
}

// Progress reports how many records of source are marked.
func (s *Service) Progress(ctx context.Context, source string) (*Progress, error) {
	set, err := s.records.Get(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to load source %s: %w", source, err)
	}
	ids, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	p := &Progress{Source: source, Marked: set.Count(ids), Total: set.Len()}
	if p.Total > 0 {
		p.Percent = float64(p.Marked) * 100 / float64(p.Total)
	}
	return p, nil
}

// MarkedRecords returns the records of source that are marked, in source order.
func (s *Service) MarkedRecords(ctx context.Context, source string) ([]catalog.Record, error) {
	set, err := s.records.Get(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to load source %s: %w", source, err)
	}
	ids, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return set.Select(ids), nil
}
