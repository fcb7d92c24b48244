package integrity

import (
	"context"

	"catalog-manager/core/reconcile"
	"catalog-manager/core/storage"
	"catalog-manager/feature/integrity/checks"

	"go.uber.org/zap"
)

// Report combines every check.
type Report struct {
	Healthy bool                  `json:"healthy"`
	Storage checks.StorageReport  `json:"storage"`
	Sources []checks.SourceReport `json:"sources"`
	Schema  checks.SchemaReport   `json:"schema"`
}

// Service runs health checks against the configured backends.
type Service struct {
	client  storage.Client
	bucket  string
	records reconcile.RecordProvider
	sources []string
	store   reconcile.IdentifierStore
	logger  *zap.Logger
}

// NewService creates a new integrity service. client may be nil when no
// backend uses object storage.
func NewService(client storage.Client, bucket string, records reconcile.RecordProvider, sources []string, store reconcile.IdentifierStore, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		bucket:  bucket,
		records: records,
		sources: sources,
		store:   store,
		logger:  logger,
	}
}

// CheckStorage checks the storage bucket.
func (s *Service) CheckStorage(ctx context.Context) checks.StorageReport {
	return checks.CheckStorage(ctx, s.client, s.bucket)
}

// CheckSources loads every configured source.
func (s *Service) CheckSources(ctx context.Context) []checks.SourceReport {
	return checks.CheckSources(ctx, s.records, s.sources)
}

// CheckSchema checks the marks store schema.
func (s *Service) CheckSchema() checks.SchemaReport {
	return checks.CheckSchema(s.store)
}

// Run performs all checks.
func (s *Service) Run(ctx context.Context) *Report {
	report := &Report{
		Storage: s.CheckStorage(ctx),
		Sources: s.CheckSources(ctx),
		Schema:  s.CheckSchema(),
	}
	report.Healthy = report.Storage.Status != checks.StatusError &&
		report.Schema.Status != checks.StatusError &&
		checks.Healthy(report.Sources)

	if !report.Healthy {
		s.logger.Warn("Integrity check found problems",
			zap.String("storage", report.Storage.Status),
			zap.String("schema", report.Schema.Status),
		)
	}
	return report
}
