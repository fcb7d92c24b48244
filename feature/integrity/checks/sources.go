package checks

import (
	"context"

	"catalog-manager/core/reconcile"

	"golang.org/x/sync/errgroup"
)

// MaxConcurrentSources bounds how many sources load at once.
const MaxConcurrentSources = 4

// SourceReport is the result of loading one catalog source.
type SourceReport struct {
	Source  string `json:"source"`
	Status  string `json:"status"`
	Records int    `json:"records"`
	Error   string `json:"error,omitempty"`
}

// CheckSources loads every source and reports its record count. A failing
// source does not stop the others. Reports keep the order of sources.
func CheckSources(ctx context.Context, records reconcile.RecordProvider, sources []string) []SourceReport {
	reports := make([]SourceReport, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrentSources)
	for i, source := range sources {
		g.Go(func() error {
			report := SourceReport{Source: source, Status: StatusOK}
			set, err := records.Get(ctx, source)
			if err != nil {
				report.Status = StatusError
				report.Error = err.Error()
			} else {
				report.Records = set.Len()
			}
			reports[i] = report
			return nil
		})
	}
	_ = g.Wait()

	return reports
}

// Healthy reports whether every source loaded.
func Healthy(reports []SourceReport) bool {
	for _, r := range reports {
		if r.Status != StatusOK {
			return false
		}
	}
	return true
}
