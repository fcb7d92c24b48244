package checks

import (
	"context"
	"fmt"

	"catalog-manager/core/storage"
)

// Check statuses.
const (
	StatusOK      = "ok"
	StatusError   = "error"
	StatusSkipped = "skipped"
)

// StorageReport is the result of the bucket check.
type StorageReport struct {
	Bucket string `json:"bucket"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// CheckStorage verifies that bucket exists. A nil client means no backend uses
// object storage and the check is skipped.
func CheckStorage(ctx context.Context, client storage.Client, bucket string) StorageReport {
	report := StorageReport{Bucket: bucket, Status: StatusOK}
	if client == nil {
		report.Status = StatusSkipped
		return report
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		report.Status = StatusError
		report.Error = fmt.Sprintf("failed to check bucket existence: %v", err)
		return report
	}
	if !exists {
		report.Status = StatusError
		report.Error = fmt.Sprintf("bucket %s does not exist", bucket)
	}
	return report
}
