// Package integrity provides system health checks.
//
// # Checks Provided
//
//   - Storage: Checks that the configured bucket exists. Skipped when no backend uses object storage.
//   - Sources: Loads every configured catalog source concurrently and reports its record count.
//   - Schema: Verifies that the marks table carries the expected columns. Skipped for the object backend.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks, 503 when any fails.
//   - GET /integrity/storage : Runs the storage check.
//   - GET /integrity/sources : Runs the sources check.
//   - GET /integrity/schema : Runs the schema check.
package integrity
