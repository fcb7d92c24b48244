// Package records serves read-only views of catalog sources over HTTP.
//
// Records can be filtered by year range, free-text search and cast member, and
// come back grouped by year with the latest year first. Marked records (or every
// record) export to the tabular format, and /match returns fuzzy suggestions for
// a single title.
package records
