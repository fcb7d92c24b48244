// Package rayid tags every request with a ray id for log correlation.
package rayid
