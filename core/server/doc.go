// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber application from this Config: listen port,
// optional API key and the request body limit applied to import payloads.
package server
