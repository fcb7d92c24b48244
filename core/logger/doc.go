// Package logger builds the zap loggers used across the catalog manager.
//
// Level is one of debug, info, warn or error; debug switches to zap's development
// defaults. Format is json or console. Logs are written to stderr.
//
// HTTP handlers derive a per-request logger with WithRayID, which copies the ray id
// set by the rayid middleware onto every entry:
//
//	l := logger.WithRayID(log, c)
//	l.Warn("Source failed to load", zap.String("source", source))
package logger
