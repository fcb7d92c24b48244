// Package importer exposes import operations over HTTP.
//
// Preview routes validate or match input and report the diff against the marked
// set without changing it. Apply routes run the same validation and then write the
// result with the requested strategy (merge unless overwrite is asked for; with no
// existing marks, overwrite is implied). Free-text apply only marks records the
// caller selected explicitly.
//
//	POST /imports/:source/csv/preview     body: the tabular file
//	POST /imports/:source/csv/apply       ?strategy=merge|overwrite
//	POST /imports/:source/text/preview    {"text": "..."}
//	POST /imports/:source/text/apply      {"text": "...", "selections": {...}, "strategy": "merge"}
package importer
