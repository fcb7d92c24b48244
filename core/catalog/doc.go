// Package catalog holds the canonical record model and the memoized record sets.
//
// A catalog source (for example "dorama_info.txtpb") is raw text in the textproto
// grammar. It is fetched through a Loader, parsed, normalized and bound onto
// Record values, then frozen into an immutable RecordSet.
//
// # Loading
//
// Catalog.Get loads each source at most once per process. Concurrent callers asking
// for a source before its first load finishes share that single in-flight load
// (singleflight). A failed load is not memoized and never replaces a set that was
// cached earlier.
//
// # Errors
//
//   - ErrSourceUnavailable: the loader failed or returned blank content.
//   - *textproto.ParseError: the content is malformed.
//   - ErrInvalidRecordSet: records are missing ids or repeat one.
//
// # Usage
//
//	loader := catalog.NewFileLoader("data")
//	cat := catalog.New(loader, cfg.Catalog.Schema(), logger)
//	set, err := cat.Get(ctx, "dorama_info.txtpb")
//	groups := catalog.GroupByYear(set.Filter(catalog.Filter{Search: "love"}))
package catalog
