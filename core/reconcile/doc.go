// Package reconcile drives import operations that replace the marked record set.
//
// An Operation moves through a fixed state machine:
//
//	Idle -> Validating -> Rejected
//	                   -> PreviewReady -> Applied
//	                                   -> Cancelled
//
// Validating runs either the tabular validator over an import file or the fuzzy
// matcher over free-text title queries, against one source's record set. A Preview
// splits the accepted ids into those already marked and those that are new. The
// person confirming the import answers through a Prompt, so the whole flow runs
// the same from a terminal, an HTTP request or a test stub.
//
// Applying an operation with a non-empty marked set uses one of two strategies:
//
//   - merge: existing ids first, then new ids in import order, without duplicates
//   - overwrite: exactly the imported ids
//
// When nothing is marked yet, overwrite is implied.
//
// Failing to obtain the record set rejects the operation with ErrCatalogUnavailable
// before any validation, and no write reaches the IdentifierStore.
//
// # Usage Example
//
//	coord := reconcile.NewCoordinator(cat, codec, store, log)
//	op, err := coord.ImportTabular(ctx, "dorama_info.txtpb", text, prompt)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(op.State(), op.Preview().Summary())
package reconcile
