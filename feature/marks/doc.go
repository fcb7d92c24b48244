// Package marks persists and serves the set of marked (highlighted) record ids.
//
// Two stores implement reconcile.IdentifierStore:
//   - DBStore keeps one row per id in the marked_records table through GORM
//   - ObjectStore keeps a JSON array in a single bucket object
//
// Neither store locks between a read and the following write. The set is owned by
// a single user, so concurrent writers resolve as last write wins.
//
// # Routes
//
//	GET    /marks                    marked ids
//	PUT    /marks/:id                mark a record
//	DELETE /marks/:id                unmark a record
//	DELETE /marks                    clear every mark
//	GET    /marks/share              share fragment ("#share=id1,id2")
//	POST   /marks/share              replace the marks with a share link's ids
//	GET    /marks/progress/:source   marked count against a source's size
package marks
