// Package loader registers HTTP features on the fiber app.
//
// A feature bundles a service with the handler exposing it and implements Feature:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The start command registers records, marks, importer and integrity with a Manager
// and calls LoadAll, which skips disabled features and stops at the first load error.
package loader
