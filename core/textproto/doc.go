// Package textproto parses the line-oriented catalog text format into a generic tree.
//
// The grammar knows three line forms, each trimmed before matching:
//
//	identifier {          starts a nested message
//	}                     closes the current message
//	identifier: value     assigns a field
//
// Blank lines and lines starting with '#' are ignored. Which names are repeated
// (accumulated into arrays instead of overwritten) is supplied by a Schema, so the
// grammar mechanics stay independent of any one catalog's shape.
//
// # Passes
//
//   - Parse: text -> map[string]any tree, with scalar values coerced to string, bool,
//     int64 or float64.
//   - Normalize: rewrites every key from snake_case to camelCase, recursively.
//   - Decode: binds a normalized tree onto a typed struct through mapstructure.
//   - Marshal: emits a Message back into the grammar.
//
// # Usage
//
//	schema := textproto.NewSchema("main_actor", "doramas")
//	tree, err := textproto.Parse(text, schema)
//	if err != nil {
//	    var perr *textproto.ParseError
//	    errors.As(err, &perr)
//	}
//	normalized := textproto.Normalize(tree)
package textproto
