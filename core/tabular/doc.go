// Package tabular reads and writes the comma separated import/export format.
//
// The file has a fixed five column header (year, primary title, secondary title,
// cast, id) whose labels come from Config. Fields holding a comma, a double quote
// or a newline are quoted RFC 4180 style, and cast members are joined with ";".
//
// Validate separates structural failures, which reject the whole file, from row
// failures, which only exclude the offending row:
//
//	result, err := codec.Validate(text, set)
//	var verr *tabular.ValidationError
//	if errors.As(err, &verr) {
//	    // nothing to import
//	}
//	for _, rowErr := range result.DisplayErrors() {
//	    fmt.Println(rowErr)
//	}
package tabular
