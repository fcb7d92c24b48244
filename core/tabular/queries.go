package tabular

import "strings"

// ParseQueries splits free-text match input into title queries.
// Input containing a comma anywhere is read as comma-delimited rows and flattened;
// otherwise each line is one query. Blank queries are dropped.
func ParseQueries(text string) []string {
	queries := make([]string, 0)
	if strings.Contains(text, ",") {
		for _, row := range splitRows(text) {
			for _, field := range ParseRow(row.text) {
				if field != "" {
					queries = append(queries, field)
				}
			}
		}
		return queries
	}

	for _, line := range strings.Split(text, "\n") {
		if q := strings.TrimSpace(line); q != "" {
			queries = append(queries, q)
		}
	}
	return queries
}
