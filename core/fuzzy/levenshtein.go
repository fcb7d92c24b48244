package fuzzy

// Distance returns the Levenshtein edit distance between a and b, counted in runes
// with unit cost for insertion, deletion and substitution.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	// Full matrix, no early termination
	d := make([][]int, len(ra)+1)
	for i := range d {
		d[i] = make([]int, len(rb)+1)
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			d[i][j] = min(
				d[i-1][j]+1,
				d[i][j-1]+1,
				d[i-1][j-1]+cost,
			)
		}
	}
	return d[len(ra)][len(rb)]
}

// Similarity returns 1 - Distance(a, b) / max(len(a), len(b)) in runes.
// Two empty strings are identical and score 1.
func Similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(Distance(a, b))/float64(longest)
}
