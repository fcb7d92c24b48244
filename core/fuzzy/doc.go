// Package fuzzy ranks catalog records against free-text title queries.
//
// Scores are Levenshtein similarities over case-folded titles. A record keeps the
// better of its primary and secondary title scores and is only suggested when that
// score reaches Threshold. Suggestions are never applied automatically; callers
// must have a person confirm them.
package fuzzy
