package textproto

import (
	"regexp"
	"strings"
)

var snakePattern = regexp.MustCompile(`_([a-z])`)

// CamelCase rewrites every "_x" (x a lowercase letter) to "X".
// No other transformation is applied.
func CamelCase(key string) string {
	return snakePattern.ReplaceAllStringFunc(key, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// Normalize returns a copy of v with every map key converted by CamelCase,
// descending into nested maps and arrays. Scalars are returned unchanged.
func Normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[CamelCase(k)] = Normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Normalize(val)
		}
		return out
	default:
		return v
	}
}
