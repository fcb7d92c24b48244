package textproto

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	messageStartPattern = regexp.MustCompile(`^([a-zA-Z_][a-zA-Z0-9_]*)\s*\{$`)
	fieldPattern        = regexp.MustCompile(`^([a-zA-Z_][a-zA-Z0-9_]*)\s*:\s*(.*)$`)
)

// Parse converts text into a generic tree of nested maps.
// Values of repeated names are collected into []any; other names keep the last
// value written to them.
func Parse(text string, schema Schema) (map[string]any, error) {
	root := make(map[string]any)
	stack := []map[string]any{root}

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		current := stack[len(stack)-1]

		if m := messageStartPattern.FindStringSubmatch(line); m != nil {
			name := m[1]
			child := make(map[string]any)
			if schema.IsRepeated(name) {
				current[name] = appendValue(current[name], child)
			} else {
				current[name] = child
			}
			stack = append(stack, child)
			continue
		}

		if line == "}" {
			if len(stack) == 1 {
				return nil, &ParseError{Kind: KindUnbalancedBraces, Line: i + 1, Text: line}
			}
			stack = stack[:len(stack)-1]
			continue
		}

		if m := fieldPattern.FindStringSubmatch(line); m != nil {
			name := m[1]
			value := coerce(strings.TrimSpace(m[2]))
			if schema.IsRepeated(name) {
				current[name] = appendValue(current[name], value)
			} else {
				current[name] = value
			}
			continue
		}

		return nil, &ParseError{Kind: KindUnrecognizedLine, Line: i + 1, Text: line}
	}

	if len(stack) != 1 {
		return nil, &ParseError{Kind: KindUnbalancedBraces}
	}
	return root, nil
}

// appendValue appends v to existing when it is already an array, otherwise starts a new one.
func appendValue(existing any, v any) []any {
	if arr, ok := existing.([]any); ok {
		return append(arr, v)
	}
	return []any{v}
}

// coerce applies the fixed priority: quoted string, boolean, number, raw string.
func coerce(value string) any {
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return value[1 : len(value)-1]
	}
	switch strings.ToLower(value) {
	case "true":
		return true
	case "false":
		return false
	}
	if value == "" {
		return value
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	return value
}
