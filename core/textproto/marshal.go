package textproto

import (
	"fmt"
	"strconv"
	"strings"
)

// Field is one name/value pair of a Message. Value is a string, bool, an
// integer, a float64 or a nested Message. Repeated fields are expressed by
// listing the same name more than once.
type Field struct {
	Name  string
	Value any
}

// Message is an ordered list of fields, used when emitting text.
type Message []Field

// Marshal writes msg in the text grammar, indenting nested messages by two spaces.
// Strings are always quoted so they parse back as strings. The grammar has no
// escapes, so strings containing a line break are rejected.
func Marshal(msg Message) (string, error) {
	var b strings.Builder
	if err := writeMessage(&b, msg, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeMessage(b *strings.Builder, msg Message, depth int) error {
	indent := strings.Repeat("  ", depth)
	for _, f := range msg {
		if nested, ok := f.Value.(Message); ok {
			b.WriteString(indent + f.Name + " {\n")
			if err := writeMessage(b, nested, depth+1); err != nil {
				return err
			}
			b.WriteString(indent + "}\n")
			continue
		}
		value, err := formatScalar(f.Value)
		if err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
		b.WriteString(indent + f.Name + ": " + value + "\n")
	}
	return nil
}

func formatScalar(v any) (string, error) {
	switch t := v.(type) {
	case string:
		if strings.ContainsAny(t, "\r\n") {
			return "", fmt.Errorf("string value %q spans multiple lines", t)
		}
		return `"` + t + `"`, nil
	case bool:
		return strconv.FormatBool(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}
