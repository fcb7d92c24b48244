package catalog

import (
	"fmt"

	"catalog-manager/core/textproto"
)

// Decode parses source text into records using schema.
// Unknown fields are ignored and a missing cast decodes as an empty slice.
func Decode(text string, schema Schema) ([]Record, error) {
	tree, err := textproto.Parse(text, schema.Text)
	if err != nil {
		return nil, err
	}
	root := textproto.Normalize(tree).(map[string]any)

	var items []any
	switch v := root[textproto.CamelCase(schema.RecordsField)].(type) {
	case nil:
	case []any:
		items = v
	case map[string]any:
		items = []any{v}
	default:
		return nil, fmt.Errorf("field %s is not a message", schema.RecordsField)
	}

	records := make([]Record, 0, len(items))
	for i, item := range items {
		msg, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record %d: %s entry is not a message", i, schema.RecordsField)
		}

		canonical := make(map[string]any, 5)
		for _, p := range schema.Fields.pairs() {
			if v, ok := msg[textproto.CamelCase(p[1])]; ok {
				canonical[p[0]] = v
			}
		}

		var rec Record
		if err := textproto.Decode(canonical, &rec); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if rec.Cast == nil {
			rec.Cast = []string{}
		}
		records = append(records, rec)
	}
	return records, nil
}

// Encode writes records back into source text using schema.
// Decode(Encode(r)) yields r as long as the cast field is declared repeated.
func Encode(records []Record, schema Schema) (string, error) {
	msg := make(textproto.Message, 0, len(records))
	for _, r := range records {
		entry := textproto.Message{
			{Name: schema.Fields.ID, Value: r.ID},
			{Name: schema.Fields.PrimaryTitle, Value: r.PrimaryTitle},
			{Name: schema.Fields.SecondaryTitle, Value: r.SecondaryTitle},
			{Name: schema.Fields.Year, Value: r.Year},
		}
		for _, member := range r.Cast {
			entry = append(entry, textproto.Field{Name: schema.Fields.Cast, Value: member})
		}
		msg = append(msg, textproto.Field{Name: schema.RecordsField, Value: entry})
	}
	return textproto.Marshal(msg)
}
