package textproto

// Schema describes which field names repeat within a message.
// Repeated message fields and repeated scalar fields share the same set.
type Schema struct {
	repeated map[string]struct{}
}

// NewSchema creates a schema declaring the given field names as repeated.
func NewSchema(repeated ...string) Schema {
	s := Schema{repeated: make(map[string]struct{}, len(repeated))}
	for _, name := range repeated {
		if name == "" {
			continue
		}
		s.repeated[name] = struct{}{}
	}
	return s
}

// IsRepeated reports whether values for name accumulate into an array.
func (s Schema) IsRepeated(name string) bool {
	_, ok := s.repeated[name]
	return ok
}

// Repeated returns the declared repeated field names in no particular order.
func (s Schema) Repeated() []string {
	names := make([]string, 0, len(s.repeated))
	for name := range s.repeated {
		names = append(names, name)
	}
	return names
}
