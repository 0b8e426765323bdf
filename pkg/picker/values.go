package picker

// ValueSource restores previously submitted values keyed by field identifier.
// A restored value overrides the configured initial value verbatim: it is the
// client's in-flight text and round-trips without re-validation.
type ValueSource interface {
	Lookup(id string) (string, bool)
}

// MapValues adapts a plain map to the ValueSource contract.
type MapValues map[string]string

// Lookup implements ValueSource.
func (m MapValues) Lookup(id string) (string, bool) {
	value, ok := m[id]
	return value, ok
}
