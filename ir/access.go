package ir

// Typed accessors over the untyped document tree. All of the model-build
// code goes through these instead of raw type assertions so that a shape
// mismatch reads as a zero value, and required-key checks live in one place.

// String returns node[key] as a string, or "" when absent or not a string.
func String(node map[string]any, key string) string {
	s, _ := node[key].(string)
	return s
}

// Bool returns node[key] as a bool, or false when absent or not a bool.
func Bool(node map[string]any, key string) bool {
	b, _ := node[key].(bool)
	return b
}

// Ints returns node[key] as a sequence of ints, accepting the integer widths
// the YAML decoder may produce and skipping entries of any other shape.
func Ints(node map[string]any, key string) []int {
	raw := Slice(node, key)
	if raw == nil {
		return nil
	}
	out := make([]int, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case int:
			out = append(out, v)
		case int64:
			out = append(out, int(v))
		case uint64:
			out = append(out, int(v))
		}
	}
	return out
}

// Map returns node[key] as a mapping, or nil when absent or not a mapping.
func Map(node map[string]any, key string) map[string]any {
	m, _ := node[key].(map[string]any)
	return m
}

// Slice returns node[key] as a sequence, or nil when absent or not a sequence.
func Slice(node map[string]any, key string) []any {
	s, _ := node[key].([]any)
	return s
}

// Maps returns node[key] as a sequence of mappings, skipping entries of any
// other shape.
func Maps(node map[string]any, key string) []map[string]any {
	raw := Slice(node, key)
	if raw == nil {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
